package components

import (
	"recruit-reminders/internal/infra/readstore"
	"recruit-reminders/internal/infra/uow"
	"recruit-reminders/internal/usecase/queries"
	"recruit-reminders/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewReminderReadStore,
			fx.As(new(queries.ReminderReadStore)),
		),
	),
)
