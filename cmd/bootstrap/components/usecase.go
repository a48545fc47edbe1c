package components

import (
	"recruit-reminders/internal/pkg/clock"
	"recruit-reminders/internal/usecase/commands"
	"recruit-reminders/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewSystemClock,
		commands.NewReminderCommands,
		queries.NewReminderQueries,
	),
)
