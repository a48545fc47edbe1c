package components

import (
	"recruit-reminders/internal/handler"
	"recruit-reminders/internal/handler/api"
	"recruit-reminders/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewReminderHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
