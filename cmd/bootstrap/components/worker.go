package components

import (
	"context"
	"log/slog"

	"recruit-reminders/internal/pkg/config"
	"recruit-reminders/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		func(cfg config.Config) config.SweeperConfig { return cfg.Sweeper },
		fx.Annotate(
			worker.NewLogNotifier,
			fx.As(new(worker.Notifier)),
		),
		worker.NewSweeper,
	),
	fx.Invoke(startSweeper),
)

func startSweeper(lc fx.Lifecycle, sweeper *worker.Sweeper, logger *slog.Logger, cfg config.Config) {
	if !cfg.Sweeper.Enabled {
		logger.Info("Reminder sweeper disabled")
		return
	}

	runCtx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("Starting reminder sweeper",
				"interval", cfg.Sweeper.Interval.String(),
				"window", cfg.Sweeper.DeadlineWindow.String())
			go sweeper.Run(runCtx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
