package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"lab-reservation/internal/pkg/config"
	"lab-reservation/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(StartSweeper),
)

// StartSweeper runs ExpireStale on a ticker for the lifetime of the app.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, sweep commands.SweepCommands, logger *slog.Logger) {
	if !cfg.Sweep.Enabled || cfg.Sweep.Interval <= 0 {
		logger.Info("stale booking sweep disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(cfg.Sweep.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						n, err := sweep.ExpireStale(ctx)
						if err != nil {
							logger.Error("stale booking sweep failed", "error", err)
							continue
						}
						if n > 0 {
							logger.Info("stale bookings expired", "count", n)
						}
					}
				}
			}()
			logger.Info("stale booking sweep started", "interval", cfg.Sweep.Interval)
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
