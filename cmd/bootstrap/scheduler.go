package bootstrap

import (
	"context"
	"log/slog"

	"hotel-booking/internal/infra/scheduler"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		return nil
	}

	s, err := scheduler.New(cfg.Scheduler.IdempotencyPurge, scheduler.NewIdempotencyPurger(uow, clk))
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("scheduler started", "idempotencyPurge", cfg.Scheduler.IdempotencyPurge)
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return s.Stop(ctx)
		},
	})
	return nil
}
