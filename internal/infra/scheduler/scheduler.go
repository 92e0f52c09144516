package scheduler

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"

	"github.com/robfig/cron/v3"
)

const purgeTimeout = 30 * time.Second

// IdempotencyPurger deletes idempotency records past their expiry.
type IdempotencyPurger struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewIdempotencyPurger(uow shared.UnitOfWork, clk clock.Clock) *IdempotencyPurger {
	return &IdempotencyPurger{uow: uow, clock: clk}
}

func (p *IdempotencyPurger) Run(ctx context.Context) (int64, error) {
	var purged int64
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, p.clock.Now())
		purged = n
		return err
	})
	return purged, err
}

type Scheduler struct {
	cron *cron.Cron
}

// New registers the purge job on spec, a standard cron expression or descriptor such as "@hourly".
func New(spec string, purger *IdempotencyPurger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		n, err := purger.Run(ctx)
		if err != nil {
			slog.Error("idempotency purge failed", "error", err.Error())
			return
		}
		if n > 0 {
			slog.Info("purged expired idempotency keys", "count", n)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
