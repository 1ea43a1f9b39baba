package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"golang.org/x/sync/errgroup"
)

// forEach runs fn for every item with at most cfg.Concurrency in flight.
// A failing item is counted and never stops the others.
func forEach[T any](ctx context.Context, r *Reconciler, items []T, fn func(ctx context.Context, item T) error) (succeeded, failed int) {
	var ok, bad atomic.Int64

	g := new(errgroup.Group)
	g.SetLimit(r.cfg.Concurrency)
	for _, item := range items {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := fn(ctx, item); err != nil {
				bad.Add(1)
			} else {
				ok.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	return int(ok.Load()), int(bad.Load())
}

// callContext bounds a single gateway round trip.
func (r *Reconciler) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.CallTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.cfg.CallTimeout)
}

// alertCheckCount fires once, when a ticket's poll counter hits the threshold.
func (r *Reconciler) alertCheckCount(sweep string, t *domain.Ticket) {
	if r.cfg.CheckCountAlert <= 0 || t.CheckCount != r.cfg.CheckCountAlert {
		return
	}
	r.metrics.CountCheckAlert(sweep)
	r.logger.Warn("ticket is still unsettled after many checks",
		"sweep", sweep,
		"ticket_id", t.UUID,
		"status", t.Status,
		"check_count", t.CheckCount,
	)
}

func (r *Reconciler) finish(sweep string, started time.Time, succeeded, failed int) {
	r.metrics.ObserveSweep(sweep, succeeded, failed, time.Since(started))
	if succeeded+failed > 0 {
		r.logger.Info("sweep finished",
			"sweep", sweep,
			"succeeded", succeeded,
			"failed", failed,
			"duration", time.Since(started),
		)
	}
}
