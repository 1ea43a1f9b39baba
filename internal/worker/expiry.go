package worker

import (
	"context"
	"time"
)

// sweepExpired retires active tickets of events that are over.
func (r *Reconciler) sweepExpired(ctx context.Context) {
	started := time.Now()

	expired, err := r.deps.Tickets.ExpireEnded(ctx, r.now())
	if err != nil {
		r.logger.Error("failed to expire tickets", "error", err)
		r.finish("expiry", started, 0, 1)
		return
	}

	r.finish("expiry", started, int(expired), 0)
}
