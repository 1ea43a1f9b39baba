package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
)

// sweepRefunds starts refunds for flagged tickets and polls the ones in flight.
func (r *Reconciler) sweepRefunds(ctx context.Context) {
	started := time.Now()

	tickets, err := r.deps.Tickets.FindByStatus(ctx, r.cfg.BatchSize,
		domain.StatusNeedRefund, domain.StatusWaitingRefund, domain.StatusUnknown)
	if err != nil {
		r.logger.Error("failed to load refunds", "error", err)
		return
	}

	refunding := tickets[:0]
	for _, t := range tickets {
		if t.Status != domain.StatusUnknown || t.RefundID != nil {
			refunding = append(refunding, t)
		}
	}

	succeeded, failed := forEach(ctx, r, refunding, func(ctx context.Context, t *domain.Ticket) error {
		if err := r.processRefund(ctx, t); err != nil {
			r.logger.Error("refund step failed", "ticket_id", t.UUID, "status", t.Status, "error", err)
			return err
		}
		r.alertCheckCount("refunds", t)
		return nil
	})

	r.finish("refunds", started, succeeded, failed)
}

func (r *Reconciler) processRefund(ctx context.Context, t *domain.Ticket) error {
	if t.PaymentID == nil {
		return fmt.Errorf("ticket %s has no payment id", t.UUID)
	}

	callCtx, cancel := r.callContext(ctx)
	defer cancel()

	var (
		result *services.RefundResult
		err    error
	)
	switch {
	case t.Status == domain.StatusNeedRefund:
		result, err = r.deps.Refunds.RequestRefund(callCtx, t)
	case t.RefundID != nil:
		result, err = r.deps.Refunds.CheckRefund(callCtx, *t.PaymentID, *t.RefundID)
	default:
		return fmt.Errorf("ticket %s is %s without a refund id", t.UUID, t.Status)
	}
	if err != nil {
		return err
	}

	return r.deps.Refunds.ApplyRefund(ctx, t, result)
}
