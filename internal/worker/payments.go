package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
)

// sweepPayments polls the acquirer for tickets whose payment has not settled.
func (r *Reconciler) sweepPayments(ctx context.Context) {
	started := time.Now()

	tickets, err := r.deps.Tickets.FindByStatus(ctx, r.cfg.BatchSize, domain.StatusWaitingPayment, domain.StatusUnknown)
	if err != nil {
		r.logger.Error("failed to load unsettled payments", "error", err)
		return
	}

	// unknown tickets that already carry a refund id belong to the refund sweep
	pending := tickets[:0]
	for _, t := range tickets {
		if t.Status == domain.StatusWaitingPayment || t.RefundID == nil {
			pending = append(pending, t)
		}
	}

	succeeded, failed := forEach(ctx, r, pending, func(ctx context.Context, t *domain.Ticket) error {
		if err := r.checkPayment(ctx, t); err != nil {
			r.logger.Error("payment check failed", "ticket_id", t.UUID, "error", err)
			return err
		}
		r.alertCheckCount("payments", t)
		return nil
	})

	r.finish("payments", started, succeeded, failed)
}

func (r *Reconciler) checkPayment(ctx context.Context, t *domain.Ticket) error {
	if t.PaymentID == nil {
		return fmt.Errorf("ticket %s has no payment id", t.UUID)
	}

	callCtx, cancel := r.callContext(ctx)
	result, err := r.deps.Payments.CheckPayment(callCtx, *t.PaymentID)
	cancel()
	if err != nil {
		return err
	}

	return r.deps.Payments.ApplyPayment(ctx, t, result)
}
