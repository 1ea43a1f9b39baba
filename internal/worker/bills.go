package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
)

// sweepBills retries confirmation of every bill still awaiting payment.
func (r *Reconciler) sweepBills(ctx context.Context) {
	started := time.Now()

	billIDs, err := r.deps.Bills.ListPendingBills(ctx)
	if err != nil {
		r.logger.Error("failed to list pending bills", "error", err)
		return
	}

	var removed atomic.Int64
	succeeded, failed := forEach(ctx, r, billIDs, func(ctx context.Context, billID string) error {
		callCtx, cancel := r.callContext(ctx)
		result, err := r.deps.Confirmer.ConfirmBuying(callCtx, billID)
		cancel()

		if keepBill(result, err) {
			if err != nil {
				r.logger.Warn("bill confirmation deferred", "bill_id", billID, "error", err)
				return err
			}
			return nil
		}

		if err != nil {
			r.logger.Info("dropping unconfirmable bill",
				"bill_id", billID,
				"category", application.CategorizeError(err),
				"error", err,
			)
		}
		if rmErr := r.deps.Bills.RemovePendingBill(ctx, billID); rmErr != nil {
			r.logger.Error("failed to remove pending bill", "bill_id", billID, "error", rmErr)
			return rmErr
		}
		removed.Add(1)
		return nil
	})

	r.metrics.SetPendingBills(len(billIDs) - int(removed.Load()))
	r.finish("bills", started, succeeded, failed)
}

// keepBill reports whether the bill should be checked again later. Pending
// bills and failures that may clear up on their own stay in the list.
func keepBill(result *services.ConfirmResult, err error) bool {
	if err != nil {
		return application.IsRetryable(err)
	}
	return result != nil && result.Outcome == services.OutcomePending
}
