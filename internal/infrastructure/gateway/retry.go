package gateway

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
)

// RetryClient is the request-path retry policy. Bill and refund ids are
// chosen by the caller, so repeating a PUT is safe. Workers do not use it:
// their next tick is the retry.
type RetryClient struct {
	inner      application.GatewayClient
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryClient(inner application.GatewayClient, cfg config.RetryConfig) *RetryClient {
	maxRetries := int(cfg.MaxRetries)
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryClient) CreateBill(ctx context.Context, req application.CreateBillRequest) (*application.BillResponse, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.BillResponse, error) {
			return r.inner.CreateBill(ctx, req)
		},
	)
}

func (r *RetryClient) GetBillDetails(ctx context.Context, billID string) (*application.BillResponse, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.BillResponse, error) {
			return r.inner.GetBillDetails(ctx, billID)
		},
	)
}

func (r *RetryClient) GetPayment(ctx context.Context, paymentID string) (*application.PaymentResponse, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.PaymentResponse, error) {
			return r.inner.GetPayment(ctx, paymentID)
		},
	)
}

func (r *RetryClient) CreateRefund(ctx context.Context, paymentID, refundID string, req application.CreateRefundRequest) (*application.RefundResponse, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.RefundResponse, error) {
			return r.inner.CreateRefund(ctx, paymentID, refundID, req)
		},
	)
}

func (r *RetryClient) GetRefund(ctx context.Context, paymentID, refundID string) (*application.RefundResponse, error) {
	return retry(
		r,
		ctx,
		func(ctx context.Context) (*application.RefundResponse, error) {
			return r.inner.GetRefund(ctx, paymentID, refundID)
		},
	)
}

// Generic retry helper
func retry[T any](r *RetryClient, ctx context.Context, operation func(ctx context.Context) (*T, error)) (*T, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return nil, fmt.Errorf("%w (last error: %v)", err, lastErr)
			}
			return nil, err
		}

		resp, err := operation(ctx)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			timer := time.NewTimer(r.backoff(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, fmt.Errorf("%w (last error: %v)", ctx.Err(), lastErr)
			case <-timer.C:
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if gwErr, ok := application.IsGatewayError(err); ok {
		return gwErr.IsRetryable()
	}

	if errors.Is(err, context.Canceled) {
		return false
	}

	return true
}

// Backoff calculation with exponential delay and jitter
func (r *RetryClient) backoff(attempt int) time.Duration {
	base := r.baseDelay * time.Duration(1<<attempt)

	jitter := time.Duration(rand.Int63n(int64(r.baseDelay/2) + 1))

	return base + jitter
}
