package gateway

import (
	"context"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
)

// InstrumentedClient records count and latency of every gateway call.
type InstrumentedClient struct {
	inner   application.GatewayClient
	metrics *metrics.Metrics
}

func NewInstrumentedClient(inner application.GatewayClient, m *metrics.Metrics) *InstrumentedClient {
	return &InstrumentedClient{inner: inner, metrics: m}
}

func (c *InstrumentedClient) CreateBill(ctx context.Context, req application.CreateBillRequest) (*application.BillResponse, error) {
	return observe(c, "create_bill", func() (*application.BillResponse, error) {
		return c.inner.CreateBill(ctx, req)
	})
}

func (c *InstrumentedClient) GetBillDetails(ctx context.Context, billID string) (*application.BillResponse, error) {
	return observe(c, "get_bill", func() (*application.BillResponse, error) {
		return c.inner.GetBillDetails(ctx, billID)
	})
}

func (c *InstrumentedClient) GetPayment(ctx context.Context, paymentID string) (*application.PaymentResponse, error) {
	return observe(c, "get_payment", func() (*application.PaymentResponse, error) {
		return c.inner.GetPayment(ctx, paymentID)
	})
}

func (c *InstrumentedClient) CreateRefund(ctx context.Context, paymentID, refundID string, req application.CreateRefundRequest) (*application.RefundResponse, error) {
	return observe(c, "create_refund", func() (*application.RefundResponse, error) {
		return c.inner.CreateRefund(ctx, paymentID, refundID, req)
	})
}

func (c *InstrumentedClient) GetRefund(ctx context.Context, paymentID, refundID string) (*application.RefundResponse, error) {
	return observe(c, "get_refund", func() (*application.RefundResponse, error) {
		return c.inner.GetRefund(ctx, paymentID, refundID)
	})
}

func observe[T any](c *InstrumentedClient, operation string, call func() (*T, error)) (*T, error) {
	start := time.Now()
	resp, err := call()
	c.metrics.ObserveGateway(operation, Outcome(err), time.Since(start))
	return resp, err
}

// Outcome names the three-way result of a gateway call.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case application.IsGatewayNotFound(err):
		return "not_found"
	case application.IsRetryable(err):
		return "unavailable"
	default:
		return "rejected"
	}
}
