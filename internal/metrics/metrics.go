package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "ticketing"

type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// outcome: success, not_found, rejected, unavailable
	GatewayRequestsTotal   *prometheus.CounterVec
	GatewayRequestDuration *prometheus.HistogramVec

	// outcome: pay_url, conflict, rejected, error
	PurchasesTotal *prometheus.CounterVec
	// outcome: confirmed, pending, not_found, rejected, conflict, error
	ConfirmationsTotal *prometheus.CounterVec

	SweepProcessedTotal *prometheus.CounterVec
	SweepDuration       *prometheus.HistogramVec
	PendingBills        prometheus.Gauge
	CheckCountAlerts    *prometheus.CounterVec
	NotificationsTotal  *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		GatewayRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "gateway_requests_total",
				Help:      "Calls to the payment gateway by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		GatewayRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "gateway_request_duration_seconds",
				Help:      "Payment gateway round-trip latency in seconds",
				Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"operation"},
		),
		PurchasesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "purchases_total",
				Help:      "Buy attempts by outcome",
			},
			[]string{"outcome"},
		),
		ConfirmationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "confirmations_total",
				Help:      "Bill confirmations by outcome",
			},
			[]string{"outcome"},
		),
		SweepProcessedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sweep_processed_total",
				Help:      "Entities handled by reconciliation sweeps",
			},
			[]string{"sweep", "result"},
		),
		SweepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sweep_duration_seconds",
				Help:      "Wall time of one reconciliation sweep",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 14),
			},
			[]string{"sweep"},
		),
		PendingBills: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "pending_bills",
				Help:      "Bills waiting in the reconciliation list",
			},
		),
		CheckCountAlerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "check_count_alerts_total",
				Help:      "Tickets polled more often than the alert threshold",
			},
			[]string{"sweep"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "notifications_total",
				Help:      "Notification dispatches by template and result",
			},
			[]string{"template", "result"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.GatewayRequestsTotal,
		m.GatewayRequestDuration,
		m.PurchasesTotal,
		m.ConfirmationsTotal,
		m.SweepProcessedTotal,
		m.SweepDuration,
		m.PendingBills,
		m.CheckCountAlerts,
		m.NotificationsTotal,
	)

	return m
}

// ObserveGateway records a finished gateway call.
func (m *Metrics) ObserveGateway(operation, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.GatewayRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.GatewayRequestDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveSweep records the counts and wall time of one sweep run.
func (m *Metrics) ObserveSweep(sweep string, succeeded, failed int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SweepProcessedTotal.WithLabelValues(sweep, "success").Add(float64(succeeded))
	m.SweepProcessedTotal.WithLabelValues(sweep, "failed").Add(float64(failed))
	m.SweepDuration.WithLabelValues(sweep).Observe(elapsed.Seconds())
}

func (m *Metrics) CountPurchase(outcome string) {
	if m == nil {
		return
	}
	m.PurchasesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CountConfirmation(outcome string) {
	if m == nil {
		return
	}
	m.ConfirmationsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) CountCheckAlert(sweep string) {
	if m == nil {
		return
	}
	m.CheckCountAlerts.WithLabelValues(sweep).Inc()
}

func (m *Metrics) CountNotification(template, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(template, result).Inc()
}

func (m *Metrics) SetPendingBills(n int) {
	if m == nil {
		return
	}
	m.PendingBills.Set(float64(n))
}
