package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/gateway"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/notification"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/reservation"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest/handlers"
	"github.com/DanielPopoola/ticketing-engine/internal/interfaces/rest/middleware"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
	"github.com/DanielPopoola/ticketing-engine/internal/worker"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

// App is the whole engine wired against real Postgres and Redis and a fake
// acquirer.
type App struct {
	Server     *httptest.Server
	Reconciler *worker.Reconciler
	Metrics    *metrics.Metrics
}

func NewApp(t *testing.T, pool *pgxpool.Pool, rdb *redis.Client, acquirerURL string, logger *slog.Logger) *App {
	t.Helper()

	m := metrics.NewWithRegistry(prometheus.NewRegistry())

	gatewayCfg := config.GatewayConfig{
		BaseURL:  acquirerURL,
		SiteID:   "site-1",
		Token:    "test-token",
		Timeout:  5 * time.Second,
		Currency: "KZT",
	}
	reservationCfg := config.ReservationConfig{TTL: 10 * time.Minute, BillExpiry: 10 * time.Minute}
	workerCfg := config.WorkerConfig{
		Interval:        time.Hour,
		BatchSize:       100,
		Concurrency:     4,
		CallTimeout:     5 * time.Second,
		CheckCountAlert: 30,
	}

	ledger := postgres.NewLedger(pool)
	tickets := postgres.NewTicketRepository(pool)
	emails := postgres.NewEmailRepository(pool)
	store := reservation.NewRedisStore(rdb)

	client := gateway.NewInstrumentedClient(gateway.NewClient(gatewayCfg), m)
	retrying := gateway.NewRetryClient(client, config.RetryConfig{BaseDelay: 10 * time.Millisecond, MaxRetries: 1})

	confirm := services.NewConfirmService(ledger, tickets, store, retrying, m, logger)
	settings := notification.NewCachedEmailSettings(rdb, emails, time.Hour, logger)

	h := handlers.NewHandlers(
		services.NewPurchaseService(ledger, store, retrying, reservationCfg, gatewayCfg.Currency, m, logger),
		confirm,
		services.NewCheckInService(tickets, logger),
		services.NewQueryService(tickets),
		services.NewEventService(ledger, logger),
		settings,
		logger,
	)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	doc, err := rest.LoadOpenAPI()
	require.NoError(t, err)
	validate, err := middleware.OpenAPIValidation(doc, logger)
	require.NoError(t, err)

	handler := middleware.Metrics(m)(mux)
	handler = validate(handler)
	handler = middleware.Recovery(logger)(handler)
	handler = middleware.Logging(logger)(handler)

	reconciler := worker.NewReconciler(
		worker.Dependencies{
			Confirmer:  services.NewConfirmService(ledger, tickets, store, client, m, logger),
			Bills:      store,
			Tickets:    tickets,
			Payments:   services.NewPaymentService(ledger, client, logger),
			Refunds:    services.NewRefundService(ledger, tickets, client, gatewayCfg.Currency, logger),
			Dispatcher: notification.NewLogDispatcher(logger),
			Settings:   settings,
			Templates:  emails,
		},
		workerCfg,
		"http://localhost/events/",
		m,
		logger,
	)

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &App{Server: server, Reconciler: reconciler, Metrics: m}
}

// Response is a decoded API envelope.
type Response struct {
	Status    int
	Data      json.RawMessage
	ErrorCode string
}

// TestClient wraps HTTP calls to the engine
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *TestClient) Do(t *testing.T, method, path, userID string, body any) Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
		req.Header.Set("X-User-Email", userID+"@example.com")
	}

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode}
	if len(raw) == 0 {
		return out
	}

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error *struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope), string(raw))
	out.Data = envelope.Data
	if envelope.Error != nil {
		out.ErrorCode = envelope.Error.Code
	}
	return out
}

func (c *TestClient) Buy(t *testing.T, userID string, eventID int64, seat handlers.SeatData, price string) Response {
	return c.Do(t, http.MethodPost, "/api/v1/tickets/buy", userID, map[string]any{
		"event_id":  eventID,
		"seat_data": seat,
		"price":     price,
	})
}

func (c *TestClient) Confirm(t *testing.T, billID string) Response {
	return c.Do(t, http.MethodPost, "/api/v1/bills/"+billID+"/confirm", "", nil)
}

func (c *TestClient) Check(t *testing.T, ticketID string) Response {
	return c.Do(t, http.MethodPost, "/api/v1/tickets/check", "", map[string]string{"uuid": ticketID})
}

func Decode[T any](t *testing.T, r Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(r.Data, &v))
	return v
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
