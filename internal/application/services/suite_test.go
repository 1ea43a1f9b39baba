package services_test

import (
	"context"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ticketing-engine/internal/config"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/persistence/postgres"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/reservation"
	"github.com/DanielPopoola/ticketing-engine/internal/metrics"
	"github.com/DanielPopoola/ticketing-engine/internal/mocks"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var reservationCfg = config.ReservationConfig{
	TTL:        10 * time.Minute,
	BillExpiry: 10 * time.Minute,
}

// serviceSuite wires every service against real Postgres and Redis with a
// mocked gateway.
type serviceSuite struct {
	suite.Suite
	testDB    *testhelpers.TestDatabase
	testRedis *testhelpers.TestRedis

	ledger  *postgres.Ledger
	tickets *postgres.TicketRepository
	store   *reservation.RedisStore
	metrics *metrics.Metrics

	mockGateway *mocks.MockGatewayClient

	purchase *services.PurchaseService
	confirm  *services.ConfirmService
	checkIn  *services.CheckInService
	refunds  *services.RefundService
	payments *services.PaymentService
	query    *services.QueryService
	events   *services.EventService
}

func (s *serviceSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDatabase(s.T())
	s.testRedis = testhelpers.SetupTestRedis(s.T())
	s.ledger = postgres.NewLedger(s.testDB.DB.Pool)
	s.tickets = postgres.NewTicketRepository(s.testDB.DB.Pool)
	s.store = reservation.NewRedisStore(s.testRedis.Client)
}

func (s *serviceSuite) TearDownSuite() {
	s.testRedis.Cleanup(s.T())
	s.testDB.Cleanup(s.T())
}

func (s *serviceSuite) SetupTest() {
	s.testDB.CleanTables(s.T())
	s.testRedis.Flush(s.T())

	logger := testhelpers.Logger()
	s.metrics = metrics.NewWithRegistry(prometheus.NewRegistry())
	s.mockGateway = mocks.NewMockGatewayClient(s.T())

	s.purchase = services.NewPurchaseService(s.ledger, s.store, s.mockGateway, reservationCfg, "KZT", s.metrics, logger)
	s.confirm = services.NewConfirmService(s.ledger, s.tickets, s.store, s.mockGateway, s.metrics, logger)
	s.checkIn = services.NewCheckInService(s.tickets, logger)
	s.refunds = services.NewRefundService(s.ledger, s.tickets, s.mockGateway, "KZT", logger)
	s.payments = services.NewPaymentService(s.ledger, s.mockGateway, logger)
	s.query = services.NewQueryService(s.tickets)
	s.events = services.NewEventService(s.ledger, logger)
}

// reserve puts a booking straight into the reservation store.
func (s *serviceSuite) reserve(eventID int64, userID string, seat domain.SeatData, price string) *domain.TemporaryBooking {
	booking, err := domain.NewTemporaryBooking(eventID, uuid.NewString(), userID, userID+"@example.com", seat, decimal.RequireFromString(price))
	s.Require().NoError(err)
	s.Require().NoError(s.store.SaveBooking(context.Background(), booking, reservationCfg.TTL))
	s.Require().NoError(s.store.AddPendingBill(context.Background(), booking.BillID))
	return booking
}

// expectBill makes the gateway report billID with the given bill status and
// at most one payment.
func (s *serviceSuite) expectBill(billID, billStatus, paymentStatus string) {
	resp := &application.BillResponse{
		BillID: billID,
		Status: application.StatusValue{Value: billStatus},
	}
	if paymentStatus != "" {
		resp.Payments = []application.BillPayment{{
			PaymentID: "pay-" + billID,
			Status:    application.StatusValue{Value: paymentStatus},
		}}
	}
	s.mockGateway.EXPECT().
		GetBillDetails(mock.Anything, billID).
		Return(resp, nil).
		Once()
}
