package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConfirmServiceTestSuite struct {
	serviceSuite
}

func TestConfirmServiceSuite(t *testing.T) {
	suite.Run(t, new(ConfirmServiceTestSuite))
}

func (suite *ConfirmServiceTestSuite) seat(n string) domain.SeatData {
	return domain.SeatData{Section: testhelpers.StrPtr("B"), Row: testhelpers.StrPtr("2"), Seat: testhelpers.StrPtr(n)}
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_IssuesTicket() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "PAID", "COMPLETED")

	result, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomeConfirmed, result.Outcome)
	require.NotNil(t, result.Ticket)
	assert.Equal(t, domain.StatusActive, result.Ticket.Status)
	assert.Equal(t, "pay-"+booking.BillID, *result.Ticket.PaymentID)
	assert.Equal(t, 2, testhelpers.LandingQuantity(t, pool, landing.ID))

	stored, err := suite.tickets.FindByBillID(ctx, booking.BillID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, stored.EventName)
	assert.True(t, stored.Seat.Equal(suite.seat("7")))

	_, err = suite.store.FindBookingByBill(ctx, booking.BillID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(suite.metrics.ConfirmationsTotal.WithLabelValues("confirmed")))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_Idempotent() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")

	suite.mockGateway.EXPECT().
		GetBillDetails(mock.Anything, booking.BillID).
		Return(&application.BillResponse{
			Status:   application.StatusValue{Value: "PAID"},
			Payments: []application.BillPayment{{PaymentID: "pay-1", Status: application.StatusValue{Value: "COMPLETED"}}},
		}, nil).
		Twice()

	_, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)
	require.NoError(t, err)

	_, err = suite.confirm.ConfirmBuying(ctx, booking.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeNotFound))
	assert.ErrorIs(t, err, domain.ErrTicketExists)
	assert.Equal(t, 1, testhelpers.TicketCount(t, pool))
	assert.Equal(t, 2, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_WaitingPayment() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "PAID", "WAITING")

	result, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusWaitingPayment, result.Ticket.Status)
	assert.Equal(t, 2, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_NoPaymentYet() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "CREATED", "")

	result, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	require.NoError(t, err)
	assert.Equal(t, services.OutcomePending, result.Outcome)
	assert.Nil(t, result.Ticket)

	_, err = suite.store.FindBookingByBill(ctx, booking.BillID)
	assert.NoError(t, err)
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_BillUnknownToGateway() {
	ctx := context.Background()
	t := suite.T()

	suite.mockGateway.EXPECT().
		GetBillDetails(mock.Anything, "missing").
		Return(nil, &application.GatewayError{Code: "NOT_FOUND", StatusCode: 404}).
		Once()

	_, err := suite.confirm.ConfirmBuying(ctx, "missing")

	assert.True(t, application.HasCode(err, application.ErrCodeNotFound))
	assert.Equal(t, 0, testhelpers.TicketCount(t, suite.testDB.DB.Pool))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_BillExpired() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "EXPIRED", "")

	_, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeGatewayRejected))
	_, err = suite.store.FindBookingByBill(ctx, booking.BillID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_PaymentDeclined() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "PAID", "DECLINED")

	_, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeGatewayRejected))
	assert.Equal(t, 0, testhelpers.TicketCount(t, pool))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_UnrecognizedBillStatus() {
	ctx := context.Background()

	suite.expectBill("bill-x", "ON_HOLD", "")

	_, err := suite.confirm.ConfirmBuying(ctx, "bill-x")

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeUnknownGatewayState))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_BookingExpired() {
	ctx := context.Background()

	suite.expectBill("bill-gone", "PAID", "COMPLETED")

	_, err := suite.confirm.ConfirmBuying(ctx, "bill-gone")

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeNotFound))
	assert.ErrorIs(suite.T(), err, domain.ErrBookingNotFound)
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_SeatLostToAnotherBuyer() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	first := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	second := suite.reserve(event.ID, "user-2", suite.seat("7"), "500")
	suite.expectBill(first.BillID, "PAID", "COMPLETED")
	suite.expectBill(second.BillID, "PAID", "COMPLETED")

	_, err := suite.confirm.ConfirmBuying(ctx, first.BillID)
	require.NoError(t, err)

	_, err = suite.confirm.ConfirmBuying(ctx, second.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeConflict))
	assert.Equal(t, 1, testhelpers.TicketCount(t, pool))
	assert.Equal(t, 2, testhelpers.LandingQuantity(t, pool, landing.ID))

	_, err = suite.store.FindBookingByBill(ctx, second.BillID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

// rivalConfirmLedger lets another confirm of the same bill issue its ticket
// first, as the bill sweep does when it races a returning user.
type rivalConfirmLedger struct {
	application.SeatLedger
}

func (l rivalConfirmLedger) IssueTicket(ctx context.Context, t *domain.Ticket) error {
	rival := *t
	rival.UUID = uuid.New()
	if err := l.SeatLedger.IssueTicket(ctx, &rival); err != nil {
		return err
	}
	return l.SeatLedger.IssueTicket(ctx, t)
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_LosesRaceForSameBill() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 1, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	suite.expectBill(booking.BillID, "PAID", "COMPLETED")

	racing := services.NewConfirmService(rivalConfirmLedger{suite.ledger}, suite.tickets, suite.store, suite.mockGateway, suite.metrics, testhelpers.Logger())

	_, err := racing.ConfirmBuying(ctx, booking.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeNotFound))
	assert.ErrorIs(t, err, domain.ErrTicketExists)
	assert.Equal(t, 1, testhelpers.TicketCount(t, pool))
	assert.Equal(t, 0, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_GeneralAdmissionStopsAtQuantity() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, nil, nil, 1, "500")
	first := suite.reserve(event.ID, "user-1", domain.SeatData{}, "500")
	second := suite.reserve(event.ID, "user-2", domain.SeatData{}, "500")
	suite.expectBill(first.BillID, "PAID", "COMPLETED")
	suite.expectBill(second.BillID, "PAID", "COMPLETED")

	_, err := suite.confirm.ConfirmBuying(ctx, first.BillID)
	require.NoError(t, err)

	_, err = suite.confirm.ConfirmBuying(ctx, second.BillID)

	assert.True(t, application.HasCode(err, application.ErrCodeConflict))
	assert.ErrorIs(t, err, domain.ErrSoldOut)
	assert.Equal(t, 1, testhelpers.TicketCount(t, pool))
	assert.Equal(t, 0, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_CanceledEventNeedsRefund() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool

	event := testhelpers.UpcomingEvent(t, pool)
	testhelpers.SeedLanding(t, pool, event.ID, testhelpers.StrPtr("B"), testhelpers.StrPtr("2"), 3, "500")
	booking := suite.reserve(event.ID, "user-1", suite.seat("7"), "500")
	_, err := suite.ledger.CancelEvent(ctx, event.ID)
	require.NoError(t, err)
	suite.expectBill(booking.BillID, "PAID", "COMPLETED")

	result, err := suite.confirm.ConfirmBuying(ctx, booking.BillID)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedRefund, result.Ticket.Status)
}

func (suite *ConfirmServiceTestSuite) Test_ConfirmBuying_GatewayDown() {
	ctx := context.Background()

	suite.mockGateway.EXPECT().
		GetBillDetails(mock.Anything, "bill-1").
		Return(nil, &application.GatewayError{StatusCode: 502}).
		Once()

	_, err := suite.confirm.ConfirmBuying(ctx, "bill-1")

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeGatewayUnavailable))
}
