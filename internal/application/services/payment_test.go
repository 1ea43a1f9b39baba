package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	serviceSuite
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) Test_CheckPayment() {
	suite.mockGateway.EXPECT().
		GetPayment(mock.Anything, "pay-1").
		Return(&application.PaymentResponse{Status: application.StatusValue{Value: "COMPLETED"}}, nil).
		Once()

	result, err := suite.payments.CheckPayment(context.Background(), "pay-1")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.StatusActive, result.TicketStatus())
	assert.Equal(suite.T(), "COMPLETED", result.AcquiringStatus)
}

func (suite *PaymentServiceTestSuite) Test_CheckPayment_NotFound() {
	suite.mockGateway.EXPECT().
		GetPayment(mock.Anything, "pay-1").
		Return(nil, &application.GatewayError{StatusCode: 404}).
		Once()

	_, err := suite.payments.CheckPayment(context.Background(), "pay-1")

	assert.True(suite.T(), application.HasCode(err, application.ErrCodeNotFound))
}

func (suite *PaymentServiceTestSuite) Test_ApplyPayment_CanceledReleasesSeat() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool
	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, nil, nil, 2, "1500")
	ticket := testhelpers.SeedTicket(t, pool, event, domain.SeatData{}, domain.StatusWaitingPayment)

	err := suite.payments.ApplyPayment(ctx, ticket, &services.PaymentResult{Status: domain.PaymentDeclined, AcquiringStatus: "DECLINED"})

	require.NoError(t, err)
	stored, err := suite.tickets.FindByUUID(ctx, ticket.UUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCanceled, stored.Status)
	assert.Equal(t, "DECLINED", stored.AcquiringStatus)
	assert.Equal(t, 3, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *PaymentServiceTestSuite) Test_ApplyPayment_Completed() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool
	event := testhelpers.UpcomingEvent(t, pool)
	landing := testhelpers.SeedLanding(t, pool, event.ID, nil, nil, 2, "1500")
	ticket := testhelpers.SeedTicket(t, pool, event, domain.SeatData{}, domain.StatusWaitingPayment)

	err := suite.payments.ApplyPayment(ctx, ticket, &services.PaymentResult{Status: domain.PaymentCompleted, AcquiringStatus: "COMPLETED"})

	require.NoError(t, err)
	stored, err := suite.tickets.FindByUUID(ctx, ticket.UUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, stored.Status)
	assert.Equal(t, 1, stored.CheckCount)
	assert.Equal(t, 2, testhelpers.LandingQuantity(t, pool, landing.ID))
}

func (suite *PaymentServiceTestSuite) Test_ApplyPayment_CompletedForCanceledEvent() {
	ctx := context.Background()
	t := suite.T()
	pool := suite.testDB.DB.Pool
	event := testhelpers.UpcomingEvent(t, pool)
	testhelpers.SeedLanding(t, pool, event.ID, nil, nil, 2, "1500")
	seeded := testhelpers.SeedTicket(t, pool, event, domain.SeatData{}, domain.StatusWaitingPayment)
	_, err := suite.ledger.CancelEvent(ctx, event.ID)
	require.NoError(t, err)

	ticket, err := suite.tickets.FindByUUID(ctx, seeded.UUID)
	require.NoError(t, err)

	err = suite.payments.ApplyPayment(ctx, ticket, &services.PaymentResult{Status: domain.PaymentCompleted, AcquiringStatus: "COMPLETED"})

	require.NoError(t, err)
	stored, err := suite.tickets.FindByUUID(ctx, ticket.UUID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNeedRefund, stored.Status)
}
