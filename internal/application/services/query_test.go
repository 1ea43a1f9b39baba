package services_test

import (
	"context"
	"testing"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/application/services/testhelpers"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type QueryServiceTestSuite struct {
	serviceSuite
}

func TestQueryServiceSuite(t *testing.T) {
	suite.Run(t, new(QueryServiceTestSuite))
}

func (suite *QueryServiceTestSuite) Test_GetUserTickets() {
	ctx := context.Background()
	t := suite.T()
	event := testhelpers.UpcomingEvent(t, suite.testDB.DB.Pool)
	for _, seat := range []string{"1", "2", "3"} {
		testhelpers.SeedTicket(t, suite.testDB.DB.Pool, event, domain.SeatData{Seat: testhelpers.StrPtr(seat)}, domain.StatusActive)
	}

	all, err := suite.query.GetUserTickets(ctx, "user-1", 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, event.Name, all[0].Event.Name)

	page, err := suite.query.GetUserTickets(ctx, "user-1", 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	none, err := suite.query.GetUserTickets(ctx, "someone-else", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = suite.query.GetUserTickets(ctx, "", 10, 0)
	assert.True(t, application.HasCode(err, application.ErrCodeValidation))
}

func (suite *QueryServiceTestSuite) Test_GetTicket() {
	ctx := context.Background()
	t := suite.T()
	event := testhelpers.UpcomingEvent(t, suite.testDB.DB.Pool)
	ticket := testhelpers.SeedTicket(t, suite.testDB.DB.Pool, event, domain.SeatData{}, domain.StatusActive)

	found, err := suite.query.GetTicket(ctx, ticket.UUID)
	require.NoError(t, err)
	assert.Equal(t, ticket.BillID, found.BillID)

	_, err = suite.query.GetTicket(ctx, uuid.New())
	assert.True(t, application.HasCode(err, application.ErrCodeNotFound))
}
