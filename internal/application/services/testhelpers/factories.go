package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func StrPtr(s string) *string { return &s }

// SeedEvent inserts an event that runs from start for two hours.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, name string, start time.Time) *domain.Event {
	t.Helper()
	e := &domain.Event{
		Name:     name,
		Slug:     "event-" + uuid.NewString()[:8],
		StartAt:  start.UTC(),
		EndAt:    start.Add(2 * time.Hour).UTC(),
		MinPrice: decimal.NewFromInt(100),
	}

	err := pool.QueryRow(context.Background(), `
		INSERT INTO events (name, slug, start_at, end_at, min_price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, e.Name, e.Slug, e.StartAt, e.EndAt, e.MinPrice.String()).Scan(&e.ID)
	require.NoError(t, err)
	return e
}

// UpcomingEvent is on sale for the next week.
func UpcomingEvent(t *testing.T, pool *pgxpool.Pool) *domain.Event {
	return SeedEvent(t, pool, "Concert", time.Now().Add(7*24*time.Hour))
}

func SeedLanding(t *testing.T, pool *pgxpool.Pool, eventID int64, section, row *string, quantity int, price string) *domain.Landing {
	t.Helper()
	l := &domain.Landing{
		EventID:  eventID,
		Section:  section,
		Row:      row,
		Quantity: quantity,
		Price:    decimal.RequireFromString(price),
	}

	err := pool.QueryRow(context.Background(), `
		INSERT INTO landings (event_id, section, "row", quantity, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, l.EventID, l.Section, l.Row, l.Quantity, price).Scan(&l.ID)
	require.NoError(t, err)
	return l
}

func SeedSpecialSeat(t *testing.T, pool *pgxpool.Pool, landingID int64, seat, price string) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO special_seats (landing_id, seat, price, seat_type) VALUES ($1, $2, $3, 'vip')
	`, landingID, seat, price)
	require.NoError(t, err)
}

// SeedTicket writes a ticket as is, bypassing the landing decrement.
func SeedTicket(t *testing.T, pool *pgxpool.Pool, event *domain.Event, seat domain.SeatData, status domain.TicketStatus) *domain.Ticket {
	t.Helper()
	eventID := event.ID
	paymentID := "pay-" + uuid.NewString()
	now := time.Now().UTC()
	ticket := &domain.Ticket{
		UUID:               uuid.New(),
		EventID:            &eventID,
		EventName:          event.Name,
		BillID:             uuid.NewString(),
		UserID:             "user-1",
		UserEmail:          "user@example.com",
		Seat:               seat,
		Price:              decimal.NewFromInt(1500),
		Status:             status,
		AcquiringStatus:    "COMPLETED",
		PaymentID:          &paymentID,
		NotificationStatus: domain.NotifyNone,
		StatusUpdated:      now,
		BoughtAt:           now,
	}

	_, err := pool.Exec(context.Background(), `
		INSERT INTO tickets (
			uuid, event_id, event_name, bill_id, user_id, user_email,
			section, "row", seat, price, status, acquiring_status,
			payment_id, notification_status, status_updated, bought_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`, ticket.UUID, ticket.EventID, ticket.EventName, ticket.BillID, ticket.UserID, ticket.UserEmail,
		seat.Section, seat.Row, seat.Seat, ticket.Price.String(), string(status), ticket.AcquiringStatus,
		ticket.PaymentID, string(ticket.NotificationStatus), ticket.StatusUpdated, ticket.BoughtAt)
	require.NoError(t, err)
	return ticket
}

func LandingQuantity(t *testing.T, pool *pgxpool.Pool, landingID int64) int {
	t.Helper()
	var q int
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT quantity FROM landings WHERE id = $1`, landingID).Scan(&q))
	return q
}

func TicketCount(t *testing.T, pool *pgxpool.Pool) int {
	t.Helper()
	var n int
	require.NoError(t, pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM tickets`).Scan(&n))
	return n
}
