package postgres

import (
	"fmt"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ticketColumns selects a ticket joined with its (optional) event. Prices
// travel as text so numeric precision is preserved by decimal.
const ticketColumns = `
	t.uuid, t.event_id, t.event_name, t.bill_id, t.user_id, t.user_email,
	t.section, t."row", t.seat, t.price::text, t.status, t.acquiring_status,
	t.payment_id, t.refund_id, t.notification_status, t.check_count,
	t.status_updated, t.bought_at,
	e.id, e.name, e.slug, e.start_at, e.end_at, e.canceled, e.min_price::text`

const ticketFrom = `FROM tickets t LEFT JOIN events e ON e.id = t.event_id`

type TicketModel struct {
	UUID               uuid.UUID
	EventID            *int64
	EventName          string
	BillID             string
	UserID             string
	UserEmail          string
	Section            *string
	Row                *string
	Seat               *string
	Price              string
	Status             string
	AcquiringStatus    string
	PaymentID          *string
	RefundID           *string
	NotificationStatus string
	CheckCount         int
	StatusUpdated      time.Time
	BoughtAt           time.Time

	// joined event, all NULL when the event row is gone
	EvID       *int64
	EvName     *string
	EvSlug     *string
	EvStartAt  *time.Time
	EvEndAt    *time.Time
	EvCanceled *bool
	EvMinPrice *string
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var m TicketModel
	err := row.Scan(
		&m.UUID, &m.EventID, &m.EventName, &m.BillID, &m.UserID, &m.UserEmail,
		&m.Section, &m.Row, &m.Seat, &m.Price, &m.Status, &m.AcquiringStatus,
		&m.PaymentID, &m.RefundID, &m.NotificationStatus, &m.CheckCount,
		&m.StatusUpdated, &m.BoughtAt,
		&m.EvID, &m.EvName, &m.EvSlug, &m.EvStartAt, &m.EvEndAt, &m.EvCanceled, &m.EvMinPrice,
	)
	if err != nil {
		return nil, err
	}
	return m.toDomain()
}

func (m TicketModel) toDomain() (*domain.Ticket, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, fmt.Errorf("ticket %s has malformed price %q: %w", m.UUID, m.Price, err)
	}

	t := &domain.Ticket{
		UUID:               m.UUID,
		EventID:            m.EventID,
		EventName:          m.EventName,
		BillID:             m.BillID,
		UserID:             m.UserID,
		UserEmail:          m.UserEmail,
		Seat:               domain.SeatData{Section: m.Section, Row: m.Row, Seat: m.Seat},
		Price:              price,
		Status:             domain.TicketStatus(m.Status),
		AcquiringStatus:    m.AcquiringStatus,
		PaymentID:          m.PaymentID,
		RefundID:           m.RefundID,
		NotificationStatus: domain.NotificationStatus(m.NotificationStatus),
		CheckCount:         m.CheckCount,
		StatusUpdated:      m.StatusUpdated,
		BoughtAt:           m.BoughtAt,
	}

	if m.EvID != nil {
		ev := &domain.Event{
			ID:       *m.EvID,
			Name:     deref(m.EvName),
			Slug:     deref(m.EvSlug),
			Canceled: m.EvCanceled != nil && *m.EvCanceled,
		}
		if m.EvStartAt != nil {
			ev.StartAt = *m.EvStartAt
		}
		if m.EvEndAt != nil {
			ev.EndAt = *m.EvEndAt
		}
		if m.EvMinPrice != nil {
			if ev.MinPrice, err = decimal.NewFromString(*m.EvMinPrice); err != nil {
				return nil, fmt.Errorf("event %d has malformed min price: %w", ev.ID, err)
			}
		}
		t.Event = ev
	}

	return t, nil
}

const eventColumns = `id, name, slug, start_at, end_at, canceled, min_price::text`

func scanEvent(row pgx.Row) (*domain.Event, error) {
	var (
		e        domain.Event
		minPrice string
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Slug, &e.StartAt, &e.EndAt, &e.Canceled, &minPrice); err != nil {
		return nil, err
	}
	price, err := decimal.NewFromString(minPrice)
	if err != nil {
		return nil, fmt.Errorf("event %d has malformed min price: %w", e.ID, err)
	}
	e.MinPrice = price
	return &e, nil
}

const landingColumns = `id, event_id, section, "row", quantity, price::text`

func scanLanding(row pgx.Row) (*domain.Landing, error) {
	var (
		l     domain.Landing
		price string
	)
	if err := row.Scan(&l.ID, &l.EventID, &l.Section, &l.Row, &l.Quantity, &price); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("landing %d has malformed price: %w", l.ID, err)
	}
	l.Price = p
	return &l, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("malformed decimal %q: %w", s, err)
	}
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
