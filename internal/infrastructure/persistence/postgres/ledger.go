package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	ticketsBillConstraint = "tickets_bill_id_key"
	ticketsSeatIndex      = "tickets_seat_unique_idx"
)

// Ledger owns landing capacity. Every change to a landing quantity happens
// in the same transaction as the ticket write that caused it.
type Ledger struct {
	pool *pgxpool.Pool
	q    Executor
}

func NewLedger(pool *pgxpool.Pool) *Ledger {
	return &Ledger{pool: pool, q: pool}
}

func (l *Ledger) FindEvent(ctx context.Context, id int64) (*domain.Event, error) {
	e, err := scanEvent(l.q.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("event %d: %w", id, domain.ErrEventNotFound)
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return e, nil
}

func (l *Ledger) FindLanding(ctx context.Context, eventID int64, seat domain.SeatData) (*domain.Landing, error) {
	query := `
		SELECT ` + landingColumns + `
		FROM landings
		WHERE event_id = $1
		  AND section IS NOT DISTINCT FROM $2
		  AND "row" IS NOT DISTINCT FROM $3
	`

	landing, err := scanLanding(l.q.QueryRow(ctx, query, eventID, seat.Section, seat.Row))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s of event %d: %w", seat.Landing(), eventID, domain.ErrLandingNotFound)
		}
		return nil, fmt.Errorf("failed to load landing: %w", err)
	}
	return landing, nil
}

// FindSpecialSeat returns nil, nil when the seat has no price override.
func (l *Ledger) FindSpecialSeat(ctx context.Context, landingID int64, seat string) (*domain.SpecialSeat, error) {
	query := `
		SELECT id, landing_id, seat, price::text, seat_type
		FROM special_seats
		WHERE landing_id = $1 AND seat = $2
	`

	var (
		s     domain.SpecialSeat
		price string
	)
	err := l.q.QueryRow(ctx, query, landingID, seat).Scan(&s.ID, &s.LandingID, &s.Seat, &price, &s.SeatType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load special seat: %w", err)
	}
	if s.Price, err = parseDecimal(price); err != nil {
		return nil, fmt.Errorf("special seat %d: %w", s.ID, err)
	}
	return &s, nil
}

// SeatTaken reports whether a ticket still holding the seat exists. A seat
// without a number is never taken: its landing quantity decides.
func (l *Ledger) SeatTaken(ctx context.Context, eventID int64, seat domain.SeatData) (bool, error) {
	if !seat.Numbered() {
		return false, nil
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE event_id = $1
			  AND section IS NOT DISTINCT FROM $2
			  AND "row" IS NOT DISTINCT FROM $3
			  AND seat IS NOT DISTINCT FROM $4
			  AND status NOT IN ('canceled', 'success_refund', 'fail_refund')
		)
	`

	var taken bool
	if err := l.q.QueryRow(ctx, query, eventID, seat.Section, seat.Row, seat.Seat).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check seat: %w", err)
	}
	return taken, nil
}

// IssueTicket takes one unit from the ticket's landing and inserts the
// ticket. Either both happen or neither does.
func (l *Ledger) IssueTicket(ctx context.Context, t *domain.Ticket) error {
	if t.EventID == nil {
		return domain.NewMissingFieldError("event ID")
	}
	eventID := *t.EventID

	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE landings
			SET quantity = quantity - 1
			WHERE event_id = $1
			  AND section IS NOT DISTINCT FROM $2
			  AND "row" IS NOT DISTINCT FROM $3
			  AND quantity > 0
		`, eventID, t.Seat.Section, t.Seat.Row)
		if err != nil {
			return fmt.Errorf("failed to reserve landing unit: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return domain.NewSoldOutError(eventID, t.Seat)
		}

		repo := &TicketRepository{pool: l.pool, q: tx}
		if err := repo.insert(ctx, t); err != nil {
			switch {
			case IsUniqueViolation(err, ticketsBillConstraint):
				return fmt.Errorf("bill %s: %w", t.BillID, domain.ErrTicketExists)
			case IsUniqueViolation(err, ticketsSeatIndex):
				return domain.NewSeatTakenError(eventID, t.Seat)
			}
			return fmt.Errorf("failed to insert ticket: %w", err)
		}
		return nil
	})
}

// SaveTicket persists the ticket. With releaseSeat the landing gets its
// unit back in the same transaction.
func (l *Ledger) SaveTicket(ctx context.Context, t *domain.Ticket, releaseSeat bool) error {
	return inTx(ctx, l.pool, func(tx pgx.Tx) error {
		repo := &TicketRepository{pool: l.pool, q: tx}
		if err := repo.UpdateTicket(ctx, t); err != nil {
			return err
		}
		if !releaseSeat || t.EventID == nil {
			return nil
		}

		_, err := tx.Exec(ctx, `
			UPDATE landings
			SET quantity = quantity + 1
			WHERE event_id = $1
			  AND section IS NOT DISTINCT FROM $2
			  AND "row" IS NOT DISTINCT FROM $3
		`, *t.EventID, t.Seat.Section, t.Seat.Row)
		if err != nil {
			return fmt.Errorf("failed to release landing unit: %w", err)
		}
		return nil
	})
}

// CancelEvent marks the event canceled and flags every active ticket for
// refund. It returns the number of flagged tickets.
func (l *Ledger) CancelEvent(ctx context.Context, eventID int64) (int64, error) {
	var flagged int64
	err := inTx(ctx, l.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE events SET canceled = TRUE WHERE id = $1`, eventID)
		if err != nil {
			return fmt.Errorf("failed to cancel event: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("event %d: %w", eventID, domain.ErrEventNotFound)
		}

		tag, err = tx.Exec(ctx, `
			UPDATE tickets
			SET status = 'need_refund', check_count = 0, status_updated = NOW()
			WHERE event_id = $1 AND status = 'active'
		`, eventID)
		if err != nil {
			return fmt.Errorf("failed to flag tickets for refund: %w", err)
		}
		flagged = tag.RowsAffected()
		return nil
	})
	return flagged, err
}
