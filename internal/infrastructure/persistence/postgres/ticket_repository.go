package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	pool *pgxpool.Pool
	q    Executor
}

func NewTicketRepository(pool *pgxpool.Pool) *TicketRepository {
	return &TicketRepository{pool: pool, q: pool}
}

func (r *TicketRepository) FindByUUID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` ` + ticketFrom + ` WHERE t.uuid = $1`
	return r.findOne(ctx, query, id)
}

// FindByUUIDForUpdate locks the ticket row. Only meaningful inside WithTx.
func (r *TicketRepository) FindByUUIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` ` + ticketFrom + ` WHERE t.uuid = $1 FOR UPDATE OF t`
	return r.findOne(ctx, query, id)
}

func (r *TicketRepository) FindByBillID(ctx context.Context, billID string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` ` + ticketFrom + ` WHERE t.bill_id = $1`
	return r.findOne(ctx, query, billID)
}

func (r *TicketRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` ` + ticketFrom + `
		WHERE t.user_id = $1
		ORDER BY t.bought_at DESC
		LIMIT $2 OFFSET $3`

	return r.findMany(ctx, query, userID, limit, offset)
}

// FindByStatus returns the least recently updated tickets first so every
// ticket gets its turn when the batch is smaller than the backlog.
func (r *TicketRepository) FindByStatus(ctx context.Context, limit int, statuses ...domain.TicketStatus) ([]*domain.Ticket, error) {
	values := make([]string, len(statuses))
	for i, s := range statuses {
		values[i] = string(s)
	}

	query := `SELECT ` + ticketColumns + ` ` + ticketFrom + `
		WHERE t.status = ANY($1)
		ORDER BY t.status_updated ASC
		LIMIT $2`

	return r.findMany(ctx, query, values, limit)
}

// FindForNotification selects tickets due for the given reminder kind.
// today is truncated to a UTC day.
func (r *TicketRepository) FindForNotification(ctx context.Context, kind domain.NotificationStatus, today time.Time, limit int) ([]*domain.Ticket, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	switch kind {
	case domain.Notify3Days:
		from := day.AddDate(0, 0, 3)
		query := `SELECT ` + ticketColumns + ` ` + ticketFrom + `
			WHERE t.status = 'active'
			  AND t.notification_status = 'no_notify'
			  AND NOT e.canceled
			  AND e.start_at >= $1 AND e.start_at < $2
			ORDER BY t.event_id
			LIMIT $3`
		return r.findMany(ctx, query, from, from.AddDate(0, 0, 1), limit)

	case domain.NotifyDayInDay:
		query := `SELECT ` + ticketColumns + ` ` + ticketFrom + `
			WHERE t.status = 'active'
			  AND t.notification_status IN ('no_notify', '3_days')
			  AND NOT e.canceled
			  AND e.start_at >= $1 AND e.start_at < $2
			ORDER BY t.event_id
			LIMIT $3`
		return r.findMany(ctx, query, day, day.AddDate(0, 0, 1), limit)

	case domain.NotifyExpired:
		query := `SELECT ` + ticketColumns + ` ` + ticketFrom + `
			WHERE t.status = 'expired'
			  AND t.notification_status <> 'expired'
			  AND e.id IS NOT NULL
			ORDER BY t.event_id
			LIMIT $1`
		return r.findMany(ctx, query, limit)
	}

	return nil, fmt.Errorf("unsupported notification kind %q", kind)
}

func (r *TicketRepository) UpdateTicket(ctx context.Context, t *domain.Ticket) error {
	query := `
		UPDATE tickets
		SET status = $1,
			acquiring_status = $2,
			payment_id = $3,
			refund_id = $4,
			notification_status = $5,
			check_count = $6,
			status_updated = $7
		WHERE uuid = $8
	`

	tag, err := r.q.Exec(ctx, query,
		string(t.Status),
		t.AcquiringStatus,
		t.PaymentID,
		t.RefundID,
		string(t.NotificationStatus),
		t.CheckCount,
		t.StatusUpdated,
		t.UUID,
	)
	if err != nil {
		return fmt.Errorf("failed to update ticket %s: %w", t.UUID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ticket %s: %w", t.UUID, domain.ErrTicketNotFound)
	}
	return nil
}

func (r *TicketRepository) AssignRefundID(ctx context.Context, id uuid.UUID, refundID string) (string, error) {
	query := `
		UPDATE tickets
		SET refund_id = COALESCE(refund_id, $2)
		WHERE uuid = $1
		RETURNING refund_id
	`

	var effective string
	err := r.q.QueryRow(ctx, query, id, refundID).Scan(&effective)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("ticket %s: %w", id, domain.ErrTicketNotFound)
		}
		return "", fmt.Errorf("failed to assign refund id: %w", err)
	}
	return effective, nil
}

func (r *TicketRepository) UpdateNotificationStatus(ctx context.Context, ids []uuid.UUID, status domain.NotificationStatus) error {
	if len(ids) == 0 {
		return nil
	}
	values := make([]string, len(ids))
	for i, id := range ids {
		values[i] = id.String()
	}

	_, err := r.q.Exec(ctx,
		`UPDATE tickets SET notification_status = $2 WHERE uuid = ANY($1::uuid[])`,
		values, string(status),
	)
	if err != nil {
		return fmt.Errorf("failed to update notification status: %w", err)
	}
	return nil
}

// ExpireEnded flips active tickets of finished events to expired. Running
// it twice changes nothing the second time.
func (r *TicketRepository) ExpireEnded(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE tickets t
		SET status = 'expired', status_updated = $1
		FROM events e
		WHERE e.id = t.event_id
		  AND t.status = 'active'
		  AND e.end_at < $1
	`

	tag, err := r.q.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to expire tickets: %w", err)
	}
	return tag.RowsAffected(), nil
}

// WithTx runs fn with a repository bound to a single transaction.
func (r *TicketRepository) WithTx(ctx context.Context, fn func(repo application.TicketRepository) error) error {
	return inTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(&TicketRepository{pool: r.pool, q: tx})
	})
}

func (r *TicketRepository) insert(ctx context.Context, t *domain.Ticket) error {
	query := `
		INSERT INTO tickets (
			uuid, event_id, event_name, bill_id, user_id, user_email,
			section, "row", seat, price, status, acquiring_status,
			payment_id, refund_id, notification_status, check_count,
			status_updated, bought_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.q.Exec(ctx, query,
		t.UUID, t.EventID, t.EventName, t.BillID, t.UserID, t.UserEmail,
		t.Seat.Section, t.Seat.Row, t.Seat.Seat, t.Price.String(), string(t.Status), t.AcquiringStatus,
		t.PaymentID, t.RefundID, string(t.NotificationStatus), t.CheckCount,
		t.StatusUpdated, t.BoughtAt,
	)
	return err
}

func (r *TicketRepository) findOne(ctx context.Context, query string, args ...any) (*domain.Ticket, error) {
	t, err := scanTicket(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}
	return t, nil
}

func (r *TicketRepository) findMany(ctx context.Context, query string, args ...any) ([]*domain.Ticket, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tickets: %w", err)
	}

	results, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Ticket, error) {
		return scanTicket(row)
	})
	if err != nil {
		return nil, fmt.Errorf("error occurred while scanning tickets: %w", err)
	}
	return results, nil
}
