package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrTemplateNotFound = errors.New("email template not found")

type EmailRepository struct {
	pool *pgxpool.Pool
}

func NewEmailRepository(pool *pgxpool.Pool) *EmailRepository {
	return &EmailRepository{pool: pool}
}

// SendEmails reads the global kill switch. A missing row means enabled.
func (r *EmailRepository) SendEmails(ctx context.Context) (bool, error) {
	var enabled bool
	err := r.pool.QueryRow(ctx, `SELECT send_emails FROM email_settings WHERE id = 1`).Scan(&enabled)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read email settings: %w", err)
	}
	return enabled, nil
}

func (r *EmailRepository) SetSendEmails(ctx context.Context, enabled bool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO email_settings (id, send_emails) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET send_emails = EXCLUDED.send_emails
	`, enabled)
	if err != nil {
		return fmt.Errorf("failed to update email settings: %w", err)
	}
	return nil
}

func (r *EmailRepository) FindTemplate(ctx context.Context, emailType string) (*application.EmailTemplate, error) {
	var t application.EmailTemplate
	err := r.pool.QueryRow(ctx,
		`SELECT email_type, subject, message FROM email_templates WHERE email_type = $1`,
		emailType,
	).Scan(&t.Type, &t.Subject, &t.Message)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", emailType, ErrTemplateNotFound)
		}
		return nil, fmt.Errorf("failed to load email template: %w", err)
	}
	return &t, nil
}
