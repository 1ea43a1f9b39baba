package notification

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/redis/go-redis/v9"
)

const SettingsKey = "email_settings"

// CachedEmailSettings keeps the send_emails flag in Redis so every sweep
// does not hit Postgres.
type CachedEmailSettings struct {
	rdb    redis.Cmdable
	source application.EmailSettings
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedEmailSettings(rdb redis.Cmdable, source application.EmailSettings, ttl time.Duration, logger *slog.Logger) *CachedEmailSettings {
	return &CachedEmailSettings{
		rdb:    rdb,
		source: source,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedEmailSettings) SendEmails(ctx context.Context) (bool, error) {
	cached, err := c.rdb.Get(ctx, SettingsKey).Result()
	switch {
	case err == nil:
		return cached == "1", nil
	case !errors.Is(err, redis.Nil):
		// Redis trouble should not silence notifications.
		c.logger.Warn("email settings cache unavailable", "error", err)
	}

	enabled, err := c.source.SendEmails(ctx)
	if err != nil {
		return false, err
	}

	value := "0"
	if enabled {
		value = "1"
	}
	if err := c.rdb.Set(ctx, SettingsKey, value, c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache email settings", "error", err)
	}
	return enabled, nil
}

// SetSendEmails writes the flag through to the source and drops the cached
// copy.
func (c *CachedEmailSettings) SetSendEmails(ctx context.Context, enabled bool) error {
	if err := c.source.SetSendEmails(ctx, enabled); err != nil {
		return err
	}
	if err := c.Invalidate(ctx); err != nil {
		// the stale value expires with the ttl
		c.logger.Warn("failed to invalidate email settings cache", "error", err)
	}
	return nil
}

// Invalidate drops the cached flag so the next read goes to Postgres.
func (c *CachedEmailSettings) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, SettingsKey).Err()
}
