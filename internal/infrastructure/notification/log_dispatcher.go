package notification

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
)

// LogDispatcher stands in for the queue when no broker is configured.
type LogDispatcher struct {
	logger *slog.Logger
}

func NewLogDispatcher(logger *slog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger}
}

func (d *LogDispatcher) Dispatch(_ context.Context, msg application.NotificationMessage) error {
	d.logger.Info("notification",
		"template", msg.Template,
		"recipients", msg.Recipients,
		"payload", msg.Payload,
	)
	return nil
}
