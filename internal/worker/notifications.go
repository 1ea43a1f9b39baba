package worker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/domain"
	"github.com/google/uuid"
)

const datetimeLayout = "02.01.2006 15:04"

var notificationKinds = []domain.NotificationStatus{
	domain.Notify3Days,
	domain.NotifyDayInDay,
	domain.NotifyExpired,
}

// eventGroup is everyone who gets the same message about one event.
type eventGroup struct {
	eventID    int64
	eventName  string
	slug       string
	startAt    time.Time
	recipients []string
	ticketIDs  []uuid.UUID
}

func (r *Reconciler) sweepNotifications(ctx context.Context) {
	started := time.Now()

	enabled, err := r.deps.Settings.SendEmails(ctx)
	if err != nil {
		r.logger.Error("failed to read email settings", "error", err)
		return
	}
	if !enabled {
		r.logger.Debug("email sending is disabled")
		return
	}

	var succeeded, failed int
	for _, kind := range notificationKinds {
		ok, bad := r.notify(ctx, kind)
		succeeded += ok
		failed += bad
	}

	r.finish("notifications", started, succeeded, failed)
}

func (r *Reconciler) notify(ctx context.Context, kind domain.NotificationStatus) (succeeded, failed int) {
	tickets, err := r.deps.Tickets.FindForNotification(ctx, kind, r.now(), r.cfg.BatchSize)
	if err != nil {
		r.logger.Error("failed to load tickets to notify", "kind", kind, "error", err)
		return 0, 1
	}
	if len(tickets) == 0 {
		return 0, 0
	}

	templateName := "notify_" + string(kind)
	tmpl, err := r.deps.Templates.FindTemplate(ctx, templateName)
	if err != nil {
		r.logger.Error("failed to load email template", "template", templateName, "error", err)
		return 0, 1
	}

	return forEach(ctx, r, groupByEvent(tickets), func(ctx context.Context, g *eventGroup) error {
		if len(g.recipients) > 0 {
			if err := r.dispatch(ctx, templateName, r.message(tmpl, g), g); err != nil {
				return err
			}
		}

		if err := r.deps.Tickets.UpdateNotificationStatus(ctx, g.ticketIDs, kind); err != nil {
			r.logger.Error("failed to store notification status", "event_id", g.eventID, "error", err)
			return err
		}
		return nil
	})
}

func (r *Reconciler) dispatch(ctx context.Context, templateName string, msg application.NotificationMessage, g *eventGroup) error {
	callCtx, cancel := r.callContext(ctx)
	err := r.deps.Dispatcher.Dispatch(callCtx, msg)
	cancel()
	if err != nil {
		r.metrics.CountNotification(templateName, "failed")
		r.logger.Error("failed to dispatch notification",
			"template", templateName,
			"event_id", g.eventID,
			"recipients", len(g.recipients),
			"error", err,
		)
		return err
	}
	r.metrics.CountNotification(templateName, "sent")
	return nil
}

func (r *Reconciler) message(tmpl *application.EmailTemplate, g *eventGroup) application.NotificationMessage {
	url := r.eventURLBase + g.slug
	datetime := g.startAt.Format(datetimeLayout)
	body := strings.NewReplacer(
		"{event_name}", g.eventName,
		"{datetime}", datetime,
		"{url}", url,
	).Replace(tmpl.Message)

	return application.NotificationMessage{
		Recipients: g.recipients,
		Template:   tmpl.Type,
		Payload: map[string]any{
			"event_name": g.eventName,
			"start_at":   g.startAt.Format(time.RFC3339),
			"slug":       g.slug,
			"subject":    tmpl.Subject,
			"message":    body,
		},
	}
}

// groupByEvent keeps the order tickets arrive in and sends each address once.
func groupByEvent(tickets []*domain.Ticket) []*eventGroup {
	var groups []*eventGroup
	byEvent := make(map[int64]*eventGroup)
	seen := make(map[string]bool)

	for _, t := range tickets {
		var eventID int64
		if t.EventID != nil {
			eventID = *t.EventID
		}

		g, ok := byEvent[eventID]
		if !ok {
			g = &eventGroup{eventID: eventID, eventName: t.EventName}
			if t.Event != nil {
				g.eventName = t.Event.Name
				g.slug = t.Event.Slug
				g.startAt = t.Event.StartAt
			}
			byEvent[eventID] = g
			groups = append(groups, g)
		}

		g.ticketIDs = append(g.ticketIDs, t.UUID)
		key := fmt.Sprintf("%d/%s", eventID, strings.ToLower(t.UserEmail))
		if t.UserEmail != "" && !seen[key] {
			seen[key] = true
			g.recipients = append(g.recipients, t.UserEmail)
		}
	}
	return groups
}
