package notification_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/DanielPopoola/ticketing-engine/internal/application"
	"github.com/DanielPopoola/ticketing-engine/internal/infrastructure/notification"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRabbitMQ(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor: wait.ForLog("Server startup complete").
				WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5672")
	require.NoError(t, err)

	return fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
}

func TestAMQPPublisher_Dispatch(t *testing.T) {
	if testing.Short() {
		t.Skip("needs docker")
	}
	url := setupRabbitMQ(t)

	publisher, err := notification.NewAMQPPublisher(url, "notifications_test", discardLogger())
	require.NoError(t, err)
	defer publisher.Close()
	require.NoError(t, publisher.HealthCheck())

	msg := application.NotificationMessage{
		Recipients: []string{"a@example.com", "b@example.com"},
		Template:   "notify_3_days",
		Payload:    map[string]any{"event_name": "Concert"},
	}
	require.NoError(t, publisher.Dispatch(context.Background(), msg))

	conn, err := amqp.Dial(url)
	require.NoError(t, err)
	defer conn.Close()
	ch, err := conn.Channel()
	require.NoError(t, err)
	defer ch.Close()

	delivery, ok, err := ch.Get("notifications_test", true)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "application/json", delivery.ContentType)
	assert.Equal(t, amqp.Persistent, delivery.DeliveryMode)
	assert.Equal(t, "notify_3_days", delivery.Type)

	var got application.NotificationMessage
	require.NoError(t, json.Unmarshal(delivery.Body, &got))
	assert.Equal(t, msg.Recipients, got.Recipients)
	assert.Equal(t, "Concert", got.Payload["event_name"])
}

func TestLogDispatcher(t *testing.T) {
	var buf bytes.Buffer
	d := notification.NewLogDispatcher(slog.New(slog.NewTextHandler(&buf, nil)))

	err := d.Dispatch(context.Background(), application.NotificationMessage{
		Recipients: []string{"a@example.com"},
		Template:   "notify_expired",
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "template=notify_expired")
}
