package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "TICKETING_"

type Config struct {
	Primary      Primary            `koanf:"primary"`
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	Redis        RedisConfig        `koanf:"redis"`
	Gateway      GatewayConfig      `koanf:"gateway"`
	Retry        RetryConfig        `koanf:"retry"`
	Reservation  ReservationConfig  `koanf:"reservation"`
	Worker       WorkerConfig       `koanf:"worker"`
	Notification NotificationConfig `koanf:"notification"`
	Logger       LoggerConfig       `koanf:"logger"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
	// RequestTimeout bounds a handler, gateway retries included. It has to
	// end before WriteTimeout so the timeout response still gets written.
	RequestTimeout time.Duration `koanf:"request_timeout" validate:"required,ltfield=WriteTimeout"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

type RedisConfig struct {
	Addr     string `koanf:"addr" validate:"required"`
	Password string `koanf:"password"`
	DB       int    `koanf:"db"`
	PoolSize int    `koanf:"pool_size"`
}

// GatewayConfig points at the acquirer. BaseURL is the host only, the
// client appends /sites/{site_id}.
type GatewayConfig struct {
	BaseURL  string        `koanf:"base_url" validate:"required"`
	SiteID   string        `koanf:"site_id" validate:"required"`
	Token    string        `koanf:"token" validate:"required"`
	Timeout  time.Duration `koanf:"timeout" validate:"required"`
	Currency string        `koanf:"currency" validate:"required"`
}

type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay"`
	MaxRetries int32         `koanf:"max_retries"`
}

type ReservationConfig struct {
	TTL        time.Duration `koanf:"ttl" validate:"required"`
	BillExpiry time.Duration `koanf:"bill_expiry" validate:"required"`
}

type WorkerConfig struct {
	Interval        time.Duration `koanf:"interval" validate:"required"`
	BatchSize       int           `koanf:"batch_size" validate:"required"`
	Concurrency     int           `koanf:"concurrency" validate:"required"`
	CallTimeout     time.Duration `koanf:"call_timeout" validate:"required"`
	CheckCountAlert int           `koanf:"check_count_alert"`
}

type NotificationConfig struct {
	AMQPURL          string        `koanf:"amqp_url"`
	Queue            string        `koanf:"queue" validate:"required"`
	SettingsCacheTTL time.Duration `koanf:"settings_cache_ttl" validate:"required"`
	EventURLBase     string        `koanf:"event_url_base"`
}

type LoggerConfig struct {
	Level string `koanf:"level"`
}

func defaults() map[string]any {
	return map[string]any{
		"primary.env":                     "development",
		"server.port":                     "8080",
		"server.read_timeout":             "15s",
		"server.write_timeout":            "30s",
		"server.idle_timeout":             "60s",
		"server.request_timeout":          "25s",
		"database.ssl_mode":               "disable",
		"database.max_open_conns":         25,
		"database.max_idle_conns":         5,
		"database.conn_max_lifetime":      "1h",
		"database.conn_max_idle_time":     "30m",
		"redis.addr":                      "localhost:6379",
		"redis.pool_size":                 10,
		"gateway.timeout":                 "10s",
		"gateway.currency":                "KZT",
		"retry.base_delay":                "1s",
		"retry.max_retries":               3,
		"reservation.ttl":                 "600s",
		"reservation.bill_expiry":         "10m",
		"worker.interval":                 "60s",
		"worker.batch_size":               500,
		"worker.concurrency":              16,
		"worker.call_timeout":             "10s",
		"worker.check_count_alert":        30,
		"notification.queue":              "notifications",
		"notification.settings_cache_ttl": "1h",
		"notification.event_url_base":     "http://localhost:8080/events/",
		"logger.level":                    "info",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load default configuration", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}
