// Package config собирает конфигурацию из флагов и переменных окружения.
// Переменные окружения имеют приоритет над флагами.
package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseURI    string `env:"DATABASE_URI"`
	MigrationsDir  string `env:"MIGRATIONS_DIR" envDefault:"internal/db/migrations"`
	JWTSecret      string `env:"JWT_SECRET"`
	ListingAddress string `env:"LISTING_SERVICE_ADDRESS"`
	NotifyAddress  string `env:"NOTIFY_SERVICE_ADDRESS"`

	AMQPURL      string `env:"AMQP_URL"`
	AMQPExchange string `env:"AMQP_EXCHANGE" envDefault:"lease.events"`

	// Пустой адрес Redis отключает распределенную блокировку джоб.
	RedisAddress string `env:"REDIS_ADDRESS"`

	RolloverCron  string `env:"ROLLOVER_CRON"  envDefault:"5 0 * * *"`
	ExpireCron    string `env:"EXPIRE_CRON"    envDefault:"*/15 * * * *"`
	ReconcileCron string `env:"RECONCILE_CRON" envDefault:"*/10 * * * *"`

	UnpaidOrderTTL      time.Duration `env:"UNPAID_ORDER_TTL"      envDefault:"30m"`
	OutboxFlushInterval time.Duration `env:"OUTBOX_FLUSH_INTERVAL" envDefault:"2s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "адрес и порт HTTP-сервера")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DSN PostgreSQL")
	flag.StringVar(&cfg.ListingAddress, "l", "", "адрес listing-сервиса")
	flag.StringVar(&cfg.NotifyAddress, "n", "", "адрес сервиса уведомлений")
	flag.Parse()

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database uri is required (flag -d or DATABASE_URI)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.ListingAddress == "" {
		return nil, fmt.Errorf("listing service address is required (flag -l or LISTING_SERVICE_ADDRESS)")
	}
	return &cfg, nil
}
