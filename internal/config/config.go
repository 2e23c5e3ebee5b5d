package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress          string
	DatabaseURI         string
	RedisAddr           string
	AMQPURL             string
	PaymentAPIURL       string
	PaymentAPIKey       string
	ShippingAPIURL      string
	OriginCEP           string
	JWTSecret           string
	PaymentPollInterval time.Duration
	WorkerPoolSize      int
	PollBatchSize       int
	ShutdownTimeout     time.Duration
	CartTTL             time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultRedisAddr           = "localhost:6379"
	defaultJWTSecret           = "change-me-in-production"
	defaultPaymentPollInterval = 5 * time.Second
	defaultWorkerPoolSize      = 4
	defaultPollBatchSize       = 32
	defaultShutdownTimeout     = 10 * time.Second
	defaultCartTTL             = 7 * 24 * time.Hour
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		RedisAddr:           getString(lookup, "REDIS_ADDR", defaultRedisAddr),
		AMQPURL:             getString(lookup, "AMQP_URL", ""),
		PaymentAPIURL:       getString(lookup, "PAYMENT_API_URL", ""),
		PaymentAPIKey:       getString(lookup, "PAYMENT_API_KEY", ""),
		ShippingAPIURL:      getString(lookup, "SHIPPING_API_URL", ""),
		OriginCEP:           getString(lookup, "ORIGIN_CEP", ""),
		JWTSecret:           getString(lookup, "JWT_SECRET", defaultJWTSecret),
		PaymentPollInterval: getDuration(lookup, "PAYMENT_POLL_INTERVAL", defaultPaymentPollInterval),
		WorkerPoolSize:      getInt(lookup, "WORKER_POOL_SIZE", defaultWorkerPoolSize),
		PollBatchSize:       getInt(lookup, "POLL_BATCH_SIZE", defaultPollBatchSize),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		CartTTL:             getDuration(lookup, "CART_TTL", defaultCartTTL),
	}

	fs := flag.NewFlagSet("vitrine", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		pollIntervalStr    = cfg.PaymentPollInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.RedisAddr, "redis", cfg.RedisAddr, "Redis address for cart storage")
	fs.StringVar(&cfg.AMQPURL, "amqp", cfg.AMQPURL, "AMQP broker URL for order events")
	fs.StringVar(&cfg.PaymentAPIURL, "payment-url", cfg.PaymentAPIURL, "Payment gateway base URL")
	fs.StringVar(&cfg.PaymentAPIKey, "payment-key", cfg.PaymentAPIKey, "Payment gateway API key")
	fs.StringVar(&cfg.ShippingAPIURL, "shipping-url", cfg.ShippingAPIURL, "Carrier quote service base URL")
	fs.StringVar(&cfg.OriginCEP, "origin-cep", cfg.OriginCEP, "Origin CEP for shipping quotes")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "Secret for signing auth tokens")
	fs.IntVar(&cfg.WorkerPoolSize, "worker-pool", cfg.WorkerPoolSize, "Number of concurrent settlement workers")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between payment status polls")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")
	fs.IntVar(&cfg.PollBatchSize, "poll-batch", cfg.PollBatchSize, "Maximum orders per polling batch")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.PaymentPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("JWT_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read jwt secret file: %w", err)
		}
		cfg.JWTSecret = string(content)
	}

	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = defaultWorkerPoolSize
	}

	if cfg.PollBatchSize <= 0 {
		cfg.PollBatchSize = defaultPollBatchSize
	}

	if cfg.PaymentPollInterval <= 0 {
		cfg.PaymentPollInterval = defaultPaymentPollInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.CartTTL <= 0 {
		cfg.CartTTL = defaultCartTTL
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
