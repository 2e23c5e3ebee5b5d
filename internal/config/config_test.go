package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/vitrine",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Errorf("RunAddress = %q, want %q", cfg.RunAddress, defaultRunAddress)
	}
	if cfg.RedisAddr != defaultRedisAddr {
		t.Errorf("RedisAddr = %q, want %q", cfg.RedisAddr, defaultRedisAddr)
	}
	if cfg.PaymentPollInterval != defaultPaymentPollInterval {
		t.Errorf("PaymentPollInterval = %v, want %v", cfg.PaymentPollInterval, defaultPaymentPollInterval)
	}
	if cfg.CartTTL != defaultCartTTL {
		t.Errorf("CartTTL = %v, want %v", cfg.CartTTL, defaultCartTTL)
	}
	if cfg.WorkerPoolSize != defaultWorkerPoolSize {
		t.Errorf("WorkerPoolSize = %d, want %d", cfg.WorkerPoolSize, defaultWorkerPoolSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":          "postgres://localhost/vitrine",
		"RUN_ADDRESS":           ":9090",
		"REDIS_ADDR":            "cache:6379",
		"AMQP_URL":              "amqp://guest:guest@mq:5672/",
		"PAYMENT_API_URL":       "https://gateway.example.com",
		"PAYMENT_API_KEY":       "key-1",
		"PAYMENT_POLL_INTERVAL": "30s",
		"CART_TTL":              "48h",
		"POLL_BATCH_SIZE":       "10",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Errorf("RunAddress = %q, want :9090", cfg.RunAddress)
	}
	if cfg.RedisAddr != "cache:6379" {
		t.Errorf("RedisAddr = %q, want cache:6379", cfg.RedisAddr)
	}
	if cfg.AMQPURL != "amqp://guest:guest@mq:5672/" {
		t.Errorf("AMQPURL = %q", cfg.AMQPURL)
	}
	if cfg.PaymentAPIKey != "key-1" {
		t.Errorf("PaymentAPIKey = %q, want key-1", cfg.PaymentAPIKey)
	}
	if cfg.PaymentPollInterval != 30*time.Second {
		t.Errorf("PaymentPollInterval = %v, want 30s", cfg.PaymentPollInterval)
	}
	if cfg.CartTTL != 48*time.Hour {
		t.Errorf("CartTTL = %v, want 48h", cfg.CartTTL)
	}
	if cfg.PollBatchSize != 10 {
		t.Errorf("PollBatchSize = %d, want 10", cfg.PollBatchSize)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	cfg, err := load(
		[]string{"-a", ":7070", "-poll-interval", "1m", "-payment-url", "https://flag.example.com"},
		lookupFrom(map[string]string{
			"DATABASE_URI":    "postgres://localhost/vitrine",
			"RUN_ADDRESS":     ":9090",
			"PAYMENT_API_URL": "https://env.example.com",
		}),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Errorf("RunAddress = %q, want :7070", cfg.RunAddress)
	}
	if cfg.PaymentPollInterval != time.Minute {
		t.Errorf("PaymentPollInterval = %v, want 1m", cfg.PaymentPollInterval)
	}
	if cfg.PaymentAPIURL != "https://flag.example.com" {
		t.Errorf("PaymentAPIURL = %q", cfg.PaymentAPIURL)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadJWTSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://localhost/vitrine",
		"JWT_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Errorf("JWTSecret = %q, want file-secret", cfg.JWTSecret)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	_, err := load([]string{"-poll-interval", "nope"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/vitrine",
	}))
	if err == nil {
		t.Fatal("expected error for invalid poll interval")
	}
}
