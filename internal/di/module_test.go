package di

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go.uber.org/fx"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	"github.com/vitrinepdv/vitrine/internal/app"
	"github.com/vitrinepdv/vitrine/internal/config"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
	"github.com/vitrinepdv/vitrine/internal/storage/postgres"
	"github.com/vitrinepdv/vitrine/internal/storage/redis"
	"github.com/vitrinepdv/vitrine/internal/test"
)

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:          ":0",
		DatabaseURI:         "postgres://stub",
		RedisAddr:           "localhost:0",
		PaymentAPIURL:       "http://localhost",
		JWTSecret:           "secret",
		PaymentPollInterval: time.Millisecond,
		WorkerPoolSize:      1,
		PollBatchSize:       1,
		ShutdownTimeout:     time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	staffRepo := test.NewStaffRepositoryStub()
	orderRepo := &test.OrderRepositoryStub{}
	productRepo := test.NewProductRepositoryStub()
	cartRepo := test.NewCartRepositoryStub()
	gateway := &test.GatewayStub{}

	var facade *app.StoreFacade
	fxApp := fx.New(
		fx.NopLogger,
		fx.Supply(context.Background()),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(&postgres.Storage{}),
			fx.Replace(&redis.CartStore{}),
			fx.Replace(repository.StaffRepository(staffRepo)),
			fx.Replace(repository.OrderRepository(orderRepo)),
			fx.Replace(repository.ProductRepository(productRepo)),
			fx.Replace(repository.CartRepository(cartRepo)),
			fx.Replace(payment.Client(gateway)),
		),
		fx.Populate(&facade),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil {
		t.Fatal("expected store facade instance")
	}
}
