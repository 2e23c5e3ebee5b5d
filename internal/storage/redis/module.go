package redis

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/vitrinepdv/vitrine/internal/config"
	"github.com/vitrinepdv/vitrine/internal/domain/repository"
)

// Module wires the Redis cart store.
var Module = fx.Options(
	fx.Provide(newCartStore),
	fx.Provide(func(s *CartStore) repository.CartRepository { return s }),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newCartStore(p storeParams) (*CartStore, error) {
	return NewCartStore(p.Ctx, p.Config.RedisAddr, p.Config.CartTTL, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store *CartStore) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}
