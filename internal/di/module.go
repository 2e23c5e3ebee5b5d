package di

import (
	"go.uber.org/fx"

	"github.com/vitrinepdv/vitrine/internal/adapter/payment"
	"github.com/vitrinepdv/vitrine/internal/adapter/shipping"
	"github.com/vitrinepdv/vitrine/internal/app"
	"github.com/vitrinepdv/vitrine/internal/config"
	"github.com/vitrinepdv/vitrine/internal/logger"
	"github.com/vitrinepdv/vitrine/internal/notify"
	"github.com/vitrinepdv/vitrine/internal/pkg/auth"
	"github.com/vitrinepdv/vitrine/internal/server/http/router"
	"github.com/vitrinepdv/vitrine/internal/storage/postgres"
	"github.com/vitrinepdv/vitrine/internal/storage/redis"
	"github.com/vitrinepdv/vitrine/internal/usecase"
)

// Module assembles the full application graph. Extra options are appended so
// tests can replace infrastructure pieces.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		redis.Module,
		payment.Module,
		shipping.Module,
		notify.Module,
		usecase.Module,
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
