package notify

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/vitrinepdv/vitrine/internal/config"
)

// Module wires the event dispatcher. Without AMQP_URL the Nop dispatcher is
// used and the rest of the application is unaffected.
var Module = fx.Provide(newDispatcher)

type dispatcherParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newDispatcher(p dispatcherParams) (Dispatcher, error) {
	if p.Config.AMQPURL == "" {
		p.Logger.Info("amqp url not set, order events disabled")
		return Nop{}, nil
	}

	dispatcher, err := NewAMQPDispatcher(p.Config.AMQPURL, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return dispatcher.Close()
		},
	})
	return dispatcher, nil
}
