package shipping

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vitrinepdv/vitrine/internal/config"
)

// Module exposes the carrier quoter implementation to the fx graph.
var Module = fx.Provide(newQuoter)

type quoterParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newQuoter(p quoterParams) Quoter {
	return NewHTTPQuoter(p.Config.ShippingAPIURL, p.Config.OriginCEP, p.Logger)
}
