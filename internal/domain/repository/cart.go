package repository

import (
	"context"

	"github.com/vitrinepdv/vitrine/internal/domain/model"
)

// CartRepository stores carts prior to checkout. Implementations are plain
// load/save; line merging happens in the domain model.
type CartRepository interface {
	Get(ctx context.Context, id string) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, id string) error
}
