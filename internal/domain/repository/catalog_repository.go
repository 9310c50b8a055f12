package repository

import (
	"context"

	"playlog/internal/domain/entity"
)

// CatalogRepository reads the game/player/session dataset.
type CatalogRepository interface {
	// List returns every document of a catalog collection.
	List(ctx context.Context, collection string) ([]entity.Record, error)

	// SearchByName returns documents whose name contains term, ignoring case.
	SearchByName(ctx context.Context, collection string, term string) ([]entity.Record, error)
}
