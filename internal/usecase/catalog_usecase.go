package usecase

import (
	"context"

	"playlog/internal/domain/entity"
)

// CatalogUsecase exposes read access to the game/player/session dataset.
type CatalogUsecase interface {
	ListSessions(ctx context.Context) ([]entity.Record, error)
	ListGames(ctx context.Context) ([]entity.Record, error)
	ListPlayers(ctx context.Context) ([]entity.Record, error)
	SearchPlayers(ctx context.Context, terms string) ([]entity.Record, error)
}
