package impl

import (
	"context"
	"log/slog"

	deliverycontext "playlog/internal/delivery/context"
	"playlog/internal/domain/entity"
	"playlog/internal/domain/repository"
	"playlog/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo repository.CatalogRepository, logger *slog.Logger) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

func (s *catalogService) ListSessions(ctx context.Context) ([]entity.Record, error) {
	return s.list(ctx, entity.CollectionSessions)
}

func (s *catalogService) ListGames(ctx context.Context) ([]entity.Record, error) {
	return s.list(ctx, entity.CollectionGames)
}

func (s *catalogService) ListPlayers(ctx context.Context) ([]entity.Record, error) {
	return s.list(ctx, entity.CollectionPlayers)
}

// SearchPlayers returns players whose name contains terms, ignoring case.
func (s *catalogService) SearchPlayers(ctx context.Context, terms string) ([]entity.Record, error) {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Searching players", slog.String("terms", terms))

	records, err := s.catalogRepo.SearchByName(ctx, entity.CollectionPlayers, terms)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search players")
	}

	return records, nil
}

func (s *catalogService) list(ctx context.Context, collection string) ([]entity.Record, error) {
	records, err := s.catalogRepo.List(ctx, collection)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", collection)
	}

	return records, nil
}
