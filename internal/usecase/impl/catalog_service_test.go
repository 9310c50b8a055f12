package impl

import (
	"context"
	"testing"

	"playlog/internal/domain/entity"
	domainerrors "playlog/internal/domain/errors"
	mockRepo "playlog/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_Lists(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(repo, newDiscardLogger())
	ctx := context.Background()

	sessions := []entity.Record{{"_id": "s1"}}
	games := []entity.Record{{"_id": "g1", "title": "Catan"}}
	players := []entity.Record{{"_id": "p1", "name": "Annie"}}

	repo.On("List", ctx, entity.CollectionSessions).Return(sessions, nil)
	repo.On("List", ctx, entity.CollectionGames).Return(games, nil)
	repo.On("List", ctx, entity.CollectionPlayers).Return(players, nil)

	got, err := service.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, sessions, got)

	got, err = service.ListGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, games, got)

	got, err = service.ListPlayers(ctx)
	require.NoError(t, err)
	assert.Equal(t, players, got)
}

func TestCatalogService_SearchPlayers(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(repo, newDiscardLogger())
	ctx := context.Background()

	annie := []entity.Record{{"name": "Annie"}}
	repo.On("SearchByName", ctx, entity.CollectionPlayers, "ann").Return(annie, nil)

	got, err := service.SearchPlayers(ctx, "ann")
	require.NoError(t, err)
	assert.Equal(t, annie, got)
}

func TestCatalogService_StoreError(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository(t)
	service := NewCatalogService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.On("List", ctx, entity.CollectionGames).
		Return(nil, domainerrors.NewStoreError(errors.New("timeout"), "failed to query games"))

	_, err := service.ListGames(ctx)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "STORE_ERROR", appErr.ErrorCode())
}
