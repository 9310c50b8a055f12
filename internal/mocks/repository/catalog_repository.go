package repository

import (
	"context"

	"playlog/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

// NewMockCatalogRepository creates a mock and asserts its expectations when the test ends.
func NewMockCatalogRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCatalogRepository {
	m := &MockCatalogRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCatalogRepository) List(ctx context.Context, collection string) ([]entity.Record, error) {
	args := m.Called(ctx, collection)
	records, _ := args.Get(0).([]entity.Record)

	return records, args.Error(1)
}

func (m *MockCatalogRepository) SearchByName(ctx context.Context, collection string, term string) ([]entity.Record, error) {
	args := m.Called(ctx, collection, term)
	records, _ := args.Get(0).([]entity.Record)

	return records, args.Error(1)
}
