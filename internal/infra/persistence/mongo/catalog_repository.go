package mongo

import (
	"context"
	"regexp"
	"time"

	"playlog/config"
	"playlog/internal/domain/entity"
	domainerrors "playlog/internal/domain/errors"
	"playlog/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// catalogRepository reads the games, player and session collections.
type catalogRepository struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *mongo.Database, cfg *config.Config) repository.CatalogRepository {
	return &catalogRepository{
		db:      db,
		timeout: operationTimeout(cfg),
	}
}

// List returns every document in the collection.
func (repo *catalogRepository) List(ctx context.Context, collection string) ([]entity.Record, error) {
	return repo.find(ctx, collection, bson.M{})
}

// SearchByName matches term as a literal, case-insensitive substring of the 'name' field.
func (repo *catalogRepository) SearchByName(ctx context.Context, collection string, term string) ([]entity.Record, error) {
	return repo.find(ctx, collection, nameFilter(term))
}

func (repo *catalogRepository) find(ctx context.Context, collection string, filter bson.M) ([]entity.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to query "+collection)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode "+collection)
	}

	records := make([]entity.Record, 0, len(docs))
	for _, doc := range docs {
		records = append(records, toRecord(doc))
	}

	return records, nil
}

func nameFilter(term string) bson.M {
	return bson.M{
		"name": bson.M{
			"$regex": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"},
		},
	}
}
