package mongo

import (
	"context"
	"time"

	"playlog/config"
	"playlog/internal/domain/entity"
	domainerrors "playlog/internal/domain/errors"
	"playlog/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface on the 'users' collection.
type userRepository struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database, cfg *config.Config) repository.UserRepository {
	return &userRepository{
		coll:    db.Collection(entity.CollectionUsers),
		timeout: operationTimeout(cfg),
	}
}

// Create inserts the user and writes the generated ID back onto it.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) (*repository.InsertResult, error) {
	userM, err := fromUserDomain(user)
	if err != nil {
		return nil, errors.Wrap(repository.ErrInvalidID, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to insert user")
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, domainerrors.NewStoreError(errors.Errorf("unexpected inserted id type %T", res.InsertedID), "failed to insert user")
	}
	user.ID = id.Hex()

	return &repository.InsertResult{
		Acknowledged: true,
		InsertedID:   user.ID,
	}, nil
}

// FindByID retrieves a single user by its ObjectID hex string.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An id that can never exist in the store resolves to no user.
		return nil, repository.ErrUserNotFound
	}

	return repo.findOne(ctx, bson.M{"_id": oid}, "failed to find user by id")
}

// FindByUsername retrieves the first user with the given username.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return repo.findOne(ctx, bson.M{"username": username}, "failed to find user by username")
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.M, operation string) (*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	var userM userModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, domainerrors.NewStoreError(err, operation)
	}

	return toUserDomain(&userM), nil
}

// List returns every user document.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to list users")
	}

	var models []userModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, domainerrors.NewStoreError(err, "failed to decode users")
	}

	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, toUserDomain(&models[i]))
	}

	return users, nil
}

// UpdatePasswordHash replaces the stored hash of the given user.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, id string, passwordHash string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"password": passwordHash}},
	)
	if err != nil {
		return domainerrors.NewStoreError(err, "failed to update password")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes the user with the given id.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errors.Wrap(repository.ErrInvalidID, err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, repo.timeout)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return domainerrors.NewStoreError(err, "failed to delete user")
	}

	return nil
}

func operationTimeout(cfg *config.Config) time.Duration {
	if cfg == nil || cfg.Mongo == nil || cfg.Mongo.OperationTimeout <= 0 {
		return 5 * time.Second
	}

	return cfg.Mongo.OperationTimeout
}
