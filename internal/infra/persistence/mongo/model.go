package mongo

import (
	"time"

	"playlog/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// userModel mirrors a document of the 'users' collection.
// The hash lives under 'password' to stay compatible with existing data.
type userModel struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
}

func toUserDomain(m *userModel) *entity.User {
	return &entity.User{
		ID:           m.ID.Hex(),
		Username:     m.Username,
		PasswordHash: m.Password,
	}
}

func fromUserDomain(u *entity.User) (*userModel, error) {
	m := &userModel{
		Username: u.Username,
		Password: u.PasswordHash,
	}

	if u.ID != "" {
		id, err := primitive.ObjectIDFromHex(u.ID)
		if err != nil {
			return nil, err
		}
		m.ID = id
	}

	return m, nil
}

// toRecord converts a raw document into a JSON-friendly record.
func toRecord(doc bson.M) entity.Record {
	record := make(entity.Record, len(doc))
	for key, value := range doc {
		record[key] = normalizeValue(value)
	}

	return record
}

// normalizeValue flattens driver-specific types so records encode as plain JSON.
func normalizeValue(value any) any {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339Nano)
	case primitive.D:
		out := make(map[string]any, len(v))
		for _, elem := range v {
			out[elem.Key] = normalizeValue(elem.Value)
		}

		return out
	case primitive.M:
		out := make(map[string]any, len(v))
		for key, elem := range v {
			out[key] = normalizeValue(elem)
		}

		return out
	case primitive.A:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = normalizeValue(elem)
		}

		return out
	default:
		return v
	}
}
