package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

const profilesCollection = "profiles"

// MongoProfileRepository persists profile records keyed by account id.
type MongoProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{coll: db.Collection(profilesCollection)}
}

func (r *MongoProfileRepository) Get(ctx context.Context, accountID string) (*domain.Profile, error) {
	var profile domain.Profile
	if err := r.coll.FindOne(ctx, bson.M{"_id": accountID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &profile, nil
}

func (r *MongoProfileRepository) Put(ctx context.Context, profile *domain.Profile) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": profile.ID},
		profile,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("store profile: %w", err)
	}
	return nil
}
