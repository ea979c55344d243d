package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fitpro/fitpro-api/internal/core/domain"
)

const (
	accountsCollection = "accounts"
	metaCollection     = "meta"

	directoryMarkerID = "accounts_directory"
)

// MongoAccountRepository persists the account directory in MongoDB.
// Duplicate-email detection rides on the unique email index (see
// EnsureIndexes), so check-then-insert is a single atomic operation.
type MongoAccountRepository struct {
	accounts *mongo.Collection
	meta     *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *MongoAccountRepository {
	return &MongoAccountRepository{
		accounts: db.Collection(accountsCollection),
		meta:     db.Collection(metaCollection),
	}
}

func (r *MongoAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if _, err := r.accounts.InsertOne(ctx, account); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateAccount
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (r *MongoAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAccountRepository) findOne(ctx context.Context, filter bson.M) (*domain.Account, error) {
	var account domain.Account
	if err := r.accounts.FindOne(ctx, filter).Decode(&account); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return &account, nil
}

// Initialized reports whether the directory was ever created: either the
// marker document exists or at least one account does. An emptied directory
// with the marker still counts as initialized.
func (r *MongoAccountRepository) Initialized(ctx context.Context) (bool, error) {
	n, err := r.meta.CountDocuments(ctx, bson.M{"_id": directoryMarkerID})
	if err != nil {
		return false, fmt.Errorf("directory marker lookup: %w", err)
	}
	if n > 0 {
		return true, nil
	}

	n, err = r.accounts.EstimatedDocumentCount(ctx)
	if err != nil {
		return false, fmt.Errorf("account count: %w", err)
	}
	return n > 0, nil
}

func (r *MongoAccountRepository) MarkInitialized(ctx context.Context) error {
	_, err := r.meta.UpdateOne(ctx,
		bson.M{"_id": directoryMarkerID},
		bson.M{"$set": bson.M{"initialized": true}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("mark directory initialized: %w", err)
	}
	return nil
}
