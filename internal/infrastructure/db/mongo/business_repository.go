package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

const businessCollection = "businesses"

// BusinessRepository serves the catalog from MongoDB. Filtering and ranking
// stay in the query package; this repository only loads and looks up records.
type BusinessRepository struct {
	coll *mongo.Collection
}

func NewBusinessRepository(db *mongo.Database) *BusinessRepository {
	return &BusinessRepository{coll: db.Collection(businessCollection)}
}

func (r *BusinessRepository) List(ctx context.Context) ([]domain.Business, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	defer cursor.Close(ctx)

	var records []domain.Business
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode businesses: %w", err)
	}
	return records, nil
}

func (r *BusinessRepository) FindByID(ctx context.Context, id string) (*domain.Business, error) {
	var b domain.Business
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return &b, nil
}

// Seed upserts the given records. Used at startup to populate a fresh
// database with the default catalog.
func (r *BusinessRepository) Seed(ctx context.Context, records []domain.Business) error {
	for _, b := range records {
		_, err := r.coll.UpdateOne(ctx,
			bson.M{"_id": b.ID},
			bson.M{"$setOnInsert": b},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return fmt.Errorf("seed business %s: %w", b.ID, err)
		}
	}
	return nil
}
