package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lostpaws/petfinder-system/internal/core/domain"
	"github.com/lostpaws/petfinder-system/internal/core/ports"
)

const adsCollection = "ads"

type AdRepository struct {
	coll *mongo.Collection
}

func NewAdRepository(db *mongo.Database) *AdRepository {
	return &AdRepository{coll: db.Collection(adsCollection)}
}

// Create inserts a new listing document and returns the generated id.
func (r *AdRepository) Create(ctx context.Context, ad *domain.Ad) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// _id is generated by the driver; the domain id field stays empty on insert.
	ad.ID = ""
	res, err := r.coll.InsertOne(ctx, ad)
	if err != nil {
		return "", fmt.Errorf("insert ad: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert ad: unexpected id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// List returns ads matching the filter, created_at descending, capped at
// filter.Limit rows.
func (r *AdRepository) List(ctx context.Context, filter ports.ListAdsFilter) ([]*domain.Ad, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Breed != "" {
		query["breed"] = filter.Breed
	}
	if filter.Size != "" {
		query["size"] = filter.Size
	}
	if filter.Danger != "" {
		query["danger"] = filter.Danger
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(filter.Limit))

	cur, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	defer cur.Close(ctx)

	var ads []*domain.Ad
	if err := cur.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("decode ads: %w", err)
	}
	return ads, nil
}

// EnsureIndexes creates the indexes the listing path queries against.
func (r *AdRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
