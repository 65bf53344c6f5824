package catalog

import (
	"context"
	"fmt"

	"slaycal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFoodSource loads the food table from a Mongo collection. The catalog
// itself is immutable at runtime, so the fetched slice is wrapped in a
// MemoryFoodRepo rather than queried live.
type MongoFoodSource struct {
	coll *mongo.Collection
}

// NewMongoFoodSource wraps the given foods collection.
func NewMongoFoodSource(coll *mongo.Collection) *MongoFoodSource {
	return &MongoFoodSource{coll: coll}
}

// FetchAll reads the entire food table in catalog (id) order.
func (s *MongoFoodSource) FetchAll(ctx context.Context) ([]models.FoodItem, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("query foods: %w", err)
	}
	defer cursor.Close(ctx)

	var foods []models.FoodItem
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("decode foods: %w", err)
	}
	return foods, nil
}
