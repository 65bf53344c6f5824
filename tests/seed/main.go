// Command seed loads the embedded food dataset into the Mongo catalog
// collection, replacing whatever is there. Run it once before starting the
// server with CATALOG_SOURCE=mongo.
package main

import (
	"context"
	"log"
	"time"

	"slaycal/config"
	"slaycal/database"
	"slaycal/database/catalog/dataset"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()
	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	coll := database.FoodCollection()
	if _, err := coll.DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("seed: failed to clear foods collection: %v", err)
	}

	foods := dataset.Foods()
	docs := make([]interface{}, len(foods))
	for i, f := range foods {
		docs[i] = f
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		log.Fatalf("seed: failed to insert foods: %v", err)
	}
	log.Printf("seed: inserted %d foods into %q", len(foods), config.AppConfig.DatabaseName)
}
