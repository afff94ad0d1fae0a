package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/40min/flocus-sub000/internal/config"
)

const connectTimeout = 10 * time.Second

func ConnectDB(conf *config.Config) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(conf.MongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client.Database(conf.MongoDatabase), nil
}

// EnsureIndexes declares the compound indexes the stores rely on. Name and
// title uniqueness stay application-enforced because the soft-delete flag
// participates in the key; plan and stats rows are unique per user and day.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string]mongo.IndexModel{
		"categories":   {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "name", Value: 1}}},
		"time_windows": {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "name", Value: 1}}},
		"tasks":        {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "title", Value: 1}}},
		"daily_plans":  {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
		"daily_stats":  {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: unique},
	}

	for collection, model := range specs {
		if _, err := database.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return err
		}
	}
	return nil
}
