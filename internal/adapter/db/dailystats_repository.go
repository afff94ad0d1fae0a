package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

// DailyStatsRepository uses find-and-modify upserts with $inc so two
// concurrent increments for the same user and day both land.
type DailyStatsRepository struct {
	collection *mongo.Collection
}

var _ ports.DailyStatsRepository = (*DailyStatsRepository)(nil)

func NewDailyStatsRepository(database *mongo.Database) *DailyStatsRepository {
	return &DailyStatsRepository{collection: database.Collection("daily_stats")}
}

type dailyStatsDoc struct {
	ID                 primitive.ObjectID `bson:"_id"`
	UserID             primitive.ObjectID `bson:"user_id"`
	Date               time.Time          `bson:"date"`
	TotalSecondsSpent  int64              `bson:"total_seconds_spent"`
	PomodorosCompleted int                `bson:"pomodoros_completed"`
}

func (r *DailyStatsRepository) FindOrCreate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error) {
	update := bson.M{"$setOnInsert": bson.M{
		"_id":                 primitive.NewObjectID(),
		"total_seconds_spent": int64(0),
		"pomodoros_completed": 0,
	}}
	return r.upsert(ctx, userID, day, update)
}

func (r *DailyStatsRepository) IncrementTime(ctx context.Context, userID primitive.ObjectID, day time.Time, seconds int64) (*domain.UserDailyStats, error) {
	update := bson.M{
		"$inc":         bson.M{"total_seconds_spent": seconds},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	return r.upsert(ctx, userID, day, update)
}

func (r *DailyStatsRepository) IncrementPomodoro(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error) {
	update := bson.M{
		"$inc":         bson.M{"pomodoros_completed": 1},
		"$setOnInsert": bson.M{"_id": primitive.NewObjectID()},
	}
	return r.upsert(ctx, userID, day, update)
}

func (r *DailyStatsRepository) upsert(ctx context.Context, userID primitive.ObjectID, day time.Time, update bson.M) (*domain.UserDailyStats, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc dailyStatsDoc
	err := r.collection.
		FindOneAndUpdate(ctx, bson.M{"user_id": userID, "date": day}, update, opts).
		Decode(&doc)
	if err != nil {
		return nil, err
	}

	return &domain.UserDailyStats{
		ID:                 doc.ID,
		UserID:             doc.UserID,
		Date:               doc.Date.UTC(),
		TotalSecondsSpent:  doc.TotalSecondsSpent,
		PomodorosCompleted: doc.PomodorosCompleted,
	}, nil
}
