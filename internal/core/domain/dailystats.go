package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserDailyStats holds per-user counters for one UTC calendar day.
type UserDailyStats struct {
	ID                 primitive.ObjectID
	UserID             primitive.ObjectID
	Date               time.Time
	TotalSecondsSpent  int64
	PomodorosCompleted int
}
