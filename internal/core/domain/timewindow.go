package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MinutesPerDay bounds time window boundaries, expressed as minutes since midnight.
const MinutesPerDay = 1440

type TimeWindow struct {
	ID            primitive.ObjectID
	UserID        primitive.ObjectID
	Name          string
	StartTime     int
	EndTime       int
	CategoryID    primitive.ObjectID
	DayTemplateID primitive.ObjectID
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Category is populated on reads that resolve references.
	Category *Category
}

type CreateTimeWindowInput struct {
	Name          string
	StartTime     int
	EndTime       int
	CategoryID    primitive.ObjectID
	DayTemplateID primitive.ObjectID
}

type UpdateTimeWindowInput struct {
	Name       *string
	StartTime  *int
	EndTime    *int
	CategoryID *primitive.ObjectID
}

// ValidTimeRange reports whether [start, end) is a well-formed window
// within a single day.
func ValidTimeRange(start, end int) bool {
	return start >= 0 && end < MinutesPerDay && end > start
}
