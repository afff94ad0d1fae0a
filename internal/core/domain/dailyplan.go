package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TimeWindowAllocation places a set of tasks inside one time window of a
// daily plan. Boundaries are minutes since midnight.
type TimeWindowAllocation struct {
	CategoryID  primitive.ObjectID
	StartTime   int
	EndTime     int
	TaskIDs     []primitive.ObjectID
	Description string

	// Category and Tasks are populated on reads that resolve references.
	Category *Category
	Tasks    []Task
}

// DailyPlan is unique per (user, calendar day). Date is stored normalized
// to UTC midnight.
type DailyPlan struct {
	ID                primitive.ObjectID
	UserID            primitive.ObjectID
	Date              time.Time
	Allocations       []TimeWindowAllocation
	ReflectionContent *string
	NotesContent      *string
	Reviewed          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AllocationInput struct {
	CategoryID  primitive.ObjectID
	StartTime   int
	EndTime     int
	TaskIDs     []primitive.ObjectID
	Description string
}

type CreateDailyPlanInput struct {
	Date        time.Time
	Allocations []AllocationInput
}

type UpdateDailyPlanInput struct {
	Allocations    []AllocationInput
	AllocationsSet bool
	Reflection     *string
	ReflectionSet  bool
	Notes          *string
	NotesSet       bool
}

// CalendarDay truncates a timestamp to UTC midnight of its calendar day.
func CalendarDay(t time.Time) time.Time {
	utc := t.UTC()
	return time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
}
