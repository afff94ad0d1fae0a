package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DayTemplate struct {
	ID            primitive.ObjectID
	UserID        primitive.ObjectID
	Name          string
	Description   *string
	TimeWindowIDs []primitive.ObjectID
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// TimeWindows is populated on reads that resolve references, in the
	// stored order.
	TimeWindows []TimeWindow
}

type CreateDayTemplateInput struct {
	Name          string
	Description   *string
	TimeWindowIDs []primitive.ObjectID
}

type UpdateDayTemplateInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	TimeWindowIDs  []primitive.ObjectID
	TimeWindowsSet bool
}
