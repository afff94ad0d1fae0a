package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID
	UserID      primitive.ObjectID
	Name        string
	Description *string
	Color       *string
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateCategoryInput struct {
	Name        string
	Description *string
	Color       *string
}

type UpdateCategoryInput struct {
	Name           *string
	Description    *string
	DescriptionSet bool
	Color          *string
	ColorSet       bool
}
