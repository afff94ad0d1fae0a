package db

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

type TimeWindowRepository struct {
	collection *mongo.Collection
}

var _ ports.TimeWindowRepository = (*TimeWindowRepository)(nil)

func NewTimeWindowRepository(database *mongo.Database) *TimeWindowRepository {
	return &TimeWindowRepository{collection: database.Collection("time_windows")}
}

type timeWindowDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	UserID        primitive.ObjectID `bson:"user_id"`
	Name          string             `bson:"name"`
	StartTime     int                `bson:"start_time"`
	EndTime       int                `bson:"end_time"`
	CategoryID    primitive.ObjectID `bson:"category_id"`
	DayTemplateID primitive.ObjectID `bson:"day_template_id"`
	IsDeleted     bool               `bson:"is_deleted"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

func (r *TimeWindowRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.TimeWindow, error) {
	var doc timeWindowDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeWindowNotFound
		}
		return nil, err
	}
	window := mapTimeWindowDoc(doc)
	return &window, nil
}

func (r *TimeWindowRepository) FindActiveByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.TimeWindow, error) {
	filter := bson.M{"user_id": userID, "name": name, "is_deleted": false}
	var doc timeWindowDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimeWindowNotFound
		}
		return nil, err
	}
	window := mapTimeWindowDoc(doc)
	return &window, nil
}

func (r *TimeWindowRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.TimeWindow, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []domain.TimeWindow
	for cursor.Next(ctx) {
		var doc timeWindowDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		windows = append(windows, mapTimeWindowDoc(doc))
	}
	return windows, cursor.Err()
}

func (r *TimeWindowRepository) ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.TimeWindow, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	windows := []domain.TimeWindow{}
	for cursor.Next(ctx) {
		var doc timeWindowDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		windows = append(windows, mapTimeWindowDoc(doc))
	}
	return windows, cursor.Err()
}

func (r *TimeWindowRepository) Insert(ctx context.Context, window *domain.TimeWindow) error {
	_, err := r.collection.InsertOne(ctx, mapTimeWindowToDoc(window))
	return err
}

func (r *TimeWindowRepository) Update(ctx context.Context, window *domain.TimeWindow) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": window.ID}, mapTimeWindowToDoc(window))
	return err
}

func mapTimeWindowDoc(doc timeWindowDoc) domain.TimeWindow {
	return domain.TimeWindow{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Name:          doc.Name,
		StartTime:     doc.StartTime,
		EndTime:       doc.EndTime,
		CategoryID:    doc.CategoryID,
		DayTemplateID: doc.DayTemplateID,
		IsDeleted:     doc.IsDeleted,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func mapTimeWindowToDoc(window *domain.TimeWindow) timeWindowDoc {
	return timeWindowDoc{
		ID:            window.ID,
		UserID:        window.UserID,
		Name:          window.Name,
		StartTime:     window.StartTime,
		EndTime:       window.EndTime,
		CategoryID:    window.CategoryID,
		DayTemplateID: window.DayTemplateID,
		IsDeleted:     window.IsDeleted,
		CreatedAt:     window.CreatedAt,
		UpdatedAt:     window.UpdatedAt,
	}
}
