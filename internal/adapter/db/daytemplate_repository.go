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

type DayTemplateRepository struct {
	collection *mongo.Collection
}

var _ ports.DayTemplateRepository = (*DayTemplateRepository)(nil)

func NewDayTemplateRepository(database *mongo.Database) *DayTemplateRepository {
	return &DayTemplateRepository{collection: database.Collection("day_templates")}
}

type dayTemplateDoc struct {
	ID            primitive.ObjectID   `bson:"_id"`
	UserID        primitive.ObjectID   `bson:"user_id"`
	Name          string               `bson:"name"`
	Description   *string              `bson:"description,omitempty"`
	TimeWindowIDs []primitive.ObjectID `bson:"time_window_ids"`
	CreatedAt     time.Time            `bson:"created_at"`
	UpdatedAt     time.Time            `bson:"updated_at"`
}

func (r *DayTemplateRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.DayTemplate, error) {
	var doc dayTemplateDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDayTemplateNotFound
		}
		return nil, err
	}
	template := mapDayTemplateDoc(doc)
	return &template, nil
}

func (r *DayTemplateRepository) FindByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.DayTemplate, error) {
	var doc dayTemplateDoc
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "name": name}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDayTemplateNotFound
		}
		return nil, err
	}
	template := mapDayTemplateDoc(doc)
	return &template, nil
}

func (r *DayTemplateRepository) List(ctx context.Context, userID primitive.ObjectID) ([]domain.DayTemplate, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	templates := []domain.DayTemplate{}
	for cursor.Next(ctx) {
		var doc dayTemplateDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		templates = append(templates, mapDayTemplateDoc(doc))
	}
	return templates, cursor.Err()
}

func (r *DayTemplateRepository) Insert(ctx context.Context, template *domain.DayTemplate) error {
	_, err := r.collection.InsertOne(ctx, mapDayTemplateToDoc(template))
	return err
}

func (r *DayTemplateRepository) Update(ctx context.Context, template *domain.DayTemplate) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": template.ID}, mapDayTemplateToDoc(template))
	return err
}

func (r *DayTemplateRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func mapDayTemplateDoc(doc dayTemplateDoc) domain.DayTemplate {
	return domain.DayTemplate{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Name:          doc.Name,
		Description:   doc.Description,
		TimeWindowIDs: doc.TimeWindowIDs,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}
}

func mapDayTemplateToDoc(template *domain.DayTemplate) dayTemplateDoc {
	return dayTemplateDoc{
		ID:            template.ID,
		UserID:        template.UserID,
		Name:          template.Name,
		Description:   template.Description,
		TimeWindowIDs: template.TimeWindowIDs,
		CreatedAt:     template.CreatedAt,
		UpdatedAt:     template.UpdatedAt,
	}
}
