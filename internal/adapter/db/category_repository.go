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

type CategoryRepository struct {
	collection *mongo.Collection
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(database *mongo.Database) *CategoryRepository {
	return &CategoryRepository{collection: database.Collection("categories")}
}

type categoryDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description,omitempty"`
	Color       *string            `bson:"color,omitempty"`
	IsDeleted   bool               `bson:"is_deleted"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *CategoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error) {
	var doc categoryDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	category := mapCategoryDoc(doc)
	return &category, nil
}

func (r *CategoryRepository) FindActiveByName(ctx context.Context, userID primitive.ObjectID, name string) (*domain.Category, error) {
	filter := bson.M{"user_id": userID, "name": name, "is_deleted": false}
	var doc categoryDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	category := mapCategoryDoc(doc)
	return &category, nil
}

func (r *CategoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapCategoryDoc(doc))
	}
	return categories, cursor.Err()
}

func (r *CategoryRepository) ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.Category, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []domain.Category{}
	for cursor.Next(ctx) {
		var doc categoryDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		categories = append(categories, mapCategoryDoc(doc))
	}
	return categories, cursor.Err()
}

func (r *CategoryRepository) Insert(ctx context.Context, category *domain.Category) error {
	_, err := r.collection.InsertOne(ctx, mapCategoryToDoc(category))
	return err
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, mapCategoryToDoc(category))
	return err
}

func mapCategoryDoc(doc categoryDoc) domain.Category {
	return domain.Category{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Name:        doc.Name,
		Description: doc.Description,
		Color:       doc.Color,
		IsDeleted:   doc.IsDeleted,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func mapCategoryToDoc(category *domain.Category) categoryDoc {
	return categoryDoc{
		ID:          category.ID,
		UserID:      category.UserID,
		Name:        category.Name,
		Description: category.Description,
		Color:       category.Color,
		IsDeleted:   category.IsDeleted,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}
