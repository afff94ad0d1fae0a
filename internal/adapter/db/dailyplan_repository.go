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

type DailyPlanRepository struct {
	collection *mongo.Collection
}

var _ ports.DailyPlanRepository = (*DailyPlanRepository)(nil)

func NewDailyPlanRepository(database *mongo.Database) *DailyPlanRepository {
	return &DailyPlanRepository{collection: database.Collection("daily_plans")}
}

type allocationDoc struct {
	CategoryID  primitive.ObjectID   `bson:"category_id"`
	StartTime   int                  `bson:"start_time"`
	EndTime     int                  `bson:"end_time"`
	TaskIDs     []primitive.ObjectID `bson:"task_ids"`
	Description string               `bson:"description,omitempty"`
}

type dailyPlanDoc struct {
	ID                primitive.ObjectID `bson:"_id"`
	UserID            primitive.ObjectID `bson:"user_id"`
	Date              time.Time          `bson:"date"`
	Allocations       []allocationDoc    `bson:"allocations"`
	ReflectionContent *string            `bson:"reflection_content,omitempty"`
	NotesContent      *string            `bson:"notes_content,omitempty"`
	Reviewed          bool               `bson:"reviewed"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

func (r *DailyPlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.DailyPlan, error) {
	var doc dailyPlanDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDailyPlanNotFound
		}
		return nil, err
	}
	plan := mapDailyPlanDoc(doc)
	return &plan, nil
}

func (r *DailyPlanRepository) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, day time.Time) (*domain.DailyPlan, error) {
	var doc dailyPlanDoc
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "date": day}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrDailyPlanNotFound
		}
		return nil, err
	}
	plan := mapDailyPlanDoc(doc)
	return &plan, nil
}

func (r *DailyPlanRepository) Insert(ctx context.Context, plan *domain.DailyPlan) error {
	_, err := r.collection.InsertOne(ctx, mapDailyPlanToDoc(plan))
	return err
}

func (r *DailyPlanRepository) Update(ctx context.Context, plan *domain.DailyPlan) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": plan.ID}, mapDailyPlanToDoc(plan))
	return err
}

func (r *DailyPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func mapDailyPlanDoc(doc dailyPlanDoc) domain.DailyPlan {
	allocations := make([]domain.TimeWindowAllocation, 0, len(doc.Allocations))
	for _, a := range doc.Allocations {
		allocations = append(allocations, domain.TimeWindowAllocation{
			CategoryID:  a.CategoryID,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			TaskIDs:     a.TaskIDs,
			Description: a.Description,
		})
	}
	return domain.DailyPlan{
		ID:                doc.ID,
		UserID:            doc.UserID,
		Date:              doc.Date.UTC(),
		Allocations:       allocations,
		ReflectionContent: doc.ReflectionContent,
		NotesContent:      doc.NotesContent,
		Reviewed:          doc.Reviewed,
		CreatedAt:         doc.CreatedAt,
		UpdatedAt:         doc.UpdatedAt,
	}
}

func mapDailyPlanToDoc(plan *domain.DailyPlan) dailyPlanDoc {
	allocations := make([]allocationDoc, 0, len(plan.Allocations))
	for _, a := range plan.Allocations {
		allocations = append(allocations, allocationDoc{
			CategoryID:  a.CategoryID,
			StartTime:   a.StartTime,
			EndTime:     a.EndTime,
			TaskIDs:     a.TaskIDs,
			Description: a.Description,
		})
	}
	return dailyPlanDoc{
		ID:                plan.ID,
		UserID:            plan.UserID,
		Date:              plan.Date,
		Allocations:       allocations,
		ReflectionContent: plan.ReflectionContent,
		NotesContent:      plan.NotesContent,
		Reviewed:          plan.Reviewed,
		CreatedAt:         plan.CreatedAt,
		UpdatedAt:         plan.UpdatedAt,
	}
}
