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

type TaskRepository struct {
	collection *mongo.Collection
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(database *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: database.Collection("tasks")}
}

type taskStatisticsDoc struct {
	WasStartedAt *time.Time `bson:"was_started_at,omitempty"`
	WasTakenAt   *time.Time `bson:"was_taken_at,omitempty"`
	WasStoppedAt *time.Time `bson:"was_stopped_at,omitempty"`
	LastsMinutes int        `bson:"lasts_minutes"`
}

type taskDoc struct {
	ID          primitive.ObjectID  `bson:"_id"`
	UserID      primitive.ObjectID  `bson:"user_id"`
	Title       string              `bson:"title"`
	Description *string             `bson:"description,omitempty"`
	Status      string              `bson:"status"`
	Priority    string              `bson:"priority"`
	DueDate     *time.Time          `bson:"due_date,omitempty"`
	CategoryID  *primitive.ObjectID `bson:"category_id,omitempty"`
	IsDeleted   bool                `bson:"is_deleted"`
	Statistics  taskStatisticsDoc   `bson:"statistics"`
	CreatedAt   time.Time           `bson:"created_at"`
	UpdatedAt   time.Time           `bson:"updated_at"`
}

func (r *TaskRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Task, error) {
	var doc taskDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	task := mapTaskDoc(doc)
	return &task, nil
}

func (r *TaskRepository) FindActiveByTitle(ctx context.Context, userID primitive.ObjectID, title string) (*domain.Task, error) {
	filter := bson.M{"user_id": userID, "title": title, "is_deleted": false}
	var doc taskDoc
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	task := mapTaskDoc(doc)
	return &task, nil
}

func (r *TaskRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []domain.Task
	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, mapTaskDoc(doc))
	}
	return tasks, cursor.Err()
}

func (r *TaskRepository) ListActive(ctx context.Context, userID primitive.ObjectID) ([]domain.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID, "is_deleted": false})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	tasks := []domain.Task{}
	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		tasks = append(tasks, mapTaskDoc(doc))
	}
	return tasks, cursor.Err()
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	_, err := r.collection.InsertOne(ctx, mapTaskToDoc(task))
	return err
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": task.ID}, mapTaskToDoc(task))
	return err
}

func mapTaskDoc(doc taskDoc) domain.Task {
	return domain.Task{
		ID:          doc.ID,
		UserID:      doc.UserID,
		Title:       doc.Title,
		Description: doc.Description,
		Status:      domain.TaskStatus(doc.Status),
		Priority:    domain.TaskPriority(doc.Priority),
		DueDate:     doc.DueDate,
		CategoryID:  doc.CategoryID,
		IsDeleted:   doc.IsDeleted,
		Statistics: domain.TaskStatistics{
			WasStartedAt: doc.Statistics.WasStartedAt,
			WasTakenAt:   doc.Statistics.WasTakenAt,
			WasStoppedAt: doc.Statistics.WasStoppedAt,
			LastsMinutes: doc.Statistics.LastsMinutes,
		},
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func mapTaskToDoc(task *domain.Task) taskDoc {
	return taskDoc{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		CategoryID:  task.CategoryID,
		IsDeleted:   task.IsDeleted,
		Statistics: taskStatisticsDoc{
			WasStartedAt: task.Statistics.WasStartedAt,
			WasTakenAt:   task.Statistics.WasTakenAt,
			WasStoppedAt: task.Statistics.WasStoppedAt,
			LastsMinutes: task.Statistics.LastsMinutes,
		},
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	}
}
