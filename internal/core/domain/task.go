package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
	TaskStatusBlocked    TaskStatus = "blocked"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// PriorityRank orders priorities for sorting. Unknown values rank lowest.
var PriorityRank = map[TaskPriority]int{
	TaskPriorityLow:    0,
	TaskPriorityMedium: 1,
	TaskPriorityHigh:   2,
	TaskPriorityUrgent: 3,
}

type TaskSortField string

const (
	TaskSortDueDate   TaskSortField = "due_date"
	TaskSortPriority  TaskSortField = "priority"
	TaskSortCreatedAt TaskSortField = "created_at"
	TaskSortTitle     TaskSortField = "title"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type Task struct {
	ID          primitive.ObjectID
	UserID      primitive.ObjectID
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CategoryID  *primitive.ObjectID
	IsDeleted   bool
	Statistics  TaskStatistics
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	CategoryID  *primitive.ObjectID
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Status         *TaskStatus
	Priority       *TaskPriority
	DueDate        *time.Time
	DueDateSet     bool
	CategoryID     *primitive.ObjectID
	CategoryIDSet  bool

	// AddMinutes is a manual correction added to the accumulated working
	// time, on top of whatever a status transition contributes.
	AddMinutes *int
}

type ListTasksOptions struct {
	SortBy    TaskSortField
	SortOrder SortOrder
}
