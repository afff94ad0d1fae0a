package dto

type AllocationItem struct {
	Category    CategoryItem `json:"category"`
	StartTime   int          `json:"start_time"`
	EndTime     int          `json:"end_time"`
	Tasks       []TaskItem   `json:"tasks"`
	Description string       `json:"description,omitempty"`
}

type DailyPlanItem struct {
	ID                string           `json:"id"`
	Date              string           `json:"date"`
	Allocations       []AllocationItem `json:"allocations"`
	ReflectionContent *string          `json:"reflection_content,omitempty"`
	NotesContent      *string          `json:"notes_content,omitempty"`
	Reviewed          bool             `json:"reviewed"`
	CreatedAt         string           `json:"created_at"`
	UpdatedAt         string           `json:"updated_at"`
}

type AllocationRequest struct {
	CategoryID  string   `json:"category_id" binding:"required"`
	StartTime   *int     `json:"start_time" binding:"required,gte=0,lt=1440"`
	EndTime     *int     `json:"end_time" binding:"required,gte=0,lt=1440"`
	TaskIDs     []string `json:"task_ids"`
	Description string   `json:"description"`
}

type CreateDailyPlanRequest struct {
	Date        string              `json:"date" binding:"required"`
	Allocations []AllocationRequest `json:"allocations" binding:"dive"`
}

type UpdateDailyPlanRequest struct {
	Allocations       []AllocationRequest `json:"allocations" binding:"omitempty,dive"`
	ReflectionContent *string             `json:"reflection_content"`
	NotesContent      *string             `json:"notes_content"`
}

type ReconcileResponse struct {
	Plan      DailyPlanItem `json:"plan"`
	Conflicts []string      `json:"conflicts"`
}
