package dto

type StatisticsItem struct {
	WasStartedAt *string `json:"was_started_at,omitempty"`
	WasTakenAt   *string `json:"was_taken_at,omitempty"`
	WasStoppedAt *string `json:"was_stopped_at,omitempty"`
	LastsMinutes int     `json:"lasts_minutes"`
}

type TaskItem struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	DueDate     *string        `json:"due_date,omitempty"`
	CategoryID  *string        `json:"category_id,omitempty"`
	Statistics  StatisticsItem `json:"statistics"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress done blocked"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *string `json:"category_id"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Status      *string `json:"status" binding:"omitempty,oneof=pending in_progress done blocked"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	CategoryID  *string `json:"category_id"`
	AddMinutes  *int    `json:"add_minutes" binding:"omitempty,gte=0"`
}

type ListTasksQuery struct {
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=due_date priority created_at title"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}
