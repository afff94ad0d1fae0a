package dto

type DayTemplateItem struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	TimeWindows []TimeWindowItem `json:"time_windows,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

type CreateDayTemplateRequest struct {
	Name          string   `json:"name" binding:"required,max=100"`
	Description   *string  `json:"description" binding:"omitempty,max=1000"`
	TimeWindowIDs []string `json:"time_window_ids"`
}

type UpdateDayTemplateRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=100"`
	Description   *string  `json:"description" binding:"omitempty,max=1000"`
	TimeWindowIDs []string `json:"time_window_ids"`
}
