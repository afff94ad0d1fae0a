package dto

type TimeWindowItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	StartTime     int          `json:"start_time"`
	EndTime       int          `json:"end_time"`
	Category      CategoryItem `json:"category"`
	DayTemplateID string       `json:"day_template_id"`
	CreatedAt     string       `json:"created_at"`
	UpdatedAt     string       `json:"updated_at"`
}

type CreateTimeWindowRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	StartTime     *int   `json:"start_time" binding:"required,gte=0,lt=1440"`
	EndTime       *int   `json:"end_time" binding:"required,gte=0,lt=1440"`
	CategoryID    string `json:"category_id" binding:"required"`
	DayTemplateID string `json:"day_template_id" binding:"required"`
}

type UpdateTimeWindowRequest struct {
	Name       *string `json:"name" binding:"omitempty,max=100"`
	StartTime  *int    `json:"start_time" binding:"omitempty,gte=0,lt=1440"`
	EndTime    *int    `json:"end_time" binding:"omitempty,gte=0,lt=1440"`
	CategoryID *string `json:"category_id"`
}
