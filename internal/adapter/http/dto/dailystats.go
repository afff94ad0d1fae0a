package dto

type DailyStatsItem struct {
	Date               string `json:"date"`
	TotalSecondsSpent  int64  `json:"total_seconds_spent"`
	PomodorosCompleted int    `json:"pomodoros_completed"`
}

type AddTimeRequest struct {
	Seconds int64 `json:"seconds" binding:"required,gt=0"`
}
