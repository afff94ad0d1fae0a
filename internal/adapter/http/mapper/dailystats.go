package mapper

import (
	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/core/domain"
)

func ToDailyStatsItem(stats domain.UserDailyStats) dto.DailyStatsItem {
	return dto.DailyStatsItem{
		Date:               stats.Date.Format("2006-01-02"),
		TotalSecondsSpent:  stats.TotalSecondsSpent,
		PomodorosCompleted: stats.PomodorosCompleted,
	}
}
