package http

import (
	"github.com/gin-gonic/gin"

	"github.com/40min/flocus-sub000/internal/adapter/http/handlers"
	"github.com/40min/flocus-sub000/internal/adapter/http/middleware"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Categories  *handlers.CategoryHandler
	TimeWindows *handlers.TimeWindowHandler
	Templates   *handlers.DayTemplateHandler
	Tasks       *handlers.TaskHandler
	Plans       *handlers.DailyPlanHandler
	Stats       *handlers.DailyStatsHandler
	Suggestions *handlers.SuggestionHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	// Everything below is scoped to the acting user.
	authed := api.Group("")
	authed.Use(middleware.IdentityMiddleware())
	{
		authed.POST("/categories", h.Categories.Create)
		authed.GET("/categories", h.Categories.List)
		authed.GET("/categories/:id", h.Categories.Get)
		authed.PATCH("/categories/:id", h.Categories.Update)
		authed.DELETE("/categories/:id", h.Categories.Delete)

		authed.POST("/time-windows", h.TimeWindows.Create)
		authed.GET("/time-windows", h.TimeWindows.List)
		authed.GET("/time-windows/:id", h.TimeWindows.Get)
		authed.PATCH("/time-windows/:id", h.TimeWindows.Update)
		authed.DELETE("/time-windows/:id", h.TimeWindows.Delete)

		authed.POST("/day-templates", h.Templates.Create)
		authed.GET("/day-templates", h.Templates.List)
		authed.GET("/day-templates/:id", h.Templates.Get)
		authed.PATCH("/day-templates/:id", h.Templates.Update)
		authed.DELETE("/day-templates/:id", h.Templates.Delete)

		authed.POST("/tasks", h.Tasks.Create)
		authed.GET("/tasks", h.Tasks.List)
		authed.GET("/tasks/:id", h.Tasks.Get)
		authed.PATCH("/tasks/:id", h.Tasks.Update)
		authed.DELETE("/tasks/:id", h.Tasks.Delete)
		authed.POST("/tasks/:id/suggest-title", h.Suggestions.ImproveTitle)
		authed.POST("/tasks/:id/suggest-description", h.Suggestions.ImproveDescription)

		authed.POST("/plans", h.Plans.Create)
		authed.GET("/plans/by-date/:date", h.Plans.GetByDate)
		authed.GET("/plans/:id", h.Plans.Get)
		authed.PATCH("/plans/:id", h.Plans.Update)
		authed.DELETE("/plans/:id", h.Plans.Delete)
		authed.POST("/plans/:id/approve", h.Plans.Approve)
		authed.POST("/plans/:id/reconcile", h.Plans.Reconcile)

		authed.GET("/stats/today", h.Stats.GetToday)
		authed.POST("/stats/time", h.Stats.AddTime)
		authed.POST("/stats/pomodoro", h.Stats.AddPomodoro)
	}
}
