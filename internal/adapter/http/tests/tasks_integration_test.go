//go:build integration
// +build integration

package tests

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	dbadapter "github.com/40min/flocus-sub000/internal/adapter/db"
	httpadapter "github.com/40min/flocus-sub000/internal/adapter/http"
	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/handlers"
	appservice "github.com/40min/flocus-sub000/internal/app/service"
	"github.com/40min/flocus-sub000/pkg/apierrors"
)

type TasksIntegrationSuite struct {
	IntegrationSuiteBase
	router *gin.Engine
	userID primitive.ObjectID
}

func TestTasksIntegrationSuite(t *testing.T) {
	suite.Run(t, new(TasksIntegrationSuite))
}

func (s *TasksIntegrationSuite) SetupTest() {
	s.ResetDatabase()
	s.userID = primitive.NewObjectID()

	categoryRepo := dbadapter.NewCategoryRepository(s.DB)
	windowRepo := dbadapter.NewTimeWindowRepository(s.DB)
	templateRepo := dbadapter.NewDayTemplateRepository(s.DB)
	taskRepo := dbadapter.NewTaskRepository(s.DB)
	planRepo := dbadapter.NewDailyPlanRepository(s.DB)
	statsRepo := dbadapter.NewDailyStatsRepository(s.DB)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:      handlers.NewHealthHandler(s.DB),
		Categories:  handlers.NewCategoryHandler(appservice.NewCategoryService(categoryRepo)),
		TimeWindows: handlers.NewTimeWindowHandler(appservice.NewTimeWindowService(windowRepo, categoryRepo, templateRepo)),
		Templates:   handlers.NewDayTemplateHandler(appservice.NewDayTemplateService(templateRepo, windowRepo, categoryRepo)),
		Tasks:       handlers.NewTaskHandler(appservice.NewTaskService(taskRepo, categoryRepo)),
		Plans:       handlers.NewDailyPlanHandler(appservice.NewDailyPlanService(planRepo, categoryRepo, taskRepo)),
		Stats:       handlers.NewDailyStatsHandler(appservice.NewDailyStatsService(statsRepo)),
		Suggestions: handlers.NewSuggestionHandler(appservice.NewSuggestionService(taskRepo, nil)),
	})
	s.router = router
}

func (s *TasksIntegrationSuite) do(method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("X-User-ID", s.userID.Hex())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *TasksIntegrationSuite) createTask(body string) dto.TaskItem {
	rec := s.do(http.MethodPost, "/api/tasks", strings.NewReader(body))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var got dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func (s *TasksIntegrationSuite) TestPostTasks_CreatesWithDefaults() {
	got := s.createTask(`{"title":"Write report"}`)

	s.Require().Equal("Write report", got.Title)
	s.Require().Equal("pending", got.Status)
	s.Require().Equal("medium", got.Priority)
	s.Require().Nil(got.CategoryID)
	s.Require().Zero(got.Statistics.LastsMinutes)
	s.Require().NotEmpty(got.CreatedAt)
}

func (s *TasksIntegrationSuite) TestPostTasks_DuplicateTitle() {
	s.createTask(`{"title":"Write report"}`)

	rec := s.do(http.MethodPost, "/api/tasks", strings.NewReader(`{"title":"Write report"}`))
	s.Require().Equal(http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Name is already in use", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestPatchTasks_StatusTransitionPersistsStatistics() {
	task := s.createTask(`{"title":"Write report"}`)

	rec := s.do(http.MethodPatch, "/api/tasks/"+task.ID, strings.NewReader(`{"status":"in_progress"}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var started dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &started))
	s.Require().Equal("in_progress", started.Status)
	s.Require().NotNil(started.Statistics.WasStartedAt)

	rec = s.do(http.MethodPatch, "/api/tasks/"+task.ID, strings.NewReader(`{"status":"done","add_minutes":15}`))
	s.Require().Equal(http.StatusOK, rec.Code)

	var done dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &done))
	s.Require().Equal("done", done.Status)
	s.Require().NotNil(done.Statistics.WasStoppedAt)
	s.Require().GreaterOrEqual(done.Statistics.LastsMinutes, 15)

	// Survives a fresh read.
	rec = s.do(http.MethodGet, "/api/tasks/"+task.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &fetched))
	s.Require().Equal(done.Statistics.LastsMinutes, fetched.Statistics.LastsMinutes)
}

func (s *TasksIntegrationSuite) TestGetTasks_SortedByPriority() {
	s.createTask(`{"title":"medium one","priority":"medium"}`)
	s.createTask(`{"title":"urgent one","priority":"urgent"}`)
	s.createTask(`{"title":"low one","priority":"low"}`)

	rec := s.do(http.MethodGet, "/api/tasks?sort_by=priority&sort_order=desc", nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var got []dto.TaskItem
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 3)
	s.Require().Equal("urgent one", got[0].Title)
	s.Require().Equal("medium one", got[1].Title)
	s.Require().Equal("low one", got[2].Title)
}

func (s *TasksIntegrationSuite) TestDeleteTasks_HidesAndFreesTitle() {
	task := s.createTask(`{"title":"Write report"}`)

	rec := s.do(http.MethodDelete, "/api/tasks/"+task.ID, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/tasks/"+task.ID, nil)
	s.Require().Equal(http.StatusNotFound, rec.Code)

	// Idempotent.
	rec = s.do(http.MethodDelete, "/api/tasks/"+task.ID, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	s.createTask(`{"title":"Write report"}`)
}

func (s *TasksIntegrationSuite) TestSuggestTitle_WithoutGenerator() {
	task := s.createTask(`{"title":"Write report"}`)

	rec := s.do(http.MethodPost, "/api/tasks/"+task.ID+"/suggest-title", nil)
	s.Require().Equal(http.StatusBadGateway, rec.Code)

	var got apierrors.JsonErr
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal("Text generation failed", got.ErrDetails.Message)
}

func (s *TasksIntegrationSuite) TestHealthReport() {
	req := httptest.NewRequest(http.MethodGet, "/api/health/report", nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code)

	var got handlers.HealthAdvanced
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Equal(handlers.StatusOk, got.Status.Mongo)
}
