package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/adapter/http/dto"
	"github.com/40min/flocus-sub000/internal/adapter/http/handlers"
	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/pkg/apierrors"
)

type categoryServiceMock struct {
	mock.Mock
}

func (m *categoryServiceMock) Create(ctx context.Context, userID primitive.ObjectID, input domain.CreateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, userID, input)

	var category *domain.Category
	if value := args.Get(0); value != nil {
		category = value.(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *categoryServiceMock) Get(ctx context.Context, userID, id primitive.ObjectID) (*domain.Category, error) {
	args := m.Called(ctx, userID, id)

	var category *domain.Category
	if value := args.Get(0); value != nil {
		category = value.(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *categoryServiceMock) List(ctx context.Context, userID primitive.ObjectID) ([]domain.Category, error) {
	args := m.Called(ctx, userID)

	var categories []domain.Category
	if value := args.Get(0); value != nil {
		categories = value.([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *categoryServiceMock) Update(ctx context.Context, userID, id primitive.ObjectID, input domain.UpdateCategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, userID, id, input)

	var category *domain.Category
	if value := args.Get(0); value != nil {
		category = value.(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *categoryServiceMock) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

func categoryRouter(serviceMock *categoryServiceMock) *gin.Engine {
	handler := handlers.NewCategoryHandler(serviceMock)
	return newRouter(func(api *gin.RouterGroup) {
		api.POST("/categories", handler.Create)
		api.GET("/categories/:id", handler.Get)
		api.DELETE("/categories/:id", handler.Delete)
	})
}

func TestCategoryHandler_Create_Success(t *testing.T) {
	userID := primitive.NewObjectID()
	createdAt := time.Date(2026, 3, 2, 10, 20, 30, 0, time.UTC)
	color := "#00AA00"

	serviceMock := new(categoryServiceMock)
	serviceMock.On("Create", mock.Anything, userID, domain.CreateCategoryInput{
		Name:  "Work",
		Color: &color,
	}).Return(
		&domain.Category{
			ID:        primitive.NewObjectID(),
			UserID:    userID,
			Name:      "Work",
			Color:     &color,
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
		},
		nil,
	).Once()

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodPost, "/api/categories", userID.Hex(),
		strings.NewReader(`{"name":"Work","color":"#00AA00"}`))

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.CategoryItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Work", got.Name)
	require.Equal(t, "#00AA00", *got.Color)
	require.Equal(t, "2026-03-02T10:20:30Z", got.CreatedAt)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_Create_NameConflict(t *testing.T) {
	userID := primitive.NewObjectID()

	serviceMock := new(categoryServiceMock)
	serviceMock.On("Create", mock.Anything, userID, mock.Anything).Return(nil, domain.ErrNameConflict).Once()

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodPost, "/api/categories", userID.Hex(),
		strings.NewReader(`{"name":"Work"}`))

	require.Equal(t, http.StatusConflict, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Name is already in use", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_Create_InvalidPayload(t *testing.T) {
	serviceMock := new(categoryServiceMock)

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodPost, "/api/categories", primitive.NewObjectID().Hex(),
		strings.NewReader(`{"color":"not-a-color"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid payload", got.ErrDetails.Message)
}

func TestCategoryHandler_Get_MissingIdentity(t *testing.T) {
	serviceMock := new(categoryServiceMock)

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/api/categories/"+primitive.NewObjectID().Hex(), "", nil)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Missing or invalid user identity", got.ErrDetails.Message)
}

func TestCategoryHandler_Get_InvalidID(t *testing.T) {
	serviceMock := new(categoryServiceMock)

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/api/categories/not-an-id", primitive.NewObjectID().Hex(), nil)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
}

func TestCategoryHandler_Get_NotFound(t *testing.T) {
	userID := primitive.NewObjectID()
	categoryID := primitive.NewObjectID()

	serviceMock := new(categoryServiceMock)
	serviceMock.On("Get", mock.Anything, userID, categoryID).Return(nil, domain.ErrCategoryNotFound).Once()

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/api/categories/"+categoryID.Hex(), userID.Hex(), nil)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Category not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_Get_Forbidden(t *testing.T) {
	userID := primitive.NewObjectID()
	categoryID := primitive.NewObjectID()

	serviceMock := new(categoryServiceMock)
	serviceMock.On("Get", mock.Anything, userID, categoryID).Return(nil, domain.ErrForbidden).Once()

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodGet, "/api/categories/"+categoryID.Hex(), userID.Hex(), nil)

	require.Equal(t, http.StatusForbidden, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestCategoryHandler_Delete_Success(t *testing.T) {
	userID := primitive.NewObjectID()
	categoryID := primitive.NewObjectID()

	serviceMock := new(categoryServiceMock)
	serviceMock.On("Delete", mock.Anything, userID, categoryID).Return(nil).Once()

	router := categoryRouter(serviceMock)
	rec := doRequest(router, http.MethodDelete, "/api/categories/"+categoryID.Hex(), userID.Hex(), nil)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Empty(t, rec.Body.Bytes())
	serviceMock.AssertExpectations(t)
}
