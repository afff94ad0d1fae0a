package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

type dayTemplateFixture struct {
	svc        *DayTemplateService
	templates  *fakeDayTemplateRepo
	windows    *fakeTimeWindowRepo
	categories *fakeCategoryRepo
	userID     primitive.ObjectID
	categoryID primitive.ObjectID
}

func newDayTemplateFixture(t *testing.T) *dayTemplateFixture {
	t.Helper()

	templates := newFakeDayTemplateRepo()
	windows := newFakeTimeWindowRepo()
	categories := newFakeCategoryRepo()
	svc := NewDayTemplateService(templates, windows, categories)
	svc.now = fixedNow

	userID := primitive.NewObjectID()
	category := domain.Category{ID: primitive.NewObjectID(), UserID: userID, Name: "Work"}
	require.NoError(t, categories.Insert(context.Background(), &category))

	return &dayTemplateFixture{
		svc:        svc,
		templates:  templates,
		windows:    windows,
		categories: categories,
		userID:     userID,
		categoryID: category.ID,
	}
}

func (f *dayTemplateFixture) addWindow(t *testing.T, name string, start, end int) primitive.ObjectID {
	t.Helper()
	window := domain.TimeWindow{
		ID:         primitive.NewObjectID(),
		UserID:     f.userID,
		Name:       name,
		StartTime:  start,
		EndTime:    end,
		CategoryID: f.categoryID,
	}
	require.NoError(t, f.windows.Insert(context.Background(), &window))
	return window.ID
}

func TestDayTemplateService_CreateAndResolve(t *testing.T) {
	f := newDayTemplateFixture(t)
	morning := f.addWindow(t, "Morning", 540, 720)
	afternoon := f.addWindow(t, "Afternoon", 780, 1020)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{afternoon, morning},
	})
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), f.userID, created.ID)
	require.NoError(t, err)
	require.Len(t, got.TimeWindows, 2)
	// Windows come back in the stored order, not start order.
	require.Equal(t, "Afternoon", got.TimeWindows[0].Name)
	require.Equal(t, "Morning", got.TimeWindows[1].Name)
	require.NotNil(t, got.TimeWindows[0].Category)
	require.Equal(t, "Work", got.TimeWindows[0].Category.Name)
}

func TestDayTemplateService_CreateRejectsUnknownWindow(t *testing.T) {
	f := newDayTemplateFixture(t)
	missing := primitive.NewObjectID()

	_, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{missing},
	})
	require.ErrorIs(t, err, domain.ErrTimeWindowNotFound)
	require.Contains(t, err.Error(), missing.Hex())
}

func TestDayTemplateService_CreateRejectsForeignWindow(t *testing.T) {
	f := newDayTemplateFixture(t)

	foreign := domain.TimeWindow{
		ID:         primitive.NewObjectID(),
		UserID:     primitive.NewObjectID(),
		Name:       "Foreign",
		StartTime:  0,
		EndTime:    60,
		CategoryID: f.categoryID,
	}
	require.NoError(t, f.windows.Insert(context.Background(), &foreign))

	_, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{foreign.ID},
	})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestDayTemplateService_CreateDuplicateName(t *testing.T) {
	f := newDayTemplateFixture(t)

	_, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{Name: "Weekday"})
	require.NoError(t, err)
	_, err = f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{Name: "Weekday"})
	require.ErrorIs(t, err, domain.ErrNameConflict)
}

func TestDayTemplateService_GetFailsOnDeletedWindowRef(t *testing.T) {
	f := newDayTemplateFixture(t)
	windowID := f.addWindow(t, "Morning", 540, 720)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{windowID},
	})
	require.NoError(t, err)

	// Soft-deleting a referenced window makes template reads fail loudly.
	window, err := f.windows.FindByID(context.Background(), windowID)
	require.NoError(t, err)
	window.IsDeleted = true
	require.NoError(t, f.windows.Update(context.Background(), window))

	_, err = f.svc.Get(context.Background(), f.userID, created.ID)
	require.ErrorIs(t, err, domain.ErrTimeWindowNotFound)
	require.Contains(t, err.Error(), windowID.Hex())
}

func TestDayTemplateService_UpdateReplacesWindowList(t *testing.T) {
	f := newDayTemplateFixture(t)
	morning := f.addWindow(t, "Morning", 540, 720)
	evening := f.addWindow(t, "Evening", 1080, 1260)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{morning},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), f.userID, created.ID, domain.UpdateDayTemplateInput{
		TimeWindowIDs:  []primitive.ObjectID{evening},
		TimeWindowsSet: true,
	})
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{evening}, updated.TimeWindowIDs)
	require.Len(t, updated.TimeWindows, 1)
	require.Equal(t, "Evening", updated.TimeWindows[0].Name)
}

func TestDayTemplateService_UpdateOmittedWindowsKept(t *testing.T) {
	f := newDayTemplateFixture(t)
	morning := f.addWindow(t, "Morning", 540, 720)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{
		Name:          "Weekday",
		TimeWindowIDs: []primitive.ObjectID{morning},
	})
	require.NoError(t, err)

	updated, err := f.svc.Update(context.Background(), f.userID, created.ID, domain.UpdateDayTemplateInput{
		Name: strPtr("Workday"),
	})
	require.NoError(t, err)
	require.Equal(t, "Workday", updated.Name)
	require.Equal(t, []primitive.ObjectID{morning}, updated.TimeWindowIDs)
}

func TestDayTemplateService_DeleteIsHard(t *testing.T) {
	f := newDayTemplateFixture(t)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{Name: "Weekday"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(context.Background(), f.userID, created.ID))

	_, err = f.svc.Get(context.Background(), f.userID, created.ID)
	require.ErrorIs(t, err, domain.ErrDayTemplateNotFound)

	// The name is free again.
	_, err = f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{Name: "Weekday"})
	require.NoError(t, err)
}

func TestDayTemplateService_DeleteForeign(t *testing.T) {
	f := newDayTemplateFixture(t)

	created, err := f.svc.Create(context.Background(), f.userID, domain.CreateDayTemplateInput{Name: "Weekday"})
	require.NoError(t, err)

	err = f.svc.Delete(context.Background(), primitive.NewObjectID(), created.ID)
	require.ErrorIs(t, err, domain.ErrForbidden)
}
