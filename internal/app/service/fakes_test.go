package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
)

// In-memory repositories backing the service tests. They keep documents in
// insertion order and hand out copies, matching what the mongo adapters do.

type fakeCategoryRepo struct {
	items map[primitive.ObjectID]domain.Category
	order []primitive.ObjectID
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: make(map[primitive.ObjectID]domain.Category)}
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Category, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *fakeCategoryRepo) FindActiveByName(_ context.Context, userID primitive.ObjectID, name string) (*domain.Category, error) {
	for _, id := range r.order {
		c := r.items[id]
		if c.UserID == userID && c.Name == name && !c.IsDeleted {
			return &c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Category, error) {
	var found []domain.Category
	for _, id := range ids {
		if c, ok := r.items[id]; ok {
			found = append(found, c)
		}
	}
	return found, nil
}

func (r *fakeCategoryRepo) ListActive(_ context.Context, userID primitive.ObjectID) ([]domain.Category, error) {
	var active []domain.Category
	for _, id := range r.order {
		c := r.items[id]
		if c.UserID == userID && !c.IsDeleted {
			active = append(active, c)
		}
	}
	return active, nil
}

func (r *fakeCategoryRepo) Insert(_ context.Context, category *domain.Category) error {
	r.items[category.ID] = *category
	r.order = append(r.order, category.ID)
	return nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := r.items[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.items[category.ID] = *category
	return nil
}

type fakeTimeWindowRepo struct {
	items map[primitive.ObjectID]domain.TimeWindow
	order []primitive.ObjectID
}

func newFakeTimeWindowRepo() *fakeTimeWindowRepo {
	return &fakeTimeWindowRepo{items: make(map[primitive.ObjectID]domain.TimeWindow)}
}

func (r *fakeTimeWindowRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.TimeWindow, error) {
	w, ok := r.items[id]
	if !ok {
		return nil, domain.ErrTimeWindowNotFound
	}
	return &w, nil
}

func (r *fakeTimeWindowRepo) FindActiveByName(_ context.Context, userID primitive.ObjectID, name string) (*domain.TimeWindow, error) {
	for _, id := range r.order {
		w := r.items[id]
		if w.UserID == userID && w.Name == name && !w.IsDeleted {
			return &w, nil
		}
	}
	return nil, domain.ErrTimeWindowNotFound
}

func (r *fakeTimeWindowRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.TimeWindow, error) {
	var found []domain.TimeWindow
	for _, id := range ids {
		if w, ok := r.items[id]; ok {
			found = append(found, w)
		}
	}
	return found, nil
}

func (r *fakeTimeWindowRepo) ListActive(_ context.Context, userID primitive.ObjectID) ([]domain.TimeWindow, error) {
	var active []domain.TimeWindow
	for _, id := range r.order {
		w := r.items[id]
		if w.UserID == userID && !w.IsDeleted {
			active = append(active, w)
		}
	}
	return active, nil
}

func (r *fakeTimeWindowRepo) Insert(_ context.Context, window *domain.TimeWindow) error {
	r.items[window.ID] = *window
	r.order = append(r.order, window.ID)
	return nil
}

func (r *fakeTimeWindowRepo) Update(_ context.Context, window *domain.TimeWindow) error {
	if _, ok := r.items[window.ID]; !ok {
		return domain.ErrTimeWindowNotFound
	}
	r.items[window.ID] = *window
	return nil
}

type fakeDayTemplateRepo struct {
	items map[primitive.ObjectID]domain.DayTemplate
	order []primitive.ObjectID
}

func newFakeDayTemplateRepo() *fakeDayTemplateRepo {
	return &fakeDayTemplateRepo{items: make(map[primitive.ObjectID]domain.DayTemplate)}
}

func (r *fakeDayTemplateRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.DayTemplate, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrDayTemplateNotFound
	}
	return &t, nil
}

func (r *fakeDayTemplateRepo) FindByName(_ context.Context, userID primitive.ObjectID, name string) (*domain.DayTemplate, error) {
	for _, id := range r.order {
		t := r.items[id]
		if t.UserID == userID && t.Name == name {
			return &t, nil
		}
	}
	return nil, domain.ErrDayTemplateNotFound
}

func (r *fakeDayTemplateRepo) List(_ context.Context, userID primitive.ObjectID) ([]domain.DayTemplate, error) {
	var templates []domain.DayTemplate
	for _, id := range r.order {
		t := r.items[id]
		if t.UserID == userID {
			templates = append(templates, t)
		}
	}
	return templates, nil
}

func (r *fakeDayTemplateRepo) Insert(_ context.Context, template *domain.DayTemplate) error {
	r.items[template.ID] = *template
	r.order = append(r.order, template.ID)
	return nil
}

func (r *fakeDayTemplateRepo) Update(_ context.Context, template *domain.DayTemplate) error {
	if _, ok := r.items[template.ID]; !ok {
		return domain.ErrDayTemplateNotFound
	}
	r.items[template.ID] = *template
	return nil
}

func (r *fakeDayTemplateRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrDayTemplateNotFound
	}
	delete(r.items, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeTaskRepo struct {
	items map[primitive.ObjectID]domain.Task
	order []primitive.ObjectID
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{items: make(map[primitive.ObjectID]domain.Task)}
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Task, error) {
	t, ok := r.items[id]
	if !ok {
		return nil, domain.ErrTaskNotFound
	}
	return &t, nil
}

func (r *fakeTaskRepo) FindActiveByTitle(_ context.Context, userID primitive.ObjectID, title string) (*domain.Task, error) {
	for _, id := range r.order {
		t := r.items[id]
		if t.UserID == userID && t.Title == title && !t.IsDeleted {
			return &t, nil
		}
	}
	return nil, domain.ErrTaskNotFound
}

func (r *fakeTaskRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]domain.Task, error) {
	var found []domain.Task
	for _, id := range ids {
		if t, ok := r.items[id]; ok {
			found = append(found, t)
		}
	}
	return found, nil
}

func (r *fakeTaskRepo) ListActive(_ context.Context, userID primitive.ObjectID) ([]domain.Task, error) {
	var active []domain.Task
	for _, id := range r.order {
		t := r.items[id]
		if t.UserID == userID && !t.IsDeleted {
			active = append(active, t)
		}
	}
	return active, nil
}

func (r *fakeTaskRepo) Insert(_ context.Context, task *domain.Task) error {
	r.items[task.ID] = *task
	r.order = append(r.order, task.ID)
	return nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *domain.Task) error {
	if _, ok := r.items[task.ID]; !ok {
		return domain.ErrTaskNotFound
	}
	r.items[task.ID] = *task
	return nil
}

type planKey struct {
	userID primitive.ObjectID
	day    time.Time
}

type fakeDailyPlanRepo struct {
	items  map[primitive.ObjectID]domain.DailyPlan
	byDate map[planKey]primitive.ObjectID
}

func newFakeDailyPlanRepo() *fakeDailyPlanRepo {
	return &fakeDailyPlanRepo{
		items:  make(map[primitive.ObjectID]domain.DailyPlan),
		byDate: make(map[planKey]primitive.ObjectID),
	}
}

func (r *fakeDailyPlanRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.DailyPlan, error) {
	p, ok := r.items[id]
	if !ok {
		return nil, domain.ErrDailyPlanNotFound
	}
	return &p, nil
}

func (r *fakeDailyPlanRepo) FindByUserAndDate(_ context.Context, userID primitive.ObjectID, day time.Time) (*domain.DailyPlan, error) {
	id, ok := r.byDate[planKey{userID, day}]
	if !ok {
		return nil, domain.ErrDailyPlanNotFound
	}
	p := r.items[id]
	return &p, nil
}

func (r *fakeDailyPlanRepo) Insert(_ context.Context, plan *domain.DailyPlan) error {
	r.items[plan.ID] = *plan
	r.byDate[planKey{plan.UserID, plan.Date}] = plan.ID
	return nil
}

func (r *fakeDailyPlanRepo) Update(_ context.Context, plan *domain.DailyPlan) error {
	if _, ok := r.items[plan.ID]; !ok {
		return domain.ErrDailyPlanNotFound
	}
	r.items[plan.ID] = *plan
	return nil
}

func (r *fakeDailyPlanRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	p, ok := r.items[id]
	if !ok {
		return domain.ErrDailyPlanNotFound
	}
	delete(r.items, id)
	delete(r.byDate, planKey{p.UserID, p.Date})
	return nil
}

type fakeDailyStatsRepo struct {
	items map[planKey]domain.UserDailyStats
}

func newFakeDailyStatsRepo() *fakeDailyStatsRepo {
	return &fakeDailyStatsRepo{items: make(map[planKey]domain.UserDailyStats)}
}

func (r *fakeDailyStatsRepo) FindOrCreate(_ context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error) {
	stats := r.get(userID, day)
	return &stats, nil
}

func (r *fakeDailyStatsRepo) IncrementTime(_ context.Context, userID primitive.ObjectID, day time.Time, seconds int64) (*domain.UserDailyStats, error) {
	stats := r.get(userID, day)
	stats.TotalSecondsSpent += seconds
	r.items[planKey{userID, day}] = stats
	return &stats, nil
}

func (r *fakeDailyStatsRepo) IncrementPomodoro(_ context.Context, userID primitive.ObjectID, day time.Time) (*domain.UserDailyStats, error) {
	stats := r.get(userID, day)
	stats.PomodorosCompleted++
	r.items[planKey{userID, day}] = stats
	return &stats, nil
}

func (r *fakeDailyStatsRepo) get(userID primitive.ObjectID, day time.Time) domain.UserDailyStats {
	key := planKey{userID, day}
	stats, ok := r.items[key]
	if !ok {
		stats = domain.UserDailyStats{
			ID:     primitive.NewObjectID(),
			UserID: userID,
			Date:   day,
		}
		r.items[key] = stats
	}
	return stats
}

type fakeTextGenerator struct {
	result  string
	err     error
	prompts []string
}

func (g *fakeTextGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	return g.result, nil
}
