package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/40min/flocus-sub000/internal/core/domain"
	"github.com/40min/flocus-sub000/internal/core/ports"
)

const (
	improveTitlePrompt = "Rewrite the following task title so it is short, " +
		"specific and actionable. Reply with the improved title only.\n\nTitle: %s"
	improveDescriptionPrompt = "Rewrite the following task description so it is " +
		"clear and concrete. Reply with the improved description only.\n\nDescription: %s"
)

// SuggestionService wraps a task field in a fixed instruction template and
// forwards whatever the text generator returns.
type SuggestionService struct {
	tasks     ports.TaskRepository
	generator ports.TextGenerator
}

func NewSuggestionService(tasks ports.TaskRepository, generator ports.TextGenerator) *SuggestionService {
	return &SuggestionService{tasks: tasks, generator: generator}
}

func (s *SuggestionService) ImproveTitle(ctx context.Context, userID, taskID primitive.ObjectID) (string, error) {
	task, err := s.ownedActive(ctx, userID, taskID)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(task.Title) == "" {
		return "", domain.ErrDataMissing
	}
	return s.generate(ctx, fmt.Sprintf(improveTitlePrompt, task.Title))
}

func (s *SuggestionService) ImproveDescription(ctx context.Context, userID, taskID primitive.ObjectID) (string, error) {
	task, err := s.ownedActive(ctx, userID, taskID)
	if err != nil {
		return "", err
	}
	if task.Description == nil || strings.TrimSpace(*task.Description) == "" {
		return "", domain.ErrDataMissing
	}
	return s.generate(ctx, fmt.Sprintf(improveDescriptionPrompt, *task.Description))
}

func (s *SuggestionService) generate(ctx context.Context, prompt string) (string, error) {
	if s.generator == nil {
		return "", domain.ErrGenerationFailed
	}
	result, err := s.generator.GenerateText(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	if strings.TrimSpace(result) == "" || strings.HasPrefix(result, "Error") {
		return "", domain.ErrGenerationFailed
	}
	return result, nil
}

func (s *SuggestionService) ownedActive(ctx context.Context, userID, id primitive.ObjectID) (*domain.Task, error) {
	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.IsDeleted {
		return nil, domain.ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return task, nil
}

var _ ports.SuggestionService = (*SuggestionService)(nil)
