package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TextGenerator is the single capability the suggestion feature needs from
// an LLM provider.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type SuggestionService interface {
	ImproveTitle(ctx context.Context, userID, taskID primitive.ObjectID) (string, error)
	ImproveDescription(ctx context.Context, userID, taskID primitive.ObjectID) (string, error)
}
