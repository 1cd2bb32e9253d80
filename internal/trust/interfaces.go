package trust

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for feedback repository operations
type RepositoryInterface interface {
	CreateFeedback(ctx context.Context, event *FeedbackEvent) error
	GetFeedbackByID(ctx context.Context, feedbackID uuid.UUID) (*FeedbackEvent, error)
	GetFeedbackBySeller(ctx context.Context, sellerID uuid.UUID) ([]FeedbackEvent, error)
	GetVerifiedReviews(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]FeedbackEvent, int, error)
	MarkVerified(ctx context.Context, feedbackID uuid.UUID) (bool, error)
	IncrementHelpful(ctx context.Context, feedbackID uuid.UUID) error
}
