package trust

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
)

// Service handles seller trust business logic
type Service struct {
	repo RepositoryInterface
}

// NewService creates a new trust service
func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

// GetSellerTrust derives a trust snapshot from the seller's current feedback.
// The snapshot is recomputed from a fresh event fetch on every call so a newly
// verified review is reflected immediately; it must not be cached.
func (s *Service) GetSellerTrust(ctx context.Context, sellerID uuid.UUID) (*SellerTrustSnapshot, error) {
	events, err := s.repo.GetFeedbackBySeller(ctx, sellerID)
	if err != nil {
		return nil, err
	}

	snapshot := Aggregate(sellerID, events)
	return &snapshot, nil
}

// SubmitFeedback records a buyer's feedback for a completed order. New
// feedback starts unverified and does not affect the seller's tier until
// moderation verifies it.
func (s *Service) SubmitFeedback(ctx context.Context, req *SubmitFeedbackRequest) (*FeedbackEvent, error) {
	isGenuine := true
	if req.IsGenuine != nil {
		isGenuine = *req.IsGenuine
	}

	event := &FeedbackEvent{
		ID:              uuid.New(),
		ItemID:          req.ItemID,
		OrderID:         req.OrderID,
		BuyerID:         req.BuyerID,
		SellerID:        req.SellerID,
		Rating:          req.Rating,
		CategoryRatings: req.CategoryRatings,
		IsGenuine:       isGenuine,
		Comment:         req.Comment,
		Verified:        false,
		HelpfulCount:    0,
		BuyerName:       req.BuyerName,
		ItemTitle:       req.ItemTitle,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.CreateFeedback(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// VerifyFeedback marks a feedback event as moderation-verified. The flag
// transitions false -> true exactly once; verifying twice is a conflict.
func (s *Service) VerifyFeedback(ctx context.Context, feedbackID uuid.UUID) error {
	updated, err := s.repo.MarkVerified(ctx, feedbackID)
	if err != nil {
		return err
	}
	if !updated {
		if _, err := s.repo.GetFeedbackByID(ctx, feedbackID); err != nil {
			return err
		}
		return common.NewConflictError("feedback is already verified")
	}
	return nil
}

// MarkHelpful increments the helpful vote counter
func (s *Service) MarkHelpful(ctx context.Context, feedbackID uuid.UUID) error {
	return s.repo.IncrementHelpful(ctx, feedbackID)
}

// GetSellerReviews returns a page of verified reviews for a seller profile
func (s *Service) GetSellerReviews(ctx context.Context, sellerID uuid.UUID, page, limit int) ([]FeedbackEvent, *common.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 5
	}

	reviews, total, err := s.repo.GetVerifiedReviews(ctx, sellerID, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}
	if reviews == nil {
		reviews = []FeedbackEvent{}
	}

	pages := (total + limit - 1) / limit
	meta := &common.PaginationMeta{Total: total, Page: page, Limit: limit, Pages: pages}
	return reviews, meta, nil
}
