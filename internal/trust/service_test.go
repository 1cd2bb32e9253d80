package trust

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockFeedbackRepository struct {
	mock.Mock
}

func (m *mockFeedbackRepository) CreateFeedback(ctx context.Context, event *FeedbackEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockFeedbackRepository) GetFeedbackByID(ctx context.Context, feedbackID uuid.UUID) (*FeedbackEvent, error) {
	args := m.Called(ctx, feedbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FeedbackEvent), args.Error(1)
}

func (m *mockFeedbackRepository) GetFeedbackBySeller(ctx context.Context, sellerID uuid.UUID) ([]FeedbackEvent, error) {
	args := m.Called(ctx, sellerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]FeedbackEvent), args.Error(1)
}

func (m *mockFeedbackRepository) GetVerifiedReviews(ctx context.Context, sellerID uuid.UUID, limit, offset int) ([]FeedbackEvent, int, error) {
	args := m.Called(ctx, sellerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]FeedbackEvent), args.Int(1), args.Error(2)
}

func (m *mockFeedbackRepository) MarkVerified(ctx context.Context, feedbackID uuid.UUID) (bool, error) {
	args := m.Called(ctx, feedbackID)
	return args.Bool(0), args.Error(1)
}

func (m *mockFeedbackRepository) IncrementHelpful(ctx context.Context, feedbackID uuid.UUID) error {
	args := m.Called(ctx, feedbackID)
	return args.Error(0)
}

func TestGetSellerTrust_AggregatesFreshEvents(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	sellerID := uuid.New()
	events := []FeedbackEvent{
		{ID: uuid.New(), Rating: 5, IsGenuine: true, Verified: true},
		{ID: uuid.New(), Rating: 4, IsGenuine: true, Verified: true},
		{ID: uuid.New(), Rating: 1, IsGenuine: false, Verified: false},
	}
	repo.On("GetFeedbackBySeller", mock.Anything, sellerID).Return(events, nil)

	snapshot, err := service.GetSellerTrust(context.Background(), sellerID)
	require.NoError(t, err)
	assert.Equal(t, sellerID, snapshot.SellerID)
	assert.Equal(t, 2, snapshot.TotalReviews)
	assert.InDelta(t, 4.5, snapshot.AverageRating, 0.001)
	assert.Equal(t, TierVerified, snapshot.Tier)
	repo.AssertExpectations(t)
}

func TestSubmitFeedback_StartsUnverifiedWithDefaults(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	req := &SubmitFeedbackRequest{
		ItemID:   uuid.New(),
		OrderID:  uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Rating:   5,
		Comment:  "great seller, fast shipping",
	}

	repo.On("CreateFeedback", mock.Anything, mock.MatchedBy(func(event *FeedbackEvent) bool {
		return event.ID != uuid.Nil &&
			!event.Verified &&
			event.IsGenuine &&
			event.HelpfulCount == 0 &&
			!event.CreatedAt.IsZero()
	})).Return(nil)

	event, err := service.SubmitFeedback(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, event.Verified)
	assert.True(t, event.IsGenuine)
	repo.AssertExpectations(t)
}

func TestSubmitFeedback_HonorsExplicitGenuineFlag(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	notGenuine := false
	req := &SubmitFeedbackRequest{
		ItemID:    uuid.New(),
		OrderID:   uuid.New(),
		BuyerID:   uuid.New(),
		SellerID:  uuid.New(),
		Rating:    2,
		IsGenuine: &notGenuine,
	}

	repo.On("CreateFeedback", mock.Anything, mock.Anything).Return(nil)

	event, err := service.SubmitFeedback(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, event.IsGenuine)
}

func TestVerifyFeedback_TransitionsOnce(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	feedbackID := uuid.New()
	repo.On("MarkVerified", mock.Anything, feedbackID).Return(true, nil)

	assert.NoError(t, service.VerifyFeedback(context.Background(), feedbackID))
	repo.AssertExpectations(t)
}

func TestVerifyFeedback_AlreadyVerifiedIsConflict(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	feedbackID := uuid.New()
	repo.On("MarkVerified", mock.Anything, feedbackID).Return(false, nil)
	repo.On("GetFeedbackByID", mock.Anything, feedbackID).Return(&FeedbackEvent{ID: feedbackID, Verified: true}, nil)

	err := service.VerifyFeedback(context.Background(), feedbackID)
	require.Error(t, err)

	var apiErr *common.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 409, apiErr.StatusCode)
}

func TestVerifyFeedback_MissingFeedback(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	feedbackID := uuid.New()
	notFound := common.NewNotFoundError("feedback not found")
	repo.On("MarkVerified", mock.Anything, feedbackID).Return(false, nil)
	repo.On("GetFeedbackByID", mock.Anything, feedbackID).Return(nil, notFound)

	err := service.VerifyFeedback(context.Background(), feedbackID)
	assert.ErrorIs(t, err, notFound)
}

func TestGetSellerReviews_Pagination(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	sellerID := uuid.New()
	page := []FeedbackEvent{{ID: uuid.New(), Rating: 5, Verified: true}}
	repo.On("GetVerifiedReviews", mock.Anything, sellerID, 5, 5).Return(page, 12, nil)

	reviews, meta, err := service.GetSellerReviews(context.Background(), sellerID, 2, 5)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 12, meta.Total)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.Limit)
	assert.Equal(t, 3, meta.Pages)
}

func TestGetSellerReviews_ClampsBadPaging(t *testing.T) {
	repo := new(mockFeedbackRepository)
	service := NewService(repo)

	sellerID := uuid.New()
	repo.On("GetVerifiedReviews", mock.Anything, sellerID, 5, 0).Return([]FeedbackEvent(nil), 0, nil)

	reviews, meta, err := service.GetSellerReviews(context.Background(), sellerID, -3, 500)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 5, meta.Limit)
}
