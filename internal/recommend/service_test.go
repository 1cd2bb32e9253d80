package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockListingRepository struct {
	mock.Mock
}

func (m *mockListingRepository) GetActiveListings(ctx context.Context, category string) ([]Listing, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Listing), args.Error(1)
}

func (m *mockListingRepository) GetViewerDistances(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]float64, error) {
	args := m.Called(ctx, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]float64), args.Error(1)
}

func TestListScoredListings_AttachesDistancesAndSorts(t *testing.T) {
	repo := new(mockListingRepository)
	service := NewService(repo, NewScorer(5, "₹", 70))

	viewerID := uuid.New()
	near := makeListing("iphone 12", "electronics", 1000, 5, 0)
	far := makeListing("iphone 12", "electronics", 1000, 5, 0)

	repo.On("GetActiveListings", mock.Anything, "electronics").Return([]Listing{far, near}, nil)
	repo.On("GetViewerDistances", mock.Anything, viewerID).Return(map[uuid.UUID]float64{
		near.ID: 0.2,
		far.ID:  4.8,
	}, nil)

	scored, err := service.ListScoredListings(context.Background(), "electronics", viewerID)
	require.NoError(t, err)
	require.Len(t, scored, 2)

	assert.Equal(t, near.ID, scored[0].ID)
	assert.Equal(t, far.ID, scored[1].ID)
	assert.Greater(t, scored[0].ConfidenceScore, scored[1].ConfidenceScore)
	assert.InDelta(t, 0.2, scored[0].Distance, 0.001)
	repo.AssertExpectations(t)
}

func TestListScoredListings_DistanceCacheFailureDoesNotBreakListing(t *testing.T) {
	repo := new(mockListingRepository)
	service := NewService(repo, NewScorer(5, "₹", 70))

	viewerID := uuid.New()
	listing := makeListing("guitar", "music", 5000, 4.8, 0)

	repo.On("GetActiveListings", mock.Anything, "").Return([]Listing{listing}, nil)
	repo.On("GetViewerDistances", mock.Anything, viewerID).Return(nil, errors.New("redis down"))

	scored, err := service.ListScoredListings(context.Background(), "", viewerID)
	require.NoError(t, err)
	require.Len(t, scored, 1)
	assert.Zero(t, scored[0].Distance, "unknown distances score as same-location")
	repo.AssertExpectations(t)
}

func TestListScoredListings_EmptySnapshot(t *testing.T) {
	repo := new(mockListingRepository)
	service := NewService(repo, NewScorer(5, "₹", 70))

	repo.On("GetActiveListings", mock.Anything, "").Return([]Listing{}, nil)

	scored, err := service.ListScoredListings(context.Background(), "", uuid.Nil)
	require.NoError(t, err)
	assert.Empty(t, scored)
	repo.AssertNotCalled(t, "GetViewerDistances", mock.Anything, mock.Anything)
}

func TestListScoredListings_RepositoryError(t *testing.T) {
	repo := new(mockListingRepository)
	service := NewService(repo, NewScorer(5, "₹", 70))

	repo.On("GetActiveListings", mock.Anything, "").Return(nil, errors.New("db down"))

	_, err := service.ListScoredListings(context.Background(), "", uuid.Nil)
	assert.Error(t, err)
}
