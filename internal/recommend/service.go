package recommend

import (
	"context"

	"github.com/google/uuid"
	"github.com/marketloop/marketplace/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var listingScoresTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "listing_scores_total",
	Help: "Total number of listings scored for list responses",
})

// Service handles the listing-list scoring path
type Service struct {
	repo   RepositoryInterface
	scorer *Scorer
}

// NewService creates a new recommend service
func NewService(repo RepositoryInterface, scorer *Scorer) *Service {
	return &Service{repo: repo, scorer: scorer}
}

// ListScoredListings fetches the active listing snapshot, attaches the
// viewer's precomputed distances and returns listings annotated and sorted by
// confidence score descending.
func (s *Service) ListScoredListings(ctx context.Context, category string, viewerID uuid.UUID) ([]ScoredListing, error) {
	listings, err := s.repo.GetActiveListings(ctx, category)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return []ScoredListing{}, nil
	}

	distances, err := s.repo.GetViewerDistances(ctx, viewerID)
	if err != nil {
		// A cold distance cache must not break listing rendering; everything
		// scores as same-location instead.
		logger.WithContext(ctx).Warn("distance snapshot unavailable, scoring with zero distances",
			zap.String("viewer_id", viewerID.String()), zap.Error(err))
		distances = map[uuid.UUID]float64{}
	}

	for i := range listings {
		listings[i].Distance = distances[listings[i].ID]
	}

	results := s.scorer.ScoreAll(listings)
	listingScoresTotal.Add(float64(len(results)))

	byID := make(map[uuid.UUID]Listing, len(listings))
	for _, listing := range listings {
		byID[listing.ID] = listing
	}

	scored := make([]ScoredListing, 0, len(results))
	for _, result := range results {
		scored = append(scored, ScoredListing{
			Listing:         byID[result.ListingID],
			ConfidenceScore: result.ConfidenceScore,
			IsRecommended:   result.IsRecommended,
			Reasons:         result.Reasons,
		})
	}
	return scored, nil
}
