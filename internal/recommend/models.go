package recommend

import (
	"github.com/google/uuid"
	"github.com/marketloop/marketplace/internal/trust"
)

// Listing is the scoring input snapshot for a single marketplace listing.
// Price and distance are already fetched by collaborators; distance is
// precomputed for the viewing user in the same unit as MaxDistance.
type Listing struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Category     string     `json:"category"`
	Price        float64    `json:"price"`
	SellerID     uuid.UUID  `json:"seller_id"`
	Distance     float64    `json:"distance"`
	SellerRating float64    `json:"seller_rating"` // stored snapshot, 0 when absent
	SellerTier   trust.Tier `json:"seller_tier"`
}

// ScoreResult is the per-listing scoring output. Computed per request and
// never persisted.
type ScoreResult struct {
	ListingID       uuid.UUID `json:"listing_id"`
	ConfidenceScore int       `json:"confidence_score"`
	IsRecommended   bool      `json:"is_recommended"`
	Reasons         []string  `json:"reasons"`
}

// ScoredListing pairs a listing with its score for list responses
type ScoredListing struct {
	Listing
	ConfidenceScore int      `json:"confidence_score"`
	IsRecommended   bool     `json:"is_recommended"`
	Reasons         []string `json:"reasons"`
}
