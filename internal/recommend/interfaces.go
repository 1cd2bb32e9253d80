package recommend

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for listing snapshot fetches
type RepositoryInterface interface {
	GetActiveListings(ctx context.Context, category string) ([]Listing, error)
	GetViewerDistances(ctx context.Context, viewerID uuid.UUID) (map[uuid.UUID]float64, error)
}
