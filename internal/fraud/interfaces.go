package fraud

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for fraud content fetches
type RepositoryInterface interface {
	GetListingContent(ctx context.Context, listingID uuid.UUID) (*ListingContent, error)
}
