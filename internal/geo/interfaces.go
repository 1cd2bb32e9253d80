package geo

import (
	"context"

	"github.com/google/uuid"
)

// RepositoryInterface defines the interface for candidate fetches
type RepositoryInterface interface {
	GetActiveSellers(ctx context.Context, excludeUserID uuid.UUID) ([]Candidate, error)
}
