package geo

import (
	"context"

	"github.com/google/uuid"
)

// Service handles the nearby-sellers grouping path
type Service struct {
	repo    RepositoryInterface
	matcher *Matcher
}

// NewService creates a new geo service
func NewService(repo RepositoryInterface, matcher *Matcher) *Service {
	return &Service{repo: repo, matcher: matcher}
}

// NearbySellers partitions the active sellers around a reference pincode
func (s *Service) NearbySellers(ctx context.Context, referencePincode string, userID uuid.UUID) (*Groups, *PincodeRegion, error) {
	candidates, err := s.repo.GetActiveSellers(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	groups := s.matcher.Group(candidates, referencePincode)
	region := s.matcher.RegionOf(referencePincode)
	return &groups, region, nil
}
