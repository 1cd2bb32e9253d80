package trust

import (
	"math"

	"github.com/google/uuid"
)

// tierLadder lists the full conjunction required for each tier above "new".
// Every row is evaluated; the highest satisfied row wins, so improving any
// metric can never demote a seller.
var tierLadder = []struct {
	tier       Tier
	minReviews int
	minRating  float64
	minGenuine int
}{
	{TierVerified, 1, 0, 0},
	{TierTrusted, 5, 3.5, 0},
	{TierSilver, 10, 4.0, 85},
	{TierGold, 20, 4.5, 90},
	{TierPlatinum, 50, 4.8, 95},
}

// Aggregate reduces a seller's feedback events to a trust snapshot. Only
// verified events count; a seller with none is "new" across the board.
func Aggregate(sellerID uuid.UUID, events []FeedbackEvent) SellerTrustSnapshot {
	var totalReviews, genuineCount int
	var ratingSum float64

	for _, event := range events {
		if !event.Verified {
			continue
		}
		totalReviews++
		ratingSum += float64(event.Rating)
		if event.IsGenuine {
			genuineCount++
		}
	}

	if totalReviews == 0 {
		return SellerTrustSnapshot{SellerID: sellerID, Tier: TierNew}
	}

	averageRating := ratingSum / float64(totalReviews)
	genuinePercentage := int(math.Round(float64(genuineCount) / float64(totalReviews) * 100))

	tier := TierNew
	for _, rung := range tierLadder {
		if totalReviews >= rung.minReviews &&
			averageRating >= rung.minRating &&
			genuinePercentage >= rung.minGenuine &&
			rung.tier > tier {
			tier = rung.tier
		}
	}

	return SellerTrustSnapshot{
		SellerID:          sellerID,
		AverageRating:     math.Round(averageRating*10) / 10,
		TotalReviews:      totalReviews,
		GenuinePercentage: genuinePercentage,
		Tier:              tier,
	}
}
