package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/marketloop/marketplace/internal/trust"
)

// Component weights for the overall confidence score
const (
	priceWeight    = 0.4
	ratingWeight   = 0.4
	distanceWeight = 0.2
)

// Scorer computes listing confidence scores. It is stateless and safe for
// concurrent use.
type Scorer struct {
	maxDistance        float64
	currencySymbol     string
	recommendThreshold int
}

// NewScorer creates a scorer. Zero-valued knobs fall back to the defaults
// (5 km cutoff, "₹", threshold 70).
func NewScorer(maxDistance float64, currencySymbol string, recommendThreshold int) *Scorer {
	if maxDistance <= 0 {
		maxDistance = 5
	}
	if currencySymbol == "" {
		currencySymbol = "₹"
	}
	if recommendThreshold <= 0 {
		recommendThreshold = 70
	}
	return &Scorer{
		maxDistance:        maxDistance,
		currencySymbol:     currencySymbol,
		recommendThreshold: recommendThreshold,
	}
}

// priceScore scores a price against its comparable group: the cheapest
// listing gets 10, the most expensive 0. A listing with no comparables
// scores a neutral 5.
func (s *Scorer) priceScore(price float64, group []Listing) float64 {
	if len(group) <= 1 {
		return 5
	}

	min, max := groupPriceBounds(group)
	return normalizeLinear(sanitizeNonNegative(price), min, max)
}

// ratingScore converts a 0-5 seller rating to the 0-10 scale. A missing or
// zero rating scores a neutral 5 so new sellers aren't penalized.
func (s *Scorer) ratingScore(rating float64) float64 {
	if math.IsNaN(rating) || rating <= 0 {
		return 5
	}
	if rating > 5 {
		rating = 5
	}
	return rating / 5 * 10
}

// distanceScore scores proximity: same location is 10, anything at or beyond
// the cutoff is 0, linear in between.
func (s *Scorer) distanceScore(distance float64) float64 {
	distance = sanitizeNonNegative(distance)
	if distance == 0 {
		return 10
	}
	if distance >= s.maxDistance {
		return 0
	}
	return normalizeLinear(distance, 0, s.maxDistance)
}

// ConfidenceScore combines price, rating and distance into a 0-100 score
func (s *Scorer) ConfidenceScore(listing Listing, group []Listing) int {
	combined := (s.priceScore(listing.Price, group)*priceWeight +
		s.ratingScore(listing.SellerRating)*ratingWeight +
		s.distanceScore(listing.Distance)*distanceWeight) * 10

	score := int(math.Round(combined))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// reasons evaluates the four recommendation rules in fixed order. Every rule
// that applies appends its message, so the output sequence is stable.
func (s *Scorer) reasons(listing Listing, group []Listing) []string {
	reasons := []string{}

	// 1. Price vs. comparable group
	if len(group) > 1 {
		min, _ := groupPriceBounds(group)
		mean := groupPriceMean(group)
		price := sanitizeNonNegative(listing.Price)

		if price == min {
			reasons = append(reasons, "Best price in area")
		} else if price < mean {
			savings := int(math.Round(mean - price))
			reasons = append(reasons, fmt.Sprintf("%s%d less than average", s.currencySymbol, savings))
		}
	}

	// 2. Seller rating tier
	if listing.SellerRating >= 4.5 {
		reasons = append(reasons, fmt.Sprintf("Highly rated seller (%.1f★)", listing.SellerRating))
	} else if listing.SellerRating >= 4.0 {
		reasons = append(reasons, fmt.Sprintf("Good seller rating (%.1f★)", listing.SellerRating))
	}

	// 3. Distance tier
	distance := sanitizeNonNegative(listing.Distance)
	if distance <= 1 {
		reasons = append(reasons, "Very close (< 1 km)")
	} else if distance <= 2 {
		reasons = append(reasons, fmt.Sprintf("Nearby (%.1f km)", distance))
	} else if distance <= s.maxDistance {
		reasons = append(reasons, fmt.Sprintf("Within %.1f km", distance))
	}

	// 4. Seller trust badge
	if listing.SellerTier >= trust.TierGold {
		name := listing.SellerTier.String()
		reasons = append(reasons, strings.ToUpper(name[:1])+name[1:]+" seller")
	}

	return reasons
}

// ScoreAll scores every listing against its comparable group and returns the
// results sorted by confidence descending. Within each group the top three
// listings are recommendation candidates; a candidate is recommended only if
// its score reaches the threshold. Ties everywhere break by listing id
// ascending so the ordering is deterministic.
func (s *Scorer) ScoreAll(listings []Listing) []ScoreResult {
	if len(listings) == 0 {
		return []ScoreResult{}
	}

	groups := GroupListings(listings)

	results := make([]ScoreResult, 0, len(listings))
	byID := make(map[string]*ScoreResult, len(listings))
	for _, listing := range listings {
		group := groups[GroupKey(listing.Title, listing.Category)]
		results = append(results, ScoreResult{
			ListingID:       listing.ID,
			ConfidenceScore: s.ConfidenceScore(listing, group),
			Reasons:         s.reasons(listing, group),
		})
	}
	for i := range results {
		byID[results[i].ListingID.String()] = &results[i]
	}

	// Mark the top candidates per comparable group
	for _, group := range groups {
		members := make([]*ScoreResult, 0, len(group))
		for _, listing := range group {
			members = append(members, byID[listing.ID.String()])
		}
		sort.Slice(members, func(i, j int) bool {
			if members[i].ConfidenceScore != members[j].ConfidenceScore {
				return members[i].ConfidenceScore > members[j].ConfidenceScore
			}
			return members[i].ListingID.String() < members[j].ListingID.String()
		})

		for i := 0; i < len(members) && i < 3; i++ {
			if members[i].ConfidenceScore >= s.recommendThreshold {
				members[i].IsRecommended = true
			}
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].ConfidenceScore != results[j].ConfidenceScore {
			return results[i].ConfidenceScore > results[j].ConfidenceScore
		}
		return results[i].ListingID.String() < results[j].ListingID.String()
	})

	return results
}

func groupPriceBounds(group []Listing) (float64, float64) {
	min := math.Inf(1)
	max := math.Inf(-1)
	for _, listing := range group {
		price := sanitizeNonNegative(listing.Price)
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

func groupPriceMean(group []Listing) float64 {
	var sum float64
	for _, listing := range group {
		sum += sanitizeNonNegative(listing.Price)
	}
	return sum / float64(len(group))
}
