package recommend

import "strings"

// GroupKey builds the comparable-group key for a listing. Matching is exact
// on the normalized strings; near-duplicate titles form separate groups.
func GroupKey(title, category string) string {
	return strings.ToLower(strings.TrimSpace(title)) + "_" + strings.ToLower(category)
}

// GroupListings partitions listings into comparable sets keyed by normalized
// title and category. Every listing belongs to exactly one group, which
// always contains at least the listing itself.
func GroupListings(listings []Listing) map[string][]Listing {
	groups := make(map[string][]Listing)
	for _, listing := range listings {
		key := GroupKey(listing.Title, listing.Category)
		groups[key] = append(groups[key], listing)
	}
	return groups
}
