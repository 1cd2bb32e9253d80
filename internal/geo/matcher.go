package geo

import "strings"

const pincodeWidth = 6

// NormalizePincode trims a pincode and zero-pads it to six digits
func NormalizePincode(pincode string) string {
	pincode = strings.TrimSpace(pincode)
	if len(pincode) >= pincodeWidth {
		return pincode
	}
	return strings.Repeat("0", pincodeWidth-len(pincode)) + pincode
}

// Matcher classifies pincodes and partitions candidates into proximity
// buckets relative to a reference pincode. Pure and safe for concurrent use.
type Matcher struct {
	lookup RegionLookup
}

// NewMatcher creates a matcher over the given region lookup
func NewMatcher(lookup RegionLookup) *Matcher {
	return &Matcher{lookup: lookup}
}

// RegionOf resolves a pincode to its region, nil when unknown
func (m *Matcher) RegionOf(pincode string) *PincodeRegion {
	return m.lookup.Lookup(pincode)
}

// IsSame reports whether two pincodes are identical after normalization
func (m *Matcher) IsSame(a, b string) bool {
	return NormalizePincode(a) == NormalizePincode(b)
}

// Group partitions candidates relative to the reference pincode. A candidate
// without a postal code always lands in the different-region bucket, as does
// everything else when the reference region itself is unknown.
func (m *Matcher) Group(candidates []Candidate, referencePincode string) Groups {
	reference := NormalizePincode(referencePincode)
	referenceRegion := m.lookup.Lookup(reference)

	groups := Groups{
		SamePincode:     []Candidate{},
		NearbyPincodes:  []Candidate{},
		DifferentRegion: []Candidate{},
	}

	for _, candidate := range candidates {
		if candidate.Pincode == "" {
			groups.DifferentRegion = append(groups.DifferentRegion, candidate)
			continue
		}

		if m.IsSame(reference, candidate.Pincode) {
			groups.SamePincode = append(groups.SamePincode, candidate)
			continue
		}

		if referenceRegion != nil {
			if candidateRegion := m.lookup.Lookup(candidate.Pincode); candidateRegion != nil &&
				candidateRegion.Region == referenceRegion.Region {
				groups.NearbyPincodes = append(groups.NearbyPincodes, candidate)
				continue
			}
		}

		groups.DifferentRegion = append(groups.DifferentRegion, candidate)
	}

	return groups
}
