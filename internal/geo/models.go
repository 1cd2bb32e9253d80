package geo

import "github.com/google/uuid"

// PincodeRegion is one row of the static postal-code reference table: an
// inclusive numeric code range mapped to a named locality.
type PincodeRegion struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Region  string `json:"region"`
	Area    string `json:"area"`
	MinCode int    `json:"-"`
	MaxCode int    `json:"-"`
}

// Candidate is a counterpart user considered for geographic grouping
type Candidate struct {
	UserID  uuid.UUID `json:"user_id"`
	Name    string    `json:"name,omitempty"`
	Pincode string    `json:"pincode,omitempty"`
}

// Groups partitions candidates by proximity to a reference pincode
type Groups struct {
	SamePincode     []Candidate `json:"same_pincode"`
	NearbyPincodes  []Candidate `json:"nearby_pincodes"`
	DifferentRegion []Candidate `json:"different_region"`
}
