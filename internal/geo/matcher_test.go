package geo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeCandidate(name, pincode string) Candidate {
	return Candidate{UserID: uuid.New(), Name: name, Pincode: pincode}
}

func TestNormalizePincode(t *testing.T) {
	assert.Equal(t, "110001", NormalizePincode("110001"))
	assert.Equal(t, "001101", NormalizePincode("1101"))
	assert.Equal(t, "110001", NormalizePincode("  110001  "))
	assert.Equal(t, "1100011", NormalizePincode("1100011"), "longer codes pass through")
}

func TestIsSame(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	assert.True(t, m.IsSame("110001", "110001"))
	assert.True(t, m.IsSame("1101", "001101"), "padding applies before comparison")
	assert.False(t, m.IsSame("110001", "110002"))
}

func TestRegionOf(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	delhi := m.RegionOf("110051")
	require.NotNil(t, delhi)
	assert.Equal(t, "Delhi", delhi.City)
	assert.Equal(t, "delhi", delhi.Region)

	assert.Nil(t, m.RegionOf("999999"), "outside every known range")
	assert.Nil(t, m.RegionOf("ABC123"), "non-numeric pincodes resolve to nothing")
}

func TestGroup_Partitions(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	same := makeCandidate("same-pin seller", "110001")
	nearby := makeCandidate("cross-town seller", "110050")
	farAway := makeCandidate("mumbai seller", "400001")
	noPin := makeCandidate("no-pincode seller", "")

	groups := m.Group([]Candidate{same, nearby, farAway, noPin}, "110001")

	require.Len(t, groups.SamePincode, 1)
	assert.Equal(t, same.UserID, groups.SamePincode[0].UserID)

	require.Len(t, groups.NearbyPincodes, 1)
	assert.Equal(t, nearby.UserID, groups.NearbyPincodes[0].UserID)

	require.Len(t, groups.DifferentRegion, 2)
	assert.Equal(t, farAway.UserID, groups.DifferentRegion[0].UserID)
	assert.Equal(t, noPin.UserID, groups.DifferentRegion[1].UserID)
}

func TestGroup_UnknownReferenceStillMatchesExactPincode(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	exact := makeCandidate("exact match", "999999")
	known := makeCandidate("known region seller", "110001")

	groups := m.Group([]Candidate{exact, known}, "999999")

	require.Len(t, groups.SamePincode, 1)
	assert.Equal(t, exact.UserID, groups.SamePincode[0].UserID)
	assert.Empty(t, groups.NearbyPincodes, "no nearby bucket without a reference region")
	require.Len(t, groups.DifferentRegion, 1)
}

func TestGroup_PadsShortReference(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	candidate := makeCandidate("padded match", "001101")
	groups := m.Group([]Candidate{candidate}, "1101")

	assert.Len(t, groups.SamePincode, 1)
}

func TestGroup_EmptyCandidates(t *testing.T) {
	m := NewMatcher(NewDefaultLookup())

	groups := m.Group(nil, "110001")
	assert.NotNil(t, groups.SamePincode)
	assert.NotNil(t, groups.NearbyPincodes)
	assert.NotNil(t, groups.DifferentRegion)
	assert.Empty(t, groups.SamePincode)
}
