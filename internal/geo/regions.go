package geo

import "strconv"

// RegionLookup resolves a normalized pincode to its region, or nil when the
// code is unknown. Injected so the reference data can be swapped without
// touching the matching logic.
type RegionLookup interface {
	Lookup(pincode string) *PincodeRegion
}

// defaultRegions covers the major metro ranges. A production deployment
// would load a complete postal database behind the same interface.
var defaultRegions = []PincodeRegion{
	{City: "Delhi", State: "Delhi", Region: "delhi", Area: "New Delhi", MinCode: 110001, MaxCode: 110097},
	{City: "Mumbai", State: "Maharashtra", Region: "mumbai", Area: "Fort", MinCode: 400001, MaxCode: 400999},
	{City: "Bangalore", State: "Karnataka", Region: "bangalore", Area: "Residency Road", MinCode: 560001, MaxCode: 560100},
	{City: "Hyderabad", State: "Telangana", Region: "hyderabad", Area: "Secunderabad", MinCode: 500001, MaxCode: 500084},
	{City: "Pune", State: "Maharashtra", Region: "pune", Area: "Camp", MinCode: 411001, MaxCode: 411060},
	{City: "Chennai", State: "Tamil Nadu", Region: "chennai", Area: "Georgetown", MinCode: 600001, MaxCode: 600119},
	{City: "Kolkata", State: "West Bengal", Region: "kolkata", Area: "Kolkata Town", MinCode: 700001, MaxCode: 700160},
	{City: "Ahmedabad", State: "Gujarat", Region: "ahmedabad", Area: "Civil Lines", MinCode: 380001, MaxCode: 380076},
	{City: "Jaipur", State: "Rajasthan", Region: "jaipur", Area: "C Scheme", MinCode: 302001, MaxCode: 302040},
	{City: "Surat", State: "Gujarat", Region: "surat", Area: "Station Road", MinCode: 395001, MaxCode: 395009},
}

// TableLookup resolves pincodes against an in-memory range table with a
// linear scan; the first containing range wins.
type TableLookup struct {
	regions []PincodeRegion
}

// NewTableLookup creates a lookup over the given rows
func NewTableLookup(regions []PincodeRegion) *TableLookup {
	return &TableLookup{regions: regions}
}

// NewDefaultLookup creates a lookup over the built-in metro table
func NewDefaultLookup() *TableLookup {
	return NewTableLookup(defaultRegions)
}

// Lookup returns the first region whose range contains the pincode, or nil
// for unknown or non-numeric codes. Unknown is not an error.
func (t *TableLookup) Lookup(pincode string) *PincodeRegion {
	code, err := strconv.Atoi(NormalizePincode(pincode))
	if err != nil {
		return nil
	}
	for i := range t.regions {
		if code >= t.regions[i].MinCode && code <= t.regions[i].MaxCode {
			region := t.regions[i]
			return &region
		}
	}
	return nil
}
