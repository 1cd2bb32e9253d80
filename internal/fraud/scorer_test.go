package fraud

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signalWithWeight(weight int) Signal {
	return Signal{Type: "test_signal", Severity: SeverityMedium, Weight: weight, Message: "test"}
}

func TestScore_RiskLevelBoundaries(t *testing.T) {
	tests := []struct {
		weight     int
		wantLevel  RiskLevel
		wantAction Action
	}{
		{0, RiskLow, ActionNone},
		{19, RiskLow, ActionNone},
		{20, RiskMedium, ActionCaution},
		{49, RiskMedium, ActionCaution},
		{50, RiskHigh, ActionAvoid},
		{79, RiskHigh, ActionAvoid},
		{80, RiskCritical, ActionBlock},
		{100, RiskCritical, ActionBlock},
	}

	for _, tt := range tests {
		report := Score(uuid.New(), []Signal{signalWithWeight(tt.weight)})
		assert.Equal(t, tt.weight, report.SuspicionScore, "weight %d", tt.weight)
		assert.Equal(t, tt.wantLevel, report.RiskLevel, "weight %d", tt.weight)
		assert.Equal(t, tt.wantAction, report.Recommendation.Action, "weight %d", tt.weight)
	}
}

func TestScore_ClampsAtHundred(t *testing.T) {
	report := Score(uuid.New(), []Signal{signalWithWeight(60), signalWithWeight(60)})
	assert.Equal(t, 100, report.SuspicionScore)
	assert.Equal(t, RiskCritical, report.RiskLevel)
}

func TestScore_IgnoresNonPositiveWeights(t *testing.T) {
	report := Score(uuid.New(), []Signal{signalWithWeight(-10), signalWithWeight(0), signalWithWeight(25)})
	assert.Equal(t, 25, report.SuspicionScore)
}

func TestScore_CleanListing(t *testing.T) {
	listingID := uuid.New()
	report := Score(listingID, nil)

	assert.Equal(t, listingID, report.ListingID)
	assert.Zero(t, report.SuspicionScore)
	assert.Equal(t, RiskLow, report.RiskLevel)
	assert.NotNil(t, report.Flags)
	assert.Empty(t, report.Flags)
	assert.Empty(t, report.Recommendation.UserWarning)
	assert.True(t, report.Suppressed())
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestScore_WarningsPresentFromMediumUp(t *testing.T) {
	for _, weight := range []int{20, 50, 80} {
		report := Score(uuid.New(), []Signal{signalWithWeight(weight)})
		assert.NotEmpty(t, report.Recommendation.UserWarning, "weight %d", weight)
		assert.False(t, report.Suppressed(), "weight %d", weight)
	}
}

func TestScore_PreservesFlagOrder(t *testing.T) {
	signals := []Signal{
		{Type: "first", Severity: SeverityHigh, Weight: 10},
		{Type: "second", Severity: SeverityLow, Weight: 5},
		{Type: "third", Severity: SeverityMedium, Weight: 15},
	}

	report := Score(uuid.New(), signals)
	require.Len(t, report.Flags, 3)
	assert.Equal(t, "first", report.Flags[0].Type)
	assert.Equal(t, "second", report.Flags[1].Type)
	assert.Equal(t, "third", report.Flags[2].Type)
}

func TestRiskLevel_Ordering(t *testing.T) {
	assert.True(t, RiskLow < RiskMedium)
	assert.True(t, RiskMedium < RiskHigh)
	assert.True(t, RiskHigh < RiskCritical)
	assert.Equal(t, "critical", RiskCritical.String())
	assert.Equal(t, "block", ActionBlock.String())
}
