package fraud

import (
	"time"

	"github.com/google/uuid"
)

// Risk level thresholds on the suspicion score
const (
	mediumThreshold   = 20
	highThreshold     = 50
	criticalThreshold = 80
)

var userWarnings = map[RiskLevel]string{
	RiskLow:      "",
	RiskMedium:   "⚠️ CAUTION: Be careful when dealing with this listing. Verify product and seller before making payment.",
	RiskHigh:     "⚠️ WARNING: This listing shows suspicious patterns. Proceed with extreme caution and verify seller authenticity.",
	RiskCritical: "⚠️ SCAM ALERT: This listing has been flagged as highly suspicious. Do not proceed with any transaction.",
}

var actions = map[RiskLevel]Action{
	RiskLow:      ActionNone,
	RiskMedium:   ActionCaution,
	RiskHigh:     ActionAvoid,
	RiskCritical: ActionBlock,
}

// Score reduces a set of pre-evaluated signals into a fraud report. The
// suspicion score is the clamped sum of signal weights; the flag order is
// preserved from the input so reports are reproducible.
func Score(listingID uuid.UUID, signals []Signal) Report {
	score := 0
	for _, signal := range signals {
		if signal.Weight > 0 {
			score += signal.Weight
		}
	}
	if score > 100 {
		score = 100
	}

	level := riskLevelFor(score)
	if signals == nil {
		signals = []Signal{}
	}

	return Report{
		ListingID:      listingID,
		SuspicionScore: score,
		RiskLevel:      level,
		Flags:          signals,
		Recommendation: Recommendation{
			Action:      actions[level],
			UserWarning: userWarnings[level],
		},
		GeneratedAt: time.Now(),
	}
}

func riskLevelFor(score int) RiskLevel {
	switch {
	case score >= criticalThreshold:
		return RiskCritical
	case score >= highThreshold:
		return RiskHigh
	case score >= mediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Suppressed reports whether a report is below the user-facing display
// threshold. The scorer still emits the full report; callers use this to
// keep clean listings free of fraud chrome.
func (r Report) Suppressed() bool {
	return r.RiskLevel == RiskLow && r.SuspicionScore < mediumThreshold
}
