package fraud

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RiskLevel is an ordered risk classification; higher is worse
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskCritical
)

var riskLevelNames = map[RiskLevel]string{
	RiskLow:      "low",
	RiskMedium:   "medium",
	RiskHigh:     "high",
	RiskCritical: "critical",
}

// String returns the risk level name
func (r RiskLevel) String() string {
	if name, ok := riskLevelNames[r]; ok {
		return name
	}
	return "low"
}

// MarshalJSON encodes the risk level as its name
func (r RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a risk level from its name
func (r *RiskLevel) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for level, levelName := range riskLevelNames {
		if levelName == name {
			*r = level
			return nil
		}
	}
	return fmt.Errorf("unknown risk level %q", name)
}

// Action is the ordered recommended action for a risk level
type Action int

const (
	ActionNone Action = iota
	ActionCaution
	ActionAvoid
	ActionBlock
)

var actionNames = map[Action]string{
	ActionNone:    "none",
	ActionCaution: "caution",
	ActionAvoid:   "avoid",
	ActionBlock:   "block",
}

// String returns the action name
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "none"
}

// MarshalJSON encodes the action as its name
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// Signal severity labels
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Signal is a single matched fraud indicator with its severity weight
type Signal struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Weight   int    `json:"weight"`
	Message  string `json:"message"`
}

// Recommendation is the user-facing guidance attached to a report
type Recommendation struct {
	Action      Action `json:"action"`
	UserWarning string `json:"user_warning,omitempty"`
}

// Report is the per-view fraud classification for a listing. It is always
// computed in full; suppressing low-risk reports from display is the
// caller's job.
type Report struct {
	ListingID      uuid.UUID      `json:"listing_id"`
	SuspicionScore int            `json:"suspicion_score"`
	RiskLevel      RiskLevel      `json:"risk_level"`
	Flags          []Signal       `json:"flags"`
	Recommendation Recommendation `json:"recommendation"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

// ListingContent is the snapshot of listing and seller attributes the signal
// detector evaluates
type ListingContent struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Price           float64
	OriginalPrice   float64
	ImageCount      int
	SellerCreatedAt time.Time
}
