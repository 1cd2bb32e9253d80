package trust

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tier is an ordered seller reputation classification. Higher values always
// mean a better standing, so tiers can be compared with < and >.
type Tier int

const (
	TierNew Tier = iota
	TierVerified
	TierTrusted
	TierSilver
	TierGold
	TierPlatinum
)

var tierNames = map[Tier]string{
	TierNew:      "new",
	TierVerified: "verified",
	TierTrusted:  "trusted",
	TierSilver:   "silver",
	TierGold:     "gold",
	TierPlatinum: "platinum",
}

// String returns the tier name
func (t Tier) String() string {
	if name, ok := tierNames[t]; ok {
		return name
	}
	return "new"
}

// MarshalJSON encodes the tier as its name
func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a tier from its name
func (t *Tier) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for tier, tierName := range tierNames {
		if tierName == name {
			*t = tier
			return nil
		}
	}
	return fmt.Errorf("unknown trust tier %q", name)
}

// ParseTier maps a tier name to its ordered value; unknown names are "new"
func ParseTier(name string) Tier {
	for tier, tierName := range tierNames {
		if tierName == name {
			return tier
		}
	}
	return TierNew
}

// CategoryRatings holds optional per-aspect ratings on a feedback event
type CategoryRatings struct {
	Quality       *int `json:"quality,omitempty"`
	Description   *int `json:"description,omitempty"`
	Communication *int `json:"communication,omitempty"`
	Shipping      *int `json:"shipping,omitempty"`
}

// FeedbackEvent is a buyer's review of a completed order. At most one exists
// per (item, buyer) pair; the uniqueness is enforced by the persistence layer.
type FeedbackEvent struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	ItemID          uuid.UUID        `json:"item_id" db:"item_id"`
	OrderID         uuid.UUID        `json:"order_id" db:"order_id"`
	BuyerID         uuid.UUID        `json:"buyer_id" db:"buyer_id"`
	SellerID        uuid.UUID        `json:"seller_id" db:"seller_id"`
	Rating          int              `json:"rating" db:"rating"`
	CategoryRatings *CategoryRatings `json:"category_ratings,omitempty" db:"category_ratings"`
	IsGenuine       bool             `json:"is_genuine" db:"is_genuine"`
	Comment         string           `json:"comment" db:"comment"`
	Verified        bool             `json:"verified" db:"verified"`
	HelpfulCount    int              `json:"helpful_count" db:"helpful_count"`
	BuyerName       string           `json:"buyer_name,omitempty" db:"buyer_name"`
	ItemTitle       string           `json:"item_title,omitempty" db:"item_title"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
}

// SellerTrustSnapshot is derived fresh from verified feedback events on every
// request. It is never persisted as authoritative state.
type SellerTrustSnapshot struct {
	SellerID          uuid.UUID `json:"seller_id"`
	AverageRating     float64   `json:"average_rating"`
	TotalReviews      int       `json:"total_reviews"`
	GenuinePercentage int       `json:"genuine_percentage"`
	Tier              Tier      `json:"trust_tier"`
}

// SubmitFeedbackRequest is the request body for leaving feedback on an order
type SubmitFeedbackRequest struct {
	ItemID          uuid.UUID        `json:"item_id" binding:"required"`
	OrderID         uuid.UUID        `json:"order_id" binding:"required"`
	BuyerID         uuid.UUID        `json:"buyer_id" binding:"required"`
	SellerID        uuid.UUID        `json:"seller_id" binding:"required"`
	Rating          int              `json:"rating" binding:"required,gte=1,lte=5"`
	CategoryRatings *CategoryRatings `json:"category_ratings,omitempty"`
	IsGenuine       *bool            `json:"is_genuine,omitempty"`
	Comment         string           `json:"comment" binding:"omitempty,min=5,max=500"`
	BuyerName       string           `json:"buyer_name,omitempty"`
	ItemTitle       string           `json:"item_title,omitempty"`
}
