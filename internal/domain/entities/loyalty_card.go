package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// LoyaltyCard tracks one customer's progress toward the current reward
// cycle at one merchant. At most one card exists per (customer, merchant).
type LoyaltyCard struct {
	ID             uuid.UUID `json:"id"`
	CustomerID     uuid.UUID `json:"customerId"`
	MerchantID     uuid.UUID `json:"merchantId"`
	WashCount      int       `json:"washCount"`
	CycleStartedAt null.Time `json:"cycleStartedAt,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CycleExpired reports whether the current cycle started more than
// windowDays ago. A zero window never expires; a card with no cycle in
// progress has nothing to expire.
func (c *LoyaltyCard) CycleExpired(windowDays int, now time.Time) bool {
	if windowDays <= 0 || !c.CycleStartedAt.Valid {
		return false
	}
	deadline := c.CycleStartedAt.Time.AddDate(0, 0, windowDays)
	return now.After(deadline)
}

// CardProgress is a customer-facing view of a loyalty card
type CardProgress struct {
	CardID         uuid.UUID `json:"cardId"`
	MerchantID     uuid.UUID `json:"merchantId"`
	BusinessName   string    `json:"businessName"`
	RewardName     string    `json:"rewardName"`
	WashCount      int       `json:"washCount"`
	WashesRequired int       `json:"washesRequired"`
	Remaining      int       `json:"remaining"`
	CycleStartedAt null.Time `json:"cycleStartedAt,omitempty"`
}
