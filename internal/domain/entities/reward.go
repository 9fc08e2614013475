package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// RewardStatus represents the lifecycle of a reward
type RewardStatus string

const (
	RewardStatusIssued  RewardStatus = "issued"
	RewardStatusClaimed RewardStatus = "claimed"
)

// Reward is a redeemable credit issued when a loyalty cycle completes.
// Its code is single-use: issued -> claimed is a terminal transition.
type Reward struct {
	ID         uuid.UUID    `json:"id"`
	CustomerID uuid.UUID    `json:"customerId"`
	MerchantID uuid.UUID    `json:"merchantId"`
	Name       string       `json:"name"`
	Code       string       `json:"code"`
	Status     RewardStatus `json:"status"`
	IssuedAt   time.Time    `json:"issuedAt"`
	ClaimedAt  null.Time    `json:"claimedAt,omitempty"`
}

// RedeemResult is returned after a reward has been claimed
type RedeemResult struct {
	Reward   *Reward       `json:"reward"`
	Customer *CustomerInfo `json:"customer"`
}
