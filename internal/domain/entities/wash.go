package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// WashHistory is an immutable wash event recorded by a successful scan.
// Rows are never mutated after creation.
type WashHistory struct {
	ID         uuid.UUID   `json:"id"`
	CustomerID uuid.UUID   `json:"customerId"`
	MerchantID uuid.UUID   `json:"merchantId"`
	WashedAt   time.Time   `json:"washedAt"`
	Price      float64     `json:"price"`
	Rating     null.Int    `json:"rating,omitempty"`
	Comment    null.String `json:"comment,omitempty"`
}

// ScanInput is the body of a scan request
type ScanInput struct {
	Code  string  `json:"code" binding:"required"`
	Price float64 `json:"price" binding:"min=0"`
}

// ScanResult is returned after a wash has been recorded
type ScanResult struct {
	Customer     *CustomerInfo `json:"customer"`
	WashCount    int           `json:"washCount"`
	Remaining    int           `json:"remaining"`
	RewardIssued bool          `json:"rewardIssued"`
	Reward       *Reward       `json:"reward,omitempty"`
	RewardQR     string        `json:"rewardQr,omitempty"` // PNG data URL
}

// ScanPreview is returned by the validation-only variant; nothing is recorded
type ScanPreview struct {
	Customer  *CustomerInfo `json:"customer"`
	WashCount int           `json:"washCount"`
	Remaining int           `json:"remaining"`
}
