package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// MerchantPlan represents subscription plans
type MerchantPlan string

const (
	MerchantPlanBasic MerchantPlan = "basic"
	MerchantPlanPro   MerchantPlan = "pro"
)

// SubscriptionStatus represents merchant subscription status
type SubscriptionStatus string

const (
	SubscriptionActive           SubscriptionStatus = "active"
	SubscriptionInactive         SubscriptionStatus = "inactive"
	SubscriptionPending          SubscriptionStatus = "pending"
	SubscriptionAwaitingApproval SubscriptionStatus = "awaiting_approval"
	SubscriptionExpired          SubscriptionStatus = "expired"
)

// ValidSubscriptionStatus reports whether s is a known subscription status
func ValidSubscriptionStatus(s SubscriptionStatus) bool {
	switch s {
	case SubscriptionActive, SubscriptionInactive, SubscriptionPending,
		SubscriptionAwaitingApproval, SubscriptionExpired:
		return true
	}
	return false
}

// Merchant represents a car-wash business tenant
type Merchant struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	BusinessName       string             `json:"businessName"`
	City               string             `json:"city"`
	Plan               MerchantPlan       `json:"plan"`
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus"`
	RegistrationCode   string             `json:"registrationCode"`
	ApprovedAt         null.Time          `json:"approvedAt,omitempty"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
	DeletedAt          null.Time          `json:"-"`
}

// IsActive reports whether the merchant may record washes and redeem rewards
func (m *Merchant) IsActive() bool {
	return m.SubscriptionStatus == SubscriptionActive
}

// MerchantSettings holds per-merchant loyalty configuration.
// WindowDays == 0 means the reward cycle never expires.
type MerchantSettings struct {
	MerchantID     uuid.UUID `json:"merchantId"`
	RewardName     string    `json:"rewardName"`
	WashesRequired int       `json:"washesRequired"`
	WindowDays     int       `json:"windowDays"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// UpdateSettingsInput represents input for updating merchant settings
type UpdateSettingsInput struct {
	RewardName     string `json:"rewardName" binding:"required,min=2,max=100"`
	WashesRequired int    `json:"washesRequired" binding:"required,min=1"`
	WindowDays     int    `json:"windowDays" binding:"min=0"`
}

// MerchantPublicInfo is what a registration code resolves to.
// It exposes only what a customer needs to complete enrollment.
type MerchantPublicInfo struct {
	MerchantID   uuid.UUID `json:"merchantId"`
	BusinessName string    `json:"businessName"`
	City         string    `json:"city"`
	Active       bool      `json:"active"`
}

// UpdateSubscriptionInput represents superadmin input for subscription changes
type UpdateSubscriptionInput struct {
	Status SubscriptionStatus `json:"status" binding:"required"`
	Plan   MerchantPlan       `json:"plan,omitempty"`
}
