package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

func TestLoyaltyCard_CycleExpired(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		started    null.Time
		windowDays int
		want       bool
	}{
		{"no cycle in progress", null.Time{}, 30, false},
		{"zero window never expires", null.TimeFrom(now.AddDate(-1, 0, 0)), 0, false},
		{"negative window never expires", null.TimeFrom(now.AddDate(-1, 0, 0)), -1, false},
		{"inside the window", null.TimeFrom(now.AddDate(0, 0, -29)), 30, false},
		{"exactly at the deadline", null.TimeFrom(now.AddDate(0, 0, -30)), 30, false},
		{"past the deadline", null.TimeFrom(now.AddDate(0, 0, -31)), 30, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := &LoyaltyCard{CycleStartedAt: tt.started}
			assert.Equal(t, tt.want, card.CycleExpired(tt.windowDays, now))
		})
	}
}

func TestMerchant_IsActive(t *testing.T) {
	assert.True(t, (&Merchant{SubscriptionStatus: SubscriptionActive}).IsActive())
	for _, status := range []SubscriptionStatus{
		SubscriptionPending, SubscriptionInactive, SubscriptionExpired, SubscriptionAwaitingApproval,
	} {
		assert.False(t, (&Merchant{SubscriptionStatus: status}).IsActive(), "status %s", status)
	}
}

func TestValidSubscriptionStatus(t *testing.T) {
	assert.True(t, ValidSubscriptionStatus(SubscriptionActive))
	assert.True(t, ValidSubscriptionStatus(SubscriptionPending))
	assert.False(t, ValidSubscriptionStatus("frozen"))
	assert.False(t, ValidSubscriptionStatus(""))
}
