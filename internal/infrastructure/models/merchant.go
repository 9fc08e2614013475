package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Merchant struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	BusinessName       string    `gorm:"type:varchar(255);not null"`
	City               string    `gorm:"type:varchar(100);not null"`
	Plan               string    `gorm:"type:varchar(50);not null;default:'basic'"`
	SubscriptionStatus string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	RegistrationCode   string    `gorm:"type:varchar(6);uniqueIndex;not null"`
	ApprovedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

type MerchantSettings struct {
	MerchantID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	RewardName     string    `gorm:"type:varchar(100);not null;default:'Free wash'"`
	WashesRequired int       `gorm:"not null;default:5"`
	WindowDays     int       `gorm:"not null;default:0"`
	UpdatedAt      time.Time
}
