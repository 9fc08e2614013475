package models

import (
	"time"

	"github.com/google/uuid"
)

type LoyaltyCard struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_card_pair"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_card_pair"`
	WashCount      int       `gorm:"not null;default:0"`
	CycleStartedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Merchant Merchant `gorm:"foreignKey:MerchantID;constraint:OnDelete:RESTRICT"`
}

type WashHistory struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	WashedAt   time.Time `gorm:"not null;index"`
	Price      float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Rating     *int
	Comment    string `gorm:"type:text"`

	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Merchant Merchant `gorm:"foreignKey:MerchantID;constraint:OnDelete:RESTRICT"`
}

type Reward struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Code       string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'issued';index"`
	IssuedAt   time.Time `gorm:"not null"`
	ClaimedAt  *time.Time

	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
	Merchant Merchant `gorm:"foreignKey:MerchantID;constraint:OnDelete:RESTRICT"`
}

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	Read       bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time

	Customer Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}
