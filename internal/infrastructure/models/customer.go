package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Phone       string    `gorm:"type:varchar(20);not null"`
	PlateNumber string    `gorm:"type:varchar(20)"`
	QRCode      string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
