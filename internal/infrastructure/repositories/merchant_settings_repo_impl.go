package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/internal/infrastructure/models"
)

// Defaults applied when a merchant has not configured loyalty yet
const (
	DefaultRewardName     = "Free wash"
	DefaultWashesRequired = 5
)

// MerchantSettingsRepository implements loyalty configuration operations
type MerchantSettingsRepository struct {
	db *gorm.DB
}

// NewMerchantSettingsRepository creates a new merchant settings repository
func NewMerchantSettingsRepository(db *gorm.DB) *MerchantSettingsRepository {
	return &MerchantSettingsRepository{db: db}
}

// Get returns the merchant's loyalty configuration, falling back to
// defaults when none has been saved yet
func (r *MerchantSettingsRepository) Get(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantSettings, error) {
	var m models.MerchantSettings
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("merchant_id = ?", merchantID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &entities.MerchantSettings{
				MerchantID:     merchantID,
				RewardName:     DefaultRewardName,
				WashesRequired: DefaultWashesRequired,
				WindowDays:     0,
			}, nil
		}
		return nil, err
	}

	return &entities.MerchantSettings{
		MerchantID:     m.MerchantID,
		RewardName:     m.RewardName,
		WashesRequired: m.WashesRequired,
		WindowDays:     m.WindowDays,
		UpdatedAt:      m.UpdatedAt,
	}, nil
}

// Upsert saves the merchant's loyalty configuration
func (r *MerchantSettingsRepository) Upsert(ctx context.Context, settings *entities.MerchantSettings) error {
	settings.UpdatedAt = time.Now()

	m := &models.MerchantSettings{
		MerchantID:     settings.MerchantID,
		RewardName:     settings.RewardName,
		WashesRequired: settings.WashesRequired,
		WindowDays:     settings.WindowDays,
		UpdatedAt:      settings.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "merchant_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"reward_name", "washes_required", "window_days", "updated_at"}),
	}).Create(m).Error
}
