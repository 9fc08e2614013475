package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/infrastructure/models"
	"washloop.backend/pkg/utils"
)

// RewardRepository implements reward issuance and claim operations
type RewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *gorm.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Create issues a new reward
func (r *RewardRepository) Create(ctx context.Context, reward *entities.Reward) error {
	if reward.ID == uuid.Nil {
		reward.ID = utils.GenerateUUIDv7()
	}
	if reward.IssuedAt.IsZero() {
		reward.IssuedAt = time.Now()
	}
	if reward.Status == "" {
		reward.Status = entities.RewardStatusIssued
	}

	m := &models.Reward{
		ID:         reward.ID,
		CustomerID: reward.CustomerID,
		MerchantID: reward.MerchantID,
		Name:       reward.Name,
		Code:       reward.Code,
		Status:     string(reward.Status),
		IssuedAt:   reward.IssuedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByCode gets a reward by its redemption code
func (r *RewardRepository) GetByCode(ctx context.Context, code string) (*entities.Reward, error) {
	var m models.Reward
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCustomerID lists a customer's rewards, newest first
func (r *RewardRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Reward, error) {
	var ms []models.Reward
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("issued_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	rewards := make([]*entities.Reward, 0, len(ms))
	for i := range ms {
		rewards = append(rewards, r.toEntity(&ms[i]))
	}
	return rewards, nil
}

// CodeExists reports whether a redemption code is already taken
func (r *RewardRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Reward{}).
		Where("code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// Claim transitions the reward to claimed. The status guard in the WHERE
// clause makes the transition atomic: a replay matches zero rows and is
// rejected with ErrRewardClaimed.
func (r *RewardRepository) Claim(ctx context.Context, id uuid.UUID, claimedAt time.Time) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Reward{}).
		Where("id = ? AND status = ?", id, string(entities.RewardStatusIssued)).
		Updates(map[string]interface{}{
			"status":     string(entities.RewardStatusClaimed),
			"claimed_at": claimedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrRewardClaimed
	}
	return nil
}

func (r *RewardRepository) toEntity(m *models.Reward) *entities.Reward {
	e := &entities.Reward{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		MerchantID: m.MerchantID,
		Name:       m.Name,
		Code:       m.Code,
		Status:     entities.RewardStatus(m.Status),
		IssuedAt:   m.IssuedAt,
	}
	if m.ClaimedAt != nil {
		e.ClaimedAt = null.TimeFrom(*m.ClaimedAt)
	}
	return e
}
