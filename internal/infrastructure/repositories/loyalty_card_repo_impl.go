package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/infrastructure/models"
	"washloop.backend/pkg/utils"
)

// LoyaltyCardRepository implements loyalty card data operations
type LoyaltyCardRepository struct {
	db *gorm.DB
}

// NewLoyaltyCardRepository creates a new loyalty card repository
func NewLoyaltyCardRepository(db *gorm.DB) *LoyaltyCardRepository {
	return &LoyaltyCardRepository{db: db}
}

// FindOrCreate returns the card for (customer, merchant), creating it on
// first use. The insert ignores a unique-pair conflict and re-reads, so
// two concurrent first scans converge on one card.
func (r *LoyaltyCardRepository) FindOrCreate(ctx context.Context, customerID, merchantID uuid.UUID) (*entities.LoyaltyCard, error) {
	db := GetDB(ctx, r.db)

	now := time.Now()
	m := &models.LoyaltyCard{
		ID:         utils.GenerateUUIDv7(),
		CustomerID: customerID,
		MerchantID: merchantID,
		WashCount:  0,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "customer_id"}, {Name: "merchant_id"}},
		DoNothing: true,
	}).Create(m).Error; err != nil {
		return nil, err
	}

	return r.GetByPair(ctx, customerID, merchantID)
}

// GetByPair gets the card for a (customer, merchant) pair
func (r *LoyaltyCardRepository) GetByPair(ctx context.Context, customerID, merchantID uuid.UUID) (*entities.LoyaltyCard, error) {
	var m models.LoyaltyCard
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("customer_id = ? AND merchant_id = ?", customerID, merchantID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByCustomerID lists all of a customer's cards
func (r *LoyaltyCardRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.LoyaltyCard, error) {
	var ms []models.LoyaltyCard
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	cards := make([]*entities.LoyaltyCard, 0, len(ms))
	for i := range ms {
		cards = append(cards, r.toEntity(&ms[i]))
	}
	return cards, nil
}

// Update persists the card's cycle state. The wash-count guard in the
// WHERE clause makes the read-modify-write atomic: a concurrent increment
// matches zero rows and is rejected with ErrStaleCard.
func (r *LoyaltyCardRepository) Update(ctx context.Context, card *entities.LoyaltyCard, readCount int) error {
	card.UpdatedAt = time.Now()

	updates := map[string]interface{}{
		"wash_count": card.WashCount,
		"updated_at": card.UpdatedAt,
	}
	if card.CycleStartedAt.Valid {
		updates["cycle_started_at"] = card.CycleStartedAt.Time
	} else {
		updates["cycle_started_at"] = nil
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.LoyaltyCard{}).
		Where("id = ? AND wash_count = ?", card.ID, readCount).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrStaleCard
	}
	return nil
}

// CountByMerchant counts distinct customers holding a card at the merchant
func (r *LoyaltyCardRepository) CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.LoyaltyCard{}).
		Where("merchant_id = ?", merchantID).
		Count(&total).Error
	return total, err
}

func (r *LoyaltyCardRepository) toEntity(m *models.LoyaltyCard) *entities.LoyaltyCard {
	c := &entities.LoyaltyCard{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		MerchantID: m.MerchantID,
		WashCount:  m.WashCount,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
	if m.CycleStartedAt != nil {
		c.CycleStartedAt = null.TimeFrom(*m.CycleStartedAt)
	}
	return c
}
