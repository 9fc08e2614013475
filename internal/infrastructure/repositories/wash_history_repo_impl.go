package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/internal/infrastructure/models"
	"washloop.backend/pkg/utils"
)

// WashHistoryRepository implements wash event operations. The table is
// append-only; there is no update path.
type WashHistoryRepository struct {
	db *gorm.DB
}

// NewWashHistoryRepository creates a new wash history repository
func NewWashHistoryRepository(db *gorm.DB) *WashHistoryRepository {
	return &WashHistoryRepository{db: db}
}

// Create appends a wash event
func (r *WashHistoryRepository) Create(ctx context.Context, wash *entities.WashHistory) error {
	if wash.ID == uuid.Nil {
		wash.ID = utils.GenerateUUIDv7()
	}
	if wash.WashedAt.IsZero() {
		wash.WashedAt = time.Now()
	}

	m := &models.WashHistory{
		ID:         wash.ID,
		CustomerID: wash.CustomerID,
		MerchantID: wash.MerchantID,
		WashedAt:   wash.WashedAt,
		Price:      wash.Price,
		Comment:    wash.Comment.String,
	}
	if wash.Rating.Valid {
		v := wash.Rating.Int
		m.Rating = &v
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByCustomerID lists a customer's washes, newest first
func (r *WashHistoryRepository) GetByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.WashHistory, int64, error) {
	return r.list(ctx, "customer_id = ?", customerID, limit, offset)
}

// GetByMerchantID lists a merchant's washes, newest first
func (r *WashHistoryRepository) GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.WashHistory, int64, error) {
	return r.list(ctx, "merchant_id = ?", merchantID, limit, offset)
}

// CountByMerchant counts all washes recorded at a merchant
func (r *WashHistoryRepository) CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.WashHistory{}).
		Where("merchant_id = ?", merchantID).
		Count(&total).Error
	return total, err
}

func (r *WashHistoryRepository) list(ctx context.Context, query string, arg interface{}, limit, offset int) ([]*entities.WashHistory, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := db.WithContext(ctx).Model(&models.WashHistory{}).Where(query, arg).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := db.WithContext(ctx).Where(query, arg).Order("washed_at DESC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var ms []models.WashHistory
	if err := q.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	washes := make([]*entities.WashHistory, 0, len(ms))
	for i := range ms {
		washes = append(washes, r.toEntity(&ms[i]))
	}
	return washes, total, nil
}

func (r *WashHistoryRepository) toEntity(m *models.WashHistory) *entities.WashHistory {
	w := &entities.WashHistory{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		MerchantID: m.MerchantID,
		WashedAt:   m.WashedAt,
		Price:      m.Price,
	}
	if m.Rating != nil {
		w.Rating = null.IntFrom(*m.Rating)
	}
	if m.Comment != "" {
		w.Comment = null.StringFrom(m.Comment)
	}
	return w
}
