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

// MerchantRepository implements merchant data operations
type MerchantRepository struct {
	db *gorm.DB
}

// NewMerchantRepository creates a new merchant repository
func NewMerchantRepository(db *gorm.DB) *MerchantRepository {
	return &MerchantRepository{db: db}
}

// Create creates a new merchant
func (r *MerchantRepository) Create(ctx context.Context, merchant *entities.Merchant) error {
	if merchant.ID == uuid.Nil {
		merchant.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	merchant.CreatedAt = now
	merchant.UpdatedAt = now
	if merchant.Plan == "" {
		merchant.Plan = entities.MerchantPlanBasic
	}
	if merchant.SubscriptionStatus == "" {
		merchant.SubscriptionStatus = entities.SubscriptionPending
	}

	m := &models.Merchant{
		ID:                 merchant.ID,
		UserID:             merchant.UserID,
		BusinessName:       merchant.BusinessName,
		City:               merchant.City,
		Plan:               string(merchant.Plan),
		SubscriptionStatus: string(merchant.SubscriptionStatus),
		RegistrationCode:   merchant.RegistrationCode,
		CreatedAt:          merchant.CreatedAt,
		UpdatedAt:          merchant.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a merchant by ID
func (r *MerchantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUserID gets a merchant by user ID
func (r *MerchantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

// GetByRegistrationCode resolves a registration code to a merchant.
// The lookup is exact: a replaced code stops matching immediately.
func (r *MerchantRepository) GetByRegistrationCode(ctx context.Context, code string) (*entities.Merchant, error) {
	return r.getOne(ctx, "registration_code = ?", code)
}

// RegistrationCodeExists reports whether any merchant holds the code
func (r *MerchantRepository) RegistrationCodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("registration_code = ?", code).
		Count(&count).Error
	return count > 0, err
}

// UpdateRegistrationCode replaces the merchant's registration code
func (r *MerchantRepository) UpdateRegistrationCode(ctx context.Context, id uuid.UUID, code string) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Merchant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"registration_code": code,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateSubscription updates merchant subscription status and optionally plan
func (r *MerchantRepository) UpdateSubscription(ctx context.Context, id uuid.UUID, status entities.SubscriptionStatus, plan entities.MerchantPlan) error {
	updates := map[string]interface{}{
		"subscription_status": string(status),
		"updated_at":          time.Now(),
	}
	if plan != "" {
		updates["plan"] = string(plan)
	}
	if status == entities.SubscriptionActive {
		updates["approved_at"] = time.Now()
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Merchant{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists all merchants
func (r *MerchantRepository) List(ctx context.Context) ([]*entities.Merchant, error) {
	var ms []models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	merchants := make([]*entities.Merchant, 0, len(ms))
	for i := range ms {
		merchants = append(merchants, r.toEntity(&ms[i]))
	}
	return merchants, nil
}

// SoftDelete soft deletes a merchant. Deletion is blocked while wash
// history references the merchant.
func (r *MerchantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)

	var washes int64
	if err := db.WithContext(ctx).Model(&models.WashHistory{}).
		Where("merchant_id = ?", id).
		Count(&washes).Error; err != nil {
		return err
	}
	if washes > 0 {
		return domainerrors.ErrHasHistory
	}

	result := db.WithContext(ctx).Where("id = ?", id).Delete(&models.Merchant{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *MerchantRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Merchant, error) {
	var m models.Merchant
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *MerchantRepository) toEntity(m *models.Merchant) *entities.Merchant {
	e := &entities.Merchant{
		ID:                 m.ID,
		UserID:             m.UserID,
		BusinessName:       m.BusinessName,
		City:               m.City,
		Plan:               entities.MerchantPlan(m.Plan),
		SubscriptionStatus: entities.SubscriptionStatus(m.SubscriptionStatus),
		RegistrationCode:   m.RegistrationCode,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
	if m.ApprovedAt != nil {
		e.ApprovedAt = null.TimeFrom(*m.ApprovedAt)
	}
	return e
}
