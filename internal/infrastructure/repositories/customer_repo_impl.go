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

// CustomerRepository implements customer profile data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer profile
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = utils.GenerateUUIDv7()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	m := &models.Customer{
		ID:          customer.ID,
		UserID:      customer.UserID,
		Name:        customer.Name,
		Phone:       customer.Phone,
		PlateNumber: customer.PlateNumber.String,
		QRCode:      customer.QRCode,
		CreatedAt:   customer.CreatedAt,
		UpdatedAt:   customer.UpdatedAt,
	}

	db := GetDB(ctx, r.db)
	return db.WithContext(ctx).Create(m).Error
}

// GetByID gets a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetByUserID gets a customer by user ID
func (r *CustomerRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Customer, error) {
	return r.getOne(ctx, "user_id = ?", userID)
}

// GetByQRCode resolves a scanned identity code to a customer
func (r *CustomerRepository) GetByQRCode(ctx context.Context, code string) (*entities.Customer, error) {
	return r.getOne(ctx, "qr_code = ?", code)
}

// Update updates a customer profile
func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	updates := map[string]interface{}{
		"name":         customer.Name,
		"phone":        customer.Phone,
		"plate_number": customer.PlateNumber.String,
		"updated_at":   time.Now(),
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the number of customers on the platform
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	db := GetDB(ctx, r.db)
	err := db.WithContext(ctx).Model(&models.Customer{}).Count(&total).Error
	return total, err
}

func (r *CustomerRepository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Customer, error) {
	var m models.Customer
	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *CustomerRepository) toEntity(m *models.Customer) *entities.Customer {
	c := &entities.Customer{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Phone:     m.Phone,
		QRCode:    m.QRCode,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PlateNumber != "" {
		c.PlateNumber = null.StringFrom(m.PlateNumber)
	}
	return c
}
