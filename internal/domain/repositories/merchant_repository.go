package repositories

import (
	"context"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
)

// MerchantRepository defines merchant data operations
type MerchantRepository interface {
	Create(ctx context.Context, merchant *entities.Merchant) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error)
	GetByRegistrationCode(ctx context.Context, code string) (*entities.Merchant, error)
	RegistrationCodeExists(ctx context.Context, code string) (bool, error)
	UpdateRegistrationCode(ctx context.Context, id uuid.UUID, code string) error
	UpdateSubscription(ctx context.Context, id uuid.UUID, status entities.SubscriptionStatus, plan entities.MerchantPlan) error
	List(ctx context.Context) ([]*entities.Merchant, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// MerchantSettingsRepository defines loyalty configuration operations
type MerchantSettingsRepository interface {
	Get(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantSettings, error)
	Upsert(ctx context.Context, settings *entities.MerchantSettings) error
}
