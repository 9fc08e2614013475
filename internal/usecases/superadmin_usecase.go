package usecases

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/logger"
)

// SuperadminUsecase handles platform administration
type SuperadminUsecase struct {
	merchantRepo repositories.MerchantRepository
	userRepo     repositories.UserRepository
}

// NewSuperadminUsecase creates a new superadmin usecase
func NewSuperadminUsecase(
	merchantRepo repositories.MerchantRepository,
	userRepo repositories.UserRepository,
) *SuperadminUsecase {
	return &SuperadminUsecase{
		merchantRepo: merchantRepo,
		userRepo:     userRepo,
	}
}

// ListMerchants returns all merchants on the platform
func (u *SuperadminUsecase) ListMerchants(ctx context.Context) ([]*entities.Merchant, error) {
	return u.merchantRepo.List(ctx)
}

// GetMerchant returns a single merchant by ID
func (u *SuperadminUsecase) GetMerchant(ctx context.Context, id uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByID(ctx, id)
}

// UpdateSubscription changes a merchant's subscription status and,
// optionally, its plan
func (u *SuperadminUsecase) UpdateSubscription(ctx context.Context, id uuid.UUID, input *entities.UpdateSubscriptionInput) (*entities.Merchant, error) {
	if !entities.ValidSubscriptionStatus(input.Status) {
		return nil, domainerrors.BadRequest("Unknown subscription status")
	}
	if input.Plan != "" && input.Plan != entities.MerchantPlanBasic && input.Plan != entities.MerchantPlanPro {
		return nil, domainerrors.BadRequest("Unknown subscription plan")
	}

	merchant, err := u.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	plan := input.Plan
	if plan == "" {
		plan = merchant.Plan
	}

	if err := u.merchantRepo.UpdateSubscription(ctx, id, input.Status, plan); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Merchant subscription updated",
		zap.String("merchantId", id.String()),
		zap.String("status", string(input.Status)),
		zap.String("plan", string(plan)))

	return u.merchantRepo.GetByID(ctx, id)
}

// DeleteMerchant soft-deletes a merchant. Merchants with recorded washes
// cannot be deleted; their ledger must stay intact.
func (u *SuperadminUsecase) DeleteMerchant(ctx context.Context, id uuid.UUID) error {
	if _, err := u.merchantRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.merchantRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	logger.Info(ctx, "Merchant deleted", zap.String("merchantId", id.String()))
	return nil
}
