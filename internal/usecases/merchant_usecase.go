package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/utils"
)

// MerchantUsecase handles merchant self-service business logic
type MerchantUsecase struct {
	merchantRepo repositories.MerchantRepository
	settingsRepo repositories.MerchantSettingsRepository
	washRepo     repositories.WashHistoryRepository
	now          func() time.Time
}

// NewMerchantUsecase creates a new merchant usecase
func NewMerchantUsecase(
	merchantRepo repositories.MerchantRepository,
	settingsRepo repositories.MerchantSettingsRepository,
	washRepo repositories.WashHistoryRepository,
) *MerchantUsecase {
	return &MerchantUsecase{
		merchantRepo: merchantRepo,
		settingsRepo: settingsRepo,
		washRepo:     washRepo,
		now:          time.Now,
	}
}

// GetByUserID resolves the merchant profile for an authenticated user
func (u *MerchantUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Merchant, error) {
	return u.merchantRepo.GetByUserID(ctx, userID)
}

// GetSettings returns the merchant's loyalty configuration, falling back
// to defaults when nothing has been saved yet
func (u *MerchantUsecase) GetSettings(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantSettings, error) {
	return u.settingsRepo.Get(ctx, merchantID)
}

// UpdateSettings validates and saves loyalty configuration. Changes only
// affect washes recorded after the update; cards in progress keep their
// counts.
func (u *MerchantUsecase) UpdateSettings(ctx context.Context, merchantID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.MerchantSettings, error) {
	name := strings.TrimSpace(input.RewardName)
	if name == "" {
		return nil, domainerrors.BadRequest("Reward name is required")
	}
	if input.WashesRequired < 1 {
		return nil, domainerrors.BadRequest("Washes required must be at least 1")
	}
	if input.WindowDays < 0 {
		return nil, domainerrors.BadRequest("Window days cannot be negative")
	}

	settings := &entities.MerchantSettings{
		MerchantID:     merchantID,
		RewardName:     name,
		WashesRequired: input.WashesRequired,
		WindowDays:     input.WindowDays,
		UpdatedAt:      u.now(),
	}
	if err := u.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ListWashes returns the merchant's wash ledger, newest first
func (u *MerchantUsecase) ListWashes(ctx context.Context, merchantID uuid.UUID, page, limit int) ([]*entities.WashHistory, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	washes, total, err := u.washRepo.GetByMerchantID(ctx, merchantID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return washes, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
