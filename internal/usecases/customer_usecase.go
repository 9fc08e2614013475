package usecases

import (
	"context"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/qr"
	"washloop.backend/pkg/utils"
)

// CustomerUsecase handles customer-facing business logic
type CustomerUsecase struct {
	customerRepo     repositories.CustomerRepository
	merchantRepo     repositories.MerchantRepository
	settingsRepo     repositories.MerchantSettingsRepository
	cardRepo         repositories.LoyaltyCardRepository
	washRepo         repositories.WashHistoryRepository
	rewardRepo       repositories.RewardRepository
	notificationRepo repositories.NotificationRepository
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	settingsRepo repositories.MerchantSettingsRepository,
	cardRepo repositories.LoyaltyCardRepository,
	washRepo repositories.WashHistoryRepository,
	rewardRepo repositories.RewardRepository,
	notificationRepo repositories.NotificationRepository,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo:     customerRepo,
		merchantRepo:     merchantRepo,
		settingsRepo:     settingsRepo,
		cardRepo:         cardRepo,
		washRepo:         washRepo,
		rewardRepo:       rewardRepo,
		notificationRepo: notificationRepo,
	}
}

// GetByUserID resolves the customer profile for an authenticated user
func (u *CustomerUsecase) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Customer, error) {
	return u.customerRepo.GetByUserID(ctx, userID)
}

// IdentityQR renders the customer's permanent identity code as a PNG data URL
func (u *CustomerUsecase) IdentityQR(ctx context.Context, userID uuid.UUID) (string, error) {
	customer, err := u.customerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return qr.DataURL(customer.QRCode)
}

// Cards returns the customer's loyalty cards with progress against each
// merchant's current settings
func (u *CustomerUsecase) Cards(ctx context.Context, customerID uuid.UUID) ([]*entities.CardProgress, error) {
	cards, err := u.cardRepo.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	progress := make([]*entities.CardProgress, 0, len(cards))
	for _, card := range cards {
		merchant, err := u.merchantRepo.GetByID(ctx, card.MerchantID)
		if err != nil {
			return nil, err
		}
		settings, err := u.settingsRepo.Get(ctx, card.MerchantID)
		if err != nil {
			return nil, err
		}

		remaining := settings.WashesRequired - card.WashCount
		if remaining < 0 {
			remaining = 0
		}
		progress = append(progress, &entities.CardProgress{
			CardID:         card.ID,
			MerchantID:     card.MerchantID,
			BusinessName:   merchant.BusinessName,
			RewardName:     settings.RewardName,
			WashCount:      card.WashCount,
			WashesRequired: settings.WashesRequired,
			Remaining:      remaining,
			CycleStartedAt: card.CycleStartedAt,
		})
	}
	return progress, nil
}

// Washes returns the customer's wash history, newest first
func (u *CustomerUsecase) Washes(ctx context.Context, customerID uuid.UUID, page, limit int) ([]*entities.WashHistory, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	washes, total, err := u.washRepo.GetByCustomerID(ctx, customerID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return washes, utils.CalculateMeta(total, params.Page, params.Limit), nil
}

// Rewards returns the customer's rewards, issued and claimed
func (u *CustomerUsecase) Rewards(ctx context.Context, customerID uuid.UUID) ([]*entities.Reward, error) {
	return u.rewardRepo.GetByCustomerID(ctx, customerID)
}

// Notifications returns the customer's notifications, newest first
func (u *CustomerUsecase) Notifications(ctx context.Context, customerID uuid.UUID) ([]*entities.Notification, error) {
	return u.notificationRepo.GetByCustomerID(ctx, customerID)
}

// MarkNotificationRead marks one of the customer's notifications as read
func (u *CustomerUsecase) MarkNotificationRead(ctx context.Context, notificationID, customerID uuid.UUID) error {
	return u.notificationRepo.MarkRead(ctx, notificationID, customerID)
}
