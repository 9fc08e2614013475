package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/logger"
	"washloop.backend/pkg/metrics"
	"washloop.backend/pkg/qr"
)

// maxCodeAttempts bounds reward-code collision retries
const maxCodeAttempts = 5

// maxCycleAttempts bounds retries when a concurrent scan wins the
// loyalty-card compare-and-set
const maxCycleAttempts = 3

// ScanUsecase handles the QR scan / wash recording workflow
type ScanUsecase struct {
	customerRepo     repositories.CustomerRepository
	merchantRepo     repositories.MerchantRepository
	settingsRepo     repositories.MerchantSettingsRepository
	cardRepo         repositories.LoyaltyCardRepository
	washRepo         repositories.WashHistoryRepository
	rewardRepo       repositories.RewardRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
	generateCode     func() (string, error)
	now              func() time.Time
}

// NewScanUsecase creates a new scan usecase
func NewScanUsecase(
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	settingsRepo repositories.MerchantSettingsRepository,
	cardRepo repositories.LoyaltyCardRepository,
	washRepo repositories.WashHistoryRepository,
	rewardRepo repositories.RewardRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
	generateCode func() (string, error),
) *ScanUsecase {
	return &ScanUsecase{
		customerRepo:     customerRepo,
		merchantRepo:     merchantRepo,
		settingsRepo:     settingsRepo,
		cardRepo:         cardRepo,
		washRepo:         washRepo,
		rewardRepo:       rewardRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
		generateCode:     generateCode,
		now:              time.Now,
	}
}

// RecordWash resolves a scanned customer code, appends a wash and updates
// the loyalty cycle, issuing a reward when the threshold is reached. The
// whole sequence runs inside one transaction.
func (u *ScanUsecase) RecordWash(ctx context.Context, merchantID uuid.UUID, input *entities.ScanInput) (*entities.ScanResult, error) {
	customer, merchant, err := u.resolve(ctx, merchantID, input.Code)
	if err != nil {
		return nil, err
	}

	settings, err := u.settingsRepo.Get(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	result := &entities.ScanResult{Customer: customer.Info()}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		now := u.now()
		wash := &entities.WashHistory{
			CustomerID: customer.ID,
			MerchantID: merchant.ID,
			WashedAt:   now,
			Price:      input.Price,
		}
		if err := u.washRepo.Create(txCtx, wash); err != nil {
			return err
		}

		// The guarded update rejects a count derived from a stale read,
		// so two concurrent scans cannot both record the same increment.
		// On ErrStaleCard the cycle is re-read and re-evaluated.
		for attempt := 0; attempt < maxCycleAttempts; attempt++ {
			card, err := u.cardRepo.FindOrCreate(txCtx, customer.ID, merchant.ID)
			if err != nil {
				return err
			}
			readCount := card.WashCount

			// Expired progress is discarded, not carried over
			if card.CycleExpired(settings.WindowDays, now) {
				card.WashCount = 1
				card.CycleStartedAt = null.TimeFrom(now)
			} else {
				card.WashCount++
				if !card.CycleStartedAt.Valid {
					card.CycleStartedAt = null.TimeFrom(now)
				}
			}

			thresholdReached := card.WashCount >= settings.WashesRequired
			if thresholdReached {
				// Next wash starts a new cycle
				card.WashCount = 0
				card.CycleStartedAt = null.Time{}
			}

			err = u.cardRepo.Update(txCtx, card, readCount)
			if err == domainerrors.ErrStaleCard {
				continue
			}
			if err != nil {
				return err
			}

			if thresholdReached {
				reward, err := u.issueReward(txCtx, customer, merchant, settings, now)
				if err != nil {
					return err
				}
				result.RewardIssued = true
				result.Reward = reward
			}

			result.WashCount = card.WashCount
			result.Remaining = settings.WashesRequired - card.WashCount
			return nil
		}

		return domainerrors.Conflict("Loyalty card is being updated concurrently, scan again")
	})
	if err != nil {
		return nil, err
	}

	metrics.ScansRecorded.Inc()
	if result.RewardIssued {
		metrics.RewardsIssued.Inc()
		dataURL, err := qr.DataURL(result.Reward.Code)
		if err != nil {
			// The reward is already issued; the code alone is usable
			logger.Warn(ctx, "Failed to render reward QR", zap.Error(err))
		} else {
			result.RewardQR = dataURL
		}
	}

	logger.Info(ctx, "Wash recorded",
		zap.String("merchant_id", merchant.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.Int("wash_count", result.WashCount),
		zap.Bool("reward_issued", result.RewardIssued),
	)

	return result, nil
}

// ValidateScan performs the resolution and subscription checks without
// recording anything. Merchant UIs use it to confirm identity before
// committing a wash.
func (u *ScanUsecase) ValidateScan(ctx context.Context, merchantID uuid.UUID, code string) (*entities.ScanPreview, error) {
	customer, merchant, err := u.resolve(ctx, merchantID, code)
	if err != nil {
		return nil, err
	}

	settings, err := u.settingsRepo.Get(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	preview := &entities.ScanPreview{
		Customer:  customer.Info(),
		Remaining: settings.WashesRequired,
	}

	card, err := u.cardRepo.GetByPair(ctx, customer.ID, merchant.ID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return preview, nil
		}
		return nil, err
	}

	preview.WashCount = card.WashCount
	preview.Remaining = settings.WashesRequired - card.WashCount
	return preview, nil
}

func (u *ScanUsecase) resolve(ctx context.Context, merchantID uuid.UUID, code string) (*entities.Customer, *entities.Merchant, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, nil, domainerrors.BadRequest("Scanned code is empty")
	}

	customer, err := u.customerRepo.GetByQRCode(ctx, code)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, nil, domainerrors.NotFound("No customer matches the scanned code")
		}
		return nil, nil, err
	}

	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, nil, domainerrors.NotFound("Merchant not found")
		}
		return nil, nil, err
	}

	if !merchant.IsActive() {
		return nil, nil, domainerrors.Forbidden("Merchant subscription is not active")
	}

	return customer, merchant, nil
}

func (u *ScanUsecase) issueReward(ctx context.Context, customer *entities.Customer, merchant *entities.Merchant, settings *entities.MerchantSettings, now time.Time) (*entities.Reward, error) {
	code, err := u.freshRewardCode(ctx)
	if err != nil {
		return nil, err
	}

	reward := &entities.Reward{
		CustomerID: customer.ID,
		MerchantID: merchant.ID,
		Name:       settings.RewardName,
		Code:       code,
		Status:     entities.RewardStatusIssued,
		IssuedAt:   now,
	}
	if err := u.rewardRepo.Create(ctx, reward); err != nil {
		return nil, err
	}

	notification := &entities.Notification{
		CustomerID: customer.ID,
		Title:      "Reward earned",
		Message:    "You earned \"" + settings.RewardName + "\" at " + merchant.BusinessName + ". Show the reward code on your next visit.",
	}
	if err := u.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return reward, nil
}

// freshRewardCode generates a redemption code, retrying on the unlikely
// collision instead of surfacing it to the caller
func (u *ScanUsecase) freshRewardCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := u.generateCode()
		if err != nil {
			return "", err
		}
		exists, err := u.rewardRepo.CodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.Conflict("Could not generate a unique reward code")
}
