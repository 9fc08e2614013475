package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/logger"
	"washloop.backend/pkg/metrics"
)

// RewardUsecase handles reward redemption
type RewardUsecase struct {
	rewardRepo   repositories.RewardRepository
	customerRepo repositories.CustomerRepository
	uow          repositories.UnitOfWork
	now          func() time.Time
}

// NewRewardUsecase creates a new reward usecase
func NewRewardUsecase(
	rewardRepo repositories.RewardRepository,
	customerRepo repositories.CustomerRepository,
	uow repositories.UnitOfWork,
) *RewardUsecase {
	return &RewardUsecase{
		rewardRepo:   rewardRepo,
		customerRepo: customerRepo,
		uow:          uow,
		now:          time.Now,
	}
}

// Redeem claims a reward by its redemption code on behalf of a merchant.
// The issued -> claimed transition is terminal: a replayed code is always
// rejected with a conflict, never silently accepted.
func (u *RewardUsecase) Redeem(ctx context.Context, merchantID uuid.UUID, code string) (*entities.RedeemResult, error) {
	var result *entities.RedeemResult

	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		reward, err := u.rewardRepo.GetByCode(txCtx, code)
		if err != nil {
			if err == domainerrors.ErrNotFound {
				return domainerrors.NotFound("No reward matches this code")
			}
			return err
		}

		// A reward is only visible to the merchant that issued it
		if reward.MerchantID != merchantID {
			return domainerrors.NotFound("No reward matches this code")
		}

		if reward.Status == entities.RewardStatusClaimed {
			return domainerrors.Conflict("Reward has already been claimed")
		}

		claimedAt := u.now()
		if err := u.rewardRepo.Claim(txCtx, reward.ID, claimedAt); err != nil {
			if err == domainerrors.ErrRewardClaimed {
				return domainerrors.Conflict("Reward has already been claimed")
			}
			return err
		}

		customer, err := u.customerRepo.GetByID(txCtx, reward.CustomerID)
		if err != nil {
			return err
		}

		reward.Status = entities.RewardStatusClaimed
		reward.ClaimedAt.SetValid(claimedAt)
		result = &entities.RedeemResult{
			Reward:   reward,
			Customer: customer.Info(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RewardsRedeemed.Inc()
	logger.Info(ctx, "Reward redeemed",
		zap.String("merchant_id", merchantID.String()),
		zap.String("reward_id", result.Reward.ID.String()),
	)

	return result, nil
}

// ListByCustomer lists a customer's rewards
func (u *RewardUsecase) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entities.Reward, error) {
	return u.rewardRepo.GetByCustomerID(ctx, customerID)
}
