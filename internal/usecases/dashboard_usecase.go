package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/internal/domain/repositories"
)

// recentWashLimit caps the recent activity list on the merchant dashboard
const recentWashLimit = 10

// DashboardUsecase computes read-only reporting views. Everything is
// recomputed from source tables on each call.
type DashboardUsecase struct {
	statsRepo repositories.StatsRepository
	washRepo  repositories.WashHistoryRepository
	cardRepo  repositories.LoyaltyCardRepository
	now       func() time.Time
}

// NewDashboardUsecase creates a new dashboard usecase
func NewDashboardUsecase(
	statsRepo repositories.StatsRepository,
	washRepo repositories.WashHistoryRepository,
	cardRepo repositories.LoyaltyCardRepository,
) *DashboardUsecase {
	return &DashboardUsecase{
		statsRepo: statsRepo,
		washRepo:  washRepo,
		cardRepo:  cardRepo,
		now:       time.Now,
	}
}

// MerchantDashboard aggregates a merchant's ledger windowed by today,
// this week, this month and all time, relative to the query time
func (u *DashboardUsecase) MerchantDashboard(ctx context.Context, merchantID uuid.UUID) (*entities.MerchantDashboard, error) {
	now := u.now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfWeek(startOfDay)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	out := &entities.MerchantDashboard{}

	var err error
	if out.Today, err = u.statsRepo.MerchantWindow(ctx, merchantID, startOfDay); err != nil {
		return nil, err
	}
	if out.ThisWeek, err = u.statsRepo.MerchantWindow(ctx, merchantID, startOfWeek); err != nil {
		return nil, err
	}
	if out.ThisMonth, err = u.statsRepo.MerchantWindow(ctx, merchantID, startOfMonth); err != nil {
		return nil, err
	}
	if out.AllTime, err = u.statsRepo.MerchantWindow(ctx, merchantID, time.Time{}); err != nil {
		return nil, err
	}

	if out.Customers, err = u.cardRepo.CountByMerchant(ctx, merchantID); err != nil {
		return nil, err
	}
	if out.RewardsIssued, out.RewardsClaimed, err = u.statsRepo.MerchantRewardCounts(ctx, merchantID); err != nil {
		return nil, err
	}

	recent, _, err := u.washRepo.GetByMerchantID(ctx, merchantID, recentWashLimit, 0)
	if err != nil {
		return nil, err
	}
	out.RecentWashes = recent

	return out, nil
}

// SuperadminDashboard aggregates platform-wide statistics
func (u *DashboardUsecase) SuperadminDashboard(ctx context.Context) (*entities.SuperadminDashboard, error) {
	return u.statsRepo.PlatformTotals(ctx)
}

// startOfWeek returns the Monday 00:00 of the week containing day
func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return day.AddDate(0, 0, -(weekday - 1))
}
