package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"washloop.backend/internal/domain/entities"
)

func seedWash(t *testing.T, repo *WashHistoryRepository, merchantID uuid.UUID, washedAt time.Time, price float64) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &entities.WashHistory{
		CustomerID: uuid.New(),
		MerchantID: merchantID,
		WashedAt:   washedAt,
		Price:      price,
	}))
}

func TestStatsRepository_MerchantWindow(t *testing.T) {
	db := newTestDB(t)
	createWashHistoryTable(t, db)
	washRepo := NewWashHistoryRepository(db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	now := time.Now()
	seedWash(t, washRepo, merchantID, now.Add(-30*24*time.Hour), 10000)
	seedWash(t, washRepo, merchantID, now.Add(-2*time.Hour), 20000)
	seedWash(t, washRepo, merchantID, now.Add(-time.Hour), 30000)
	seedWash(t, washRepo, uuid.New(), now, 99999) // other merchant

	allTime, err := repo.MerchantWindow(ctx, merchantID, time.Time{})
	require.NoError(t, err)
	require.EqualValues(t, 3, allTime.Washes)
	require.InDelta(t, 60000, allTime.Revenue, 0.01)

	recent, err := repo.MerchantWindow(ctx, merchantID, now.Add(-3*time.Hour))
	require.NoError(t, err)
	require.EqualValues(t, 2, recent.Washes)
	require.InDelta(t, 50000, recent.Revenue, 0.01)

	empty, err := repo.MerchantWindow(ctx, uuid.New(), time.Time{})
	require.NoError(t, err)
	require.Zero(t, empty.Washes)
	require.Zero(t, empty.Revenue)
}

func TestStatsRepository_MerchantRewardCounts(t *testing.T) {
	db := newTestDB(t)
	createRewardTable(t, db)
	rewardRepo := NewRewardRepository(db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	merchantID := uuid.New()
	claimed := &entities.Reward{CustomerID: uuid.New(), MerchantID: merchantID, Name: "Free wash", Code: "STATS0000001", Status: entities.RewardStatusIssued, IssuedAt: time.Now()}
	require.NoError(t, rewardRepo.Create(ctx, claimed))
	require.NoError(t, rewardRepo.Create(ctx, &entities.Reward{CustomerID: uuid.New(), MerchantID: merchantID, Name: "Free wash", Code: "STATS0000002", Status: entities.RewardStatusIssued, IssuedAt: time.Now()}))
	require.NoError(t, rewardRepo.Claim(ctx, claimed.ID, time.Now()))

	issued, claimedCount, err := repo.MerchantRewardCounts(ctx, merchantID)
	require.NoError(t, err)
	require.EqualValues(t, 2, issued)
	require.EqualValues(t, 1, claimedCount)
}

func TestStatsRepository_PlatformTotals(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	createCustomerTable(t, db)
	createWashHistoryTable(t, db)
	createRewardTable(t, db)

	merchantRepo := NewMerchantRepository(db)
	customerRepo := NewCustomerRepository(db)
	washRepo := NewWashHistoryRepository(db)
	rewardRepo := NewRewardRepository(db)
	repo := NewStatsRepository(db)
	ctx := context.Background()

	basic := seedMerchant(t, merchantRepo, "PLAT01")
	pro := seedMerchant(t, merchantRepo, "PLAT02")
	require.NoError(t, merchantRepo.UpdateSubscription(ctx, pro.ID, entities.SubscriptionActive, entities.MerchantPlanPro))

	require.NoError(t, customerRepo.Create(ctx, &entities.Customer{UserID: uuid.New(), Name: "c1", Phone: "1", QRCode: "q1"}))
	require.NoError(t, customerRepo.Create(ctx, &entities.Customer{UserID: uuid.New(), Name: "c2", Phone: "2", QRCode: "q2"}))

	seedWash(t, washRepo, basic.ID, time.Now(), 15000)
	seedWash(t, washRepo, pro.ID, time.Now(), 25000)

	r := &entities.Reward{CustomerID: uuid.New(), MerchantID: pro.ID, Name: "Free wash", Code: "PLAT00000001", Status: entities.RewardStatusIssued, IssuedAt: time.Now()}
	require.NoError(t, rewardRepo.Create(ctx, r))
	require.NoError(t, rewardRepo.Claim(ctx, r.ID, time.Now()))

	totals, err := repo.PlatformTotals(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, totals.TotalMerchants)
	require.EqualValues(t, 2, totals.TotalCustomers)
	require.EqualValues(t, 2, totals.TotalWashes)
	require.InDelta(t, 40000, totals.TotalRevenue, 0.01)
	require.EqualValues(t, 1, totals.RewardsIssued)
	require.EqualValues(t, 1, totals.RewardsClaimed)
	require.EqualValues(t, 1, totals.MerchantsByPlan["basic"])
	require.EqualValues(t, 1, totals.MerchantsByPlan["pro"])
	require.EqualValues(t, 1, totals.MerchantsByStatus["pending"])
	require.EqualValues(t, 1, totals.MerchantsByStatus["active"])
}
