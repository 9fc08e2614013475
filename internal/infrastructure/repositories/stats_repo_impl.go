package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"washloop.backend/internal/domain/entities"
	"washloop.backend/internal/infrastructure/models"
)

// StatsRepository implements read-only reporting aggregation. Every call
// recomputes from the source tables; nothing is cached.
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type windowRow struct {
	Washes  int64
	Revenue float64
}

// MerchantWindow aggregates washes and revenue for one merchant since the
// given time. A zero time means all time.
func (r *StatsRepository) MerchantWindow(ctx context.Context, merchantID uuid.UUID, since time.Time) (entities.StatsWindow, error) {
	db := GetDB(ctx, r.db)

	q := db.WithContext(ctx).Model(&models.WashHistory{}).
		Select("COUNT(*) AS washes, COALESCE(SUM(price), 0) AS revenue").
		Where("merchant_id = ?", merchantID)
	if !since.IsZero() {
		q = q.Where("washed_at >= ?", since)
	}

	var row windowRow
	if err := q.Scan(&row).Error; err != nil {
		return entities.StatsWindow{}, err
	}
	return entities.StatsWindow{Washes: row.Washes, Revenue: row.Revenue}, nil
}

// MerchantRewardCounts counts issued and claimed rewards for a merchant
func (r *StatsRepository) MerchantRewardCounts(ctx context.Context, merchantID uuid.UUID) (int64, int64, error) {
	db := GetDB(ctx, r.db)

	var issued, claimed int64
	if err := db.WithContext(ctx).Model(&models.Reward{}).
		Where("merchant_id = ?", merchantID).
		Count(&issued).Error; err != nil {
		return 0, 0, err
	}
	if err := db.WithContext(ctx).Model(&models.Reward{}).
		Where("merchant_id = ? AND status = ?", merchantID, string(entities.RewardStatusClaimed)).
		Count(&claimed).Error; err != nil {
		return 0, 0, err
	}
	return issued, claimed, nil
}

type groupRow struct {
	Key   string
	Total int64
}

// PlatformTotals aggregates platform-wide statistics for the superadmin
// dashboard, partitioning merchants by plan and subscription status.
func (r *StatsRepository) PlatformTotals(ctx context.Context) (*entities.SuperadminDashboard, error) {
	db := GetDB(ctx, r.db)
	out := &entities.SuperadminDashboard{
		MerchantsByPlan:   map[string]int64{},
		MerchantsByStatus: map[string]int64{},
	}

	if err := db.WithContext(ctx).Model(&models.Merchant{}).Count(&out.TotalMerchants).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&models.Customer{}).Count(&out.TotalCustomers).Error; err != nil {
		return nil, err
	}

	var washes windowRow
	if err := db.WithContext(ctx).Model(&models.WashHistory{}).
		Select("COUNT(*) AS washes, COALESCE(SUM(price), 0) AS revenue").
		Scan(&washes).Error; err != nil {
		return nil, err
	}
	out.TotalWashes = washes.Washes
	out.TotalRevenue = washes.Revenue

	if err := db.WithContext(ctx).Model(&models.Reward{}).Count(&out.RewardsIssued).Error; err != nil {
		return nil, err
	}
	if err := db.WithContext(ctx).Model(&models.Reward{}).
		Where("status = ?", string(entities.RewardStatusClaimed)).
		Count(&out.RewardsClaimed).Error; err != nil {
		return nil, err
	}

	var byPlan []groupRow
	if err := db.WithContext(ctx).Model(&models.Merchant{}).
		Select("plan AS key, COUNT(*) AS total").
		Group("plan").
		Scan(&byPlan).Error; err != nil {
		return nil, err
	}
	for _, row := range byPlan {
		out.MerchantsByPlan[row.Key] = row.Total
	}

	var byStatus []groupRow
	if err := db.WithContext(ctx).Model(&models.Merchant{}).
		Select("subscription_status AS key, COUNT(*) AS total").
		Group("subscription_status").
		Scan(&byStatus).Error; err != nil {
		return nil, err
	}
	for _, row := range byStatus {
		out.MerchantsByStatus[row.Key] = row.Total
	}

	return out, nil
}
