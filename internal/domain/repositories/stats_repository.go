package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
)

// StatsRepository defines read-only reporting aggregation over the ledger
type StatsRepository interface {
	// MerchantWindow aggregates washes and revenue for one merchant since
	// the given time. A zero time means all time.
	MerchantWindow(ctx context.Context, merchantID uuid.UUID, since time.Time) (entities.StatsWindow, error)
	MerchantRewardCounts(ctx context.Context, merchantID uuid.UUID) (issued, claimed int64, err error)
	PlatformTotals(ctx context.Context) (*entities.SuperadminDashboard, error)
}
