package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
)

// LoyaltyCardRepository defines loyalty card data operations
type LoyaltyCardRepository interface {
	// FindOrCreate returns the card for (customer, merchant), creating it
	// atomically on first use. The unique pair index serializes concurrent
	// first scans.
	FindOrCreate(ctx context.Context, customerID, merchantID uuid.UUID) (*entities.LoyaltyCard, error)
	GetByPair(ctx context.Context, customerID, merchantID uuid.UUID) (*entities.LoyaltyCard, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.LoyaltyCard, error)
	// Update persists the card's cycle state, guarded by the wash count
	// the card was read at. A concurrent increment matches zero rows and
	// is rejected with ErrStaleCard; the caller re-reads and retries.
	Update(ctx context.Context, card *entities.LoyaltyCard, readCount int) error
	CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)
}

// WashHistoryRepository defines wash event operations. Events are
// append-only.
type WashHistoryRepository interface {
	Create(ctx context.Context, wash *entities.WashHistory) error
	GetByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entities.WashHistory, int64, error)
	GetByMerchantID(ctx context.Context, merchantID uuid.UUID, limit, offset int) ([]*entities.WashHistory, int64, error)
	CountByMerchant(ctx context.Context, merchantID uuid.UUID) (int64, error)
}

// RewardRepository defines reward issuance and claim operations
type RewardRepository interface {
	Create(ctx context.Context, reward *entities.Reward) error
	GetByCode(ctx context.Context, code string) (*entities.Reward, error)
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Reward, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	// Claim transitions the reward to claimed at claimedAt. It fails with
	// ErrRewardClaimed if the reward was already claimed, atomically.
	Claim(ctx context.Context, id uuid.UUID, claimedAt time.Time) error
}

// NotificationRepository defines customer notification operations
type NotificationRepository interface {
	Create(ctx context.Context, n *entities.Notification) error
	GetByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*entities.Notification, error)
	MarkRead(ctx context.Context, id, customerID uuid.UUID) error
}
