package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
)

func seedMerchant(t *testing.T, repo *MerchantRepository, code string) *entities.Merchant {
	t.Helper()
	m := &entities.Merchant{
		UserID:             uuid.New(),
		BusinessName:       "Sparkle Wash",
		City:               "Bandung",
		Plan:               entities.MerchantPlanBasic,
		SubscriptionStatus: entities.SubscriptionPending,
		RegistrationCode:   code,
	}
	require.NoError(t, repo.Create(context.Background(), m))
	return m
}

func TestMerchantRepository_CreateGetList(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "AB12CD")

	byID, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, "Sparkle Wash", byID.BusinessName)

	byUser, err := repo.GetByUserID(ctx, m.UserID)
	require.NoError(t, err)
	require.Equal(t, m.ID, byUser.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestMerchantRepository_RegistrationCodeLifecycle(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "OLD123")

	byCode, err := repo.GetByRegistrationCode(ctx, "OLD123")
	require.NoError(t, err)
	require.Equal(t, m.ID, byCode.ID)

	exists, err := repo.RegistrationCodeExists(ctx, "OLD123")
	require.NoError(t, err)
	require.True(t, exists)

	require.NoError(t, repo.UpdateRegistrationCode(ctx, m.ID, "NEW456"))

	// Old code stops resolving the moment it is replaced
	_, err = repo.GetByRegistrationCode(ctx, "OLD123")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	byCode, err = repo.GetByRegistrationCode(ctx, "NEW456")
	require.NoError(t, err)
	require.Equal(t, m.ID, byCode.ID)

	exists, err = repo.RegistrationCodeExists(ctx, "OLD123")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestMerchantRepository_UpdateSubscription(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "SUB001")
	require.False(t, m.ApprovedAt.Valid)

	require.NoError(t, repo.UpdateSubscription(ctx, m.ID, entities.SubscriptionActive, entities.MerchantPlanPro))

	got, err := repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SubscriptionActive, got.SubscriptionStatus)
	require.Equal(t, entities.MerchantPlanPro, got.Plan)
	require.True(t, got.ApprovedAt.Valid)
	require.WithinDuration(t, time.Now(), got.ApprovedAt.Time, 5*time.Second)

	// Empty plan keeps the current one
	require.NoError(t, repo.UpdateSubscription(ctx, m.ID, entities.SubscriptionInactive, ""))
	got, err = repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, entities.MerchantPlanPro, got.Plan)
	require.False(t, got.IsActive())
}

func TestMerchantRepository_SoftDeleteBlockedByHistory(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	createWashHistoryTable(t, db)
	repo := NewMerchantRepository(db)
	washRepo := NewWashHistoryRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "DEL001")

	require.NoError(t, washRepo.Create(ctx, &entities.WashHistory{
		CustomerID: uuid.New(),
		MerchantID: m.ID,
		WashedAt:   time.Now(),
		Price:      50000,
	}))

	err := repo.SoftDelete(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrHasHistory)

	// Still retrievable
	_, err = repo.GetByID(ctx, m.ID)
	require.NoError(t, err)
}

func TestMerchantRepository_SoftDeleteWithoutHistory(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	createWashHistoryTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()

	m := seedMerchant(t, repo, "DEL002")

	require.NoError(t, repo.SoftDelete(ctx, m.ID))
	_, err := repo.GetByID(ctx, m.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestMerchantRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createMerchantTable(t, db)
	createWashHistoryTable(t, db)
	repo := NewMerchantRepository(db)
	ctx := context.Background()
	id := uuid.New()

	_, err := repo.GetByID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateRegistrationCode(ctx, id, "XX00XX")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.UpdateSubscription(ctx, id, entities.SubscriptionActive, "")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SoftDelete(ctx, id)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
