package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
)

func TestCustomerRepository_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	createCustomerTable(t, db)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := &entities.Customer{
		UserID:      uuid.New(),
		Name:        "Dewi",
		Phone:       "+628111111111",
		PlateNumber: null.StringFrom("B 1234 XYZ"),
		QRCode:      "qr-identity-1",
	}
	require.NoError(t, repo.Create(ctx, c))
	require.NotEqual(t, uuid.Nil, c.ID)

	byID, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Dewi", byID.Name)
	require.True(t, byID.PlateNumber.Valid)

	byUser, err := repo.GetByUserID(ctx, c.UserID)
	require.NoError(t, err)
	require.Equal(t, c.ID, byUser.ID)

	byQR, err := repo.GetByQRCode(ctx, "qr-identity-1")
	require.NoError(t, err)
	require.Equal(t, c.ID, byQR.ID)
}

func TestCustomerRepository_UpdateAndCount(t *testing.T) {
	db := newTestDB(t)
	createCustomerTable(t, db)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	c := &entities.Customer{UserID: uuid.New(), Name: "Andi", Phone: "+628", QRCode: "qr-1"}
	require.NoError(t, repo.Create(ctx, c))

	c.Name = "Andi Updated"
	c.PlateNumber = null.StringFrom("D 99 AA")
	require.NoError(t, repo.Update(ctx, c))

	got, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Andi Updated", got.Name)
	require.Equal(t, "D 99 AA", got.PlateNumber.String)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestCustomerRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createCustomerTable(t, db)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByUserID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByQRCode(ctx, "no-such-code")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.Update(ctx, &entities.Customer{ID: uuid.New(), Name: "x", Phone: "y", QRCode: "z"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
