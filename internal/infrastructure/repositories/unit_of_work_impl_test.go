package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"washloop.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitOnSuccess(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	uow := NewUnitOfWork(db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	err := uow.Do(ctx, func(txCtx context.Context) error {
		return repo.Create(txCtx, &entities.User{Email: "tx@example.com", PasswordHash: "h", Role: entities.UserRoleCustomer})
	})
	require.NoError(t, err)

	_, err = repo.GetByEmail(ctx, "tx@example.com")
	require.NoError(t, err)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	createCustomerTable(t, db)
	uow := NewUnitOfWork(db)
	userRepo := NewUserRepository(db)
	customerRepo := NewCustomerRepository(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := userRepo.Create(txCtx, &entities.User{Email: "gone@example.com", PasswordHash: "h", Role: entities.UserRoleCustomer}); err != nil {
			return err
		}
		if err := customerRepo.Create(txCtx, &entities.Customer{UserID: uuid.New(), Name: "n", Phone: "p", QRCode: "q"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// Nothing inside the transaction survived
	var users, customers int64
	require.NoError(t, db.Table("users").Count(&users).Error)
	require.NoError(t, db.Table("customers").Count(&customers).Error)
	require.Zero(t, users)
	require.Zero(t, customers)
}

func TestGetDB_FallsBackWithoutTransaction(t *testing.T) {
	db := newTestDB(t)
	require.Same(t, db, GetDB(context.Background(), db))
}
