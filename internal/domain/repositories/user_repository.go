package repositories

import (
	"context"

	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	List(ctx context.Context, search string) ([]*entities.User, error)
}

// CustomerRepository defines customer profile data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entities.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Customer, error)
	GetByQRCode(ctx context.Context, code string) (*entities.Customer, error)
	Update(ctx context.Context, customer *entities.Customer) error
	Count(ctx context.Context) (int64, error)
}
