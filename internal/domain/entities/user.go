package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleMerchant   UserRole = "merchant"
	UserRoleSuperadmin UserRole = "superadmin"
)

// User represents a user entity
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         UserRole   `json:"role"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
	DeletedAt    *time.Time `json:"-"`
}

// RegisterCustomerInput represents input for customer registration
type RegisterCustomerInput struct {
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=8"`
	Name             string `json:"name" binding:"required,min=2,max=100"`
	Phone            string `json:"phone" binding:"required,min=6,max=20"`
	PlateNumber      string `json:"plateNumber,omitempty"`
	RegistrationCode string `json:"registrationCode,omitempty"`
}

// RegisterMerchantInput represents input for merchant registration
type RegisterMerchantInput struct {
	Email        string       `json:"email" binding:"required,email"`
	Password     string       `json:"password" binding:"required,min=8"`
	BusinessName string       `json:"businessName" binding:"required,min=2,max=255"`
	City         string       `json:"city" binding:"required,min=2,max=100"`
	Plan         MerchantPlan `json:"plan,omitempty"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"` // If true, store tokens in Redis and return SessionID
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
