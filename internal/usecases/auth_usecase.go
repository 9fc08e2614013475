package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/crypto"
	"washloop.backend/pkg/jwt"
	"washloop.backend/pkg/redis"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo     repositories.UserRepository
	customerRepo repositories.CustomerRepository
	merchantRepo repositories.MerchantRepository
	registration *RegistrationUsecase
	uow          repositories.UnitOfWork
	jwtService   *jwt.JWTService
	sessions     *redis.SessionStore
	sessionTTL   time.Duration
}

// NewAuthUsecase creates a new auth usecase. sessions may be nil when
// Redis-backed sessions are disabled.
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	customerRepo repositories.CustomerRepository,
	merchantRepo repositories.MerchantRepository,
	registration *RegistrationUsecase,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
	sessions *redis.SessionStore,
	sessionTTL time.Duration,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:     userRepo,
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		registration: registration,
		uow:          uow,
		jwtService:   jwtService,
		sessions:     sessions,
		sessionTTL:   sessionTTL,
	}
}

// RegisterCustomer registers a new customer with a fresh identity QR
// code, optionally pre-enrolled at a merchant via its registration code
func (u *AuthUsecase) RegisterCustomer(ctx context.Context, input *entities.RegisterCustomerInput) (*entities.Customer, error) {
	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	// Resolve the registration code before touching the store so a bad
	// code fails the whole registration
	var merchantID uuid.UUID
	if input.RegistrationCode != "" {
		info, err := u.registration.ValidateCode(ctx, input.RegistrationCode)
		if err != nil {
			return nil, err
		}
		merchantID = info.MerchantID
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	qrCode, err := crypto.GenerateRandomToken(16)
	if err != nil {
		return nil, err
	}

	customer := &entities.Customer{
		Name:   input.Name,
		Phone:  input.Phone,
		QRCode: qrCode,
	}
	if input.PlateNumber != "" {
		customer.PlateNumber = null.StringFrom(input.PlateNumber)
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		user := &entities.User{
			Email:        input.Email,
			PasswordHash: passwordHash,
			Role:         entities.UserRoleCustomer,
		}
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		customer.UserID = user.ID
		if err := u.customerRepo.Create(txCtx, customer); err != nil {
			return err
		}

		if merchantID != uuid.Nil {
			if _, err := u.registration.Enroll(txCtx, customer.ID, input.RegistrationCode); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// RegisterMerchant registers a new merchant in pending state with a
// fresh registration code. A superadmin activates the subscription.
func (u *AuthUsecase) RegisterMerchant(ctx context.Context, input *entities.RegisterMerchantInput) (*entities.Merchant, error) {
	if err := u.ensureEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	plan := input.Plan
	if plan == "" {
		plan = entities.MerchantPlanBasic
	}
	if plan != entities.MerchantPlanBasic && plan != entities.MerchantPlanPro {
		return nil, domainerrors.BadRequest("Unknown subscription plan")
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	code, err := u.registration.FreshCode(ctx)
	if err != nil {
		return nil, err
	}

	merchant := &entities.Merchant{
		BusinessName:       input.BusinessName,
		City:               input.City,
		Plan:               plan,
		SubscriptionStatus: entities.SubscriptionPending,
		RegistrationCode:   code,
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		user := &entities.User{
			Email:        input.Email,
			PasswordHash: passwordHash,
			Role:         entities.UserRoleMerchant,
		}
		if err := u.userRepo.Create(txCtx, user); err != nil {
			return err
		}

		merchant.UserID = user.ID
		return u.merchantRepo.Create(txCtx, merchant)
	})
	if err != nil {
		return nil, err
	}

	return merchant, nil
}

// Login authenticates a user and returns tokens
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	tokenPair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if input.UseSession && u.sessions != nil {
		sessionID, err := crypto.GenerateRandomToken(32)
		if err != nil {
			return nil, err
		}
		data := &redis.SessionData{
			AccessToken:  tokenPair.AccessToken,
			RefreshToken: tokenPair.RefreshToken,
		}
		if err := u.sessions.CreateSession(ctx, sessionID, data, u.sessionTTL); err != nil {
			return nil, err
		}
		return &entities.AuthResponse{SessionID: sessionID, User: user}, nil
	}

	return &entities.AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		User:         user,
	}, nil
}

// Logout deletes a Redis-backed session. It is a no-op for token-only
// logins.
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) error {
	if u.sessions == nil || sessionID == "" {
		return nil
	}
	return u.sessions.DeleteSession(ctx, sessionID)
}

// RefreshToken generates new tokens from a refresh token
func (u *AuthUsecase) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := u.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, domainerrors.Unauthorized("Invalid refresh token")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return u.jwtService.GenerateTokenPair(user.ID, user.Email, string(user.Role))
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *AuthUsecase) ensureEmailFree(ctx context.Context, email string) error {
	_, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return domainerrors.Conflict("Email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return err
	}
	return nil
}
