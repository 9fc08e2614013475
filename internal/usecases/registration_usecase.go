package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/pkg/logger"
	"washloop.backend/pkg/qr"
)

// RegistrationQR bundles a merchant's registration code with its QR image
type RegistrationQR struct {
	Code   string `json:"code"`
	QRCode string `json:"qrCode"` // PNG data URL
}

// RegistrationUsecase handles the merchant registration code lifecycle
type RegistrationUsecase struct {
	merchantRepo repositories.MerchantRepository
	cardRepo     repositories.LoyaltyCardRepository
	generateCode func() (string, error)
}

// NewRegistrationUsecase creates a new registration usecase
func NewRegistrationUsecase(
	merchantRepo repositories.MerchantRepository,
	cardRepo repositories.LoyaltyCardRepository,
	generateCode func() (string, error),
) *RegistrationUsecase {
	return &RegistrationUsecase{
		merchantRepo: merchantRepo,
		cardRepo:     cardRepo,
		generateCode: generateCode,
	}
}

// GetRegistrationQR returns the merchant's current registration code and
// its QR image
func (u *RegistrationUsecase) GetRegistrationQR(ctx context.Context, merchantID uuid.UUID) (*RegistrationQR, error) {
	merchant, err := u.merchantRepo.GetByID(ctx, merchantID)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("Merchant not found")
		}
		return nil, err
	}
	return u.toQR(merchant.RegistrationCode)
}

// Regenerate replaces the merchant's registration code. The previous code
// stops validating the moment the new one is stored.
func (u *RegistrationUsecase) Regenerate(ctx context.Context, merchantID uuid.UUID) (*RegistrationQR, error) {
	if _, err := u.merchantRepo.GetByID(ctx, merchantID); err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("Merchant not found")
		}
		return nil, err
	}

	code, err := u.FreshCode(ctx)
	if err != nil {
		return nil, err
	}

	if err := u.merchantRepo.UpdateRegistrationCode(ctx, merchantID, code); err != nil {
		return nil, err
	}

	logger.Info(ctx, "Registration code regenerated", zap.String("merchant_id", merchantID.String()))
	return u.toQR(code)
}

// ValidateCode resolves a registration code to the merchant's public info
func (u *RegistrationUsecase) ValidateCode(ctx context.Context, code string) (*entities.MerchantPublicInfo, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, domainerrors.BadRequest("Registration code is required")
	}

	merchant, err := u.merchantRepo.GetByRegistrationCode(ctx, code)
	if err != nil {
		if err == domainerrors.ErrNotFound {
			return nil, domainerrors.NotFound("Unknown registration code")
		}
		return nil, err
	}

	return &entities.MerchantPublicInfo{
		MerchantID:   merchant.ID,
		BusinessName: merchant.BusinessName,
		City:         merchant.City,
		Active:       merchant.IsActive(),
	}, nil
}

// Enroll links a customer to the merchant behind a registration code by
// creating their loyalty card ahead of the first scan
func (u *RegistrationUsecase) Enroll(ctx context.Context, customerID uuid.UUID, code string) (*entities.MerchantPublicInfo, error) {
	info, err := u.ValidateCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if _, err := u.cardRepo.FindOrCreate(ctx, customerID, info.MerchantID); err != nil {
		return nil, err
	}
	return info, nil
}

// FreshCode generates a registration code that no merchant currently
// holds, retrying collisions internally
func (u *RegistrationUsecase) FreshCode(ctx context.Context) (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := u.generateCode()
		if err != nil {
			return "", err
		}
		exists, err := u.merchantRepo.RegistrationCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", domainerrors.Conflict("Could not generate a unique registration code")
}

func (u *RegistrationUsecase) toQR(code string) (*RegistrationQR, error) {
	dataURL, err := qr.DataURL(code)
	if err != nil {
		return nil, err
	}
	return &RegistrationQR{Code: code, QRCode: dataURL}, nil
}
