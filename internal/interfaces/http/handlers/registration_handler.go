package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// RegistrationHandler handles merchant registration code endpoints
type RegistrationHandler struct {
	registrationUsecase *usecases.RegistrationUsecase
	customerUsecase     *usecases.CustomerUsecase
}

// NewRegistrationHandler creates a new registration handler
func NewRegistrationHandler(registrationUsecase *usecases.RegistrationUsecase, customerUsecase *usecases.CustomerUsecase) *RegistrationHandler {
	return &RegistrationHandler{
		registrationUsecase: registrationUsecase,
		customerUsecase:     customerUsecase,
	}
}

// GetQR returns the merchant's current registration code and QR image
// GET /api/v1/merchant/registration-qr
func (h *RegistrationHandler) GetQR(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	qr, err := h.registrationUsecase.GetRegistrationQR(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Registration QR retrieved", qr)
}

// RegenerateQR replaces the merchant's registration code with a fresh one.
// The old code stops resolving immediately.
// POST /api/v1/merchant/registration-qr/regenerate
func (h *RegistrationHandler) RegenerateQR(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	qr, err := h.registrationUsecase.Regenerate(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Registration QR regenerated", qr)
}

// ValidateCode resolves a registration code to its merchant's public info
// GET /api/v1/registration/:code
func (h *RegistrationHandler) ValidateCode(c *gin.Context) {
	info, err := h.registrationUsecase.ValidateCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Registration code valid", info)
}

// Enroll creates a loyalty card linking the authenticated customer to the
// merchant behind the registration code
// POST /api/v1/customer/enroll
func (h *RegistrationHandler) Enroll(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	customer, err := h.customerUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	info, err := h.registrationUsecase.Enroll(c.Request.Context(), customer.ID, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Enrolled", gin.H{"merchant": info})
}
