package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// RegisterCustomer handles customer registration
// POST /api/v1/auth/register/customer
func (h *AuthHandler) RegisterCustomer(c *gin.Context) {
	var input entities.RegisterCustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	customer, err := h.authUsecase.RegisterCustomer(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"customer": customer,
	})
}

// RegisterMerchant handles merchant registration
// POST /api/v1/auth/register/merchant
func (h *AuthHandler) RegisterMerchant(c *gin.Context) {
	var input entities.RegisterMerchantInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.authUsecase.RegisterMerchant(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration submitted for approval", gin.H{
		"merchant": merchant,
	})
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	auth, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrInvalidCredentials {
			response.Error(c, domainerrors.Unauthorized("Invalid email or password"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", auth)
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed", pair)
}

// Logout deletes the caller's Redis-backed session, if any
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.Logout(c.Request.Context(), input.SessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logged out", nil)
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	user, err := h.authUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User retrieved", gin.H{"user": user})
}
