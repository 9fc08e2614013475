package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// MerchantHandler handles merchant self-service endpoints
type MerchantHandler struct {
	merchantUsecase  *usecases.MerchantUsecase
	dashboardUsecase *usecases.DashboardUsecase
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantUsecase *usecases.MerchantUsecase, dashboardUsecase *usecases.DashboardUsecase) *MerchantHandler {
	return &MerchantHandler{
		merchantUsecase:  merchantUsecase,
		dashboardUsecase: dashboardUsecase,
	}
}

// Profile returns the authenticated merchant's profile
// GET /api/v1/merchant/profile
func (h *MerchantHandler) Profile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	merchant, err := h.merchantUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Merchant retrieved", merchant)
}

// GetSettings returns the merchant's loyalty configuration
// GET /api/v1/merchant/settings
func (h *MerchantHandler) GetSettings(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	settings, err := h.merchantUsecase.GetSettings(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Settings retrieved", settings)
}

// UpdateSettings saves the merchant's loyalty configuration
// PUT /api/v1/merchant/settings
func (h *MerchantHandler) UpdateSettings(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	var input entities.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	settings, err := h.merchantUsecase.UpdateSettings(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Settings updated", settings)
}

// ListWashes returns the merchant's wash ledger, newest first
// GET /api/v1/merchant/washes
func (h *MerchantHandler) ListWashes(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	page, limit := paginationQuery(c)
	washes, meta, err := h.merchantUsecase.ListWashes(c.Request.Context(), merchantID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Washes retrieved", gin.H{
		"washes":     washes,
		"pagination": meta,
	})
}

// Dashboard returns the merchant's aggregated statistics
// GET /api/v1/merchant/dashboard
func (h *MerchantHandler) Dashboard(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	dashboard, err := h.dashboardUsecase.MerchantDashboard(c.Request.Context(), merchantID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard retrieved", dashboard)
}

func paginationQuery(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}
