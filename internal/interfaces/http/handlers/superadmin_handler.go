package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// SuperadminHandler handles platform administration endpoints
type SuperadminHandler struct {
	superadminUsecase *usecases.SuperadminUsecase
	dashboardUsecase  *usecases.DashboardUsecase
}

// NewSuperadminHandler creates a new superadmin handler
func NewSuperadminHandler(superadminUsecase *usecases.SuperadminUsecase, dashboardUsecase *usecases.DashboardUsecase) *SuperadminHandler {
	return &SuperadminHandler{
		superadminUsecase: superadminUsecase,
		dashboardUsecase:  dashboardUsecase,
	}
}

// ListMerchants returns every merchant on the platform
// GET /api/v1/admin/merchants
func (h *SuperadminHandler) ListMerchants(c *gin.Context) {
	merchants, err := h.superadminUsecase.ListMerchants(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Merchants retrieved", gin.H{"merchants": merchants})
}

// GetMerchant returns a single merchant
// GET /api/v1/admin/merchants/:id
func (h *SuperadminHandler) GetMerchant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	merchant, err := h.superadminUsecase.GetMerchant(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Merchant retrieved", merchant)
}

// UpdateSubscription changes a merchant's subscription status and plan
// PUT /api/v1/admin/merchants/:id/subscription
func (h *SuperadminHandler) UpdateSubscription(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateSubscriptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	merchant, err := h.superadminUsecase.UpdateSubscription(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Subscription updated", merchant)
}

// DeleteMerchant soft-deletes a merchant without wash history
// DELETE /api/v1/admin/merchants/:id
func (h *SuperadminHandler) DeleteMerchant(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.superadminUsecase.DeleteMerchant(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Merchant deleted", nil)
}

// Dashboard returns platform-wide statistics
// GET /api/v1/admin/dashboard
func (h *SuperadminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.dashboardUsecase.SuperadminDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Dashboard retrieved", dashboard)
}

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid merchant ID"))
		return uuid.Nil, false
	}
	return id, true
}
