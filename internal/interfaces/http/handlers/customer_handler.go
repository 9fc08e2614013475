package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"washloop.backend/internal/domain/entities"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// CustomerHandler handles customer-facing endpoints
type CustomerHandler struct {
	customerUsecase *usecases.CustomerUsecase
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerUsecase *usecases.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{
		customerUsecase: customerUsecase,
	}
}

// Profile returns the authenticated customer's profile
// GET /api/v1/customer/profile
func (h *CustomerHandler) Profile(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, "Customer retrieved", customer)
}

// QR returns the customer's identity QR code as a PNG data URL
// GET /api/v1/customer/qr
func (h *CustomerHandler) QR(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return
	}

	dataURL, err := h.customerUsecase.IdentityQR(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "QR generated", gin.H{"qr": dataURL})
}

// Cards returns the customer's loyalty cards with progress
// GET /api/v1/customer/cards
func (h *CustomerHandler) Cards(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}

	cards, err := h.customerUsecase.Cards(c.Request.Context(), customer.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Cards retrieved", gin.H{"cards": cards})
}

// Washes returns the customer's wash history, newest first
// GET /api/v1/customer/washes
func (h *CustomerHandler) Washes(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}

	page, limit := paginationQuery(c)
	washes, meta, err := h.customerUsecase.Washes(c.Request.Context(), customer.ID, page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Washes retrieved", gin.H{
		"washes":     washes,
		"pagination": meta,
	})
}

// Rewards returns the customer's rewards
// GET /api/v1/customer/rewards
func (h *CustomerHandler) Rewards(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}

	rewards, err := h.customerUsecase.Rewards(c.Request.Context(), customer.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Rewards retrieved", gin.H{"rewards": rewards})
}

// Notifications returns the customer's notifications
// GET /api/v1/customer/notifications
func (h *CustomerHandler) Notifications(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}

	notifications, err := h.customerUsecase.Notifications(c.Request.Context(), customer.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications retrieved", gin.H{"notifications": notifications})
}

// MarkNotificationRead marks one notification as read
// POST /api/v1/customer/notifications/:id/read
func (h *CustomerHandler) MarkNotificationRead(c *gin.Context) {
	customer, ok := h.resolve(c)
	if !ok {
		return
	}

	notificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid notification ID"))
		return
	}

	if err := h.customerUsecase.MarkNotificationRead(c.Request.Context(), notificationID, customer.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

func (h *CustomerHandler) resolve(c *gin.Context) (*entities.Customer, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("User not authenticated"))
		return nil, false
	}

	customer, err := h.customerUsecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return customer, true
}
