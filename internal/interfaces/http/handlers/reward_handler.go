package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "washloop.backend/internal/domain/errors"
	"washloop.backend/internal/interfaces/http/middleware"
	"washloop.backend/internal/interfaces/http/response"
	"washloop.backend/internal/usecases"
)

// RewardHandler handles reward redemption endpoints
type RewardHandler struct {
	rewardUsecase *usecases.RewardUsecase
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardUsecase *usecases.RewardUsecase) *RewardHandler {
	return &RewardHandler{
		rewardUsecase: rewardUsecase,
	}
}

// Redeem claims a reward code presented by a customer
// POST /api/v1/merchant/rewards/redeem
func (h *RewardHandler) Redeem(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.rewardUsecase.Redeem(c.Request.Context(), merchantID, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Reward redeemed", result)
}
