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

// ScanHandler handles merchant QR scan endpoints
type ScanHandler struct {
	scanUsecase *usecases.ScanUsecase
}

// NewScanHandler creates a new scan handler
func NewScanHandler(scanUsecase *usecases.ScanUsecase) *ScanHandler {
	return &ScanHandler{
		scanUsecase: scanUsecase,
	}
}

// Scan records a wash for the scanned customer
// POST /api/v1/merchant/scan
func (h *ScanHandler) Scan(c *gin.Context) {
	merchantID, ok := middleware.GetMerchantID(c)
	if !ok {
		response.Error(c, domainerrors.Forbidden("Merchant context missing"))
		return
	}

	var input entities.ScanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.scanUsecase.RecordWash(c.Request.Context(), merchantID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Wash recorded", result)
}

// Validate previews the scanned customer without recording anything
// POST /api/v1/merchant/scan/validate
func (h *ScanHandler) Validate(c *gin.Context) {
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

	preview, err := h.scanUsecase.ValidateScan(c.Request.Context(), merchantID, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Customer resolved", preview)
}
