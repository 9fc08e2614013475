package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "washloop.backend/internal/domain/errors"
)

// Envelope is the uniform response body for every endpoint
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response derived from err's type
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if e, ok := err.(*domainerrors.AppError); ok {
		appErr = e
	} else {
		appErr = domainerrors.FromDomain(err, "")
	}

	c.JSON(appErr.Status, Envelope{
		Success: false,
		Message: appErr.Message,
		Errors:  []string{appErr.Message},
	})
}

// ValidationError sends a 400 with the binding errors listed
func ValidationError(c *gin.Context, errs ...string) {
	c.JSON(http.StatusBadRequest, Envelope{
		Success: false,
		Message: "validation failed",
		Errors:  errs,
	})
}
