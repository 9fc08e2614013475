package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/internal/interfaces/http/response"
)

// MerchantIDKey is the context key for the resolved merchant ID
const MerchantIDKey = "merchantId"

// RequireActiveSubscription resolves the authenticated user's merchant
// profile and blocks the request unless the subscription is active. The
// resolved merchant is stored in the context for handlers.
//
// This is the server-side authorization policy for merchant routes: role
// tag (checked by RequireMerchant) plus an explicit subscription state
// check.
func RequireActiveSubscription(merchantRepo repositories.MerchantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			abortUnauthorized(c, "User not authenticated")
			return
		}

		merchant, err := merchantRepo.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusNotFound, response.Envelope{
				Success: false,
				Message: "Merchant profile not found",
				Errors:  []string{"Merchant profile not found"},
			})
			return
		}

		if !merchant.IsActive() {
			msg := "Merchant subscription is not active"
			c.AbortWithStatusJSON(http.StatusForbidden, response.Envelope{
				Success: false,
				Message: msg,
				Errors:  []string{msg},
			})
			return
		}

		c.Set(MerchantIDKey, merchant.ID)
		c.Next()
	}
}

// GetMerchantID returns the merchant ID resolved by RequireActiveSubscription
func GetMerchantID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(MerchantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
