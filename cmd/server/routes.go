package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"washloop.backend/internal/domain/repositories"
	"washloop.backend/internal/interfaces/http/handlers"
	"washloop.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	scanHandler         *handlers.ScanHandler
	rewardHandler       *handlers.RewardHandler
	registrationHandler *handlers.RegistrationHandler
	merchantHandler     *handlers.MerchantHandler
	customerHandler     *handlers.CustomerHandler
	superadminHandler   *handlers.SuperadminHandler
	authMiddleware      gin.HandlerFunc
	merchantRepo        repositories.MerchantRepository
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register/customer", d.authHandler.RegisterCustomer)
			auth.POST("/register/merchant", d.authHandler.RegisterMerchant)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Public registration code lookup (for enrollment landing pages)
		v1.GET("/registration/:code", d.registrationHandler.ValidateCode)

		// Merchant routes (merchant role + active subscription)
		merchant := v1.Group("/merchant")
		merchant.Use(d.authMiddleware, middleware.RequireMerchant())
		{
			merchant.GET("/profile", d.merchantHandler.Profile)

			active := merchant.Group("")
			active.Use(middleware.RequireActiveSubscription(d.merchantRepo))
			{
				active.POST("/scan", middleware.IdempotencyMiddleware(), d.scanHandler.Scan)
				active.POST("/scan/validate", d.scanHandler.Validate)
				active.POST("/rewards/redeem", d.rewardHandler.Redeem)
				active.GET("/registration-qr", d.registrationHandler.GetQR)
				active.POST("/registration-qr/regenerate", d.registrationHandler.RegenerateQR)
				active.GET("/settings", d.merchantHandler.GetSettings)
				active.PUT("/settings", d.merchantHandler.UpdateSettings)
				active.GET("/washes", d.merchantHandler.ListWashes)
				active.GET("/dashboard", d.merchantHandler.Dashboard)
			}
		}

		// Customer routes (customer role)
		customer := v1.Group("/customer")
		customer.Use(d.authMiddleware, middleware.RequireCustomer())
		{
			customer.GET("/profile", d.customerHandler.Profile)
			customer.GET("/qr", d.customerHandler.QR)
			customer.GET("/cards", d.customerHandler.Cards)
			customer.GET("/washes", d.customerHandler.Washes)
			customer.GET("/rewards", d.customerHandler.Rewards)
			customer.GET("/notifications", d.customerHandler.Notifications)
			customer.POST("/notifications/:id/read", d.customerHandler.MarkNotificationRead)
			customer.POST("/enroll", d.registrationHandler.Enroll)
		}

		// Superadmin routes
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireSuperadmin())
		{
			admin.GET("/merchants", d.superadminHandler.ListMerchants)
			admin.GET("/merchants/:id", d.superadminHandler.GetMerchant)
			admin.PUT("/merchants/:id/subscription", d.superadminHandler.UpdateSubscription)
			admin.DELETE("/merchants/:id", d.superadminHandler.DeleteMerchant)
			admin.GET("/dashboard", d.superadminHandler.Dashboard)
		}
	}
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}
