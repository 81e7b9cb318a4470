package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-mintgate/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, requireSubmitAuth bool) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Submission endpoint; open by default, authentication optional
		if requireSubmitAuth {
			v1.POST("/transactions", middleware.Auth(authCfg), handler.SubmitTransaction)
		} else {
			v1.POST("/transactions", handler.SubmitTransaction)
		}

		// Journal endpoints (public read access)
		v1.GET("/transactions", handler.ListTransactions)
		v1.GET("/transactions/:hash", handler.GetTransaction)
		v1.GET("/events", handler.ListEvents)

		// Account endpoints (public read access)
		v1.GET("/accounts/:address", handler.GetAccount)

		// Contract endpoints (public read access)
		v1.GET("/contracts", handler.ListContracts)
		v1.GET("/contracts/:address", handler.GetContract)
		v1.GET("/contracts/:address/tokens", handler.ListCollectionTokens)
		v1.GET("/contracts/:address/tokens/:number", handler.GetCollectionToken)
		v1.GET("/contracts/:address/tokens/:number/metadata", handler.GetTokenMetadata)
		v1.GET("/contracts/:address/balances/:owner", handler.GetTokenBalance)
		v1.GET("/contracts/:address/allowances", handler.GetTokenAllowance)

		// Webhook endpoints (requires API key authentication only)
		v1.POST("/webhooks/clients", middleware.APIKeyAuth(authCfg), handler.CreateWebhookClient)
	}
}
