package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/quantumauth-io/quantum-bridge-client/internal/metrics"
)

func NewRouter(s *Server) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), metrics.GinMiddleware())

	if len(s.uiAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     s.uiAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           corsMaxAgeSeconds * time.Second,
		}))
	}

	r.GET("/metrics", withLoopbackOnly(), gin.WrapH(metrics.Handler()))

	api := r.Group("/api", withLoopbackOnly(), withSafeLocalHost())
	{
		api.GET("/health", s.handleHealth)
		api.GET("/catalog", s.handleCatalog)

		api.GET("/wallets", s.handleWallets)
		api.POST("/wallets/:kind/connect", s.handleWalletConnect)
		api.POST("/wallets/:kind/disconnect", s.handleWalletDisconnect)

		api.POST("/sessions", s.handleOpenSession)
		api.GET("/sessions/:id", s.handleGetSession)
		api.DELETE("/sessions/:id", s.handleCloseSession)
		api.POST("/sessions/:id/token", s.handleSelectToken)
		api.POST("/sessions/:id/source", s.handleSelectSource)
		api.POST("/sessions/:id/destination", s.handleSelectDestination)
		api.POST("/sessions/:id/swap", s.handleSwap)
		api.POST("/sessions/:id/amount", s.handleSetAmount)
		api.POST("/sessions/:id/proceed", s.handleProceed)
	}

	return r
}
