package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/jokistudio/portal/internal/server/http/handlers"
	"github.com/jokistudio/portal/internal/server/http/middleware"
)

// HealthChecker reports readiness of the backing storage.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PortalFacade, gate middleware.AccessGate, health HealthChecker, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	pesananHandler := handlers.NewPesananHandler(facade)
	portfolioHandler := handlers.NewPortfolioHandler(facade)

	engine.GET("/health", func(c *gin.Context) {
		if err := health.HealthCheck(c.Request.Context()); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}
		c.Status(http.StatusOK)
	})

	api := engine.Group("/api")
	api.POST("/auth/signin", authHandler.SignIn)
	api.GET("/portofolio", portfolioHandler.List)

	session := api.Group("")
	session.Use(middleware.SessionRequired(gate))
	session.POST("/pesanan", pesananHandler.Create)
	session.GET("/pesanan", pesananHandler.List)
	session.GET("/pesanan/:id", pesananHandler.Get)
	session.PATCH("/pesanan", pesananHandler.Patch)
	session.POST("/portofolio", portfolioHandler.Create)
	session.PUT("/portofolio/:id", portfolioHandler.Update)
	session.DELETE("/portofolio/:id", portfolioHandler.Delete)

	mobile := api.Group("/mobile")
	mobile.POST("/auth", authHandler.MobileLogin)

	mobileAuth := mobile.Group("")
	mobileAuth.Use(middleware.BearerRequired(gate))
	mobileAuth.POST("/fcm", authHandler.RegisterFCM)
	mobileAuth.DELETE("/fcm", authHandler.ClearFCM)
	mobileAuth.GET("/pesanan", pesananHandler.List)
	mobileAuth.GET("/pesanan/:id", pesananHandler.Get)
	mobileAuth.PATCH("/pesanan", pesananHandler.Patch)
	mobileAuth.POST("/portofolio", portfolioHandler.Create)
	mobileAuth.PUT("/portofolio/:id", portfolioHandler.Update)
	mobileAuth.DELETE("/portofolio/:id", portfolioHandler.Delete)

	return engine
}
