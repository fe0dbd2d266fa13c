package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kruglovma/sklad/internal/adapters/config"
	"github.com/kruglovma/sklad/internal/adapters/http/controllers"
	"github.com/kruglovma/sklad/internal/adapters/http/middleware"
)

type Router struct {
	healthController  *controllers.HealthController
	productController *controllers.ProductController
	rateLimiter       middleware.RateLimiter
	rateLimit         config.RateLimitConfig
}

func NewRouter(
	healthController *controllers.HealthController,
	productController *controllers.ProductController,
	rateLimiter middleware.RateLimiter,
	rateLimit config.RateLimitConfig,
) *Router {
	return &Router{
		healthController:  healthController,
		productController: productController,
		rateLimiter:       rateLimiter,
		rateLimit:         rateLimit,
	}
}

// SetupRoutes registers the public API. The paths and verbs are the
// compatibility surface consumed by existing clients; do not move them
// under a version prefix.
func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.LogRequest())

	router.GET("/health", r.healthController.Health)

	writeLimit := middleware.RateLimit(r.rateLimiter, r.rateLimit.Requests, r.rateLimit.Window)

	router.GET("/products", r.productController.ListProducts)
	router.POST("/products", writeLimit, r.productController.CreateProduct)
	router.GET("/products/:id", r.productController.GetProduct)
	router.PUT("/products/:id", writeLimit, r.productController.UpdateProduct)
	router.DELETE("/products/:id", writeLimit, r.productController.DeleteProduct)
}

func (r *Router) ListenAndServe(ctx context.Context, cfg config.HTTPConfig) error {
	engine := gin.Default()
	r.SetupRoutes(engine)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.BindInterface, cfg.Port),
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
