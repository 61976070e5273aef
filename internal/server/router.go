package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"contacts-be/internal/controllers"
	"contacts-be/internal/middleware"
	"contacts-be/internal/service"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// RouterConfig collects everything the HTTP surface depends on
type RouterConfig struct {
	DB             Pinger
	AuthService    service.AuthService
	ContactService service.ContactService
	Metrics        *middleware.Metrics
	GeneralLimiter *middleware.RateLimiter
	AuthLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	RequireAuth    bool
}

// NewRouter builds the gin engine serving the contact API
func NewRouter(cfg RouterConfig) *gin.Engine {
	authController := controllers.NewAuthController(cfg.AuthService)
	contactController := controllers.NewContactController(cfg.ContactService)

	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware())
	}
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	// Probes sit outside rate limiting
	router.GET("/health", healthHandler(cfg.DB))
	if cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := router.Group("")
	if cfg.GeneralLimiter != nil {
		api.Use(cfg.GeneralLimiter.LimitMiddleware())
	}

	auth := api.Group("")
	if cfg.AuthLimiter != nil {
		auth.Use(cfg.AuthLimiter.LimitMiddleware())
	}
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	contacts := api.Group("/contacts")
	contacts.GET("", contactController.ListContacts)

	writes := contacts.Group("")
	if cfg.RequireAuth {
		writes.Use(middleware.AuthMiddleware(cfg.AuthService))
	}
	{
		writes.POST("", contactController.CreateContact)
		writes.PUT("/:id", contactController.UpdateContact)
		writes.DELETE("/:id", contactController.DeleteContact)
	}

	return router
}

func healthHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
