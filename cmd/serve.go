package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"contacts-be/internal/cache"
	"contacts-be/internal/config"
	"contacts-be/internal/database"
	"contacts-be/internal/jwt"
	"contacts-be/internal/middleware"
	"contacts-be/internal/repository"
	"contacts-be/internal/server"
	"contacts-be/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		setLogging(resolveLogLevel(cfg.LogLevel))
		gin.SetMode(gin.ReleaseMode)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		db, err := database.NewConnection(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()

		if err := database.RunMigrations(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to run migrations")
		}

		// The contact list cache is optional
		var cacheClient cache.Cache
		if cfg.RedisURL != "" {
			cacheClient, err = cache.NewRedisCache(ctx, cfg.RedisURL, "contacts-be:")
			if err != nil {
				log.Warn().Err(err).Msg("redis unavailable, continuing without cache")
				cacheClient = nil
			} else {
				defer cacheClient.Close()
				log.Info().Msg("connected to redis cache")
			}
		}

		userRepo := repository.NewUserRepository(db)
		contactRepo := repository.NewContactRepository(db)

		jwtService := jwt.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)

		authService := service.NewAuthService(userRepo, jwtService)
		contactService := service.NewContactService(contactRepo, cacheClient)

		router := server.NewRouter(server.RouterConfig{
			DB:             db,
			AuthService:    authService,
			ContactService: contactService,
			Metrics:        middleware.NewMetrics(),
			GeneralLimiter: middleware.NewRateLimiter(ctx, rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
			AuthLimiter:    middleware.NewRateLimiter(ctx, rate.Limit(cfg.AuthRateRPS), cfg.AuthRateBurst),
			AllowedOrigins: cfg.AllowedOrigins,
			RequireAuth:    cfg.RequireAuth,
		})

		if err := server.Run(ctx, cfg.Addr(), router, cfg.ShutdownTimeout); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
