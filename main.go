// @title        Portfolio Contact API
// @version      1.0
// @description  Relays the portfolio contact form: stores each submission and sends the owner notification and submitter confirmation emails.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/config"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/db"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/handlers"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store/postgres"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/internal/store/supabase"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/logger"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/middleware"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/router"
	"github.com/manish-reddy7/Manish-Reddy-Portfolio/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	contactStore, closeStore := openContactStore(ctx, cfg)
	defer closeStore()

	var redisClient *redis.Client
	var rateLimiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(config.ConfigureRedisOptions(&cfg.Redis))
		defer redisClient.Close()

		if err := config.PingRedis(ctx, redisClient, 3, time.Second); err != nil {
			log.Warnw("Redis unreachable, rate limiter will allow requests until it recovers", "error", err)
		}
		rateLimiter = middleware.ContactRateLimiter(
			redisClient,
			cfg.RateLimit.ContactRequestsPerWindow,
			time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
		)
	}

	emailService := services.NewEmailService(&cfg.Email)
	contactService := services.NewContactService(contactStore, emailService, &cfg.Email, &cfg.Profile)

	var pinger services.Pinger
	if contactStore != nil {
		pinger = contactStore
	}
	var healthRedis redis.Cmdable
	if redisClient != nil {
		healthRedis = redisClient
	}
	healthService := services.NewHealthService(pinger, healthRedis, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:         cfg,
		ContactHandler: handlers.NewContactHandler(contactService),
		HealthHandler:  handlers.NewHealthHandler(healthService),
		RateLimiter:    rateLimiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Server forced to shut down", "error", err)
	}
}

// openContactStore builds the configured backend. Storage is best effort, so
// a backend that cannot be opened is logged and replaced by none.
func openContactStore(ctx context.Context, cfg *config.Config) (store.ContactStore, func()) {
	log := logger.GetLogger()
	noop := func() {}

	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		if cfg.Database.AutoMigrate {
			if err := db.RunMigrations(cfg.Database.URL()); err != nil {
				log.Errorw("Database migrations failed", "error", err)
			}
		}

		poolConfig, err := config.ConfigurePostgresPool(&cfg.Database)
		if err != nil {
			log.Errorw("Invalid database configuration, submissions will not be stored", "error", err)
			return nil, noop
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Errorw("Failed to connect to database, submissions will not be stored",
				"error", err,
				"url", logger.MaskConnectionString(cfg.Database.URL()))
			return nil, noop
		}
		log.Infow("Using postgres contact store", "host", cfg.Database.Host, "database", cfg.Database.Name)
		return postgres.NewContactStore(pool), pool.Close

	default:
		s, err := supabase.NewContactStore(cfg.ExternalServices.SupabaseURL, cfg.ExternalServices.SupabaseServiceKey)
		if err != nil {
			log.Errorw("Failed to create supabase store, submissions will not be stored", "error", err)
			return nil, noop
		}
		log.Infow("Using supabase contact store", "url", cfg.ExternalServices.SupabaseURL)
		return s, noop
	}
}
