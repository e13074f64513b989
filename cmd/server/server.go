package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/AnshRaj112/studentflow-backend/internal/config"
	"github.com/AnshRaj112/studentflow-backend/internal/database"
	"github.com/AnshRaj112/studentflow-backend/internal/gemini"
	"github.com/AnshRaj112/studentflow-backend/internal/handlers"
	"github.com/AnshRaj112/studentflow-backend/internal/middleware"
	"github.com/AnshRaj112/studentflow-backend/internal/routes"
	"github.com/AnshRaj112/studentflow-backend/internal/services"
	"github.com/AnshRaj112/studentflow-backend/internal/store"
)

const (
	defaultSecretKey = "your-secret-key-change-in-production"
	shutdownTimeout  = 10 * time.Second
)

func openDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	log.Printf("Connecting to database...")
	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.InitTables(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	log.Println("✅ Database tables ready")
	return db, nil
}

func initDB(ctx context.Context) error {
	db, err := openDatabase(ctx, config.Load())
	if err != nil {
		return err
	}
	return db.Close()
}

func serve(ctx context.Context) error {
	cfg := config.Load()

	if cfg.SecretKey == defaultSecretKey {
		log.Println("⚠️  WARNING: SECRET_KEY not set. Tokens are signed with the default key.")
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return errors.Wrap(err, "opening database")
	}
	defer db.Close()

	st := store.New(db)

	// A nil Generator keeps AI features in degraded mode
	var gen services.Generator
	if cfg.AIEnabled() {
		client := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
		gen = client
		log.Printf("✅ AI enabled (%s)", client.Model())
	} else {
		log.Println("⚠️  WARNING: GEMINI_API_KEY not set. AI features will run in degraded mode.")
	}

	auth := services.NewAuthService(st, services.NewTokenIssuer(cfg.SecretKey))
	h := handlers.New(handlers.Deps{
		Store:     st,
		Auth:      auth,
		Study:     services.NewStudyService(st),
		AI:        services.NewAIService(gen, st),
		StaticDir: cfg.StaticDir,
	})

	opts := routes.Options{
		Auth:           auth,
		AllowedOrigins: cfg.AllowedOrigins,
		Production:     cfg.IsProduction(),
		AllowedHost:    cfg.AllowedHost,
	}
	if cfg.RateLimitEnabled() {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Printf("⚠️  WARNING: Redis unavailable: %v", err)
		} else {
			defer rdb.Close()
			opts.Limiter = middleware.NewRedisCounter(rdb)
			log.Println("✅ Auth rate limiting enabled (Redis)")
		}
	}
	if opts.Limiter == nil {
		opts.LocalLimiter = middleware.NewIPLimiter(middleware.AuthRateLimitMaxRequests, middleware.AuthRateLimitWindow)
		log.Println("✅ Auth rate limiting enabled (in-process)")
	}
	if opts.Production {
		log.Println("✅ Production security headers enabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.NewRouter(h, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 StudentFlow backend running on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "serving http")
	case <-ctx.Done():
	}

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
