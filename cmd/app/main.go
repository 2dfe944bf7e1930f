package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"boxgym/internal/auth"
	"boxgym/internal/config"
	"boxgym/internal/db"
	"boxgym/internal/email"
	"boxgym/internal/logger"
	"boxgym/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title 3rd Street Boxing Gym API
// @version 1.0
// @description Class schedule, booking and member API for 3rd Street Boxing Gym.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logger.Info("Starting 3rd Street Boxing Gym API", "env", cfg.Env)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger.Info("Connecting to Redis...", "addr", cfg.RedisAddr)
	rdb, err := db.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()
	logger.Info("Redis connected")

	resolver, err := newResolver(ctx, cfg, rdb)
	if err != nil {
		logger.Fatalf("Failed to initialize auth: %v", err)
	}
	logger.Info("Auth initialized", "provider", cfg.AuthProvider)

	emailService := email.New(email.Config{
		Enabled:  cfg.EmailEnabled,
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		SMTPUser: cfg.SMTPUser,
		SMTPPass: cfg.SMTPPass,
	}, rdb)
	if cfg.EmailEnabled {
		go emailService.Start(ctx)
	} else {
		logger.Info("Email disabled, worker not started")
	}

	srv := server.New(cfg, rdb, resolver, emailService)

	if cfg.SeedOnStart {
		srv.Seeder().RunAsync(ctx)
	}

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}

func newResolver(ctx context.Context, cfg *config.Config, rdb redis.Cmdable) (auth.TokenResolver, error) {
	var provider auth.TokenResolver
	switch cfg.AuthProvider {
	case config.AuthProviderFirebase:
		fb, err := auth.NewFirebaseResolver(ctx, cfg.FirebaseCredentialsFile, cfg.FirebaseProjectID)
		if err != nil {
			return nil, err
		}
		provider = fb
	default:
		jwtResolver, err := auth.NewJWTResolver(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
		if err != nil {
			return nil, err
		}
		provider = jwtResolver
	}
	return auth.NewCachingResolver(provider, rdb, cfg.AuthCacheTTL), nil
}
