package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Den-0786/ypg-website-sub003/internal/auth"
	"github.com/Den-0786/ypg-website-sub003/internal/background"
	"github.com/Den-0786/ypg-website-sub003/internal/config"
	"github.com/Den-0786/ypg-website-sub003/internal/database"
	"github.com/Den-0786/ypg-website-sub003/internal/handlers"
	middlewareCustom "github.com/Den-0786/ypg-website-sub003/internal/middleware"
	"github.com/Den-0786/ypg-website-sub003/internal/models"
	"github.com/Den-0786/ypg-website-sub003/internal/repositories"
	"github.com/Den-0786/ypg-website-sub003/internal/routes"
	"github.com/Den-0786/ypg-website-sub003/internal/services"
	pkgauth "github.com/Den-0786/ypg-website-sub003/pkg/auth"
	pkglogger "github.com/Den-0786/ypg-website-sub003/pkg/logger"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.Migrate(migrateCtx, db, logger); err != nil {
		migrateCancel()
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}
	migrateCancel()

	// Repositories
	loginAttemptRepo := repositories.NewLoginAttemptRepository(db)
	credentialRepo := repositories.NewCredentialRepository(db)

	// Cleanup task for stale ledger rows
	cleanupManager := background.NewCleanupManager(
		loginAttemptRepo,
		logger,
		cfg.Auth.CleanupInterval,
		cfg.Auth.AttemptRetention,
	)

	sessionManager := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.SessionExpiry)

	auditLogger := pkglogger.NewAuditLogger(logger)

	timingDelay := auth.NewTimingDelay(auth.TimingConfig{
		BaseDelayMs:   cfg.Auth.TimingDelayBaseMs,
		RandomDelayMs: cfg.Auth.TimingDelayRandomMs,
	})

	// Services
	lockoutService := services.NewLockoutService(loginAttemptRepo, logger, auditLogger)
	loginService := services.NewLoginService(credentialRepo, lockoutService, sessionManager, timingDelay, logger, auditLogger)
	credentialService := services.NewCredentialService(credentialRepo, logger, auditLogger)

	// Handlers
	cookieConfig := auth.DefaultCookieConfig(cfg.Server.Env)
	authHandler := handlers.NewAuthHandler(loginService, cookieConfig, cfg.Auth.SessionExpiry)
	credentialHandler := handlers.NewCredentialHandler(credentialService)

	// Bootstrap the admin credential if configured
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := ensureAdminCredential(bootCtx, credentialRepo, logger); err != nil {
		logger.Error("failed to ensure admin credential", slog.Any("error", err))
	}
	bootCancel()

	corsConfig := middlewareCustom.DefaultCORSConfig(cfg.Server.AllowedOrigins)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(corsConfig))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Route("/api", func(r chi.Router) {
		routes.RegisterRoutes(r, authHandler, credentialHandler, sessionManager)
	})

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.HealthCheck(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status":"unhealthy","database":"down"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy","database":"up"}`))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	cleanupCtx, cleanupCancel := context.WithCancel(context.Background())
	defer cleanupCancel()

	go cleanupManager.Start(cleanupCtx)

	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	cleanupCancel()
	cleanupManager.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
}

// ensureAdminCredential provisions the singleton admin credential from
// ADMIN_USERNAME and ADMIN_PASSWORD on first boot
func ensureAdminCredential(ctx context.Context, credentialRepo *repositories.CredentialRepository, logger *slog.Logger) error {
	adminUsername := os.Getenv("ADMIN_USERNAME")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminUsername == "" || adminPassword == "" {
		logger.Info("no ADMIN_USERNAME or ADMIN_PASSWORD set, skipping credential bootstrap")
		return nil
	}

	_, err := credentialRepo.Get(ctx)
	if err == nil {
		logger.Info("admin credential already provisioned")
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return fmt.Errorf("failed to check admin credential: %w", err)
	}

	hashedPassword, err := pkgauth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if err := credentialRepo.Create(ctx, adminUsername, hashedPassword); err != nil {
		return fmt.Errorf("failed to create admin credential: %w", err)
	}

	logger.Info("admin credential provisioned")
	return nil
}
