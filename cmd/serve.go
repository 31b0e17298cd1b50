package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/tailorshop-api/config"
	"github.com/kendall-kelly/tailorshop-api/controllers"
	"github.com/kendall-kelly/tailorshop-api/logger"
	"github.com/kendall-kelly/tailorshop-api/middleware"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/routes"
	"github.com/kendall-kelly/tailorshop-api/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.L()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := config.ConnectDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer config.CloseDatabase(db, log)

	if err := config.Migrate(db); err != nil {
		return err
	}
	log.Info("Database migration completed successfully")

	store, err := services.NewS3Service(ctx, cfg)
	if err != nil {
		return err
	}

	repo := repository.New(db)
	authService := services.NewAuthService(repo.Users, services.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      cfg.JWTTTL,
	}, log)

	authGate, err := middleware.AuthGate(middleware.AuthConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
	}, authService, log)
	if err != nil {
		return err
	}

	handler := controllers.NewHandler(repo, store, authService, log)
	router, err := routes.New(handler, authGate, routes.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         log,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("addr", server.Addr), zap.String("env", cfg.GoEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("Server stopped")
	return nil
}
