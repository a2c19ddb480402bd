package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"mentorhub/internal/app"
	"mentorhub/internal/config"
	"mentorhub/internal/repository/sqlite"
)

var rootCmd = &cobra.Command{
	Use:   "mentorhub",
	Short: "Mentorship and learning backend",
	RunE:  runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply SQLite schema migrations and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.SilenceUsage = true
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Error("startup failed")
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           a.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			logger.WithError(err).Error("http server")
			_ = a.Close(context.Background())
			return err
		}
	}
	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("http shutdown: %v", err)
	}
	if err := a.Close(shutdownCtx); err != nil {
		logger.Warnf("close store: %v", err)
	}

	logger.Info("bye")
	return nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.Database.Driver != config.DriverSQLite {
		return fmt.Errorf("migrations apply to the sqlite driver only, configured %q", cfg.Database.Driver)
	}

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(cmd.Context(), db, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	logger.Info("migrations applied")
	return nil
}
