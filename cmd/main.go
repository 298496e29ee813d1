// @title Suruwe Backend API
// @version 1.0
// @description Suruwe Backend API for shareable tailoring measurement profiles
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"
	"go.uber.org/zap"

	_ "SURUWE_BACK-END/docs" // This is required for swagger
	"SURUWE_BACK-END/internal/config"
	"SURUWE_BACK-END/internal/handlers"
	"SURUWE_BACK-END/internal/routes"
	"SURUWE_BACK-END/internal/store"
	"SURUWE_BACK-END/internal/upload"
	"SURUWE_BACK-END/internal/wizard"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// pgxpool + simple protocol (needed when connecting through PgBouncer)
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		logger.Fatal("parse dsn", zap.Error(err))
	}
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "suruwe-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		logger.Fatal("connect", zap.Error(err))
	}
	defer pool.Close()

	st := store.New(pool)
	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := st.Ping(ctx); err != nil {
			logger.Fatal("ping", zap.Error(err))
		}
		if err := st.EnsureSchema(ctx); err != nil {
			logger.Fatal("schema", zap.Error(err))
		}
	}

	uploader, err := upload.NewS3Uploader(context.Background(), cfg.Storage, cfg.Upload, logger)
	if err != nil {
		logger.Fatal("s3", zap.Error(err))
	}

	// Wizard session registry with background eviction
	registry := wizard.NewRegistry(cfg.App.WizardSessionTTL)
	registryCtx, stopRegistry := context.WithCancel(context.Background())
	defer stopRegistry()
	go registry.Run(registryCtx)

	// Initialize handlers
	profileHandler := handlers.NewProfileHandler(st, cfg, logger)
	photosHandler := handlers.NewPhotosHandler(st, uploader, cfg, logger)
	ordersHandler := handlers.NewOrdersHandler(st, uploader, cfg, logger)
	wizardHandler := handlers.NewWizardHandler(st, uploader, registry, cfg, logger)
	healthHandler := handlers.NewHealthHandler(st)

	// Setup all routes
	routes.SetupRoutes(cfg, profileHandler, photosHandler, ordersHandler, wizardHandler, healthHandler)

	// --- HTTP Server + Graceful Shutdown ---
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(http.DefaultServeMux)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("ListenAndServe", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
	logger.Info("Server stopped.")
}
