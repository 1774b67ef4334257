package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	_ "petcare-backend/docs"
	"petcare-backend/internal/adapters/auth/gateway"
	pg "petcare-backend/internal/adapters/storage/postgres"
	"petcare-backend/internal/config"
	"petcare-backend/internal/platform/logger"
	"petcare-backend/internal/platform/uploads"
	"petcare-backend/internal/ports/auth"
	"petcare-backend/internal/router"
)

// @title PetCare API
// @version 1.0
// @description Backend de gestión de mascotas: adopciones, citas, historial médico y disponibilidad de veterinarios.
// @BasePath /
func main() {
	// .env opcional: en prod todo viene del entorno.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	stores := router.MemoryStores()
	if cfg.DatabaseURL != "" {
		db, err := pg.Open(cfg.DatabaseURL)
		if err != nil {
			logg.Error("postgres connect failed", map[string]any{"error": err.Error()})
			log.Fatalf("postgres: %v", err)
		}
		if err := pg.RunMigrations(db, cfg.MigrationsDir, logg); err != nil {
			logg.Error("migrations failed", map[string]any{"error": err.Error()})
			log.Fatalf("migrations: %v", err)
		}
		stores = router.PostgresStores(db)
		logg.Info("storage backend", map[string]any{"backend": "postgres"})
	} else {
		logg.Warn("DATABASE_URL vacío: usando storage en memoria", nil)
	}

	files, err := uploads.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("uploads: %v", err)
	}

	var verifier auth.AuthVerifier
	if cfg.AuthServiceURL != "" {
		client, err := gateway.NewClient(gateway.Config{
			BaseURL: cfg.AuthServiceURL,
			APIKey:  cfg.AuthServiceAPIKey,
		})
		if err != nil {
			log.Fatalf("auth gateway: %v", err)
		}
		verifier = gateway.NewVerifier(client)
		logg.Info("auth verifier enabled", map[string]any{"url": cfg.AuthServiceURL})
	}

	handler := router.NewRouter(router.Options{
		Stores:         stores,
		Uploads:        files,
		Log:            logg,
		Auth:           verifier,
		AllowedOrigins: cfg.Origins(),
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	logg.Info("starting server", map[string]any{"addr": cfg.Addr()})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
