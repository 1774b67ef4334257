package postgres

import (
	"database/sql"
	"fmt"

	"petcare-backend/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	mpg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica las migraciones pendientes del directorio dado.
// Es idempotente: correrla de nuevo sin cambios es un no-op.
func RunMigrations(db *sql.DB, migrationsPath string, log logger.Logger) error {
	driver, err := mpg.WithInstance(db, &mpg.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", migrationsPath),
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("closing migration source", map[string]any{"error": srcErr.Error()})
		}
		if dbErr != nil {
			log.Warn("closing migration database", map[string]any{"error": dbErr.Error()})
		}
	}()

	err = m.Up()
	if err == migrate.ErrNoChange {
		log.Info("no migrations to apply", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("migrations applied", map[string]any{"version": version})
	return nil
}
