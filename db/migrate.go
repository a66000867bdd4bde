package db

import (
	"fmt"
	"go-bank-ledger/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// EnsureSchema applies any pending migrations. Safe to call on every startup;
// an already current schema is not an error.
func EnsureSchema(migrationPath, connStr string) error {
	mig, err := migrate.New(migrationPath, connStr)
	if err != nil {
		return fmt.Errorf("cannot create migrate instance: %w", err)
	}
	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrate up: %w", err)
	}
	logger.Log.Info("Database schema is up to date")
	return nil
}
