package database

import (
	"errors"
	"fmt"
	"net/url"

	"store-ratings/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // pgx5:// database driver
	_ "github.com/golang-migrate/migrate/v4/source/file"     // file:// source driver
	"go.uber.org/zap"
)

// Migrate applies pending schema migrations. A database already at the
// latest version is not an error.
func Migrate(config utils.DatabaseConfig, logger *zap.Logger) error {
	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		url.QueryEscape(config.User),
		url.QueryEscape(config.Password),
		config.Host, config.Port, config.Name)

	m, err := migrate.New("file://"+config.MigrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}

	logger.Info("Database migrations applied", zap.String("path", config.MigrationsPath))
	return nil
}
