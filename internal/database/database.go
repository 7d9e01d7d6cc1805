// Copyright the Stencil contributors
// SPDX-License-Identifier: Apache-2.0

package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	_ "github.com/jackc/pgx/v5/stdlib" // register the pgx database/sql driver
	"github.com/pressly/goose/v3"

	"github.com/gostencil/stencil/internal/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

var (
	ErrEnvVariablesNotValid = errors.New("environment variables not valid")
	ErrMigration            = errors.New("migration error")
)

type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
}

func LoadDatabaseConfig() (*Config, error) {
	var envVars Config
	if err := env.Parse(&envVars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvVariablesNotValid, err.Error())
	}

	if envVars.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL is required", ErrEnvVariablesNotValid)
	}
	return &envVars, nil
}

// gooseLogger adapts the application logger to the interface goose expects.
type gooseLogger struct {
	log logger.Logger
}

func (g *gooseLogger) Printf(format string, v ...any) {
	g.log.Verbose(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g *gooseLogger) Fatalf(format string, v ...any) {
	g.log.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

// Migrate applies the embedded schema placeholder migrations to the database
// reachable at databaseURL.
func Migrate(ctx context.Context, databaseURL string) error {
	log := logger.FromContext(ctx)

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMigration, err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Warn("error closing database connection: " + closeErr.Error())
		}
	}()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLogger{log: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("%w: %w", ErrMigration, err)
	}

	if err := goose.UpContext(ctx, db, migrationsDir); err != nil {
		return fmt.Errorf("%w: %w", ErrMigration, err)
	}

	log.Info("schema placeholder migrations applied")
	return nil
}
