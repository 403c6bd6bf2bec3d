package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// MigrationState is one embedded migration and whether the database has it
type MigrationState struct {
	Version int64
	Path    string
	Applied bool
}

func withProvider(pool *pgxpool.Pool, fn func(*goose.Provider) error) error {
	fsys, err := fs.Sub(migrationsFS, MigrationsDir)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func(db *sql.DB) { _ = db.Close() }(db)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadMigrations, err)
	}
	return fn(provider)
}

// Migrate applies all pending goose migrations embedded in the binary.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	return withProvider(pool, func(provider *goose.Provider) error {
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToApplyMigrations, err)
		}

		if len(results) == 0 {
			slog.Default().Info(LogMsgMigrationsUpToDate)
		}
		for _, r := range results {
			slog.Default().Info(LogMsgMigrationApplied,
				"version", r.Source.Version,
				"path", r.Source.Path,
				"duration", r.Duration)
		}
		return nil
	})
}

// MigrationStatus lists every embedded migration in version order
func MigrationStatus(ctx context.Context, pool *pgxpool.Pool) ([]MigrationState, error) {
	var states []MigrationState
	err := withProvider(pool, func(provider *goose.Provider) error {
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToReadMigrationStatus, err)
		}
		for _, s := range statuses {
			states = append(states, MigrationState{
				Version: s.Source.Version,
				Path:    s.Source.Path,
				Applied: s.State == goose.StateApplied,
			})
		}
		return nil
	})
	return states, err
}
