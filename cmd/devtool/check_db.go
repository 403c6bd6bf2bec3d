package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/LondonTravel_Go/internal/database"
)

const checkDBTimeout = 15 * time.Second

// CheckDBCommand connects with the application's own pool settings and
// reports the server version and which embedded migrations are applied.
type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Report database connectivity and pending migrations"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking database...")

	ctx, cancel := context.WithTimeout(context.Background(), checkDBTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      databaseURL(),
		MaxConns:        migrateMaxConns,
		MaxConnIdleTime: migrateConnLimit,
		MaxConnLifetime: migrateConnLimit,
	})
	if err != nil {
		PrintInfo("Start postgres, or run `go run ./cmd/devtool wait-for-db` while it boots")
		return err
	}
	defer pool.Close()

	var version string
	if err := pool.QueryRow(ctx, "SHOW server_version").Scan(&version); err != nil {
		return fmt.Errorf("reading server version: %w", err)
	}
	PrintSuccess("Connected to PostgreSQL %s", version)

	states, err := database.MigrationStatus(ctx, pool)
	if err != nil {
		return err
	}

	pending := 0
	for _, st := range states {
		if st.Applied {
			PrintSuccess("%05d %s", st.Version, st.Path)
			continue
		}
		pending++
		PrintWarning("%05d %s (pending)", st.Version, st.Path)
	}

	if pending > 0 {
		PrintInfo("%d migration(s) pending; run `go run ./cmd/devtool migrate up`", pending)
		return nil
	}
	PrintSuccess("Schema is up to date")
	return nil
}
