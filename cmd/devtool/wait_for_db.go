package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
)

const (
	waitForDBRetries  = 30
	waitForDBInterval = 2 * time.Second
	waitForDBDial     = 3 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Block until postgres accepts connections"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	url := databaseURL()
	var lastErr error
	for attempt := 1; attempt <= waitForDBRetries; attempt++ {
		if lastErr = pingOnce(url); lastErr == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		PrintInfo("Not ready (%d/%d): %v", attempt, waitForDBRetries, lastErr)
		time.Sleep(waitForDBInterval)
	}
	return fmt.Errorf("database not ready after %d attempts: %w", waitForDBRetries, lastErr)
}

// pingOnce opens a single connection rather than a pool so a half-started
// server is not hammered with MaxConns dials
func pingOnce(url string) error {
	ctx, cancel := context.WithTimeout(context.Background(), waitForDBDial)
	defer cancel()

	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())
	return conn.Ping(ctx)
}

// databaseURL builds the connection string from DB_URL or the DB_* variables
// the application itself reads
func databaseURL() string {
	if dbURL := os.Getenv("DB_URL"); dbURL != "" {
		return dbURL
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", appName))
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
