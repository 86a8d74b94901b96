// Command dbcheck verifies that the configured PostgreSQL database is reachable.
// It reads DATABASE_URL or the DB_* variables (see config.DatabaseURL) and exits non-zero on failure.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"weddinginvitation/config"
	"weddinginvitation/internal/repository/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: .env file couldn't be loaded: %v\n", err)
	}
	logger := config.NewLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, config.DatabaseURL())
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var version string
	if err := db.QueryRowContext(ctx, "SELECT version()").Scan(&version); err != nil {
		logger.Error("database query failed", "error", err)
		os.Exit(1)
	}
	logger.Info("database connection successful", "server", version)
}
