package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hexlab-games/habitquest/internal/config"
	"github.com/hexlab-games/habitquest/internal/database"
	"github.com/hexlab-games/habitquest/internal/database/postgres"
	"github.com/hexlab-games/habitquest/internal/repository"
)

// InitializeStorage connects to PostgreSQL, runs pending migrations and
// builds the store backing the game service.
// The returned pool must be closed by the caller on shutdown.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, repository.Store, error) {
	pool, err := database.NewPool(
		cfg.GetDBConnString(),
		DBDefaultMaxConnections,
		DBDefaultMaxIdleTime,
		DBDefaultMaxLifetime,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDatabase, err)
	}

	slog.Info(LogMsgRunningMigrations)
	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedRunMigrations, err)
	}

	slog.Info(LogMsgDatabaseReady)
	return pool, postgres.NewStore(pool), nil
}
