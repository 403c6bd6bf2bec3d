package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/LondonTravel_Go/internal/domain"
	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// rollback is deferred after Begin; once Commit has run it is a no-op
func rollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error(LogMsgRollbackFailed, "error", err)
	}
}

// userUUID maps an unparseable id to ErrUserNotFound; no such row can exist
func userUUID(userID string) (uuid.UUID, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
	}
	return id, nil
}

// uniqueViolation reports whether err is a unique constraint violation and which constraint fired
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
		return pgErr.ConstraintName, true
	}
	return "", false
}
