package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LondonTravel_Go/internal/domain"
)

// UserRepository implements the user repository for PostgreSQL
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const selectUserColumns = `
	SELECT user_id, COALESCE(email, ''), given_name, surname, favorite_lines,
	       alexa_token, etag, created_at, updated_at
	FROM users
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user  domain.User
		id    uuid.UUID
		etag  uuid.UUID
		token *string
	)
	err := row.Scan(&id, &user.Email, &user.GivenName, &user.Surname, &user.FavoriteLines,
		&token, &etag, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.ID = id.String()
	user.ETag = etag.String()
	user.AlexaToken = token
	if user.FavoriteLines == nil {
		user.FavoriteLines = []string{}
	}
	return &user, nil
}

// getUser runs a single-row user query and attaches the user's logins
func (r *UserRepository) getUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUser, err)
	}

	logins, err := r.getLogins(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Logins = logins
	return user, nil
}

func (r *UserRepository) getLogins(ctx context.Context, userID string) ([]domain.ExternalLogin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT provider, provider_user_id, display_name
		FROM user_logins
		WHERE user_id = $1
		ORDER BY provider
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLogins, err)
	}
	defer rows.Close()

	logins := []domain.ExternalLogin{}
	for rows.Next() {
		var l domain.ExternalLogin
		if err := rows.Scan(&l.Provider, &l.ProviderUserID, &l.DisplayName); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLogins, err)
		}
		logins = append(logins, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetLogins, err)
	}
	return logins, nil
}

// GetUserByID finds a user by internal ID
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	id, err := userUUID(userID)
	if err != nil {
		return nil, err
	}
	return r.getUser(ctx, selectUserColumns+` WHERE user_id = $1`, id)
}

// GetUserByLogin finds the user owning an external login
func (r *UserRepository) GetUserByLogin(ctx context.Context, provider, providerUserID string) (*domain.User, error) {
	return r.getUser(ctx, selectUserColumns+`
		WHERE user_id = (
			SELECT user_id FROM user_logins WHERE provider = $1 AND provider_user_id = $2
		)`, provider, providerUserID)
}

// GetUserByAlexaToken finds the user an Alexa access token was issued to
func (r *UserRepository) GetUserByAlexaToken(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUserNotFound
	}
	return r.getUser(ctx, selectUserColumns+` WHERE alexa_token = $1`, token)
}

// CreateUser inserts a new user together with its external logins
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	lines := user.FavoriteLines
	if lines == nil {
		lines = []string{}
	}

	var id, etag uuid.UUID
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, given_name, surname, favorite_lines, alexa_token)
		VALUES (NULLIF($1, ''), $2, $3, $4, $5)
		RETURNING user_id, etag, created_at, updated_at
	`, user.Email, user.GivenName, user.Surname, lines, user.AlexaToken).
		Scan(&id, &etag, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}

	for _, l := range user.Logins {
		if err := insertLogin(ctx, tx, id, l); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}

	user.ID = id.String()
	user.ETag = etag.String()
	user.FavoriteLines = lines
	return nil
}

func insertLogin(ctx context.Context, tx pgx.Tx, userID uuid.UUID, l domain.ExternalLogin) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO user_logins (user_id, provider, provider_user_id, display_name)
		VALUES ($1, $2, $3, $4)
	`, userID, l.Provider, l.ProviderUserID, l.DisplayName)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return fmt.Errorf("%w: %s", domain.ErrLoginInUse, l.Provider)
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertLogin, err)
	}
	return nil
}

// UpdateUser writes the mutable fields of a user, guarded by its ETag
func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	id, err := userUUID(user.ID)
	if err != nil {
		return err
	}
	etag, err := uuid.Parse(user.ETag)
	if err != nil {
		return domain.ErrConcurrencyConflict
	}

	lines := user.FavoriteLines
	if lines == nil {
		lines = []string{}
	}

	var newETag uuid.UUID
	err = r.db.QueryRow(ctx, `
		UPDATE users
		SET email = NULLIF($3, ''), given_name = $4, surname = $5,
		    favorite_lines = $6, alexa_token = $7,
		    etag = gen_random_uuid(), updated_at = NOW()
		WHERE user_id = $1 AND etag = $2
		RETURNING etag, updated_at
	`, id, etag, user.Email, user.GivenName, user.Surname, lines, user.AlexaToken).
		Scan(&newETag, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.classifyMissedUpdate(ctx, id)
		}
		if constraint, ok := uniqueViolation(err); ok && constraint == ConstraintUsersAlexaToken {
			return domain.ErrDuplicateAlexaToken
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}

	user.ETag = newETag.String()
	return nil
}

// classifyMissedUpdate tells apart a deleted user from a stale ETag
func (r *UserRepository) classifyMissedUpdate(ctx context.Context, id uuid.UUID) error {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE user_id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}
	if !exists {
		return domain.ErrUserNotFound
	}
	return domain.ErrConcurrencyConflict
}

// AddLogin attaches another external login to an existing user
func (r *UserRepository) AddLogin(ctx context.Context, userID string, login domain.ExternalLogin) error {
	id, err := userUUID(userID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer rollback(ctx, tx)

	if err := insertLogin(ctx, tx, id, login); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE users SET etag = gen_random_uuid(), updated_at = NOW() WHERE user_id = $1`, id); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateUser, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}
	return nil
}

// DeleteUser removes a user; logins cascade
func (r *UserRepository) DeleteUser(ctx context.Context, userID string) error {
	id, err := userUUID(userID)
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteUser, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
