package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Constraint names created by the migrations
const (
	ConstraintUsersAlexaToken = "users_alexa_token_key"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToCommit           = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToGetUser     = "failed to get user"
	ErrMsgFailedToGetLogins   = "failed to get user logins"
	ErrMsgFailedToInsertUser  = "failed to insert user"
	ErrMsgFailedToInsertLogin = "failed to insert login"
	ErrMsgFailedToUpdateUser  = "failed to update user"
	ErrMsgFailedToDeleteUser  = "failed to delete user"
)

// Log messages
const (
	LogMsgRollbackFailed = "Failed to roll back transaction"
)
