package user

import "time"

// ============================================================================
// Cache Configuration
// ============================================================================

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// DefaultCacheSize is the default maximum number of cache entries
const DefaultCacheSize = 1000

// DefaultCacheTTL is the default time-to-live for cache entries
const DefaultCacheTTL = 5 * time.Minute

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgUserCreated        = "Created user from external login"
	LogMsgLoginAdded         = "Added external login to user"
	LogMsgUserSignedIn       = "User signed in"
	LogMsgUserUpdateFailed   = "Failed to update user"
	LogMsgFavoriteLinesSaved = "Updated favorite lines"
	LogMsgAlexaLinkRemoved   = "Removed Alexa link"
	LogMsgUserDeleted        = "Deleted user"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgFailedToGetUser    = "failed to get user"
	ErrMsgFailedToCreateUser = "failed to create user"
	ErrMsgFailedToAddLogin   = "failed to add login"
	ErrMsgFailedToDeleteUser = "failed to delete user"
)
