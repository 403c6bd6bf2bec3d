package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgEmptyRequest          = "Request body is empty"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Preferences API error messages
	ErrMsgUnauthorized         = "Unauthorized."
	ErrMsgNoAccessToken        = "No access token specified."
	ErrMsgBearerSchemeRequired = "Only the Bearer authorization scheme is supported."
	ErrMsgGetPreferencesFailed = "Failed to retrieve preferences"

	// Account error messages
	ErrMsgSignInFailed        = "Sign-in failed"
	ErrMsgSignInStateMismatch = "The sign-in request has expired or is invalid. Please try again."
	ErrMsgProviderDenied      = "The identity provider did not authorize the sign-in"
	ErrMsgSessionWriteFailed  = "Failed to start session"
	ErrMsgUpdatePrefsFailed   = "Failed to update line preferences"
	ErrMsgRemoveAlexaFailed   = "Failed to remove Alexa link"
	ErrMsgDeleteAccountFailed = "Failed to delete account"
	ErrMsgGetProfileFailed    = "Failed to retrieve account"
)

// Success messages for API responses
const (
	MsgAccountDeleted = "Account deleted"
)

// Log messages
const (
	LogMsgAlexaAuthorize          = "Alexa authorization request"
	LogMsgUnknownOutcome          = "Authorization produced an unknown outcome"
	LogMsgPreferencesUnauthorized = "Preferences request rejected"
	LogMsgPreferencesLookupFailed = "Failed to look up preferences"
	LogMsgSignInStarted           = "Redirecting to identity provider"
	LogMsgSignInStateInvalid      = "Invalid external sign-in state"
	LogMsgProviderError           = "Identity provider returned an error"
	LogMsgExchangeFailed          = "Failed to complete external sign-in"
	LogMsgSignedOut               = "User signed out"
	LogMsgSessionWriteFailed      = "Failed to write session cookie"
	LogMsgReadinessFailed         = "Readiness check failed"
	LogMsgRequestDecodeFailed     = "Failed to decode request"
	LogMsgRequestTooLarge         = "Request body exceeded limit"
	LogMsgRequestInvalid          = "Request failed validation"
	LogMsgEncodeFailed            = "Failed to encode JSON response"
	LogMsgWriteFailed             = "Failed to write response"
)

// Query and form parameter names
const (
	ParamState        = "state"
	ParamClientID     = "client_id"
	ParamResponseType = "response_type"
	ParamRedirectURI  = "redirect_uri"
	ParamCode         = "code"
	ParamError        = "error"
	ParamErrorDesc    = "error_description"
	ParamProvider     = "provider"
)

// Header names and values
const (
	HeaderAuthorization   = "Authorization"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderLocation        = "Location"
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"

	ContentTypeJSON  = "application/json"
	BearerScheme     = "Bearer"
	CacheControlNone = "no-store"
)
