package alexa

// ErrorCode is an OAuth error code returned in the redirect fragment
type ErrorCode string

// Error codes understood by the Alexa account-linking client
const (
	ErrorInvalidRequest          ErrorCode = "invalid_request"
	ErrorUnauthorizedClient      ErrorCode = "unauthorized_client"
	ErrorUnsupportedResponseType ErrorCode = "unsupported_response_type"
	ErrorServerError             ErrorCode = "server_error"
)

// Implicit grant parameters
const (
	ResponseTypeToken = "token"
	TokenTypeBearer   = "Bearer"

	// TokenSize is the number of random bytes in an access token
	TokenSize = 64
)

// Fragment parameter names
const (
	ParamState       = "state"
	ParamError       = "error"
	ParamAccessToken = "access_token"
	ParamTokenType   = "token_type"
)

// FallbackRedirectPath receives request errors when no redirect URI was supplied
const FallbackRedirectPath = "/"

// Failure reasons reported to telemetry
const (
	FailureReasonUserNotFound = "user_not_found"
	FailureReasonUpdateFailed = "update_failed"
	FailureReasonUnexpected   = "unexpected_error"
)

// Error Messages
const (
	ErrMsgRandomSourceUnavailable = "secure random source unavailable"
)

// Log Messages
const (
	LogMsgLinkingDisabled        = "Alexa account linking is disabled"
	LogMsgInvalidRequest         = "Invalid Alexa account linking request"
	LogMsgNoRedirectURI          = "No redirect URI specified for Alexa account linking"
	LogMsgRedirectURINotAbsolute = "Alexa redirect URI is not an absolute URI"
	LogMsgRedirectURINotAllowed  = "Alexa redirect URI is not authorized"
	LogMsgUserNotFound           = "Failed to resolve current user for Alexa account linking"
	LogMsgUserLookupFailed       = "Error looking up current user for Alexa account linking"
	LogMsgUpdateFailed           = "Failed to persist Alexa access token"
	LogMsgUpdateError            = "User update error"
	LogMsgTokenCreated           = "Generated new Alexa access token"
	LogMsgTokenRegenerated       = "Regenerated Alexa access token"
	LogMsgRequestCancelled       = "Alexa account linking request cancelled"
	LogMsgUnexpectedFailure      = "Unexpected failure during Alexa account linking"
	LogMsgTelemetryFailed        = "Telemetry sink failed"
)
