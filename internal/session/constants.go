package session

import "time"

// Cookie names
const (
	CookieName       = "london_travel_session"
	SignInCookieName = "london_travel_signin"
)

// SignInTTL bounds how long an external sign-in round trip may take
const SignInTTL = 10 * time.Minute

// SignInPath is where unauthenticated browsers are sent
const SignInPath = "/account/signin"

// ReturnURLParam carries the page to resume after sign-in
const ReturnURLParam = "returnUrl"

// Error Messages
const (
	ErrMsgKeyRequired      = "signing key is required"
	ErrMsgEmptyValue       = "cookie value is empty"
	ErrMsgInvalidFormat    = "invalid format: expected payload.signature"
	ErrMsgInvalidSignature = "invalid signature"
	ErrMsgExpired          = "cookie expired"
	ErrMsgDecodePayload    = "failed to decode payload"
	ErrMsgDecodeSignature  = "failed to decode signature"
)

// Log Messages
const (
	LogMsgInvalidSessionCookie = "Ignoring invalid session cookie"
)
