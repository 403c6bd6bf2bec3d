package identity

import "time"

// CallbackPathPrefix is joined with the provider name to form the OAuth redirect URL
const CallbackPathPrefix = "/account/callback/"

// ProfileTimeout bounds the profile request made after code exchange
const ProfileTimeout = 10 * time.Second

// maxProfileBytes caps how much of a profile response is read
const maxProfileBytes = 1 << 20

// Profile endpoints
const (
	AmazonProfileURL    = "https://api.amazon.com/user/profile"
	FacebookProfileURL  = "https://graph.facebook.com/me?fields=id,name,email,first_name,last_name"
	GitHubProfileURL    = "https://api.github.com/user"
	GoogleProfileURL    = "https://openidconnect.googleapis.com/v1/userinfo"
	MicrosoftProfileURL = "https://graph.microsoft.com/v1.0/me"
	TwitterProfileURL   = "https://api.twitter.com/2/users/me"
)

// Twitter OAuth 2.0 endpoints
const (
	TwitterAuthURL  = "https://twitter.com/i/oauth2/authorize"
	TwitterTokenURL = "https://api.twitter.com/2/oauth2/token"
)

// Error Messages
const (
	ErrMsgExchangeFailed  = "exchanging code"
	ErrMsgProfileRequest  = "requesting profile"
	ErrMsgProfileStatus   = "profile endpoint returned status"
	ErrMsgProfileDecode   = "decoding profile"
	ErrMsgProfileNoUserID = "profile has no user id"
)

// Log Messages
const (
	LogMsgProviderRegistered = "Identity provider registered"
	LogMsgNoProviders        = "No identity providers configured; sign-in is unavailable"
)
