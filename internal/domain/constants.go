package domain

// Identity provider names, used in URLs and stored against external logins
const (
	ProviderAmazon    = "amazon"
	ProviderFacebook  = "facebook"
	ProviderGitHub    = "github"
	ProviderGoogle    = "google"
	ProviderMicrosoft = "microsoft"
	ProviderTwitter   = "twitter"
)

// Update error codes reported in UpdateResult
const (
	UpdateCodeConcurrencyFailure = "ConcurrencyFailure"
	UpdateCodeUserNotFound       = "UserNotFound"
	UpdateCodeDuplicateToken     = "DuplicateAccessToken"
	UpdateCodeStorageFailure     = "StorageFailure"
)
