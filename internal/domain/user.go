package domain

import "time"

// User represents a registered website user
type User struct {
	ID            string          `json:"id"`
	Email         string          `json:"email"`
	GivenName     string          `json:"given_name"`
	Surname       string          `json:"surname"`
	FavoriteLines []string        `json:"favorite_lines"`
	AlexaToken    *string         `json:"-"`
	ETag          string          `json:"etag"`
	Logins        []ExternalLogin `json:"logins"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ExternalLogin links a user to an account at a third-party identity provider
type ExternalLogin struct {
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`
	DisplayName    string `json:"display_name"`
}

// IsLinkedToAlexa reports whether the user currently has an Alexa access token
func (u *User) IsLinkedToAlexa() bool {
	return u.AlexaToken != nil && *u.AlexaToken != ""
}

// HasLogin reports whether the user already has a login for the provider
func (u *User) HasLogin(provider string) bool {
	for _, l := range u.Logins {
		if l.Provider == provider {
			return true
		}
	}
	return false
}

// UpdateError describes a single reason a user update was rejected
type UpdateError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// UpdateResult is the outcome of persisting a user
type UpdateResult struct {
	Succeeded bool          `json:"succeeded"`
	Errors    []UpdateError `json:"errors,omitempty"`
}

// UpdateSucceeded returns a successful update result
func UpdateSucceeded() UpdateResult {
	return UpdateResult{Succeeded: true}
}

// UpdateFailed returns a failed update result carrying the given errors
func UpdateFailed(errs ...UpdateError) UpdateResult {
	return UpdateResult{Succeeded: false, Errors: errs}
}

// Principal identifies the signed-in user making a request
type Principal struct {
	UserID      string `json:"uid"`
	Provider    string `json:"p"`
	DisplayName string `json:"n,omitempty"`
}

// IsAuthenticated reports whether the principal refers to a user
func (p Principal) IsAuthenticated() bool {
	return p.UserID != ""
}

// ExternalProfile is the identity returned by a provider after sign-in
type ExternalProfile struct {
	Provider       string
	ProviderUserID string
	DisplayName    string
	Email          string
	GivenName      string
	Surname        string
}

// Login returns the external login described by the profile
func (p ExternalProfile) Login() ExternalLogin {
	return ExternalLogin{
		Provider:       p.Provider,
		ProviderUserID: p.ProviderUserID,
		DisplayName:    p.DisplayName,
	}
}
