package alexa

import (
	"net/url"
	"strings"
)

// OutcomeKind discriminates the terminal states of an authorization request
type OutcomeKind int

const (
	// OutcomeUnknown is the zero value and never produced by Authorize
	OutcomeUnknown OutcomeKind = iota
	// OutcomeCancelled means the request went away before completion; nothing is written
	OutcomeCancelled
	OutcomeNotFound
	OutcomeBadRequest
	OutcomeRedirect
)

// Outcome is the result of an authorization request
type Outcome struct {
	Kind OutcomeKind
	URL  string
}

// NotFound returns an outcome rendered as HTTP 404
func NotFound() Outcome { return Outcome{Kind: OutcomeNotFound} }

// BadRequest returns an outcome rendered as HTTP 400
func BadRequest() Outcome { return Outcome{Kind: OutcomeBadRequest} }

// Cancelled returns an outcome for an aborted request
func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

// Redirect returns an outcome rendered as HTTP 302 to target
func Redirect(target string) Outcome { return Outcome{Kind: OutcomeRedirect, URL: target} }

// errorRedirect reports code to redirectURI, or to the local fallback when none was supplied
func errorRedirect(redirectURI *url.URL, state string, code ErrorCode) Outcome {
	fragment := ParamState + "=" + escapeData(state) + "&" + ParamError + "=" + escapeData(string(code))
	return Redirect(withFragment(redirectURI, fragment))
}

// successRedirect delivers the access token to redirectURI
func successRedirect(redirectURI *url.URL, state, token string) Outcome {
	fragment := ParamState + "=" + escapeData(state) +
		"&" + ParamAccessToken + "=" + escapeData(token) +
		"&" + ParamTokenType + "=" + TokenTypeBearer
	return Redirect(withFragment(redirectURI, fragment))
}

// withFragment replaces any fragment on redirectURI with the raw, already-escaped fragment
func withFragment(redirectURI *url.URL, fragment string) string {
	if redirectURI == nil {
		return FallbackRedirectPath + "#" + fragment
	}
	u := *redirectURI
	u.Fragment = ""
	u.RawFragment = ""
	return u.String() + "#" + fragment
}

// escapeData percent-encodes everything except unreserved characters
func escapeData(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
