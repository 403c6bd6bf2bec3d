package alexa

import (
	"context"
	"net/url"

	"golang.org/x/text/cases"

	"github.com/osse101/LondonTravel_Go/internal/logger"
)

// RedirectURIValidator checks redirect URIs against a configured allow-list
type RedirectURIValidator struct {
	allowed map[string]struct{}
}

// NewRedirectURIValidator builds a validator for the given allow-list.
// An empty allow-list accepts any absolute URI.
func NewRedirectURIValidator(allowed []string) *RedirectURIValidator {
	v := &RedirectURIValidator{allowed: make(map[string]struct{}, len(allowed))}
	for _, u := range allowed {
		if u == "" {
			continue
		}
		v.allowed[fold(u)] = struct{}{}
	}
	return v
}

// Validate reports whether redirectURI may receive the linking response
func (v *RedirectURIValidator) Validate(ctx context.Context, redirectURI *url.URL) bool {
	log := logger.FromContext(ctx)

	if redirectURI == nil {
		log.Warn(LogMsgNoRedirectURI)
		return false
	}

	if !redirectURI.IsAbs() {
		log.Warn(LogMsgRedirectURINotAbsolute, "redirect_uri", redirectURI.String())
		return false
	}

	if len(v.allowed) > 0 {
		if _, ok := v.allowed[fold(redirectURI.String())]; !ok {
			log.Warn(LogMsgRedirectURINotAllowed, "redirect_uri", redirectURI.String())
			return false
		}
	}

	return true
}

// fold uses a fresh Caser per call since a Caser is not safe for concurrent use
func fold(s string) string {
	return cases.Fold().String(s)
}
