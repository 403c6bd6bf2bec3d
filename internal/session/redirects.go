package session

import (
	"net/url"
	"strings"
)

// DefaultReturnURL is used when a return URL is missing or unsafe
const DefaultReturnURL = "/"

// SanitizeReturnURL keeps raw only when it is a path on this site.
// Absolute URLs, scheme-relative URLs and backslash tricks fall back to "/".
func SanitizeReturnURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return DefaultReturnURL
	}
	if strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return DefaultReturnURL
	}

	u, err := url.Parse(raw)
	if err != nil || u.IsAbs() || u.Host != "" {
		return DefaultReturnURL
	}

	u.Fragment = ""
	u.RawFragment = ""
	return u.RequestURI()
}
