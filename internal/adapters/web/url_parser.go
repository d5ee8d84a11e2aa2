package web

import (
	"net/url"
	"regexp"

	"snippets/internal/domain"
)

// callbackURLRegex accepts http(s) and custom app schemes, e.g.
// snippets://micropub?code=...&state=...
var callbackURLRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ParseCallbackURL extracts the authorization code and state from the URL
// an IndieAuth server redirected to.
// Returns domain.ErrInvalidURL if either is missing.
func ParseCallbackURL(raw string) (code string, state string, err error) {
	if !callbackURLRegex.MatchString(raw) {
		return "", "", domain.ErrInvalidURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", domain.ErrInvalidURL
	}
	q := u.Query()
	code, state = q.Get("code"), q.Get("state")
	if code == "" || state == "" {
		return "", "", domain.ErrInvalidURL
	}
	return code, state, nil
}
