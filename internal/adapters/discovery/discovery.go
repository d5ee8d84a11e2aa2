// Package discovery finds out how a blog accepts posts, starting from
// nothing but its home page address.
package discovery

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
)

// Link relations looked up on the home page.
const (
	RelEditURI       = "EditURI"
	RelMicropub      = "micropub"
	RelMicropubMedia = "micropub_media"
	RelAuthorization = "authorization_endpoint"
	RelToken         = "token_endpoint"
)

// Discoverer fetches home pages and RSD documents.
type Discoverer struct {
	http        *transport.Client
	clientID    string
	redirectURI string
	scope       string
	newState    func() string
}

// Option customizes a Discoverer.
type Option func(*Discoverer)

// WithScope overrides the IndieAuth scope requested, "create" by default.
// An empty scope keeps the default.
func WithScope(scope string) Option {
	return func(d *Discoverer) {
		if scope = strings.TrimSpace(scope); scope != "" {
			d.scope = scope
		}
	}
}

// WithStateGenerator replaces the uuid state generator.
func WithStateGenerator(fn func() string) Option {
	return func(d *Discoverer) { d.newState = fn }
}

// New creates a Discoverer. clientID and redirectURI identify this app to
// IndieAuth authorization endpoints.
func New(tc *transport.Client, clientID, redirectURI string, opts ...Option) *Discoverer {
	d := &Discoverer{
		http:        tc,
		clientID:    clientID,
		redirectURI: redirectURI,
		scope:       "create",
		newState:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Discover inspects homeURL. An RSD document wins over a Micropub link
// when a page advertises both.
func (d *Discoverer) Discover(ctx context.Context, homeURL string) (domain.RemoteEndpoint, error) {
	home, err := NormalizeHomeURL(homeURL)
	if err != nil {
		return domain.RemoteEndpoint{}, err
	}

	page, err := d.http.Get(ctx, home)
	if err != nil {
		return domain.RemoteEndpoint{}, err
	}
	html := string(page.Body)
	// Links are relative to where redirects ended, not to what was typed.
	base := page.URL
	if base == "" {
		base = home
	}

	if rsdURL := findLink(html, RelEditURI); rsdURL != "" {
		log.GlobalDebugCtx(ctx, "found rsd link", "home", home, "rsd", rsdURL)
		return d.fromRSD(ctx, home, resolve(base, rsdURL))
	}

	micropub := findLink(html, RelMicropub)
	if micropub == "" {
		micropub = linkHeader(page.Header, RelMicropub)
	}
	if micropub == "" {
		return domain.RemoteEndpoint{}, fmt.Errorf("%w: %s", domain.ErrNoPublishingEndpoint, home)
	}

	lookup := func(rel string) string {
		v := findLink(html, rel)
		if v == "" {
			v = linkHeader(page.Header, rel)
		}
		if v == "" {
			return ""
		}
		return resolve(base, v)
	}

	ep := domain.RemoteEndpoint{
		Hint:                  domain.HintMicropub,
		HomeURL:               home,
		URL:                   resolve(base, micropub),
		MediaEndpoint:         lookup(RelMicropubMedia),
		AuthorizationEndpoint: lookup(RelAuthorization),
		TokenEndpoint:         lookup(RelToken),
	}
	if ep.AuthorizationEndpoint != "" {
		ep.State = d.newState()
		ep.AuthorizationURL = AuthorizationURL(ep.AuthorizationEndpoint, home, d.redirectURI, d.clientID, ep.State, d.scope)
	}
	log.GlobalDebugCtx(ctx, "found micropub endpoint", "home", home, "endpoint", ep.URL)
	return ep, nil
}

func (d *Discoverer) fromRSD(ctx context.Context, home, rsdURL string) (domain.RemoteEndpoint, error) {
	res, err := d.http.Get(ctx, rsdURL)
	if err != nil {
		return domain.RemoteEndpoint{}, err
	}
	base := res.URL
	if base == "" {
		base = rsdURL
	}
	ep, err := parseRSD(res.Body, base)
	if err != nil {
		return domain.RemoteEndpoint{}, err
	}
	ep.HomeURL = home
	return ep, nil
}

// AuthorizationURL builds the IndieAuth authorization request the user is
// sent to.
func AuthorizationURL(endpoint, me, redirectURI, clientID, state, scope string) string {
	q := url.Values{
		"me":            {me},
		"redirect_uri":  {redirectURI},
		"client_id":     {clientID},
		"state":         {state},
		"scope":         {scope},
		"response_type": {"code"},
	}
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + q.Encode()
}

// NormalizeHomeURL turns what a user typed into an absolute URL.
func NormalizeHomeURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" || !strings.Contains(s, ".") {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidURL, raw)
	}
	return u.String(), nil
}

func resolve(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}
