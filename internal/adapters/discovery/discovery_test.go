package discovery_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"

	"snippets/internal/adapters/discovery"
	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/test/fixtures"
)

const (
	clientID    = "https://snippets.example/"
	redirectURI = "https://snippets.example/micropub/redirect"
)

// site serves a home page and an RSD document built from the server URL.
func site(t *testing.T, home func(base string) string, rsd func(base string) string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, home(srv.URL))
	})
	if rsd != nil {
		mux.HandleFunc("/rsd.xml", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/rsd+xml")
			_, _ = io.WriteString(w, rsd(srv.URL))
		})
	}
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func discoverer(srv *httptest.Server) *discovery.Discoverer {
	return discovery.New(transport.New(srv.Client(), ""), clientID, redirectURI,
		discovery.WithStateGenerator(func() string { return "state-1" }))
}

func TestDiscover_RSDSelectsBloggerEntry(t *testing.T) {
	// Arrange
	srv := site(t,
		func(base string) string { return fixtures.HomepageWithEditURI("/rsd.xml") },
		func(base string) string {
			return `<?xml version="1.0"?>
<rsd version="1.0"><service><apis>
  <api name="Atom" blogID="9" preferred="true" apiLink="` + base + `/atom" />
  <api name="Blogger" blogID="4" preferred="false" apiLink="` + base + `/rpc" />
</apis></service></rsd>`
		})

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := domain.RemoteEndpoint{Hint: domain.HintMetaWeblog, HomeURL: srv.URL, URL: srv.URL + "/rpc", BlogID: "4"}
	if diff := cmp.Diff(want, ep); diff != "" {
		t.Errorf("endpoint mismatch (-want +got):\n%s", diff)
	}
}

func TestDiscover_WordPressHint(t *testing.T) {
	// Arrange
	srv := site(t,
		func(base string) string { return fixtures.HomepageWithEditURI(base + "/rsd.xml") },
		func(base string) string { return fixtures.RSD(base+"/xmlrpc.php", "1") })

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.Hint != domain.HintWordPress {
		t.Errorf("Hint: got %v, want wordpress", ep.Hint)
	}
	if ep.URL != srv.URL+"/xmlrpc.php" || ep.BlogID != "1" {
		t.Errorf("endpoint: got %+v", ep)
	}

	id := ep.RPCIdentity("bob", "secret")
	if id.Kind != domain.WordPress || id.XMLRPCEndpoint != ep.URL {
		t.Errorf("identity: got %+v", id)
	}
}

func TestDiscover_WithScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  string
	}{
		{"custom", "create media", "create media"},
		{"empty keeps default", "  ", "create"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			srv := site(t, func(base string) string {
				return fixtures.HomepageWithMicropub("/micropub", "/auth", "/token")
			}, nil)
			d := discovery.New(transport.New(srv.Client(), ""), clientID, redirectURI, discovery.WithScope(tt.scope))

			// Act
			ep, err := d.Discover(context.Background(), srv.URL)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			u, err := url.Parse(ep.AuthorizationURL)
			if err != nil {
				t.Fatalf("authorization url: %v", err)
			}
			if got := u.Query().Get("scope"); got != tt.want {
				t.Errorf("scope: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDiscover_WordPressHintFromRelativeLink(t *testing.T) {
	// Arrange
	srv := site(t,
		func(base string) string { return fixtures.HomepageWithEditURI("/rsd.xml") },
		func(base string) string { return fixtures.RSD("xmlrpc.php", "1") })

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.Hint != domain.HintWordPress {
		t.Errorf("Hint: got %v, want wordpress", ep.Hint)
	}
	if ep.URL != srv.URL+"/xmlrpc.php" {
		t.Errorf("URL: got %v, want %v", ep.URL, srv.URL+"/xmlrpc.php")
	}
}

func TestDiscover_ResolvesLinksAgainstRedirectedPage(t *testing.T) {
	// Arrange
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/blog/", http.StatusFound)
	})
	mux.HandleFunc("/blog/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, fixtures.HomepageWithMicropub("micropub", "auth", "token"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := map[string]string{
		"micropub":      srv.URL + "/blog/micropub",
		"authorization": srv.URL + "/blog/auth",
		"token":         srv.URL + "/blog/token",
	}
	got := map[string]string{
		"micropub":      ep.URL,
		"authorization": ep.AuthorizationEndpoint,
		"token":         ep.TokenEndpoint,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("endpoints mismatch (-want +got):\n%s", diff)
	}
	if ep.HomeURL != srv.URL {
		t.Errorf("HomeURL: got %v, want %v", ep.HomeURL, srv.URL)
	}
}

func TestDiscover_Micropub(t *testing.T) {
	// Arrange
	srv := site(t, func(base string) string {
		return fixtures.HomepageWithMicropub("/micropub", "https://indieauth.example/auth?client=1", base+"/token")
	}, nil)

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.Hint != domain.HintMicropub || ep.URL != srv.URL+"/micropub" {
		t.Errorf("endpoint: got %+v", ep)
	}
	if ep.TokenEndpoint != srv.URL+"/token" || ep.State != "state-1" {
		t.Errorf("oauth fields: got %+v", ep)
	}

	u, err := url.Parse(ep.AuthorizationURL)
	if err != nil {
		t.Fatalf("authorization url: %v", err)
	}
	q := u.Query()
	if q.Get("client") != "1" {
		t.Errorf("existing query dropped: %v", ep.AuthorizationURL)
	}
	wantQuery := map[string]string{
		"me":            srv.URL,
		"redirect_uri":  redirectURI,
		"client_id":     clientID,
		"state":         "state-1",
		"scope":         "create",
		"response_type": "code",
	}
	for k, v := range wantQuery {
		if q.Get(k) != v {
			t.Errorf("%s: got %q, want %q", k, q.Get(k), v)
		}
	}
}

func TestDiscover_RSDTakesPrecedenceOverMicropub(t *testing.T) {
	// Arrange
	srv := site(t,
		func(base string) string { return fixtures.HomepageWithBoth(base+"/rsd.xml", base+"/micropub") },
		func(base string) string { return fixtures.RSD(base+"/rpc", "2") })

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.Hint != domain.HintMetaWeblog || ep.URL != srv.URL+"/rpc" {
		t.Errorf("endpoint: got %+v, want the RSD one", ep)
	}
}

func TestDiscover_MicropubFromLinkHeader(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Link", `</micropub>; rel="micropub"`)
		_, _ = io.WriteString(w, fixtures.HomepageWithoutEndpoints())
	}))
	t.Cleanup(srv.Close)

	// Act
	ep, err := discoverer(srv).Discover(context.Background(), srv.URL)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.URL != srv.URL+"/micropub" {
		t.Errorf("URL: got %v", ep.URL)
	}
	if ep.AuthorizationURL != "" {
		t.Errorf("AuthorizationURL: got %v, want empty without an authorization endpoint", ep.AuthorizationURL)
	}
}

func TestDiscover_NoEndpoint(t *testing.T) {
	tests := []struct {
		name string
		home func(base string) string
		rsd  func(base string) string
	}{
		{
			name: "no links",
			home: func(string) string { return fixtures.HomepageWithoutEndpoints() },
		},
		{
			name: "rsd without blogger",
			home: func(base string) string { return fixtures.HomepageWithEditURI(base + "/rsd.xml") },
			rsd:  func(base string) string { return fixtures.RSDWithoutBlogger(base + "/atom") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := site(t, tt.home, tt.rsd)

			_, err := discoverer(srv).Discover(context.Background(), srv.URL)

			if !errors.Is(err, domain.ErrNoPublishingEndpoint) {
				t.Errorf("error: got %v, want ErrNoPublishingEndpoint", err)
			}
		})
	}
}

func TestNormalizeHomeURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "  notes.example ", want: "http://notes.example"},
		{in: "https://notes.example/blog", want: "https://notes.example/blog"},
		{in: "localhost", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := discovery.NormalizeHomeURL(tt.in)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidURL) {
					t.Errorf("error: got %v, want ErrInvalidURL", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("got %q (%v), want %q", got, err, tt.want)
			}
		})
	}
}
