package domain_test

import (
	"errors"
	"testing"

	"snippets/internal/domain"
)

func TestMicroblogIdentity_UsesHostedEndpoints(t *testing.T) {
	// Act
	id := domain.MicroblogIdentity("tok", "https://me.micro.blog/")

	// Assert
	if id.Kind != domain.Micropub {
		t.Errorf("Kind: got %v, want micropub", id.Kind)
	}
	if id.MicropubEndpoint != "https://micro.blog/micropub" {
		t.Errorf("MicropubEndpoint: got %v", id.MicropubEndpoint)
	}
	if id.MediaEndpoint != "https://micro.blog/micropub/media" {
		t.Errorf("MediaEndpoint: got %v", id.MediaEndpoint)
	}
	if id.Destination != "https://me.micro.blog/" {
		t.Errorf("Destination: got %v", id.Destination)
	}
	if id.BlogID != "0" {
		t.Errorf("BlogID: got %v, want 0", id.BlogID)
	}
}

func TestMicropubIdentity_MediaEndpointDefaultsToEndpoint(t *testing.T) {
	id := domain.MicropubIdentity("tok", "https://blog.example/micropub", "", "")

	if id.MediaEndpoint != "https://blog.example/micropub" {
		t.Errorf("MediaEndpoint: got %v, want the micropub endpoint", id.MediaEndpoint)
	}
}

func TestRPCIdentities_DefaultBlogID(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
		kind domain.Protocol
	}{
		{"xmlrpc", domain.XMLRPCIdentity("bob", "pw", "https://blog.example/rpc", ""), domain.XMLRPC},
		{"wordpress", domain.WordPressIdentity("bob", "pw", "https://blog.example/xmlrpc.php", ""), domain.WordPress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.id.Kind != tt.kind {
				t.Errorf("Kind: got %v, want %v", tt.id.Kind, tt.kind)
			}
			if tt.id.BlogID != "0" {
				t.Errorf("BlogID: got %q, want 0", tt.id.BlogID)
			}
			if !tt.id.IsRPC() {
				t.Error("IsRPC: got false")
			}
			if tt.id.Endpoint() != tt.id.XMLRPCEndpoint {
				t.Errorf("Endpoint: got %v", tt.id.Endpoint())
			}
		})
	}
}

func TestIdentity_Normalize_FillsStoredDefaults(t *testing.T) {
	// Arrange
	stored := domain.Identity{Kind: domain.Micropub, Token: "tok"}

	// Act
	id := stored.Normalize()

	// Assert
	if id.MicropubEndpoint != domain.DefaultMicropubEndpoint {
		t.Errorf("MicropubEndpoint: got %v", id.MicropubEndpoint)
	}
	if id.MediaEndpoint != domain.DefaultMediaEndpoint {
		t.Errorf("MediaEndpoint: got %v", id.MediaEndpoint)
	}
	if id.TimelineEndpoint != domain.DefaultTimelineEndpoint {
		t.Errorf("TimelineEndpoint: got %v", id.TimelineEndpoint)
	}
	if id.BlogID != "0" {
		t.Errorf("BlogID: got %v", id.BlogID)
	}
}

func TestIdentity_Paths(t *testing.T) {
	id := domain.MicropubIdentity("tok", "https://blog.example/micropub/", "", "")

	if got := id.MicropubPath("posts/12"); got != "https://blog.example/micropub/posts/12" {
		t.Errorf("MicropubPath: got %v", got)
	}
	if got := id.TimelinePath("/posts/all"); got != "https://micro.blog/posts/all" {
		t.Errorf("TimelinePath: got %v", got)
	}
}

func TestIdentity_HasToken(t *testing.T) {
	if domain.MicroblogIdentity("", "").HasToken() {
		t.Error("empty token reported as present")
	}
	if domain.MicroblogIdentity("   ", "").HasToken() {
		t.Error("blank token reported as present")
	}
	if !domain.MicroblogIdentity("abc", "").HasToken() {
		t.Error("token reported as missing")
	}
}

func TestParseProtocol(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Protocol
		wantErr bool
	}{
		{"micropub", domain.Micropub, false},
		{"WordPress", domain.WordPress, false},
		{"xmlrpc", domain.XMLRPC, false},
		{"metaweblog", domain.XMLRPC, false},
		{"", domain.Micropub, false},
		{"atompub", domain.Micropub, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseProtocol(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseProtocol(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, domain.ErrUnknownProtocol) {
				t.Errorf("error: got %v, want ErrUnknownProtocol", err)
			}
			if got != tt.want {
				t.Errorf("ParseProtocol(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUser_Merge_KeepsKnownFields(t *testing.T) {
	// Arrange
	cached := domain.User{
		Handle:         "manton",
		FullName:       "Manton Reece",
		AvatarURL:      "https://avatars.example/manton.jpg",
		Bio:            "Working on Micro.blog.",
		FollowingCount: 120,
		IsFollowing:    true,
	}
	fresh := domain.User{
		Handle:  "manton",
		SiteURL: "https://manton.org",
	}

	// Act
	merged := cached.Merge(fresh)

	// Assert
	want := cached
	want.SiteURL = "https://manton.org"
	if merged != want {
		t.Errorf("Merge: got %+v, want %+v", merged, want)
	}
}

func TestUser_Merge_NewValuesWin(t *testing.T) {
	cached := domain.User{Handle: "jean", FullName: "Jean", FollowingCount: 3}

	merged := cached.Merge(domain.User{FullName: "Jean MacDonald", FollowingCount: 4})

	if merged.FullName != "Jean MacDonald" {
		t.Errorf("FullName: got %v", merged.FullName)
	}
	if merged.FollowingCount != 4 {
		t.Errorf("FollowingCount: got %v", merged.FollowingCount)
	}
	if merged.Handle != "jean" {
		t.Errorf("Handle: got %v", merged.Handle)
	}
}

func TestProtocolFault(t *testing.T) {
	fault := &domain.ProtocolFault{Code: "404", Message: "Invalid post ID."}

	if !fault.NotFound() {
		t.Error("NotFound: got false for 404")
	}
	if got := fault.Error(); got != "Invalid post ID. (error: 404)" {
		t.Errorf("Error: got %q", got)
	}
	if (&domain.ProtocolFault{Code: "403"}).NotFound() {
		t.Error("NotFound: got true for 403")
	}
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := error(&domain.TransportError{URL: "https://blog.example", Err: cause})

	if !errors.Is(err, cause) {
		t.Error("errors.Is did not reach the cause")
	}
	var te *domain.TransportError
	if !errors.As(err, &te) {
		t.Fatal("errors.As failed")
	}
}

func TestRemoteEndpoint_RPCIdentity(t *testing.T) {
	wp := domain.RemoteEndpoint{Hint: domain.HintWordPress, URL: "https://b.example/xmlrpc.php", BlogID: "1"}
	mw := domain.RemoteEndpoint{Hint: domain.HintMetaWeblog, URL: "https://b.example/rpc"}

	if id := wp.RPCIdentity("u", "p"); id.Kind != domain.WordPress || id.BlogID != "1" {
		t.Errorf("wordpress identity: got %+v", id)
	}
	if id := mw.RPCIdentity("u", "p"); id.Kind != domain.XMLRPC || id.BlogID != "0" {
		t.Errorf("metaweblog identity: got %+v", id)
	}
}
