package domain

import (
	"fmt"
	"strings"
)

// Protocol selects which adapter talks to a blog.
type Protocol int

const (
	Micropub Protocol = iota
	XMLRPC
	WordPress
)

var protocolNames = map[Protocol]string{
	Micropub:  "micropub",
	XMLRPC:    "xmlrpc",
	WordPress: "wordpress",
}

// String returns the persisted name of the protocol.
func (p Protocol) String() string {
	if name, ok := protocolNames[p]; ok {
		return name
	}
	return fmt.Sprintf("protocol(%d)", int(p))
}

// ParseProtocol accepts the names produced by String, case-insensitively.
func ParseProtocol(s string) (Protocol, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "micropub", "":
		return Micropub, nil
	case "xmlrpc", "xml-rpc", "metaweblog":
		return XMLRPC, nil
	case "wordpress":
		return WordPress, nil
	default:
		return Micropub, fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Protocol) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Protocol) UnmarshalText(text []byte) error {
	parsed, err := ParseProtocol(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Defaults used by the factories.
const (
	DefaultTimelineEndpoint = "https://micro.blog"
	DefaultMicropubEndpoint = "https://micro.blog/micropub"
	DefaultMediaEndpoint    = "https://micro.blog/micropub/media"
	DefaultBlogID           = "0"
)

// Identity holds the credentials and endpoints for one blog. Only Kind
// decides which fields are used; the others are kept so an identity can
// be copied and edited without losing data.
type Identity struct {
	Kind Protocol `yaml:"kind" json:"kind"`

	// Micropub
	TimelineEndpoint string `yaml:"timeline_endpoint,omitempty" json:"timeline_endpoint,omitempty"`
	MicropubEndpoint string `yaml:"micropub_endpoint,omitempty" json:"micropub_endpoint,omitempty"`
	MediaEndpoint    string `yaml:"media_endpoint,omitempty" json:"media_endpoint,omitempty"`
	Token            string `yaml:"token,omitempty" json:"token,omitempty"`
	Destination      string `yaml:"destination,omitempty" json:"destination,omitempty"`

	// XML-RPC and WordPress
	XMLRPCEndpoint string `yaml:"xmlrpc_endpoint,omitempty" json:"xmlrpc_endpoint,omitempty"`
	Username       string `yaml:"username,omitempty" json:"username,omitempty"`
	Password       string `yaml:"password,omitempty" json:"password,omitempty"`
	BlogID         string `yaml:"blog_id,omitempty" json:"blog_id,omitempty"`
}

// MicroblogIdentity targets the hosted Micro.blog service.
func MicroblogIdentity(token, destination string) Identity {
	return Identity{
		Kind:             Micropub,
		TimelineEndpoint: DefaultTimelineEndpoint,
		MicropubEndpoint: DefaultMicropubEndpoint,
		MediaEndpoint:    DefaultMediaEndpoint,
		Token:            token,
		Destination:      destination,
		BlogID:           DefaultBlogID,
	}
}

// MicropubIdentity targets a self-hosted Micropub endpoint. An empty media
// endpoint falls back to the micropub endpoint.
func MicropubIdentity(token, endpoint, mediaEndpoint, destination string) Identity {
	if mediaEndpoint == "" {
		mediaEndpoint = endpoint
	}
	return Identity{
		Kind:             Micropub,
		TimelineEndpoint: DefaultTimelineEndpoint,
		MicropubEndpoint: endpoint,
		MediaEndpoint:    mediaEndpoint,
		Token:            token,
		Destination:      destination,
		BlogID:           DefaultBlogID,
	}
}

// XMLRPCIdentity targets a generic MetaWeblog endpoint.
func XMLRPCIdentity(username, password, endpoint, blogID string) Identity {
	return rpcIdentity(XMLRPC, username, password, endpoint, blogID)
}

// WordPressIdentity targets a WordPress xmlrpc.php endpoint.
func WordPressIdentity(username, password, endpoint, blogID string) Identity {
	return rpcIdentity(WordPress, username, password, endpoint, blogID)
}

func rpcIdentity(kind Protocol, username, password, endpoint, blogID string) Identity {
	if blogID == "" {
		blogID = DefaultBlogID
	}
	return Identity{
		Kind:           kind,
		XMLRPCEndpoint: endpoint,
		Username:       username,
		Password:       password,
		BlogID:         blogID,
	}
}

// Normalize fills the defaults the factories would have applied. It is
// meant for identities decoded from a stored document.
func (id Identity) Normalize() Identity {
	if id.BlogID == "" {
		id.BlogID = DefaultBlogID
	}
	if id.Kind == Micropub {
		if id.TimelineEndpoint == "" {
			id.TimelineEndpoint = DefaultTimelineEndpoint
		}
		if id.MicropubEndpoint == "" {
			id.MicropubEndpoint = DefaultMicropubEndpoint
			if id.MediaEndpoint == "" {
				id.MediaEndpoint = DefaultMediaEndpoint
			}
		}
		if id.MediaEndpoint == "" {
			id.MediaEndpoint = id.MicropubEndpoint
		}
	}
	return id
}

// HasToken reports whether a bearer credential is present.
func (id Identity) HasToken() bool {
	return strings.TrimSpace(id.Token) != ""
}

// IsRPC reports whether the identity speaks XML-RPC in either flavor.
func (id Identity) IsRPC() bool {
	return id.Kind == XMLRPC || id.Kind == WordPress
}

// Endpoint returns the URL requests for this identity are sent to.
func (id Identity) Endpoint() string {
	if id.IsRPC() {
		return id.XMLRPCEndpoint
	}
	return id.MicropubEndpoint
}

// MicropubPath joins route onto the micropub endpoint.
func (id Identity) MicropubPath(route string) string {
	return joinPath(id.MicropubEndpoint, route)
}

// TimelinePath joins route onto the Micro.blog API endpoint.
func (id Identity) TimelinePath(route string) string {
	base := id.TimelineEndpoint
	if base == "" {
		base = DefaultTimelineEndpoint
	}
	return joinPath(base, route)
}

func joinPath(base, route string) string {
	if route == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(route, "/")
}

// Redacted returns a copy safe to log or serve: secrets are masked.
func (id Identity) Redacted() Identity {
	if id.Token != "" {
		id.Token = "***"
	}
	if id.Password != "" {
		id.Password = "***"
	}
	return id
}
