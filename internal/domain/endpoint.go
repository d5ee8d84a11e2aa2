package domain

// EndpointHint is what discovery learned about a blog's protocol.
type EndpointHint string

const (
	HintWordPress  EndpointHint = "wordpress"
	HintMetaWeblog EndpointHint = "metaweblog"
	HintMicropub   EndpointHint = "micropub"
)

// RemoteEndpoint is the result of discovering a blog's publishing API.
type RemoteEndpoint struct {
	Hint    EndpointHint `json:"hint"`
	HomeURL string       `json:"home_url"`
	URL     string       `json:"url"`
	BlogID  string       `json:"blog_id,omitempty"`

	// Micropub only.
	MediaEndpoint         string `json:"media_endpoint,omitempty"`
	AuthorizationEndpoint string `json:"authorization_endpoint,omitempty"`
	TokenEndpoint         string `json:"token_endpoint,omitempty"`
	AuthorizationURL      string `json:"authorization_url,omitempty"`
	State                 string `json:"state,omitempty"`
}

// RPCIdentity builds an XML-RPC identity from an RSD discovery result.
func (e RemoteEndpoint) RPCIdentity(username, password string) Identity {
	if e.Hint == HintWordPress {
		return WordPressIdentity(username, password, e.URL, e.BlogID)
	}
	return XMLRPCIdentity(username, password, e.URL, e.BlogID)
}

// MicropubIdentity builds a Micropub identity once a token was obtained.
func (e RemoteEndpoint) MicropubIdentity(token, destination string) Identity {
	return MicropubIdentity(token, e.URL, e.MediaEndpoint, destination)
}

// AuthorizationCode is what the IndieAuth redirect hands back, together with
// the values the token endpoint needs to verify it.
type AuthorizationCode struct {
	Code        string
	ClientID    string
	RedirectURI string
	Me          string
}

// TokenGrant is a token endpoint reply.
type TokenGrant struct {
	AccessToken string `json:"access_token"`
	Me          string `json:"me"`
	Scope       string `json:"scope"`
}
