package usecases

import (
	"context"
	"fmt"

	"snippets/internal/domain"
	"snippets/pkg/log"
)

// ConnectRequest names the blog to connect and, for XML-RPC blogs, the
// account to log in with.
type ConnectRequest struct {
	HomeURL  string
	Username string
	Password string
}

// Connection is the outcome of a connect attempt. For Micropub blogs it is
// pending until the authorization redirect comes back.
type Connection struct {
	Endpoint domain.RemoteEndpoint `json:"endpoint"`
	Identity *domain.Identity      `json:"identity,omitempty"`
	Blogs    []domain.Blog         `json:"blogs,omitempty"`
	Pending  bool                  `json:"pending"`
}

// ConnectBlogUseCase discovers a blog's API and installs the resulting
// identity as the publishing identity.
type ConnectBlogUseCase struct {
	discovery   DiscoveryPort
	rpc         XMLRPCPort
	micropub    MicropubPort
	tokens      TokenExchanger
	pending     PendingAuthorizations
	session     *Session
	clientID    string
	redirectURI string
}

// NewConnectBlogUseCase creates a ConnectBlogUseCase. clientID and
// redirectURI must match those the discoverer put in authorization URLs.
func NewConnectBlogUseCase(
	discovery DiscoveryPort,
	rpc XMLRPCPort,
	micropub MicropubPort,
	tokens TokenExchanger,
	pending PendingAuthorizations,
	session *Session,
	clientID, redirectURI string,
) *ConnectBlogUseCase {
	return &ConnectBlogUseCase{
		discovery:   discovery,
		rpc:         rpc,
		micropub:    micropub,
		tokens:      tokens,
		pending:     pending,
		session:     session,
		clientID:    clientID,
		redirectURI: redirectURI,
	}
}

// Execute discovers req.HomeURL. XML-RPC blogs are verified with the given
// credentials and installed right away; Micropub blogs return a pending
// connection whose authorization URL the user must visit.
func (uc *ConnectBlogUseCase) Execute(ctx context.Context, req ConnectRequest) (Connection, error) {
	ep, err := uc.discovery.Discover(ctx, req.HomeURL)
	if err != nil {
		return Connection{}, err
	}

	switch ep.Hint {
	case domain.HintWordPress, domain.HintMetaWeblog:
		id := ep.RPCIdentity(req.Username, req.Password)
		blogs, err := uc.rpc.VerifyCredentials(ctx, id)
		if err != nil {
			return Connection{}, err
		}
		if ep.BlogID == "" && len(blogs) > 0 && blogs[0].ID != "" {
			id.BlogID = blogs[0].ID
		}
		uc.session.SetPublishing(id)
		log.GlobalInfoCtx(ctx, "connected xmlrpc blog", "endpoint", id.XMLRPCEndpoint, "kind", id.Kind.String())

		redacted := id.Redacted()
		return Connection{Endpoint: ep, Identity: &redacted, Blogs: blogs}, nil

	case domain.HintMicropub:
		if ep.AuthorizationURL == "" || ep.TokenEndpoint == "" {
			return Connection{}, fmt.Errorf("%w: %s has no authorization endpoints", domain.ErrNoPublishingEndpoint, ep.HomeURL)
		}
		uc.pending.Put(ep)
		log.GlobalDebugCtx(ctx, "micropub authorization pending", "home", ep.HomeURL, "state", ep.State)
		return Connection{Endpoint: ep, Pending: true}, nil

	default:
		return Connection{}, fmt.Errorf("%w: %s", domain.ErrUnknownProtocol, ep.Hint)
	}
}

// CompleteMicropub redeems the code the authorization redirect delivered
// for state and installs the new Micropub identity.
func (uc *ConnectBlogUseCase) CompleteMicropub(ctx context.Context, code, state string) (domain.Identity, error) {
	ep, ok := uc.pending.Take(state)
	if !ok {
		return domain.Identity{}, fmt.Errorf("%w: %q", domain.ErrUnknownState, state)
	}

	grant, err := uc.tokens.ExchangeCode(ctx, ep.TokenEndpoint, domain.AuthorizationCode{
		Code:        code,
		ClientID:    uc.clientID,
		RedirectURI: uc.redirectURI,
		Me:          ep.HomeURL,
	})
	if err != nil {
		return domain.Identity{}, err
	}

	id := ep.MicropubIdentity(grant.AccessToken, "")
	cfg, err := uc.micropub.FetchConfig(ctx, id)
	if err != nil {
		log.GlobalWarnCtx(ctx, "micropub config unavailable", "endpoint", id.MicropubEndpoint, "error", err)
	} else {
		if cfg.MediaEndpoint != "" {
			id.MediaEndpoint = cfg.MediaEndpoint
		}
		if len(cfg.Destinations) > 0 {
			id.Destination = cfg.Destinations[0].UID
		}
	}

	uc.session.SetPublishing(id)
	log.GlobalInfoCtx(ctx, "connected micropub blog", "endpoint", id.MicropubEndpoint)
	return id, nil
}
