package usecases

//go:generate mockgen -destination=../mocks/ports.go -package=mocks snippets/internal/usecases MicropubPort,XMLRPCPort,TimelinePort,DiscoveryPort,TokenExchanger,PendingAuthorizations,EmailSignIn

import (
	"context"

	"snippets/internal/domain"
)

// MicropubPort publishes to a Micropub endpoint.
type MicropubPort interface {
	PostText(ctx context.Context, id domain.Identity, post domain.TextPost) (string, error)
	PostHTML(ctx context.Context, id domain.Identity, title, html string, draft bool) (string, error)
	UpdatePost(ctx context.Context, id domain.Identity, post domain.Post) error
	DeletePost(ctx context.Context, id domain.Identity, post domain.Post) error
	UploadImage(ctx context.Context, id domain.Identity, jpeg []byte) (string, error)
	UploadVideo(ctx context.Context, id domain.Identity, data []byte) (domain.UploadedMedia, error)
	FetchPublishedMedia(ctx context.Context, id domain.Identity) ([]map[string]any, error)
	FetchSourcePosts(ctx context.Context, id domain.Identity) ([]domain.Post, error)
	FetchConfig(ctx context.Context, id domain.Identity) (domain.MicropubConfig, error)
}

// XMLRPCPort publishes to MetaWeblog and WordPress blogs.
type XMLRPCPort interface {
	Post(ctx context.Context, id domain.Identity, post domain.TextPost) (string, error)
	EditPost(ctx context.Context, id domain.Identity, postID string, post domain.TextPost) (string, error)
	UploadMedia(ctx context.Context, id domain.Identity, data []byte, contentType string) (domain.UploadedMedia, error)
	Unpublish(ctx context.Context, id domain.Identity, postID string) error
	FetchPostURL(ctx context.Context, id domain.Identity, postID string) (string, error)
	FetchPost(ctx context.Context, id domain.Identity, postID string) (domain.Post, error)
	VerifyCredentials(ctx context.Context, id domain.Identity) ([]domain.Blog, error)
}

// TimelinePort reads timelines and changes the follow graph.
type TimelinePort interface {
	Timeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error)
	PhotoTimeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error)
	MediaTimeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error)
	Mentions(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error)
	Favorites(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error)
	UserPosts(ctx context.Context, id domain.Identity, handle string, page domain.Page) ([]domain.Post, error)
	UserMediaPosts(ctx context.Context, id domain.Identity, handle string, page domain.Page) ([]domain.Post, error)
	Conversation(ctx context.Context, id domain.Identity, postID string) ([]domain.Post, error)
	Discover(ctx context.Context, id domain.Identity, collection string, page domain.Page) (domain.DiscoverFeed, error)
	TagmojiCategories(ctx context.Context, id domain.Identity) ([]map[string]any, error)
	CheckPostsSince(ctx context.Context, id domain.Identity, postID string) (domain.PostsSince, error)
	UserDetails(ctx context.Context, id domain.Identity, handle string) (domain.UserDetails, error)
	CheckFollowing(ctx context.Context, id domain.Identity, handle string) (bool, error)
	ListFollowing(ctx context.Context, id domain.Identity, handle string, complete bool) ([]domain.User, error)
	SearchUsers(ctx context.Context, id domain.Identity, q string, done bool) ([]domain.User, error)
	CurrentUser(ctx context.Context, id domain.Identity) (domain.User, error)
	Reply(ctx context.Context, id domain.Identity, postID, text string) error
	Follow(ctx context.Context, id domain.Identity, handle string) error
	Unfollow(ctx context.Context, id domain.Identity, handle string) error
	Favorite(ctx context.Context, id domain.Identity, postID string) error
	Unfavorite(ctx context.Context, id domain.Identity, postID string) error
}

// DiscoveryPort finds the publishing API of a blog from its home page.
type DiscoveryPort interface {
	Discover(ctx context.Context, homeURL string) (domain.RemoteEndpoint, error)
}

// TokenExchanger redeems an IndieAuth authorization code.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, tokenEndpoint string, code domain.AuthorizationCode) (domain.TokenGrant, error)
}

// UserCache remembers users across reads.
type UserCache interface {
	Get(handle string) (domain.User, bool)
	Save(u domain.User) domain.User
	SetFollowing(handle string, following bool)
}

// PendingAuthorizations holds Micropub connections waiting for the OAuth
// redirect.
type PendingAuthorizations interface {
	Put(ep domain.RemoteEndpoint)
	Take(state string) (domain.RemoteEndpoint, bool)
}

// EmailSignIn signs in to Micro.blog through a link sent by email.
type EmailSignIn interface {
	RequestLoginEmail(ctx context.Context, timelineEndpoint, email, appName, redirectURL string) error
	ExchangeTemporaryToken(ctx context.Context, timelineEndpoint, temporary string) (string, error)
}
