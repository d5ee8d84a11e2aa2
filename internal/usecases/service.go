package usecases

import (
	"context"
	"fmt"

	"snippets/internal/domain"
	"snippets/pkg/log"
)

const (
	imageContentType = "image/jpeg"
	videoContentType = "video/mov"
)

// Service is the entry point applications call. Each operation reads the
// identity from the session and hands it to the adapter matching its kind.
type Service struct {
	session  *Session
	micropub MicropubPort
	rpc      XMLRPCPort
	timeline TimelinePort
	users    UserCache
}

// NewService creates a Service over the given adapters.
func NewService(session *Session, micropub MicropubPort, rpc XMLRPCPort, timeline TimelinePort, users UserCache) *Service {
	return &Service{
		session:  session,
		micropub: micropub,
		rpc:      rpc,
		timeline: timeline,
		users:    users,
	}
}

// Session returns the identity slots the service routes by.
func (s *Service) Session() *Session {
	return s.session
}

// PostText publishes a plain text post and returns its URL.
func (s *Service) PostText(ctx context.Context, post domain.TextPost) (string, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.PostText(ctx, id, post)
	case domain.XMLRPC, domain.WordPress:
		return s.rpcPublish(ctx, id, post)
	default:
		return "", unknownProtocol(id)
	}
}

// PostHTML publishes an HTML post and returns its URL.
func (s *Service) PostHTML(ctx context.Context, title, html string, draft bool) (string, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.PostHTML(ctx, id, title, html, draft)
	case domain.XMLRPC, domain.WordPress:
		return s.rpcPublish(ctx, id, domain.TextPost{Title: title, Content: html, Draft: draft})
	default:
		return "", unknownProtocol(id)
	}
}

// rpcPublish creates the post, then asks for its URL since XML-RPC only
// answers with an id.
func (s *Service) rpcPublish(ctx context.Context, id domain.Identity, post domain.TextPost) (string, error) {
	postID, err := s.rpc.Post(ctx, id, post)
	if err != nil {
		return "", err
	}
	loc, err := s.rpc.FetchPostURL(ctx, id, postID)
	if err != nil {
		log.GlobalWarnCtx(ctx, "post created but url lookup failed", "post_id", postID, "error", err)
		return "", fmt.Errorf("post %s created: %w", postID, err)
	}
	return loc, nil
}

// UpdatePost replaces the content of an existing post.
func (s *Service) UpdatePost(ctx context.Context, post domain.Post) error {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.UpdatePost(ctx, id, post)
	case domain.XMLRPC, domain.WordPress:
		if post.ID == "" {
			return fmt.Errorf("%w: update needs a post id", domain.ErrInvalidArgument)
		}
		_, err := s.rpc.EditPost(ctx, id, post.ID, domain.TextPost{Content: post.HTML, Draft: post.IsDraft})
		return err
	default:
		return unknownProtocol(id)
	}
}

// DeletePost removes a post.
func (s *Service) DeletePost(ctx context.Context, post domain.Post) error {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.DeletePost(ctx, id, post)
	case domain.XMLRPC, domain.WordPress:
		return s.rpc.Unpublish(ctx, id, post.ID)
	default:
		return unknownProtocol(id)
	}
}

// UploadImage uploads JPEG bytes.
func (s *Service) UploadImage(ctx context.Context, jpeg []byte) (domain.UploadedMedia, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		loc, err := s.micropub.UploadImage(ctx, id, jpeg)
		if err != nil {
			return domain.UploadedMedia{}, err
		}
		return domain.UploadedMedia{URL: loc}, nil
	case domain.XMLRPC, domain.WordPress:
		return s.rpc.UploadMedia(ctx, id, jpeg, imageContentType)
	default:
		return domain.UploadedMedia{}, unknownProtocol(id)
	}
}

// UploadVideo uploads a video.
func (s *Service) UploadVideo(ctx context.Context, data []byte) (domain.UploadedMedia, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.UploadVideo(ctx, id, data)
	case domain.XMLRPC, domain.WordPress:
		return s.rpc.UploadMedia(ctx, id, data, videoContentType)
	default:
		return domain.UploadedMedia{}, unknownProtocol(id)
	}
}

// FetchPublishedMedia lists uploaded media. Only Micropub servers expose it.
func (s *Service) FetchPublishedMedia(ctx context.Context) ([]map[string]any, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.FetchPublishedMedia(ctx, id)
	case domain.XMLRPC, domain.WordPress:
		return nil, unsupported("listing media", id)
	default:
		return nil, unknownProtocol(id)
	}
}

// FetchMyPosts lists the publishing identity's own posts, drafts included.
func (s *Service) FetchMyPosts(ctx context.Context) ([]domain.Post, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return s.micropub.FetchSourcePosts(ctx, id)
	case domain.XMLRPC, domain.WordPress:
		return nil, unsupported("listing posts", id)
	default:
		return nil, unknownProtocol(id)
	}
}

// FetchPost reads a single post by id. Micropub has no lookup by id.
func (s *Service) FetchPost(ctx context.Context, postID string) (domain.Post, error) {
	id := s.session.Publishing()
	switch id.Kind {
	case domain.Micropub:
		return domain.Post{}, unsupported("reading a post by id", id)
	case domain.XMLRPC, domain.WordPress:
		return s.rpc.FetchPost(ctx, id, postID)
	default:
		return domain.Post{}, unknownProtocol(id)
	}
}

func unknownProtocol(id domain.Identity) error {
	return fmt.Errorf("%w: %s", domain.ErrUnknownProtocol, id.Kind)
}

func unsupported(what string, id domain.Identity) error {
	return fmt.Errorf("%w: %s over %s", domain.ErrUnsupported, what, id.Kind)
}
