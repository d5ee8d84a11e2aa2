// Package metaweblog publishes to blogs over XML-RPC, in both the generic
// MetaWeblog flavor and the WordPress one.
package metaweblog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
	"snippets/pkg/xmlrpc"
)

const xmlContentType = "text/xml; charset=utf-8"

// Client sends XML-RPC calls through a transport.
type Client struct {
	http *transport.Client
}

// New creates an XML-RPC client.
func New(tc *transport.Client) *Client {
	return &Client{http: tc}
}

// Call performs one method call and returns the response params. A fault
// comes back as *domain.ProtocolFault.
func (c *Client) Call(ctx context.Context, endpoint, method string, params ...xmlrpc.Value) ([]xmlrpc.Value, error) {
	log.GlobalDebugCtx(ctx, "xmlrpc call", "endpoint", endpoint, "method", method)

	body, err := xmlrpc.EncodeMethodCall(method, params...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidArgument, method, err)
	}

	res, err := c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         endpoint,
		Body:        body,
		ContentType: xmlContentType,
		Accept:      "text/xml",
	})
	if res == nil {
		return nil, err
	}

	// A methodResponse counts whatever the status. Anything else leaves a
	// status error standing.
	parsed, perr := xmlrpc.Parse(res.Body)
	switch {
	case perr == nil && parsed.Method == "":
	case err != nil:
		return nil, err
	case perr != nil:
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, method, perr)
	default:
		return nil, fmt.Errorf("%w: %s: got a methodCall", domain.ErrMalformedResponse, method)
	}
	if parsed.IsFault() {
		return nil, &domain.ProtocolFault{Code: parsed.FaultCode(), Message: parsed.FaultString()}
	}
	return parsed.Params, nil
}

func (c *Client) call(ctx context.Context, r Request, params ...xmlrpc.Value) ([]xmlrpc.Value, error) {
	return c.Call(ctx, r.Identity.XMLRPCEndpoint, r.Method, params...)
}

// Post creates a post and returns the identifier the server assigned.
func (c *Client) Post(ctx context.Context, id domain.Identity, post domain.TextPost) (string, error) {
	r, err := PublishPostRequest(id, false)
	if err != nil {
		return "", err
	}
	params, err := c.call(ctx, r, postParams(id, "", post)...)
	if err != nil {
		return "", err
	}

	postID := firstText(params)
	if postID == "" {
		return "", fmt.Errorf("%w: %s returned no post id", domain.ErrMalformedResponse, r.Method)
	}
	return postID, nil
}

// EditPost replaces the content of postID. Servers usually answer with a
// boolean, in which case postID itself is returned.
func (c *Client) EditPost(ctx context.Context, id domain.Identity, postID string, post domain.TextPost) (string, error) {
	if postID == "" {
		return "", fmt.Errorf("%w: edit needs a post id", domain.ErrInvalidArgument)
	}
	r, err := PublishPostRequest(id, true)
	if err != nil {
		return "", err
	}
	params, err := c.call(ctx, r, postParams(id, postID, post)...)
	if err != nil {
		return "", err
	}

	if len(params) > 0 {
		if s, ok := params[0].(xmlrpc.String); ok && s != "" {
			return string(s), nil
		}
	}
	return postID, nil
}

// UploadMedia sends a file with newMediaObject. contentType decides the
// filename extension.
func (c *Client) UploadMedia(ctx context.Context, id domain.Identity, data []byte, contentType string) (domain.UploadedMedia, error) {
	r, err := PublishMediaRequest(id)
	if err != nil {
		return domain.UploadedMedia{}, err
	}

	file := xmlrpc.Struct{
		{Name: "name", Value: xmlrpc.String(mediaFilename(contentType))},
		{Name: "type", Value: xmlrpc.String(contentType)},
		{Name: "bits", Value: xmlrpc.Base64(data)},
	}
	params, err := c.call(ctx, r, append(credentials(id.BlogID, id), file)...)
	if err != nil {
		return domain.UploadedMedia{}, err
	}

	info, _ := first(params).(xmlrpc.Struct)
	media := domain.UploadedMedia{URL: urlOrLink(info), ID: info.String("id")}
	if media.URL == "" {
		return domain.UploadedMedia{}, fmt.Errorf("%w: %s returned no url", domain.ErrMalformedResponse, r.Method)
	}
	return media, nil
}

// Unpublish deletes postID. A 404 fault means the post is already gone
// and is not an error.
func (c *Client) Unpublish(ctx context.Context, id domain.Identity, postID string) error {
	if postID == "" {
		return fmt.Errorf("%w: delete needs a post id", domain.ErrInvalidArgument)
	}
	r, err := UnpublishRequest(id)
	if err != nil {
		return err
	}

	_, err = c.call(ctx, r,
		xmlrpc.String(""),
		xmlrpc.String(postID),
		xmlrpc.String(id.Username),
		xmlrpc.String(id.Password),
	)
	var fault *domain.ProtocolFault
	if errors.As(err, &fault) && fault.NotFound() {
		log.GlobalInfoCtx(ctx, "post already unpublished", "post_id", postID)
		return nil
	}
	return err
}

// FetchPostURL returns the public URL of postID.
func (c *Client) FetchPostURL(ctx context.Context, id domain.Identity, postID string) (string, error) {
	info, err := c.getPost(ctx, id, postID, "link")
	if err != nil {
		return "", err
	}
	loc := urlOrLink(info)
	if loc == "" {
		return "", fmt.Errorf("%w: post %s has no url", domain.ErrMalformedResponse, postID)
	}
	return loc, nil
}

// FetchPost reads postID and normalizes it.
func (c *Client) FetchPost(ctx context.Context, id domain.Identity, postID string) (domain.Post, error) {
	info, err := c.getPost(ctx, id, postID, postFields...)
	if err != nil {
		return domain.Post{}, err
	}
	post := toPost(info)
	if post.ID == "" {
		post.ID = postID
	}
	return post, nil
}

var postFields = []string{"post_id", "post_title", "post_content", "post_status", "post_date_gmt", "link"}

// getPost reads one post. fields narrows the WordPress reply; MetaWeblog
// always returns the whole post.
func (c *Client) getPost(ctx context.Context, id domain.Identity, postID string, fields ...string) (xmlrpc.Struct, error) {
	if postID == "" {
		return nil, fmt.Errorf("%w: lookup needs a post id", domain.ErrInvalidArgument)
	}
	r, err := FetchPostInfoRequest(id)
	if err != nil {
		return nil, err
	}

	var params []xmlrpc.Value
	if id.Kind == domain.WordPress {
		list, err := xmlrpc.FromNative(fields)
		if err != nil {
			return nil, err
		}
		params = append(credentials(id.BlogID, id), xmlrpc.String(postID), list)
	} else {
		params = credentials(postID, id)
	}

	res, err := c.call(ctx, r, params...)
	if err != nil {
		return nil, err
	}
	info, ok := first(res).(xmlrpc.Struct)
	if !ok {
		return nil, fmt.Errorf("%w: %s did not return a struct", domain.ErrMalformedResponse, r.Method)
	}
	return info, nil
}

// VerifyCredentials lists the blogs the identity can publish to. A wrong
// password surfaces as a *domain.ProtocolFault.
func (c *Client) VerifyCredentials(ctx context.Context, id domain.Identity) ([]domain.Blog, error) {
	r, err := UsersBlogsRequest(id)
	if err != nil {
		return nil, err
	}
	params, err := c.call(ctx, r, credentials("", id)...)
	if err != nil {
		return nil, err
	}

	list, _ := first(params).(xmlrpc.Array)
	blogs := make([]domain.Blog, 0, len(list))
	for _, v := range list {
		s, ok := v.(xmlrpc.Struct)
		if !ok {
			continue
		}
		admin, _ := s.Get("isAdmin")
		isAdmin, _ := admin.(xmlrpc.Bool)
		blogs = append(blogs, domain.Blog{
			ID:       s.String("blogid"),
			Name:     s.String("blogName"),
			URL:      s.String("url"),
			Endpoint: s.String("xmlrpc"),
			IsAdmin:  bool(isAdmin),
		})
	}
	return blogs, nil
}

func toPost(s xmlrpc.Struct) domain.Post {
	p := domain.Post{
		ID:    pick(s, "post_id", "postid"),
		Title: pick(s, "post_title", "title"),
		HTML:  pick(s, "post_content", "description"),
		Path:  pick(s, "link", "permaLink", "url"),
	}
	status := pick(s, "post_status")
	p.IsDraft = status == "draft" || status == "pending"
	for _, name := range []string{"post_date_gmt", "post_date", "dateCreated"} {
		if v, ok := s.Get(name); ok {
			if dt, ok := v.(xmlrpc.DateTime); ok {
				t := time.Time(dt)
				p.PublishedAt = &t
				break
			}
		}
	}
	return p
}

func pick(s xmlrpc.Struct, names ...string) string {
	for _, n := range names {
		if v := s.String(n); v != "" {
			return v
		}
	}
	return ""
}

func urlOrLink(s xmlrpc.Struct) string {
	return pick(s, "url", "link")
}

func first(params []xmlrpc.Value) xmlrpc.Value {
	if len(params) == 0 {
		return nil
	}
	return params[0]
}

func firstText(params []xmlrpc.Value) string {
	return xmlrpc.Text(first(params))
}

func mediaFilename(contentType string) string {
	ext := ".jpg"
	if strings.HasPrefix(contentType, "video/") {
		ext = ".mov"
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}
