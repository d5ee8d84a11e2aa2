// Package micropub speaks the Micropub protocol and the Micro.blog JSON
// API that sits next to it.
package micropub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
)

const (
	formContentType = "application/x-www-form-urlencoded; charset=utf-8"
	jsonContentType = "application/json"
)

// Client publishes through a Micropub endpoint. Every method receives the
// identity to act as; the client itself holds no credentials.
type Client struct {
	http *transport.Client
}

// New creates a Micropub client on top of a transport.
func New(tc *transport.Client) *Client {
	return &Client{http: tc}
}

// PostText publishes a form-encoded h-entry and returns its URL.
func (c *Client) PostText(ctx context.Context, id domain.Identity, post domain.TextPost) (string, error) {
	if !id.HasToken() {
		return "", domain.ErrInvalidOrMissingToken
	}

	var form transport.Form
	form.Add("name", post.Title)
	form.Add("content", post.Content)
	form.Add("h", "entry")
	form.Add("mp-destination", id.Destination)
	for _, p := range post.Photos {
		form.Add("photo[]", p.URL)
	}
	for _, p := range post.Photos {
		form.Add("mp-photo-alt[]", p.AltText)
	}
	for _, v := range post.Videos {
		form.Add("video[]", v.URL)
	}
	for _, v := range post.Videos {
		form.Add("mp-video-alt[]", v.AltText)
	}
	form.Add("post-status", postStatus(post.Draft))

	res, err := c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         id.MicropubEndpoint,
		Body:        form.Bytes(),
		ContentType: formContentType,
		Token:       id.Token,
	})
	if err != nil {
		return "", err
	}
	return location(res)
}

type htmlContent struct {
	HTML string `json:"html"`
}

type entryProperties struct {
	Name       []string      `json:"name"`
	Content    []htmlContent `json:"content"`
	PostStatus []string      `json:"post-status"`
}

type entry struct {
	Type          []string        `json:"type"`
	Properties    entryProperties `json:"properties"`
	MPDestination string          `json:"mp-destination,omitempty"`
}

// PostHTML publishes a JSON h-entry with HTML content and returns its URL.
func (c *Client) PostHTML(ctx context.Context, id domain.Identity, title, html string, draft bool) (string, error) {
	if !id.HasToken() {
		return "", domain.ErrInvalidOrMissingToken
	}

	body, err := json.Marshal(entry{
		Type: []string{"h-entry"},
		Properties: entryProperties{
			Name:       []string{title},
			Content:    []htmlContent{{HTML: html}},
			PostStatus: []string{postStatus(draft)},
		},
		MPDestination: id.Destination,
	})
	if err != nil {
		return "", fmt.Errorf("encode entry: %w", err)
	}

	res, err := c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         id.MicropubEndpoint,
		Body:        body,
		ContentType: jsonContentType,
		Token:       id.Token,
	})
	if err != nil {
		return "", err
	}
	return location(res)
}

// UpdatePost asks the server to refresh the post at post.Path.
func (c *Client) UpdatePost(ctx context.Context, id domain.Identity, post domain.Post) error {
	return c.action(ctx, id, "update", post.Path)
}

// DeletePost removes a post, by identifier when known and by URL otherwise.
func (c *Client) DeletePost(ctx context.Context, id domain.Identity, post domain.Post) error {
	if !id.HasToken() {
		return domain.ErrInvalidOrMissingToken
	}
	if post.ID == "" {
		return c.action(ctx, id, "delete", post.Path)
	}

	_, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodDelete,
		URL:    id.MicropubPath("posts/" + url.PathEscape(post.ID)),
		Token:  id.Token,
	})
	return err
}

func (c *Client) action(ctx context.Context, id domain.Identity, action, path string) error {
	if !id.HasToken() {
		return domain.ErrInvalidOrMissingToken
	}

	var form transport.Form
	form.Add("action", action)
	form.Add("url", path)
	form.Add("mp-destination", id.Destination)

	_, err := c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         id.MicropubEndpoint,
		Body:        form.Bytes(),
		ContentType: formContentType,
		Token:       id.Token,
	})
	return err
}

// FetchConfig runs the q=config query.
func (c *Client) FetchConfig(ctx context.Context, id domain.Identity) (domain.MicropubConfig, error) {
	if !id.HasToken() {
		return domain.MicropubConfig{}, domain.ErrInvalidOrMissingToken
	}

	res, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    id.MicropubEndpoint,
		Query:  url.Values{"q": {"config"}},
		Accept: jsonContentType,
		Token:  id.Token,
	})
	if err != nil {
		return domain.MicropubConfig{}, err
	}

	var payload struct {
		MediaEndpoint string `json:"media-endpoint"`
		Destination   []struct {
			UID  string `json:"uid"`
			Name string `json:"name"`
		} `json:"destination"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		log.GlobalWarnCtx(ctx, "unreadable micropub config", "error", err)
		return domain.MicropubConfig{}, nil
	}

	cfg := domain.MicropubConfig{MediaEndpoint: payload.MediaEndpoint}
	for _, d := range payload.Destination {
		cfg.Destinations = append(cfg.Destinations, domain.Destination{UID: d.UID, Name: d.Name})
	}
	return cfg, nil
}

// FetchSourcePosts lists the identity's own posts, drafts included.
func (c *Client) FetchSourcePosts(ctx context.Context, id domain.Identity) ([]domain.Post, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}

	query := url.Values{"q": {"source"}}
	if id.Destination != "" {
		query.Set("mp-destination", id.Destination)
	}
	return c.feed(ctx, id, id.MicropubEndpoint, query)
}

func postStatus(draft bool) string {
	if draft {
		return "draft"
	}
	return "published"
}

func location(res *transport.Response) (string, error) {
	loc := res.Header.Get("Location")
	if loc == "" {
		return "", fmt.Errorf("%w: no Location header", domain.ErrMalformedResponse)
	}
	return loc, nil
}
