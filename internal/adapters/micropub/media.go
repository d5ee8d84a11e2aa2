package micropub

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
)

type mediaKind struct {
	ext         string
	contentType string
}

var (
	imageKind = mediaKind{ext: ".jpg", contentType: "image/jpeg"}
	videoKind = mediaKind{ext: ".mov", contentType: "video/mov"}
)

// UploadImage sends JPEG bytes to the media endpoint and returns the URL
// from the Location header.
func (c *Client) UploadImage(ctx context.Context, id domain.Identity, jpeg []byte) (string, error) {
	res, err := c.upload(ctx, id, imageKind, jpeg)
	if err != nil {
		return "", err
	}
	return location(res)
}

// UploadVideo sends a movie to the media endpoint. The server answers with
// JSON carrying the video url and a poster frame.
func (c *Client) UploadVideo(ctx context.Context, id domain.Identity, data []byte) (domain.UploadedMedia, error) {
	res, err := c.upload(ctx, id, videoKind, data)
	if err != nil {
		return domain.UploadedMedia{}, err
	}

	var payload struct {
		URL    string `json:"url"`
		Poster string `json:"poster"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil || payload.URL == "" {
		// Some endpoints answer a video upload like an image upload.
		if loc := res.Header.Get("Location"); loc != "" {
			return domain.UploadedMedia{URL: loc}, nil
		}
		return domain.UploadedMedia{}, fmt.Errorf("%w: video upload returned no url", domain.ErrMalformedResponse)
	}
	return domain.UploadedMedia{URL: payload.URL, Poster: payload.Poster}, nil
}

func (c *Client) upload(ctx context.Context, id domain.Identity, kind mediaKind, data []byte) (*transport.Response, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}

	body, contentType, err := transport.Multipart(
		[][2]string{{"mp-destination", id.Destination}},
		transport.FilePart{
			Field:       "file",
			Filename:    mediaFilename(kind.ext),
			ContentType: kind.contentType,
			Data:        data,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("build upload body: %w", err)
	}

	log.GlobalDebugCtx(ctx, "uploading media", "endpoint", id.MediaEndpoint, "type", kind.contentType, "bytes", len(data))
	return c.http.Do(ctx, transport.Request{
		Method:      http.MethodPost,
		URL:         id.MediaEndpoint,
		Body:        body,
		ContentType: contentType,
		Token:       id.Token,
	})
}

// FetchPublishedMedia lists what the media endpoint already holds. Items
// are returned as the server sent them.
func (c *Client) FetchPublishedMedia(ctx context.Context, id domain.Identity) ([]map[string]any, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}

	query := url.Values{"q": {"source"}}
	if id.Destination != "" {
		query.Set("mp-destination", id.Destination)
	}
	res, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    id.MediaEndpoint,
		Query:  query,
		Accept: jsonContentType,
		Token:  id.Token,
	})
	if err != nil {
		return nil, err
	}

	var payload struct {
		Items []map[string]any `json:"items"`
	}
	if err := json.Unmarshal(res.Body, &payload); err != nil {
		log.GlobalWarnCtx(ctx, "unreadable media listing", "error", err)
		return []map[string]any{}, nil
	}
	if payload.Items == nil {
		return []map[string]any{}, nil
	}
	return payload.Items, nil
}

func mediaFilename(ext string) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}
