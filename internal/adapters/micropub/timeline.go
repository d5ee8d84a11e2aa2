package micropub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"snippets/internal/adapters/transport"
	"snippets/internal/domain"
	"snippets/pkg/log"
)

// Reads below degrade to empty results when the body is not the JSON
// shape expected; only transport failures and a missing token are errors.

// Timeline returns the home timeline.
func (c *Client) Timeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/all", page)
}

// PhotoTimeline returns only posts with photos.
func (c *Client) PhotoTimeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/photos", page)
}

// MediaTimeline returns posts with any media attached.
func (c *Client) MediaTimeline(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/media", page)
}

// Mentions returns posts that mention the signed-in user.
func (c *Client) Mentions(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/mentions", page)
}

// Favorites returns posts the signed-in user starred.
func (c *Client) Favorites(ctx context.Context, id domain.Identity, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/favorites", page)
}

// UserPosts returns the public timeline of handle.
func (c *Client) UserPosts(ctx context.Context, id domain.Identity, handle string, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/"+url.PathEscape(handle), page)
}

// UserMediaPosts returns the photo timeline of handle.
func (c *Client) UserMediaPosts(ctx context.Context, id domain.Identity, handle string, page domain.Page) ([]domain.Post, error) {
	return c.timelineRoute(ctx, id, "posts/"+url.PathEscape(handle)+"/photos", page)
}

// Conversation returns the thread a post belongs to.
func (c *Client) Conversation(ctx context.Context, id domain.Identity, postID string) ([]domain.Post, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}
	return c.feed(ctx, id, id.TimelinePath("posts/conversation"), url.Values{"id": {postID}})
}

// Discover returns the curated discover feed, optionally for a single
// collection, along with the tagmoji the server lists.
func (c *Client) Discover(ctx context.Context, id domain.Identity, collection string, page domain.Page) (domain.DiscoverFeed, error) {
	if !id.HasToken() {
		return domain.DiscoverFeed{}, domain.ErrInvalidOrMissingToken
	}

	route := "posts/discover"
	if collection != "" {
		route += "/" + url.PathEscape(collection)
	}
	doc, err := c.getJSON(ctx, id, id.TimelinePath(route), pageQuery(page))
	if err != nil {
		return domain.DiscoverFeed{}, err
	}

	feed := domain.DiscoverFeed{Posts: []domain.Post{}}
	m, _ := doc.(map[string]any)
	if items, ok := m["items"].([]any); ok {
		feed.Posts = parsePosts(items)
	}
	if mb, ok := m["_microblog"].(map[string]any); ok {
		if list, ok := mb["tagmoji"].([]any); ok {
			for _, t := range list {
				if tm, ok := t.(map[string]any); ok {
					feed.Tagmoji = append(feed.Tagmoji, tm)
				}
			}
		}
	}
	return feed, nil
}

// TagmojiCategories lists the discover collections.
func (c *Client) TagmojiCategories(ctx context.Context, id domain.Identity) ([]map[string]any, error) {
	feed, err := c.Discover(ctx, id, "", domain.Page{})
	if err != nil {
		return nil, err
	}
	if feed.Tagmoji == nil {
		return []map[string]any{}, nil
	}
	return feed.Tagmoji, nil
}

// CheckPostsSince reports how many posts arrived after postID and how long
// the server wants the client to wait before checking again.
func (c *Client) CheckPostsSince(ctx context.Context, id domain.Identity, postID string) (domain.PostsSince, error) {
	if !id.HasToken() {
		return domain.PostsSince{}, domain.ErrInvalidOrMissingToken
	}

	doc, err := c.getJSON(ctx, id, id.TimelinePath("posts/check"), url.Values{"since_id": {postID}})
	if err != nil {
		return domain.PostsSince{}, err
	}
	var out domain.PostsSince
	if m, ok := doc.(map[string]any); ok {
		out.Count, _ = num(m, "count")
		out.CheckSeconds, _ = num(m, "check_seconds")
	}
	return out, nil
}

// UserDetails loads a profile and its recent posts in one request.
func (c *Client) UserDetails(ctx context.Context, id domain.Identity, handle string) (domain.UserDetails, error) {
	if !id.HasToken() {
		return domain.UserDetails{}, domain.ErrInvalidOrMissingToken
	}

	doc, err := c.getJSON(ctx, id, id.TimelinePath("posts/"+url.PathEscape(handle)), nil)
	if err != nil {
		return domain.UserDetails{}, err
	}

	details := domain.UserDetails{User: domain.User{Handle: handle}, Posts: []domain.Post{}}
	m, ok := doc.(map[string]any)
	if !ok {
		return details, nil
	}
	if author, ok := m["author"].(map[string]any); ok {
		details.User = parseUser(author)
		if details.User.Handle == "" {
			details.User.Handle = handle
		}
	}
	if mb, ok := m["_microblog"].(map[string]any); ok {
		applyMicroblog(&details.User, mb)
	}
	if items, ok := m["items"].([]any); ok {
		details.Posts = parsePosts(items)
	}
	return details, nil
}

// CheckFollowing reports whether the signed-in user follows handle.
func (c *Client) CheckFollowing(ctx context.Context, id domain.Identity, handle string) (bool, error) {
	if !id.HasToken() {
		return false, domain.ErrInvalidOrMissingToken
	}

	doc, err := c.getJSON(ctx, id, id.TimelinePath("users/is_following"), url.Values{"username": {handle}})
	if err != nil {
		return false, err
	}
	if m, ok := doc.(map[string]any); ok {
		n, _ := num(m, "is_following")
		return n > 0, nil
	}
	return false, nil
}

// ListFollowing returns who handle follows. Without complete, only the
// accounts the signed-in user does not follow yet are returned.
func (c *Client) ListFollowing(ctx context.Context, id domain.Identity, handle string, complete bool) ([]domain.User, error) {
	route := "users/following/"
	if !complete {
		route = "users/discover/"
	}
	return c.userList(ctx, id, id.TimelinePath(route+url.PathEscape(handle)), nil)
}

// SearchUsers finds accounts by name or handle.
func (c *Client) SearchUsers(ctx context.Context, id domain.Identity, q string, done bool) ([]domain.User, error) {
	query := url.Values{"q": {q}}
	if done {
		query.Set("done", "1")
	}
	return c.userList(ctx, id, id.TimelinePath("users/search"), query)
}

// CurrentUser verifies the token and returns the account it belongs to.
func (c *Client) CurrentUser(ctx context.Context, id domain.Identity) (domain.User, error) {
	if !id.HasToken() {
		return domain.User{}, domain.ErrInvalidOrMissingToken
	}

	res, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodPost,
		URL:    id.TimelinePath("account/verify"),
		Query:  url.Values{"token": {id.Token}},
		Accept: jsonContentType,
		Token:  id.Token,
	})
	if err != nil {
		return domain.User{}, err
	}
	var m map[string]any
	if err := json.Unmarshal(res.Body, &m); err != nil {
		log.GlobalWarnCtx(ctx, "unreadable account", "error", err)
		return domain.User{}, nil
	}
	return parseUser(m), nil
}

// Reply posts text as a reply to postID.
func (c *Client) Reply(ctx context.Context, id domain.Identity, postID, text string) error {
	query := url.Values{"id": {postID}, "text": {text}}
	if id.Destination != "" {
		query.Set("mp-destination", id.Destination)
	}
	return c.write(ctx, id, http.MethodPost, id.TimelinePath("posts/reply"), query)
}

// Follow starts following handle.
func (c *Client) Follow(ctx context.Context, id domain.Identity, handle string) error {
	return c.write(ctx, id, http.MethodPost, id.TimelinePath("users/follow"), url.Values{"username": {handle}})
}

// Unfollow stops following handle.
func (c *Client) Unfollow(ctx context.Context, id domain.Identity, handle string) error {
	return c.write(ctx, id, http.MethodPost, id.TimelinePath("users/unfollow"), url.Values{"username": {handle}})
}

// Favorite stars a post.
func (c *Client) Favorite(ctx context.Context, id domain.Identity, postID string) error {
	return c.write(ctx, id, http.MethodPost, id.TimelinePath("favorites"), url.Values{"id": {postID}})
}

// Unfavorite removes a star.
func (c *Client) Unfavorite(ctx context.Context, id domain.Identity, postID string) error {
	return c.write(ctx, id, http.MethodDelete, id.TimelinePath("favorites/"+url.PathEscape(postID)), nil)
}

func (c *Client) write(ctx context.Context, id domain.Identity, method, target string, query url.Values) error {
	if !id.HasToken() {
		return domain.ErrInvalidOrMissingToken
	}
	_, err := c.http.Do(ctx, transport.Request{
		Method: method,
		URL:    target,
		Query:  query,
		Token:  id.Token,
	})
	return err
}

func (c *Client) timelineRoute(ctx context.Context, id domain.Identity, route string, page domain.Page) ([]domain.Post, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}
	return c.feed(ctx, id, id.TimelinePath(route), pageQuery(page))
}

func (c *Client) feed(ctx context.Context, id domain.Identity, target string, query url.Values) ([]domain.Post, error) {
	doc, err := c.getJSON(ctx, id, target, query)
	if err != nil {
		return nil, err
	}
	m, _ := doc.(map[string]any)
	items, ok := m["items"].([]any)
	if !ok {
		log.GlobalDebugCtx(ctx, "feed has no items", "url", target)
		return []domain.Post{}, nil
	}
	return parsePosts(items), nil
}

func (c *Client) userList(ctx context.Context, id domain.Identity, target string, query url.Values) ([]domain.User, error) {
	if !id.HasToken() {
		return nil, domain.ErrInvalidOrMissingToken
	}
	doc, err := c.getJSON(ctx, id, target, query)
	if err != nil {
		return nil, err
	}
	list, ok := doc.([]any)
	if !ok {
		return []domain.User{}, nil
	}
	return parseUsers(list), nil
}

func (c *Client) getJSON(ctx context.Context, id domain.Identity, target string, query url.Values) (any, error) {
	res, err := c.http.Do(ctx, transport.Request{
		Method: http.MethodGet,
		URL:    target,
		Query:  query,
		Accept: jsonContentType,
		Token:  id.Token,
	})
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(res.Body, &doc); err != nil {
		log.GlobalWarnCtx(ctx, "response is not JSON", "url", target, "error", err)
		return nil, nil
	}
	return doc, nil
}

func pageQuery(page domain.Page) url.Values {
	q := url.Values{}
	if page.Count > 0 {
		q.Set("count", strconv.Itoa(page.Count))
	}
	if page.BeforeID != "" {
		q.Set("before_id", page.BeforeID)
	}
	if page.SinceID != "" {
		q.Set("since_id", page.SinceID)
	}
	return q
}
