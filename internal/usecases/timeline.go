package usecases

import (
	"context"
	"fmt"

	"snippets/internal/domain"
)

// TimelineKind names one of the paged timelines.
type TimelineKind string

const (
	TimelineAll       TimelineKind = "all"
	TimelinePhotos    TimelineKind = "photos"
	TimelineMedia     TimelineKind = "media"
	TimelineMentions  TimelineKind = "mentions"
	TimelineFavorites TimelineKind = "favorites"
)

// reader returns the timeline identity. Only Micropub accounts have one.
func (s *Service) reader() (domain.Identity, error) {
	id := s.session.Timeline()
	switch id.Kind {
	case domain.Micropub:
		return id, nil
	case domain.XMLRPC, domain.WordPress:
		return id, unsupported("timelines", id)
	default:
		return id, unknownProtocol(id)
	}
}

// Timeline reads one of the account timelines.
func (s *Service) Timeline(ctx context.Context, kind TimelineKind, page domain.Page) ([]domain.Post, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}

	var posts []domain.Post
	switch kind {
	case TimelineAll, "":
		posts, err = s.timeline.Timeline(ctx, id, page)
	case TimelinePhotos:
		posts, err = s.timeline.PhotoTimeline(ctx, id, page)
	case TimelineMedia:
		posts, err = s.timeline.MediaTimeline(ctx, id, page)
	case TimelineMentions:
		posts, err = s.timeline.Mentions(ctx, id, page)
	case TimelineFavorites:
		posts, err = s.timeline.Favorites(ctx, id, page)
	default:
		return nil, fmt.Errorf("%w: timeline %q", domain.ErrUnsupported, kind)
	}
	if err != nil {
		return nil, err
	}
	return s.remember(posts), nil
}

// UserPosts reads a user's posts, or only those with media.
func (s *Service) UserPosts(ctx context.Context, handle string, mediaOnly bool, page domain.Page) ([]domain.Post, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}

	var posts []domain.Post
	if mediaOnly {
		posts, err = s.timeline.UserMediaPosts(ctx, id, handle, page)
	} else {
		posts, err = s.timeline.UserPosts(ctx, id, handle, page)
	}
	if err != nil {
		return nil, err
	}
	return s.remember(posts), nil
}

// Conversation reads the thread containing postID.
func (s *Service) Conversation(ctx context.Context, postID string) ([]domain.Post, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}
	posts, err := s.timeline.Conversation(ctx, id, postID)
	if err != nil {
		return nil, err
	}
	return s.remember(posts), nil
}

// Discover reads the discover timeline, optionally narrowed to a collection.
func (s *Service) Discover(ctx context.Context, collection string, page domain.Page) (domain.DiscoverFeed, error) {
	id, err := s.reader()
	if err != nil {
		return domain.DiscoverFeed{}, err
	}
	feed, err := s.timeline.Discover(ctx, id, collection, page)
	if err != nil {
		return domain.DiscoverFeed{}, err
	}
	feed.Posts = s.remember(feed.Posts)
	return feed, nil
}

// TagmojiCategories lists the collections Discover accepts.
func (s *Service) TagmojiCategories(ctx context.Context) ([]map[string]any, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}
	return s.timeline.TagmojiCategories(ctx, id)
}

// CheckPostsSince counts timeline posts newer than postID.
func (s *Service) CheckPostsSince(ctx context.Context, postID string) (domain.PostsSince, error) {
	id, err := s.reader()
	if err != nil {
		return domain.PostsSince{}, err
	}
	return s.timeline.CheckPostsSince(ctx, id, postID)
}

// UserDetails reads a profile and its recent posts. The returned user
// carries everything known about it, not only what this read reported.
func (s *Service) UserDetails(ctx context.Context, handle string) (domain.UserDetails, error) {
	id, err := s.reader()
	if err != nil {
		return domain.UserDetails{}, err
	}
	details, err := s.timeline.UserDetails(ctx, id, handle)
	if err != nil {
		return domain.UserDetails{}, err
	}
	details.User = s.users.Save(details.User)
	details.Posts = s.remember(details.Posts)
	return details, nil
}

// CheckFollowing asks the server whether the account follows handle.
func (s *Service) CheckFollowing(ctx context.Context, handle string) (bool, error) {
	id, err := s.reader()
	if err != nil {
		return false, err
	}
	following, err := s.timeline.CheckFollowing(ctx, id, handle)
	if err != nil {
		return false, err
	}
	s.users.SetFollowing(handle, following)
	return following, nil
}

// ListFollowing lists who handle follows.
func (s *Service) ListFollowing(ctx context.Context, handle string, complete bool) ([]domain.User, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}
	users, err := s.timeline.ListFollowing(ctx, id, handle, complete)
	if err != nil {
		return nil, err
	}
	return s.rememberUsers(users), nil
}

// SearchUsers finds users matching q.
func (s *Service) SearchUsers(ctx context.Context, q string, done bool) ([]domain.User, error) {
	id, err := s.reader()
	if err != nil {
		return nil, err
	}
	users, err := s.timeline.SearchUsers(ctx, id, q, done)
	if err != nil {
		return nil, err
	}
	return s.rememberUsers(users), nil
}

// CurrentUser returns the account behind the timeline identity.
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	id, err := s.reader()
	if err != nil {
		return domain.User{}, err
	}
	u, err := s.timeline.CurrentUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return s.users.Save(u), nil
}

// Reply posts text as a reply to postID.
func (s *Service) Reply(ctx context.Context, postID, text string) error {
	id, err := s.reader()
	if err != nil {
		return err
	}
	return s.timeline.Reply(ctx, id, postID, text)
}

// Follow starts following handle.
func (s *Service) Follow(ctx context.Context, handle string) error {
	id, err := s.reader()
	if err != nil {
		return err
	}
	if err := s.timeline.Follow(ctx, id, handle); err != nil {
		return err
	}
	s.users.SetFollowing(handle, true)
	return nil
}

// Unfollow stops following handle.
func (s *Service) Unfollow(ctx context.Context, handle string) error {
	id, err := s.reader()
	if err != nil {
		return err
	}
	if err := s.timeline.Unfollow(ctx, id, handle); err != nil {
		return err
	}
	s.users.SetFollowing(handle, false)
	return nil
}

// Favorite stars postID.
func (s *Service) Favorite(ctx context.Context, postID string) error {
	id, err := s.reader()
	if err != nil {
		return err
	}
	return s.timeline.Favorite(ctx, id, postID)
}

// Unfavorite removes the star from postID.
func (s *Service) Unfavorite(ctx context.Context, postID string) error {
	id, err := s.reader()
	if err != nil {
		return err
	}
	return s.timeline.Unfavorite(ctx, id, postID)
}

// KnownUser returns a cached user without a network call.
func (s *Service) KnownUser(handle string) (domain.User, bool) {
	return s.users.Get(handle)
}

func (s *Service) remember(posts []domain.Post) []domain.Post {
	for i := range posts {
		if posts[i].Owner.Handle != "" {
			posts[i].Owner = s.users.Save(posts[i].Owner)
		}
	}
	return posts
}

func (s *Service) rememberUsers(users []domain.User) []domain.User {
	for i := range users {
		users[i] = s.users.Save(users[i])
	}
	return users
}
