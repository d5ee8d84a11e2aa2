package micropub

import (
	"strconv"
	"time"

	"snippets/internal/domain"
)

// Feed items arrive either as JSON Feed objects or as Micropub source
// objects with a "properties" map of arrays. Both are read field by field
// so missing or oddly typed fields simply keep their zero value.

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
}

func parsePosts(items []any) []domain.Post {
	posts := make([]domain.Post, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			posts = append(posts, parsePost(m))
		}
	}
	return posts
}

func parsePost(item map[string]any) domain.Post {
	var p domain.Post

	if props, ok := item["properties"].(map[string]any); ok {
		if s, ok := first(props, "url"); ok {
			p.Path = s
		}
		if s, ok := first(props, "name"); ok {
			p.Title = s
		}
		if s, ok := first(props, "content"); ok {
			p.HTML = s
		} else if c, ok := firstMap(props, "content"); ok {
			if html, ok := str(c, "html"); ok {
				p.HTML = html
			}
		}
		if s, ok := first(props, "published"); ok {
			p.PublishedAt = parseDate(s)
		}
		if s, ok := first(props, "post-status"); ok {
			p.IsDraft = s == "draft"
		}
		if s, ok := first(props, "uid"); ok {
			p.ID = s
		}
	}

	if s, ok := str(item, "id"); ok {
		p.ID = s
	} else if n, ok := num(item, "id"); ok {
		p.ID = strconv.Itoa(n)
	}
	if s, ok := str(item, "title"); ok {
		p.Title = s
	}
	if s, ok := str(item, "content_html"); ok {
		p.HTML = s
	}
	if s, ok := str(item, "url"); ok {
		p.Path = s
	}
	if s, ok := str(item, "date_published"); ok {
		p.PublishedAt = parseDate(s)
	}
	if s, ok := str(item, "post-status"); ok {
		p.IsDraft = s == "draft"
	}
	if author, ok := item["author"].(map[string]any); ok {
		p.Owner = parseUser(author)
	}
	if mb, ok := item["_microblog"].(map[string]any); ok {
		if n, ok := num(mb, "is_conversation"); ok {
			p.HasConversation = n > 0
		}
		if n, ok := num(mb, "reply_count"); ok {
			p.ReplyCount = n
		}
	}
	return p
}

func parseUsers(list []any) []domain.User {
	users := make([]domain.User, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			users = append(users, parseUser(m))
		}
	}
	return users
}

func parseUser(m map[string]any) domain.User {
	var u domain.User
	if s, ok := str(m, "username"); ok {
		u.Handle = s
	}
	if s, ok := str(m, "bio"); ok {
		u.Bio = s
	}
	if mb, ok := m["_microblog"].(map[string]any); ok {
		applyMicroblog(&u, mb)
	}
	if s, ok := str(m, "name"); ok {
		u.FullName = s
	}
	if s, ok := str(m, "full_name"); ok {
		u.FullName = s
	}
	if s, ok := str(m, "avatar"); ok {
		u.AvatarURL = s
	} else if s, ok := str(m, "gravatar_url"); ok {
		u.AvatarURL = s
	}
	if s, ok := str(m, "url"); ok {
		u.SiteURL = s
	}
	if u.SiteURL == "" {
		if s, ok := str(m, "default_site"); ok {
			u.SiteURL = s
		}
	}
	return u
}

func applyMicroblog(u *domain.User, mb map[string]any) {
	if s, ok := str(mb, "username"); ok {
		u.Handle = s
	}
	if s, ok := str(mb, "bio"); ok {
		u.Bio = s
	}
	if n, ok := num(mb, "following_count"); ok {
		u.FollowingCount = n
	}
	if n, ok := num(mb, "discover_count"); ok {
		u.DiscoverCount = n
	}
	if n, ok := num(mb, "is_following"); ok {
		u.IsFollowing = n > 0
	}
}

func parseDate(s string) *time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func str(m map[string]any, key string) (string, bool) {
	s, ok := m[key].(string)
	return s, ok
}

// num reads JSON numbers and booleans as ints.
func num(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case bool:
		if v {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

func first(m map[string]any, key string) (string, bool) {
	list, ok := m[key].([]any)
	if !ok || len(list) == 0 {
		return "", false
	}
	s, ok := list[0].(string)
	return s, ok
}

func firstMap(m map[string]any, key string) (map[string]any, bool) {
	list, ok := m[key].([]any)
	if !ok || len(list) == 0 {
		return nil, false
	}
	v, ok := list[0].(map[string]any)
	return v, ok
}
