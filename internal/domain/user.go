package domain

// User is the author of a post or a member of the follow graph.
type User struct {
	Handle         string `json:"handle"`
	FullName       string `json:"full_name,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	SiteURL        string `json:"site_url,omitempty"`
	Bio            string `json:"bio,omitempty"`
	FollowingCount int    `json:"following_count"`
	DiscoverCount  int    `json:"discover_count"`
	IsFollowing    bool   `json:"is_following"`
}

// Merge lays fresh over u. Zero values in fresh mean "not reported" and
// never replace a known value, so a sparse author record embedded in a
// feed cannot wipe out a profile loaded earlier.
func (u User) Merge(fresh User) User {
	if fresh.Handle != "" {
		u.Handle = fresh.Handle
	}
	if fresh.FullName != "" {
		u.FullName = fresh.FullName
	}
	if fresh.AvatarURL != "" {
		u.AvatarURL = fresh.AvatarURL
	}
	if fresh.SiteURL != "" {
		u.SiteURL = fresh.SiteURL
	}
	if fresh.Bio != "" {
		u.Bio = fresh.Bio
	}
	if fresh.FollowingCount != 0 {
		u.FollowingCount = fresh.FollowingCount
	}
	if fresh.DiscoverCount != 0 {
		u.DiscoverCount = fresh.DiscoverCount
	}
	if fresh.IsFollowing {
		u.IsFollowing = true
	}
	return u
}

// Page narrows a timeline read.
type Page struct {
	Count    int
	BeforeID string
	SinceID  string
}

// UserDetails is a profile together with its recent posts.
type UserDetails struct {
	User  User   `json:"user"`
	Posts []Post `json:"posts"`
}

// DiscoverFeed is the discover timeline plus the tagmoji categories the
// server advertises alongside it.
type DiscoverFeed struct {
	Posts   []Post           `json:"posts"`
	Tagmoji []map[string]any `json:"tagmoji,omitempty"`
}

// PostsSince is the answer to a new-posts check.
type PostsSince struct {
	Count        int `json:"count"`
	CheckSeconds int `json:"check_seconds"`
}
