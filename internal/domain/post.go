package domain

import "time"

// Post is a published or draft entry, normalized from whichever protocol
// produced it. Fields a protocol does not report keep their zero value.
type Post struct {
	ID              string     `json:"id"`
	Path            string     `json:"path"`
	Title           string     `json:"title,omitempty"`
	HTML            string     `json:"html"`
	IsDraft         bool       `json:"is_draft"`
	PublishedAt     *time.Time `json:"published_at,omitempty"`
	Owner           User       `json:"owner"`
	HasConversation bool       `json:"has_conversation"`
	ReplyCount      int        `json:"reply_count"`
}

// Media is one uploaded image or video attached to a text post.
type Media struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
}

// TextPost is the input for a plain-text publish.
type TextPost struct {
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Photos  []Media `json:"photos,omitempty"`
	Videos  []Media `json:"videos,omitempty"`
	Draft   bool    `json:"draft"`
	// Format and Category are only sent to WordPress.
	Format   string `json:"format,omitempty"`
	Category string `json:"category,omitempty"`
}

// UploadedMedia is what a media endpoint returns.
type UploadedMedia struct {
	URL    string `json:"url"`
	Poster string `json:"poster,omitempty"`
	ID     string `json:"id,omitempty"`
}

// Destination is one blog reachable through a multi-blog Micropub account.
type Destination struct {
	UID  string `json:"uid"`
	Name string `json:"name"`
}

// MicropubConfig is the answer to a q=config query.
type MicropubConfig struct {
	MediaEndpoint string        `json:"media_endpoint"`
	Destinations  []Destination `json:"destinations"`
}

// Blog is one entry returned when verifying XML-RPC credentials.
type Blog struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Endpoint string `json:"endpoint"`
	IsAdmin  bool   `json:"is_admin"`
}
