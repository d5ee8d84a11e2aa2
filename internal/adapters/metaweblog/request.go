package metaweblog

import (
	"fmt"
	"html"
	"strings"

	"snippets/internal/domain"
	"snippets/pkg/xmlrpc"
)

// XML-RPC method names.
const (
	MethodWPNewPost      = "wp.newPost"
	MethodWPEditPost     = "wp.editPost"
	MethodWPGetPost      = "wp.getPost"
	MethodNewPost        = "metaWeblog.newPost"
	MethodEditPost       = "metaWeblog.editPost"
	MethodGetPost        = "metaWeblog.getPost"
	MethodDeletePost     = "metaWeblog.deletePost"
	MethodNewMediaObject = "metaWeblog.newMediaObject"
	MethodGetUsersBlogs  = "blogger.getUsersBlogs"
)

const (
	wordPressPostStatus   = "publish"
	wordPressDraftStatus  = "draft"
	wordPressCategoryTerm = "category"
)

// Request pairs an identity with the method it will call.
type Request struct {
	Identity domain.Identity
	Method   string
}

// PublishPostRequest selects the create or edit method for the identity.
func PublishPostRequest(id domain.Identity, existing bool) (Request, error) {
	var method string
	switch id.Kind {
	case domain.WordPress:
		method = MethodWPNewPost
		if existing {
			method = MethodWPEditPost
		}
	case domain.XMLRPC:
		method = MethodNewPost
		if existing {
			method = MethodEditPost
		}
	default:
		return Request{}, unknownKind(id)
	}
	return Request{Identity: id, Method: method}, nil
}

// PublishMediaRequest selects the media upload method. Both flavors share it.
func PublishMediaRequest(id domain.Identity) (Request, error) {
	return shared(id, MethodNewMediaObject)
}

// UnpublishRequest selects the delete method. Both flavors share it.
func UnpublishRequest(id domain.Identity) (Request, error) {
	return shared(id, MethodDeletePost)
}

// FetchPostInfoRequest selects the method reading a single post.
func FetchPostInfoRequest(id domain.Identity) (Request, error) {
	switch id.Kind {
	case domain.WordPress:
		return Request{Identity: id, Method: MethodWPGetPost}, nil
	case domain.XMLRPC:
		return Request{Identity: id, Method: MethodGetPost}, nil
	default:
		return Request{}, unknownKind(id)
	}
}

// UsersBlogsRequest selects the method listing the user's blogs.
func UsersBlogsRequest(id domain.Identity) (Request, error) {
	return shared(id, MethodGetUsersBlogs)
}

func shared(id domain.Identity, method string) (Request, error) {
	switch id.Kind {
	case domain.WordPress, domain.XMLRPC:
		return Request{Identity: id, Method: method}, nil
	default:
		return Request{}, unknownKind(id)
	}
}

func unknownKind(id domain.Identity) error {
	return fmt.Errorf("%w: %s is not an XML-RPC identity", domain.ErrUnknownProtocol, id.Kind)
}

// postParams builds the positional parameters of a create or edit call.
// The two flavors disagree on both order and field names.
func postParams(id domain.Identity, postID string, post domain.TextPost) []xmlrpc.Value {
	body := textContent(post)

	if id.Kind == domain.WordPress {
		status := wordPressPostStatus
		if post.Draft {
			status = wordPressDraftStatus
		}
		content := xmlrpc.Struct{
			{Name: "post_status", Value: xmlrpc.String(status)},
			{Name: "post_content", Value: xmlrpc.String(body)},
		}
		if post.Format != "" {
			content = content.Set("post_format", xmlrpc.String(post.Format))
		}
		if post.Category != "" {
			content = content.Set("terms", xmlrpc.Struct{
				{Name: wordPressCategoryTerm, Value: xmlrpc.Array{xmlrpc.String(post.Category)}},
			})
		}
		if post.Title != "" {
			content = content.Set("post_title", xmlrpc.String(post.Title))
		}

		head := credentials(id.BlogID, id)
		if postID != "" {
			return append(head, xmlrpc.String(postID), content)
		}
		return append(head, content)
	}

	content := xmlrpc.Struct{{Name: "description", Value: xmlrpc.String(body)}}
	if post.Title != "" {
		content = content.Set("title", xmlrpc.String(post.Title))
	}
	publish := xmlrpc.Bool(!post.Draft)

	if postID != "" {
		return append(credentials(postID, id), content, publish)
	}
	return append(credentials(id.BlogID, id), content, publish)
}

func credentials(lead string, id domain.Identity) []xmlrpc.Value {
	return []xmlrpc.Value{
		xmlrpc.String(lead),
		xmlrpc.String(id.Username),
		xmlrpc.String(id.Password),
	}
}

// textContent renders attached media after the text, since XML-RPC posts
// carry a single HTML body.
func textContent(post domain.TextPost) string {
	if len(post.Photos) == 0 && len(post.Videos) == 0 {
		return post.Content
	}

	var b strings.Builder
	b.WriteString(post.Content)
	for _, p := range post.Photos {
		fmt.Fprintf(&b, "\n\n<img src=\"%s\" alt=\"%s\">", html.EscapeString(p.URL), html.EscapeString(p.AltText))
	}
	for _, v := range post.Videos {
		fmt.Fprintf(&b, "\n\n<video controls src=\"%s\"></video>", html.EscapeString(v.URL))
	}
	return b.String()
}
