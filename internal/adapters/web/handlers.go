package web

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"codeberg.org/gruf/go-mutexes"
	"github.com/gofiber/fiber/v2"

	"snippets/internal/domain"
	"snippets/internal/usecases"
	"snippets/pkg/log"
)

const defaultTimeout = 30 * time.Second

// Handlers contains the HTTP handlers of the gateway.
type Handlers struct {
	service *usecases.Service
	connect *usecases.ConnectBlogUseCase
	signin  *usecases.EmailSignInUseCase
	uploads *mutexes.MutexMap
	timeout time.Duration
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *usecases.Service, connect *usecases.ConnectBlogUseCase, signin *usecases.EmailSignInUseCase, timeout time.Duration) *Handlers {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Handlers{
		service: service,
		connect: connect,
		signin:  signin,
		uploads: &mutexes.MutexMap{},
		timeout: timeout,
	}
}

func (h *Handlers) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// postRequest is the body of POST /api/posts. A non-empty HTML field
// publishes an HTML post instead of a text one.
type postRequest struct {
	domain.TextPost
	HTML string `json:"html"`
}

// CreatePost publishes a new post.
func (h *Handlers) CreatePost(c *fiber.Ctx) error {
	var req postRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	var (
		loc string
		err error
	)
	if req.HTML != "" {
		loc, err = h.service.PostHTML(ctx, req.Title, req.HTML, req.Draft)
	} else {
		loc, err = h.service.PostText(ctx, req.TextPost)
	}
	if err != nil {
		log.GlobalErrorCtx(ctx, "publish failed", "error", err)
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"url": loc})
}

// UpdatePost replaces the content of a post.
func (h *Handlers) UpdatePost(c *fiber.Ctx) error {
	var post domain.Post
	if err := c.BodyParser(&post); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.service.UpdatePost(ctx, post); err != nil {
		log.GlobalErrorCtx(ctx, "update failed", "post_id", post.ID, "error", err)
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DeletePost removes a post.
func (h *Handlers) DeletePost(c *fiber.Ctx) error {
	var post domain.Post
	if err := c.BodyParser(&post); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.service.DeletePost(ctx, post); err != nil {
		log.GlobalErrorCtx(ctx, "delete failed", "post_id", post.ID, "error", err)
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetPost reads one post by id.
func (h *Handlers) GetPost(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	post, err := h.service.FetchPost(ctx, c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(post)
}

// MyPosts lists the publishing account's posts.
func (h *Handlers) MyPosts(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	posts, err := h.service.FetchMyPosts(ctx)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(posts)
}

// UploadImage uploads a JPEG sent as the "file" form field or as the raw body.
func (h *Handlers) UploadImage(c *fiber.Ctx) error {
	return h.upload(c, h.service.UploadImage)
}

// UploadVideo uploads a video sent as the "file" form field or as the raw body.
func (h *Handlers) UploadVideo(c *fiber.Ctx) error {
	return h.upload(c, h.service.UploadVideo)
}

// upload runs one upload at a time per publishing endpoint.
func (h *Handlers) upload(c *fiber.Ctx, send func(context.Context, []byte) (domain.UploadedMedia, error)) error {
	data, err := uploadedBytes(c)
	if err != nil {
		return badRequest(c, err)
	}

	unlock := h.uploads.Lock(h.service.Session().Publishing().Endpoint())
	defer unlock()

	ctx, cancel := h.context(c)
	defer cancel()

	media, err := send(ctx, data)
	if err != nil {
		log.GlobalErrorCtx(ctx, "upload failed", "bytes", len(data), "error", err)
		return renderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(media)
}

func uploadedBytes(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	if len(c.Body()) == 0 {
		return nil, errors.New("empty upload")
	}
	return append([]byte(nil), c.Body()...), nil
}

// ListMedia lists uploaded media.
func (h *Handlers) ListMedia(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	items, err := h.service.FetchPublishedMedia(ctx)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(items)
}

// Timeline reads one of the account timelines.
func (h *Handlers) Timeline(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	posts, err := h.service.Timeline(ctx, usecases.TimelineKind(c.Params("kind")), pageFrom(c))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(posts)
}

// CheckTimeline counts posts newer than since_id.
func (h *Handlers) CheckTimeline(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	since, err := h.service.CheckPostsSince(ctx, c.Query("since_id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(since)
}

// Discover reads the discover timeline.
func (h *Handlers) Discover(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	feed, err := h.service.Discover(ctx, c.Params("collection"), pageFrom(c))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(feed)
}

// Tagmoji lists the collections Discover accepts.
func (h *Handlers) Tagmoji(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	categories, err := h.service.TagmojiCategories(ctx)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(categories)
}

// Conversation reads a thread.
func (h *Handlers) Conversation(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	posts, err := h.service.Conversation(ctx, c.Params("id"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(posts)
}

// Reply answers a post.
func (h *Handlers) Reply(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.service.Reply(ctx, c.Params("id"), req.Text); err != nil {
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CurrentUser returns the signed in account.
func (h *Handlers) CurrentUser(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	u, err := h.service.CurrentUser(ctx)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(u)
}

// UserDetails returns a profile with recent posts.
func (h *Handlers) UserDetails(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	details, err := h.service.UserDetails(ctx, c.Params("handle"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(details)
}

// UserPosts returns a user's posts; media=1 keeps only posts with media.
func (h *Handlers) UserPosts(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	posts, err := h.service.UserPosts(ctx, c.Params("handle"), c.QueryBool("media"), pageFrom(c))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(posts)
}

// Following lists who a user follows; complete=1 asks for the full list.
func (h *Handlers) Following(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	users, err := h.service.ListFollowing(ctx, c.Params("handle"), c.QueryBool("complete"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(users)
}

// SearchUsers finds users by name.
func (h *Handlers) SearchUsers(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	users, err := h.service.SearchUsers(ctx, c.Query("q"), c.QueryBool("done"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(users)
}

// CheckFollowing reports whether the account follows a user.
func (h *Handlers) CheckFollowing(c *fiber.Ctx) error {
	ctx, cancel := h.context(c)
	defer cancel()

	following, err := h.service.CheckFollowing(ctx, c.Params("handle"))
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"is_following": following})
}

// Follow starts following a user.
func (h *Handlers) Follow(c *fiber.Ctx) error {
	return h.social(c, h.service.Follow, c.Params("handle"))
}

// Unfollow stops following a user.
func (h *Handlers) Unfollow(c *fiber.Ctx) error {
	return h.social(c, h.service.Unfollow, c.Params("handle"))
}

// Favorite stars a post.
func (h *Handlers) Favorite(c *fiber.Ctx) error {
	return h.social(c, h.service.Favorite, c.Params("id"))
}

// Unfavorite removes a star.
func (h *Handlers) Unfavorite(c *fiber.Ctx) error {
	return h.social(c, h.service.Unfavorite, c.Params("id"))
}

func (h *Handlers) social(c *fiber.Ctx, write func(context.Context, string) error, target string) error {
	ctx, cancel := h.context(c)
	defer cancel()

	if err := write(ctx, target); err != nil {
		log.GlobalWarnCtx(ctx, "social write failed", "target", target, "error", err)
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type connectRequest struct {
	HomeURL  string `json:"home_url"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Connect discovers a blog and installs it as the publishing identity.
func (h *Handlers) Connect(c *fiber.Ctx) error {
	var req connectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	conn, err := h.connect.Execute(ctx, usecases.ConnectRequest(req))
	if err != nil {
		log.GlobalErrorCtx(ctx, "connect failed", "home_url", req.HomeURL, "error", err)
		return renderError(c, err)
	}
	if conn.Pending {
		return c.Status(fiber.StatusAccepted).JSON(conn)
	}
	return c.JSON(conn)
}

// RequestSignInEmail mails a Micro.blog sign-in link.
func (h *Handlers) RequestSignInEmail(c *fiber.Ctx) error {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	if err := h.signin.Request(ctx, req.Email); err != nil {
		log.GlobalWarnCtx(ctx, "sign-in email failed", "error", err)
		return renderError(c, err)
	}
	return c.SendStatus(fiber.StatusAccepted)
}

// VerifySignIn redeems the token from a sign-in email.
func (h *Handlers) VerifySignIn(c *fiber.Ctx) error {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	id, err := h.signin.Verify(ctx, req.Token)
	if err != nil {
		log.GlobalWarnCtx(ctx, "sign-in verification failed", "error", err)
		return renderError(c, err)
	}
	return c.JSON(id.Redacted())
}

// MicropubRedirect completes an authorization delivered as an HTTP redirect.
func (h *Handlers) MicropubRedirect(c *fiber.Ctx) error {
	return h.complete(c, c.Query("code"), c.Query("state"))
}

// MicropubCallback completes an authorization delivered to a custom scheme
// URL that the client forwards as {"url": "..."}.
func (h *Handlers) MicropubCallback(c *fiber.Ctx) error {
	var req struct {
		URL string `json:"url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}

	code, state, err := ParseCallbackURL(req.URL)
	if err != nil {
		log.GlobalWarnCtx(c.UserContext(), "invalid callback url", "url", req.URL, "error", err)
		return renderError(c, err)
	}
	return h.complete(c, code, state)
}

func (h *Handlers) complete(c *fiber.Ctx, code, state string) error {
	if code == "" || state == "" {
		return renderError(c, domain.ErrInvalidURL)
	}

	ctx, cancel := h.context(c)
	defer cancel()

	id, err := h.connect.CompleteMicropub(ctx, code, state)
	if err != nil {
		log.GlobalErrorCtx(ctx, "micropub authorization failed", "error", err)
		return renderError(c, err)
	}
	return c.JSON(id.Redacted())
}

// Identities shows both active identities without secrets.
func (h *Handlers) Identities(c *fiber.Ctx) error {
	timeline, publishing := h.service.Session().Identities()
	return c.JSON(fiber.Map{"timeline": timeline, "publishing": publishing})
}

func pageFrom(c *fiber.Ctx) domain.Page {
	count, _ := strconv.Atoi(c.Query("count"))
	return domain.Page{
		Count:    count,
		BeforeID: c.Query("before_id"),
		SinceID:  c.Query("since_id"),
	}
}
