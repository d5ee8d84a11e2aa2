package web_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"snippets/internal/adapters/cache"
	"snippets/internal/adapters/web"
	"snippets/internal/domain"
	"snippets/internal/mocks"
	"snippets/internal/usecases"
)

type gateway struct {
	app       *fiber.App
	session   *usecases.Session
	micropub  *mocks.MockMicropubPort
	rpc       *mocks.MockXMLRPCPort
	timeline  *mocks.MockTimelinePort
	discovery *mocks.MockDiscoveryPort
	tokens    *mocks.MockTokenExchanger
	signin    *mocks.MockEmailSignIn
	pending   *cache.AuthorizationStore
}

var account = domain.MicroblogIdentity("tok", "")

func newGateway(t *testing.T, timeline domain.Identity) *gateway {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := cache.NewUserCache(time.Minute)
	t.Cleanup(users.Close)
	pending := cache.NewAuthorizationStore(time.Minute)
	t.Cleanup(pending.Close)
	limiter := web.NewRateLimiter(100, time.Minute)
	t.Cleanup(limiter.Close)

	g := &gateway{
		app:       fiber.New(),
		session:   usecases.NewSession(timeline),
		micropub:  mocks.NewMockMicropubPort(ctrl),
		rpc:       mocks.NewMockXMLRPCPort(ctrl),
		timeline:  mocks.NewMockTimelinePort(ctrl),
		discovery: mocks.NewMockDiscoveryPort(ctrl),
		tokens:    mocks.NewMockTokenExchanger(ctrl),
		signin:    mocks.NewMockEmailSignIn(ctrl),
		pending:   pending,
	}
	service := usecases.NewService(g.session, g.micropub, g.rpc, g.timeline, users)
	connect := usecases.NewConnectBlogUseCase(g.discovery, g.rpc, g.micropub, g.tokens, pending, g.session,
		"https://app.example/", "snippets://micropub")
	signin := usecases.NewEmailSignInUseCase(g.signin, g.session, "Snippets", "snippets://signin")
	web.SetupRoutes(g.app, web.NewHandlers(service, connect, signin, 5*time.Second), limiter)
	return g
}

func (g *gateway) do(t *testing.T, method, target string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestCreatePost_Text_ReturnsLocation(t *testing.T) {
	g := newGateway(t, account)
	want := domain.TextPost{Content: "hello", Photos: []domain.Media{{URL: "https://cdn.example/a.jpg", AltText: "a"}}}
	g.micropub.EXPECT().PostText(gomock.Any(), account, want).Return("https://me.micro.blog/1", nil)

	resp := g.do(t, "POST", "/api/posts", map[string]any{
		"content": "hello",
		"photos":  []map[string]string{{"url": "https://cdn.example/a.jpg", "alt_text": "a"}},
	})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var got map[string]string
	decode(t, resp, &got)
	require.Equal(t, "https://me.micro.blog/1", got["url"])
}

func TestCreatePost_HTML_UsesHTMLPublish(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().PostHTML(gomock.Any(), account, "Title", "<p>hi</p>", true).Return("https://me.micro.blog/2", nil)

	resp := g.do(t, "POST", "/api/posts", map[string]any{"title": "Title", "html": "<p>hi</p>", "draft": true})

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestCreatePost_MissingToken_Returns401(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().PostText(gomock.Any(), gomock.Any(), gomock.Any()).Return("", domain.ErrInvalidOrMissingToken)

	resp := g.do(t, "POST", "/api/posts", map[string]any{"content": "x"})

	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	var got map[string]string
	decode(t, resp, &got)
	require.NotEmpty(t, got["error"])
}

func TestDeletePost_Returns204(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().DeletePost(gomock.Any(), account, domain.Post{ID: "9"}).Return(nil)

	resp := g.do(t, "DELETE", "/api/posts", map[string]any{"id": "9"})

	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestMyPosts_RoutedBeforePostID(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().FetchSourcePosts(gomock.Any(), account).Return([]domain.Post{{ID: "77", IsDraft: true}}, nil)

	resp := g.do(t, "GET", "/api/posts/mine", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var posts []domain.Post
	decode(t, resp, &posts)
	require.Len(t, posts, 1)
	require.True(t, posts[0].IsDraft)
}

func TestUploadImage_Multipart_SendsFileBytes(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().UploadImage(gomock.Any(), account, []byte("\xff\xd8jpeg")).Return("https://cdn.example/a.jpg", nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("\xff\xd8jpeg"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/media/images", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var media domain.UploadedMedia
	decode(t, resp, &media)
	require.Equal(t, "https://cdn.example/a.jpg", media.URL)
}

func TestUploadVideo_RawBody(t *testing.T) {
	g := newGateway(t, account)
	g.micropub.EXPECT().UploadVideo(gomock.Any(), account, []byte("movie")).Return(domain.UploadedMedia{URL: "v", Poster: "p"}, nil)

	req := httptest.NewRequest("POST", "/api/media/videos", strings.NewReader("movie"))
	req.Header.Set("Content-Type", "video/quicktime")
	resp, err := g.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestUploadImage_EmptyBody_Returns400(t *testing.T) {
	g := newGateway(t, account)

	resp := g.do(t, "POST", "/api/media/images", nil)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTimeline_KindAndPage(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().Mentions(gomock.Any(), account, domain.Page{Count: 20, BeforeID: "100"}).Return([]domain.Post{{ID: "99"}}, nil)

	resp := g.do(t, "GET", "/api/timeline/mentions?count=20&before_id=100", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTimeline_DefaultsToAll(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().Timeline(gomock.Any(), account, domain.Page{}).Return(nil, nil)

	resp := g.do(t, "GET", "/api/timeline", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestTimeline_Check(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().CheckPostsSince(gomock.Any(), account, "5").Return(domain.PostsSince{Count: 3, CheckSeconds: 30}, nil)

	resp := g.do(t, "GET", "/api/timeline/check?since_id=5", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got domain.PostsSince
	decode(t, resp, &got)
	require.Equal(t, domain.PostsSince{Count: 3, CheckSeconds: 30}, got)
}

func TestTimeline_XMLRPCAccount_Returns501(t *testing.T) {
	g := newGateway(t, domain.WordPressIdentity("bob", "secret", "https://notes.example/xmlrpc.php", ""))

	resp := g.do(t, "GET", "/api/timeline", nil)

	require.Equal(t, fiber.StatusNotImplemented, resp.StatusCode)
}

func TestSearchUsers_RoutedBeforeHandle(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().SearchUsers(gomock.Any(), account, "ana", true).Return([]domain.User{{Handle: "ana"}}, nil)

	resp := g.do(t, "GET", "/api/users/search?q=ana&done=1", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestFollow_PostAndDelete(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().Follow(gomock.Any(), account, "ana").Return(nil)
	g.timeline.EXPECT().Unfollow(gomock.Any(), account, "ana").Return(nil)

	follow := g.do(t, "POST", "/api/users/ana/follow", nil)
	unfollow := g.do(t, "DELETE", "/api/users/ana/follow", nil)

	require.Equal(t, fiber.StatusNoContent, follow.StatusCode)
	require.Equal(t, fiber.StatusNoContent, unfollow.StatusCode)
}

func TestConnect_Micropub_Returns202WithAuthorizationURL(t *testing.T) {
	g := newGateway(t, account)
	ep := domain.RemoteEndpoint{
		Hint:             domain.HintMicropub,
		HomeURL:          "https://blog.example",
		URL:              "https://blog.example/micropub",
		TokenEndpoint:    "https://auth.example/token",
		AuthorizationURL: "https://auth.example/auth?state=s1",
		State:            "s1",
	}
	g.discovery.EXPECT().Discover(gomock.Any(), "blog.example").Return(ep, nil)

	resp := g.do(t, "POST", "/api/connect", map[string]string{"home_url": "blog.example"})

	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	var conn usecases.Connection
	decode(t, resp, &conn)
	require.True(t, conn.Pending)
	require.Equal(t, ep.AuthorizationURL, conn.Endpoint.AuthorizationURL)
}

func TestMicropubCallback_CompletesPendingAuthorization(t *testing.T) {
	g := newGateway(t, account)
	g.pending.Put(domain.RemoteEndpoint{
		Hint:          domain.HintMicropub,
		HomeURL:       "https://blog.example",
		URL:           "https://blog.example/micropub",
		TokenEndpoint: "https://auth.example/token",
		State:         "s1",
	})
	g.tokens.EXPECT().ExchangeCode(gomock.Any(), "https://auth.example/token", gomock.Any()).Return(domain.TokenGrant{AccessToken: "fresh"}, nil)
	g.micropub.EXPECT().FetchConfig(gomock.Any(), gomock.Any()).Return(domain.MicropubConfig{}, nil)

	resp := g.do(t, "POST", "/micropub/callback", map[string]string{"url": "snippets://micropub?code=c0de&state=s1"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var id domain.Identity
	decode(t, resp, &id)
	require.Equal(t, "***", id.Token)
	require.Equal(t, "fresh", g.session.Publishing().Token)
}

func TestMicropubRedirect_UnknownState_Returns400(t *testing.T) {
	g := newGateway(t, account)

	resp := g.do(t, "GET", "/micropub/redirect?code=c&state=missing", nil)

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestIdentities_AreRedacted(t *testing.T) {
	g := newGateway(t, account)
	g.session.SetPublishing(domain.WordPressIdentity("bob", "secret", "https://notes.example/xmlrpc.php", ""))

	resp := g.do(t, "GET", "/api/identities", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NotContains(t, string(raw), "secret")
	require.NotContains(t, string(raw), `"tok"`)
	require.Contains(t, string(raw), `"kind":"wordpress"`)
}

func TestTagmoji_ListsCategories(t *testing.T) {
	g := newGateway(t, account)
	g.timeline.EXPECT().TagmojiCategories(gomock.Any(), account).Return([]map[string]any{{"name": "books"}}, nil)

	resp := g.do(t, "GET", "/api/tagmoji", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got []map[string]any
	decode(t, resp, &got)
	require.Len(t, got, 1)
	require.Equal(t, "books", got[0]["name"])
}

func TestSignInEmail_Accepted(t *testing.T) {
	g := newGateway(t, account)
	g.signin.EXPECT().RequestLoginEmail(gomock.Any(), domain.DefaultTimelineEndpoint, "ana@example.com", "Snippets", "snippets://signin").Return(nil)

	resp := g.do(t, "POST", "/api/auth/email", map[string]string{"email": "ana@example.com"})

	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
}

func TestSignInEmail_BadAddress_Returns400(t *testing.T) {
	g := newGateway(t, account)

	resp := g.do(t, "POST", "/api/auth/email", map[string]string{"email": "nobody"})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSignInVerify_InstallsTimelineIdentity(t *testing.T) {
	g := newGateway(t, domain.Identity{})
	g.signin.EXPECT().ExchangeTemporaryToken(gomock.Any(), domain.DefaultTimelineEndpoint, "temp").Return("permanent", nil)

	resp := g.do(t, "POST", "/api/auth/email/verify", map[string]string{"token": "temp"})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got map[string]any
	decode(t, resp, &got)
	require.Equal(t, "***", got["token"])
	require.Equal(t, "permanent", g.session.Timeline().Token)
}
