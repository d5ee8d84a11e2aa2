package usecases_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"snippets/internal/domain"
	"snippets/internal/mocks"
	"snippets/internal/usecases"
)

// MockCache is a map-backed UserCache with the same merge rules as the
// real one.
type MockCache struct {
	users map[string]domain.User
}

func NewMockCache() *MockCache {
	return &MockCache{users: make(map[string]domain.User)}
}

func (m *MockCache) Get(handle string) (domain.User, bool) {
	u, ok := m.users[handle]
	return u, ok
}

func (m *MockCache) Save(u domain.User) domain.User {
	merged := m.users[u.Handle].Merge(u)
	m.users[u.Handle] = merged
	return merged
}

func (m *MockCache) SetFollowing(handle string, following bool) {
	u := m.users[handle]
	u.Handle = handle
	u.IsFollowing = following
	m.users[handle] = u
}

type fixture struct {
	micropub *mocks.MockMicropubPort
	rpc      *mocks.MockXMLRPCPort
	timeline *mocks.MockTimelinePort
	cache    *MockCache
	session  *usecases.Session
	service  *usecases.Service
}

func newFixture(t *testing.T, timeline domain.Identity) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		micropub: mocks.NewMockMicropubPort(ctrl),
		rpc:      mocks.NewMockXMLRPCPort(ctrl),
		timeline: mocks.NewMockTimelinePort(ctrl),
		cache:    NewMockCache(),
		session:  usecases.NewSession(timeline),
	}
	f.service = usecases.NewService(f.session, f.micropub, f.rpc, f.timeline, f.cache)
	return f
}

var (
	microblog = domain.MicroblogIdentity("tok", "https://me.micro.blog/")
	wordpress = domain.WordPressIdentity("bob", "secret", "https://notes.example/xmlrpc.php", "1")
	weblog    = domain.XMLRPCIdentity("bob", "secret", "https://weblog.example/rpc", "")
	unknown   = domain.Identity{Kind: domain.Protocol(42)}
)

// Session tests

func TestSession_Publishing_FallsBackToTimeline(t *testing.T) {
	// Arrange
	s := usecases.NewSession(microblog)

	// Act
	got := s.Publishing()

	// Assert
	if got != microblog {
		t.Errorf("got %+v, want timeline identity", got)
	}
}

func TestSession_SetPublishing_KeepsSlotsIndependent(t *testing.T) {
	// Arrange
	s := usecases.NewSession(microblog)

	// Act
	s.SetPublishing(wordpress)

	// Assert
	if s.Timeline() != microblog {
		t.Errorf("Timeline: got %+v, want micro.blog identity", s.Timeline())
	}
	if s.Publishing() != wordpress {
		t.Errorf("Publishing: got %+v, want wordpress identity", s.Publishing())
	}
}

func TestSession_ResetPublishing_FollowsTimelineAgain(t *testing.T) {
	// Arrange
	s := usecases.NewSession(microblog)
	s.SetPublishing(wordpress)

	// Act
	s.ResetPublishing()
	s.SetTimeline(weblog)

	// Assert
	if s.Publishing() != weblog {
		t.Errorf("got %+v, want new timeline identity", s.Publishing())
	}
}

func TestSession_Identities_MasksSecrets(t *testing.T) {
	// Arrange
	s := usecases.NewSession(microblog)
	s.SetPublishing(wordpress)

	// Act
	timeline, publishing := s.Identities()

	// Assert
	if timeline.Token != "***" {
		t.Errorf("Token: got %q, want ***", timeline.Token)
	}
	if publishing.Password != "***" {
		t.Errorf("Password: got %q, want ***", publishing.Password)
	}
}

// Publishing tests

func TestService_PostText_Micropub_UsesMicropubAdapter(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	post := domain.TextPost{Content: "hello"}
	f.micropub.EXPECT().PostText(gomock.Any(), microblog, post).Return("https://me.micro.blog/1", nil)

	// Act
	loc, err := f.service.PostText(context.Background(), post)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc != "https://me.micro.blog/1" {
		t.Errorf("got %v, want https://me.micro.blog/1", loc)
	}
}

func TestService_PostText_XMLRPC_PostsThenFetchesURL(t *testing.T) {
	tests := []struct {
		name string
		id   domain.Identity
	}{
		{name: "wordpress", id: wordpress},
		{name: "metaweblog", id: weblog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newFixture(t, microblog)
			f.session.SetPublishing(tt.id)
			post := domain.TextPost{Title: "T", Content: "hello"}
			gomock.InOrder(
				f.rpc.EXPECT().Post(gomock.Any(), tt.id, post).Return("55", nil),
				f.rpc.EXPECT().FetchPostURL(gomock.Any(), tt.id, "55").Return("https://notes.example/55", nil),
			)

			// Act
			loc, err := f.service.PostText(context.Background(), post)

			// Assert
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if loc != "https://notes.example/55" {
				t.Errorf("got %v, want https://notes.example/55", loc)
			}
		})
	}
}

func TestService_PostHTML_XMLRPC_SendsHTMLAsContent(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)
	want := domain.TextPost{Title: "T", Content: "<p>hi</p>", Draft: true}
	f.rpc.EXPECT().Post(gomock.Any(), wordpress, want).Return("9", nil)
	f.rpc.EXPECT().FetchPostURL(gomock.Any(), wordpress, "9").Return("https://notes.example/9", nil)

	// Act
	_, err := f.service.PostHTML(context.Background(), "T", "<p>hi</p>", true)

	// Assert
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_PostText_URLLookupFails_ReportsPostID(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)
	lookupErr := errors.New("boom")
	f.rpc.EXPECT().Post(gomock.Any(), gomock.Any(), gomock.Any()).Return("9", nil)
	f.rpc.EXPECT().FetchPostURL(gomock.Any(), gomock.Any(), "9").Return("", lookupErr)

	// Act
	_, err := f.service.PostText(context.Background(), domain.TextPost{Content: "x"})

	// Assert
	if !errors.Is(err, lookupErr) {
		t.Errorf("got %v, want wrapped %v", err, lookupErr)
	}
}

func TestService_UpdatePost_XMLRPC_EditsWithoutTitle(t *testing.T) {
	// Arrange
	f := newFixture(t, weblog)
	post := domain.Post{ID: "12", Title: "ignored", HTML: "<p>new</p>"}
	f.rpc.EXPECT().EditPost(gomock.Any(), weblog, "12", domain.TextPost{Content: "<p>new</p>"}).Return("12", nil)

	// Act
	err := f.service.UpdatePost(context.Background(), post)

	// Assert
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_UpdatePost_XMLRPC_RequiresPostID(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)

	// Act
	err := f.service.UpdatePost(context.Background(), domain.Post{HTML: "<p>new</p>"})

	// Assert
	if !errors.Is(err, domain.ErrInvalidArgument) {
		t.Errorf("error: got %v, want ErrInvalidArgument", err)
	}
}

func TestService_DeletePost_RoutesByKind(t *testing.T) {
	// Arrange
	post := domain.Post{ID: "12", Path: "https://me.micro.blog/12"}
	mp := newFixture(t, microblog)
	mp.micropub.EXPECT().DeletePost(gomock.Any(), microblog, post).Return(nil)
	rpc := newFixture(t, wordpress)
	rpc.rpc.EXPECT().Unpublish(gomock.Any(), wordpress, "12").Return(nil)

	// Act
	errMP := mp.service.DeletePost(context.Background(), post)
	errRPC := rpc.service.DeletePost(context.Background(), post)

	// Assert
	if errMP != nil || errRPC != nil {
		t.Errorf("unexpected errors: %v, %v", errMP, errRPC)
	}
}

func TestService_UploadImage_Micropub_WrapsLocation(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.micropub.EXPECT().UploadImage(gomock.Any(), microblog, []byte("jpeg")).Return("https://cdn.example/a.jpg", nil)

	// Act
	media, err := f.service.UploadImage(context.Background(), []byte("jpeg"))

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if media.URL != "https://cdn.example/a.jpg" {
		t.Errorf("URL: got %v, want https://cdn.example/a.jpg", media.URL)
	}
}

func TestService_Uploads_XMLRPC_SetContentType(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)
	f.rpc.EXPECT().UploadMedia(gomock.Any(), wordpress, []byte("img"), "image/jpeg").Return(domain.UploadedMedia{URL: "u1"}, nil)
	f.rpc.EXPECT().UploadMedia(gomock.Any(), wordpress, []byte("vid"), "video/mov").Return(domain.UploadedMedia{URL: "u2"}, nil)

	// Act
	image, errImage := f.service.UploadImage(context.Background(), []byte("img"))
	video, errVideo := f.service.UploadVideo(context.Background(), []byte("vid"))

	// Assert
	if errImage != nil || errVideo != nil {
		t.Fatalf("unexpected errors: %v, %v", errImage, errVideo)
	}
	if image.URL != "u1" || video.URL != "u2" {
		t.Errorf("got %v and %v, want u1 and u2", image.URL, video.URL)
	}
}

func TestService_MicropubOnlyReads_XMLRPC_Unsupported(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)

	// Act
	_, errMedia := f.service.FetchPublishedMedia(context.Background())
	_, errPosts := f.service.FetchMyPosts(context.Background())

	// Assert
	if !errors.Is(errMedia, domain.ErrUnsupported) {
		t.Errorf("FetchPublishedMedia: got %v, want ErrUnsupported", errMedia)
	}
	if !errors.Is(errPosts, domain.ErrUnsupported) {
		t.Errorf("FetchMyPosts: got %v, want ErrUnsupported", errPosts)
	}
}

func TestService_FetchPost_RoutesByKind(t *testing.T) {
	// Arrange
	mp := newFixture(t, microblog)
	rpc := newFixture(t, weblog)
	rpc.rpc.EXPECT().FetchPost(gomock.Any(), weblog, "3").Return(domain.Post{ID: "3"}, nil)

	// Act
	_, errMP := mp.service.FetchPost(context.Background(), "3")
	post, errRPC := rpc.service.FetchPost(context.Background(), "3")

	// Assert
	if !errors.Is(errMP, domain.ErrUnsupported) {
		t.Errorf("micropub: got %v, want ErrUnsupported", errMP)
	}
	if errRPC != nil || post.ID != "3" {
		t.Errorf("xmlrpc: got %+v, %v", post, errRPC)
	}
}

func TestService_UnknownProtocol_FailsEverywhere(t *testing.T) {
	// Arrange
	f := newFixture(t, unknown)
	ctx := context.Background()

	// Act
	_, errText := f.service.PostText(ctx, domain.TextPost{})
	errDelete := f.service.DeletePost(ctx, domain.Post{})
	_, errUpload := f.service.UploadVideo(ctx, nil)
	_, errTimeline := f.service.Timeline(ctx, usecases.TimelineAll, domain.Page{})

	// Assert
	for _, err := range []error{errText, errDelete, errUpload, errTimeline} {
		if !errors.Is(err, domain.ErrUnknownProtocol) {
			t.Errorf("got %v, want ErrUnknownProtocol", err)
		}
	}
}

func TestService_ReadsTimeline_WritesPublishing(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.session.SetPublishing(wordpress)
	f.timeline.EXPECT().Timeline(gomock.Any(), microblog, domain.Page{}).Return(nil, nil)
	f.rpc.EXPECT().Post(gomock.Any(), wordpress, gomock.Any()).Return("1", nil)
	f.rpc.EXPECT().FetchPostURL(gomock.Any(), wordpress, "1").Return("https://notes.example/1", nil)

	// Act
	_, errRead := f.service.Timeline(context.Background(), usecases.TimelineAll, domain.Page{})
	_, errWrite := f.service.PostText(context.Background(), domain.TextPost{Content: "x"})

	// Assert
	if errRead != nil || errWrite != nil {
		t.Errorf("unexpected errors: %v, %v", errRead, errWrite)
	}
}

// Timeline tests

func TestService_Timeline_XMLRPC_Unsupported(t *testing.T) {
	// Arrange
	f := newFixture(t, wordpress)

	// Act
	_, err := f.service.Timeline(context.Background(), usecases.TimelineMentions, domain.Page{})

	// Assert
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("got %v, want ErrUnsupported", err)
	}
}

func TestService_Timeline_RoutesKind(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	page := domain.Page{Count: 5}
	f.timeline.EXPECT().PhotoTimeline(gomock.Any(), microblog, page).Return(nil, nil)
	f.timeline.EXPECT().Mentions(gomock.Any(), microblog, page).Return(nil, nil)
	f.timeline.EXPECT().Favorites(gomock.Any(), microblog, page).Return(nil, nil)
	f.timeline.EXPECT().MediaTimeline(gomock.Any(), microblog, page).Return(nil, nil)

	// Act
	for _, kind := range []usecases.TimelineKind{usecases.TimelinePhotos, usecases.TimelineMentions, usecases.TimelineFavorites, usecases.TimelineMedia} {
		if _, err := f.service.Timeline(context.Background(), kind, page); err != nil {
			// Assert
			t.Errorf("%s: unexpected error: %v", kind, err)
		}
	}
	_, err := f.service.Timeline(context.Background(), "bogus", page)
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("bogus: got %v, want ErrUnsupported", err)
	}
}

func TestService_TagmojiCategories_ReadsTimelineAccount(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.session.SetPublishing(wordpress)
	want := []map[string]any{{"name": "books", "emoji": "📚"}}
	f.timeline.EXPECT().TagmojiCategories(gomock.Any(), microblog).Return(want, nil)

	// Act
	got, err := f.service.TagmojiCategories(context.Background())

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0]["name"] != "books" {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestService_Timeline_MergesOwnersIntoCache(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.cache.Save(domain.User{Handle: "ana", Bio: "Writes about birds", FollowingCount: 42})
	f.timeline.EXPECT().Timeline(gomock.Any(), microblog, domain.Page{}).Return([]domain.Post{
		{ID: "1", Owner: domain.User{Handle: "ana", FullName: "Ana Lima"}},
	}, nil)

	// Act
	posts, err := f.service.Timeline(context.Background(), usecases.TimelineAll, domain.Page{})

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	owner := posts[0].Owner
	if owner.Bio != "Writes about birds" || owner.FollowingCount != 42 {
		t.Errorf("owner lost cached fields: %+v", owner)
	}
	if cached, _ := f.cache.Get("ana"); cached.FullName != "Ana Lima" {
		t.Errorf("cache FullName: got %v, want Ana Lima", cached.FullName)
	}
}

func TestService_Unfollow_ClearsFollowingFlag(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.cache.Save(domain.User{Handle: "ana", IsFollowing: true})
	f.timeline.EXPECT().Unfollow(gomock.Any(), microblog, "ana").Return(nil)

	// Act
	err := f.service.Unfollow(context.Background(), "ana")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u, _ := f.service.KnownUser("ana"); u.IsFollowing {
		t.Error("IsFollowing: got true, want false")
	}
}

func TestService_Follow_Failure_LeavesCacheAlone(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.timeline.EXPECT().Follow(gomock.Any(), microblog, "ben").Return(domain.ErrInvalidOrMissingToken)

	// Act
	err := f.service.Follow(context.Background(), "ben")

	// Assert
	if !errors.Is(err, domain.ErrInvalidOrMissingToken) {
		t.Errorf("got %v, want ErrInvalidOrMissingToken", err)
	}
	if _, found := f.service.KnownUser("ben"); found {
		t.Error("expected no cache entry")
	}
}

func TestService_CheckFollowing_WritesAuthoritativeFlag(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.cache.Save(domain.User{Handle: "ana", IsFollowing: true})
	f.timeline.EXPECT().CheckFollowing(gomock.Any(), microblog, "ana").Return(false, nil)

	// Act
	following, err := f.service.CheckFollowing(context.Background(), "ana")

	// Assert
	if err != nil || following {
		t.Fatalf("got %v, %v; want false, nil", following, err)
	}
	if u, _ := f.cache.Get("ana"); u.IsFollowing {
		t.Error("cache IsFollowing: got true, want false")
	}
}

func TestService_UserDetails_ReturnsMergedUser(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.cache.Save(domain.User{Handle: "ana", FullName: "Ana Lima"})
	f.timeline.EXPECT().UserDetails(gomock.Any(), microblog, "ana").Return(domain.UserDetails{
		User: domain.User{Handle: "ana", Bio: "birds"},
	}, nil)

	// Act
	details, err := f.service.UserDetails(context.Background(), "ana")

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.User.FullName != "Ana Lima" || details.User.Bio != "birds" {
		t.Errorf("got %+v, want merged user", details.User)
	}
}

func TestService_SearchUsers_CachesResults(t *testing.T) {
	// Arrange
	f := newFixture(t, microblog)
	f.timeline.EXPECT().SearchUsers(gomock.Any(), microblog, "an", true).Return([]domain.User{{Handle: "ana"}, {Handle: "dan"}}, nil)

	// Act
	users, err := f.service.SearchUsers(context.Background(), "an", true)

	// Assert
	if err != nil || len(users) != 2 {
		t.Fatalf("got %d users, %v; want 2, nil", len(users), err)
	}
	if _, found := f.cache.Get("dan"); !found {
		t.Error("expected dan to be cached")
	}
}

func TestService_SocialWrites_XMLRPC_Unsupported(t *testing.T) {
	// Arrange
	f := newFixture(t, weblog)
	ctx := context.Background()

	// Act
	errs := []error{
		f.service.Reply(ctx, "1", "hi"),
		f.service.Favorite(ctx, "1"),
		f.service.Unfavorite(ctx, "1"),
		f.service.Follow(ctx, "ana"),
	}

	// Assert
	for i, err := range errs {
		if !errors.Is(err, domain.ErrUnsupported) {
			t.Errorf("write %d: got %v, want ErrUnsupported", i, err)
		}
	}
}
