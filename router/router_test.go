package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/connecthub/connecthub-backend/auth"
	"github.com/connecthub/connecthub-backend/db"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/connecthub/connecthub-backend/posts"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetOutput(io.Discard)
}

var testNow = time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	clock := func() time.Time { return testNow }
	return Init(&Server{
		Store: posts.NewStore(db.NewMemoryStorage(), posts.WithClock(clock)),
		Auth:  auth.NewManager(db.NewMemorySessions(), time.Hour),
		Now:   clock,
	})
}

func do(t *testing.T, h http.Handler, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func form(t *testing.T, h http.Handler, path, token string, values url.Values) *httptest.ResponseRecorder {
	return do(t, h, "POST", path, token, strings.NewReader(values.Encode()), "application/x-www-form-urlencoded")
}

func jsonBody(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	return do(t, h, method, path, token, strings.NewReader(body), "application/json")
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()
	rec := form(t, h, "/auth/login", "", url.Values{"email": {email}, "password": {"demo123"}})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp SessionResponse
	decode(t, rec, &resp)
	return resp.Token
}

func TestLogin(t *testing.T) {
	h := newTestRouter(t)

	rec := form(t, h, "/auth/login", "", url.Values{"email": {"sarah@demo.com"}, "password": {"wrong"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var e HTTPError
	decode(t, rec, &e)
	assert.Equal(t, ErrInvalidCredentials, e.ErrorCode)

	token := login(t, h, "sarah@demo.com")
	rec = do(t, h, "GET", "/me", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var me UserResponse
	decode(t, rec, &me)
	assert.Equal(t, "Sarah Johnson", me.User.Name)
	assert.Equal(t, "SJ", me.Initials)
	assert.Empty(t, me.User.Password)

	rec = do(t, h, "POST", "/auth/logout", token, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, "GET", "/me", token, nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDemoLoginAndSignup(t *testing.T) {
	h := newTestRouter(t)

	rec := form(t, h, "/auth/demo-login", "", url.Values{"email": {"mike@demo.com"}})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = form(t, h, "/auth/signup", "", url.Values{
		"name": {"Ann Lee"}, "email": {"ann@x.com"}, "password": {"secret"}, "confirmPassword": {"other1"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var e HTTPError
	decode(t, rec, &e)
	assert.Equal(t, ErrInvalidData, e.ErrorCode)

	rec = form(t, h, "/auth/signup", "", url.Values{
		"name": {"Ann Lee"}, "email": {"ann@x.com"}, "password": {"secret"}, "confirmPassword": {"secret"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var s SessionResponse
	decode(t, rec, &s)
	assert.Equal(t, "ann@x.com", s.User.Email)
	assert.NotEmpty(t, s.Token)
}

func TestRequiresSession(t *testing.T) {
	h := newTestRouter(t)
	for _, path := range []string{"/posts", "/jobs", "/profile", "/me"} {
		rec := do(t, h, "GET", path, "", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
	rec := do(t, h, "GET", "/posts", "bogus", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeed(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "mike@demo.com")

	rec := do(t, h, "GET", "/posts", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var resp PostsResponse
	decode(t, rec, &resp)
	require.Len(t, resp.Posts, 6)

	first := resp.Posts[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, "2h ago", first.TimeAgo)
	assert.Equal(t, "SJ", first.Initials)
	assert.True(t, first.LikedByMe)
	assert.False(t, first.IsAuthor)
	assert.True(t, resp.Posts[1].IsAuthor)

	rec = do(t, h, "GET", "/posts?hashtag=%23Running", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &resp)
	require.Len(t, resp.Posts, 1)
	assert.Equal(t, "3", resp.Posts[0].ID)
}

func TestCreateLikeComment(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "emma@demo.com")

	rec := jsonBody(t, h, "POST", "/posts", token, `{"content":"   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = jsonBody(t, h, "POST", "/posts", token, `{"content":"  hello  ","hashtags":["#Go"," go","Go",""]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created PostResponse
	decode(t, rec, &created)
	assert.Equal(t, "hello", created.Post.Content)
	assert.Equal(t, "Emma Davis", created.Post.Author)
	assert.Equal(t, []string{"Go", "go"}, created.Post.Hashtags)
	assert.Nil(t, created.Post.Image)
	assert.Equal(t, 0, created.Post.LikeCount)
	id := created.Post.ID

	rec = do(t, h, "POST", "/posts/"+id+"/like", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var liked PostResponse
	decode(t, rec, &liked)
	assert.Equal(t, []string{"emma@demo.com"}, liked.Post.Likes)
	assert.True(t, liked.Post.LikedByMe)

	rec = do(t, h, "POST", "/posts/"+id+"/like", token, nil, "")
	decode(t, rec, &liked)
	assert.Empty(t, liked.Post.Likes)

	rec = form(t, h, "/posts/"+id+"/comments", token, url.Values{"text": {" "}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = form(t, h, "/posts/"+id+"/comments", token, url.Values{"text": {"first!"}})
	require.Equal(t, http.StatusCreated, rec.Code)
	var commented PostResponse
	decode(t, rec, &commented)
	require.Len(t, commented.Post.Comments, 1)
	assert.Equal(t, db.Comment{Author: "Emma Davis", Text: "first!", Timestamp: "2024-03-10T15:00:00.000Z"}, commented.Post.Comments[0])

	rec = form(t, h, "/posts/missing/comments", token, url.Values{"text": {"hi"}})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, "POST", "/posts/missing/like", token, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEditAndDeleteOwnership(t *testing.T) {
	h := newTestRouter(t)
	sarah := login(t, h, "sarah@demo.com")
	mike := login(t, h, "mike@demo.com")

	rec := jsonBody(t, h, "PATCH", "/posts/1", mike, `{"content":"hijacked"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = do(t, h, "DELETE", "/posts/1", mike, nil, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = jsonBody(t, h, "PATCH", "/posts/1", sarah, `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = jsonBody(t, h, "PATCH", "/posts/1", sarah, `{"content":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = jsonBody(t, h, "PATCH", "/posts/1", sarah, `{"content":" Updated "}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var updated PostResponse
	decode(t, rec, &updated)
	assert.Equal(t, "Updated", updated.Post.Content)
	require.NotNil(t, updated.Post.Image)
	assert.Equal(t, "/modern-portfolio-website.png", *updated.Post.Image)
	assert.Equal(t, []string{"WebDesign", "Portfolio", "Launch"}, updated.Post.Hashtags)

	rec = jsonBody(t, h, "PATCH", "/posts/1", sarah, `{"image":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var cleared PostResponse
	decode(t, rec, &cleared)
	assert.Nil(t, cleared.Post.Image)
	assert.Equal(t, "Updated", cleared.Post.Content)

	rec = do(t, h, "DELETE", "/posts/1", sarah, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, "DELETE", "/posts/1", sarah, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, "GET", "/posts/1", sarah, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobsProfileQuote(t *testing.T) {
	h := newTestRouter(t)
	token := login(t, h, "sarah@demo.com")

	rec := do(t, h, "GET", "/jobs", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var jobs JobsResponse
	decode(t, rec, &jobs)
	require.Len(t, jobs.Jobs, 3)
	assert.Equal(t, "2 days ago", jobs.Jobs[0].PostedLabel)
	assert.Equal(t, "Yesterday", jobs.Jobs[2].PostedLabel)

	rec = do(t, h, "GET", "/profile", token, nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile ProfileResponse
	decode(t, rec, &profile)
	assert.Equal(t, posts.Stats{Posts: 2, Likes: 2, Comments: 1}, profile.Stats)
	assert.Len(t, profile.Posts, 2)
	assert.Equal(t, "SJ", profile.Initials)

	rec = do(t, h, "GET", "/quote", "", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var q QuoteResponse
	decode(t, rec, &q)
	assert.NotEmpty(t, q.Quote)
}

func TestNormalizeHashtags(t *testing.T) {
	assert.Nil(t, normalizeHashtags(nil))
	assert.Nil(t, normalizeHashtags([]string{" ", "#"}))
	assert.Equal(t, []string{"a", "b"}, normalizeHashtags([]string{"#a", "b", "a"}))
}
