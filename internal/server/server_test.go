package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"social_workspace/internal/repository/memory"
	"social_workspace/internal/token"
)

type apiClient struct {
	t   *testing.T
	app *fiber.App
	tm  *token.Manager
}

func newTestAPI(t *testing.T) *apiClient {
	t.Helper()
	tm := token.NewManager("server-test-secret", time.Hour, "test")
	app := New(Deps{
		Store:      memory.New().Store(),
		Tokens:     tm,
		Logger:     zerolog.Nop(),
		BcryptCost: bcrypt.MinCost,
		Timeout:    2 * time.Second,
	})
	return &apiClient{t: t, app: app, tm: tm}
}

func (a *apiClient) do(method, path, tok string, body any) (int, map[string]any) {
	a.t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(a.t, err)
		rd = strings.NewReader(string(b))
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := a.app.Test(req, 5000)
	require.NoError(a.t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(a.t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func (a *apiClient) signup(email string) (uid, tok string) {
	a.t.Helper()
	status, body := a.do(http.MethodPost, "/api/users/signup", "", map[string]string{"email": email, "password": "secret1"})
	require.Equal(a.t, http.StatusCreated, status, body)
	return body["userId"].(string), body["token"].(string)
}

func (a *apiClient) createPost(tok, title string) string {
	a.t.Helper()
	status, body := a.do(http.MethodPost, "/api/posts", tok, map[string]string{"title": title, "description": "hello world"})
	require.Equal(a.t, http.StatusCreated, status, body)
	return body["postId"].(string)
}

func assertError(t *testing.T, wantStatus, status int, body map[string]any) {
	t.Helper()
	assert.Equal(t, wantStatus, status)
	assert.EqualValues(t, wantStatus, body["status"])
	assert.NotEmpty(t, body["message"])
}

func TestScenario(t *testing.T) {
	api := newTestAPI(t)

	uid, tok := api.signup("a@x.com")
	claims, err := api.tm.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, uid, claims.UserID)

	pid := api.createPost(tok, "Hi")

	status, body := api.do(http.MethodGet, "/api/posts/"+pid, "", nil)
	require.Equal(t, http.StatusOK, status)
	post := body["post"].(map[string]any)
	assert.Empty(t, post["likedby"])
	assert.Equal(t, uid, post["creator"])

	status, _ = api.do(http.MethodPost, "/api/posts/like/"+pid, tok, nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = api.do(http.MethodPost, "/api/posts/like/"+pid, tok, nil)
	assertError(t, http.StatusConflict, status, body)
	assert.Equal(t, "Already liked.", body["message"])
}

func TestAuthRoutes(t *testing.T) {
	api := newTestAPI(t)
	uid, _ := api.signup("a@x.com")

	status, body := api.do(http.MethodPost, "/api/users/signup", "", map[string]string{"email": "A@x.com", "password": "secret1"})
	assertError(t, http.StatusUnprocessableEntity, status, body)
	assert.Equal(t, "User exists already, please login instead.", body["message"])

	status, body = api.do(http.MethodPost, "/api/users/signup", "", map[string]string{"email": "bad", "password": "1"})
	assertError(t, http.StatusUnprocessableEntity, status, body)

	status, body = api.do(http.MethodPost, "/api/users/login", "", map[string]string{"email": "a@x.com", "password": "secret1"})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "Logged in!", body["message"])
	assert.Equal(t, uid, body["userId"])
	assert.NotEmpty(t, body["token"])

	status, body = api.do(http.MethodPost, "/api/users/login", "", map[string]string{"email": "a@x.com", "password": "nope123"})
	assertError(t, http.StatusUnauthorized, status, body)
	assert.Equal(t, "Invalid credentials, could not log you in.", body["message"])
}

func TestListUsersHidesPasswords(t *testing.T) {
	api := newTestAPI(t)
	api.signup("a@x.com")
	api.signup("b@x.com")

	status, body := api.do(http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, status)
	users := body["users"].([]any)
	require.Len(t, users, 2)
	for _, u := range users {
		m := u.(map[string]any)
		assert.NotContains(t, m, "password")
		assert.NotEmpty(t, m["email"])
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	api := newTestAPI(t)
	uid, tok := api.signup("a@x.com")
	pid := api.createPost(tok, "Hi")

	expired, err := token.NewManager("server-test-secret", -time.Minute, "test").Issue(uid, "a@x.com")
	require.NoError(t, err)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/posts/all"},
		{http.MethodPost, "/api/posts"},
		{http.MethodPost, "/api/posts/like/" + pid},
		{http.MethodPost, "/api/posts/unlike/" + pid},
		{http.MethodPost, "/api/posts/comment/" + pid},
		{http.MethodDelete, "/api/posts/" + pid},
		{http.MethodPost, "/api/users/follow/" + uid},
		{http.MethodPost, "/api/users/unfollow/" + uid},
	}
	for _, r := range routes {
		status, body := api.do(r.method, r.path, "", nil)
		assertError(t, http.StatusUnauthorized, status, body)

		status, body = api.do(r.method, r.path, expired, nil)
		assertError(t, http.StatusUnauthorized, status, body)
	}

	status, _ := api.do(http.MethodGet, "/api/posts/"+pid, "", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestPostRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, owner := api.signup("a@x.com")
	_, other := api.signup("b@x.com")

	first := api.createPost(owner, "first")
	second := api.createPost(owner, "second")
	api.createPost(other, "theirs")

	status, body := api.do(http.MethodGet, "/api/posts/all", owner, nil)
	require.Equal(t, http.StatusOK, status)
	posts := body["posts"].([]any)
	require.Len(t, posts, 2)
	assert.Equal(t, first, posts[0].(map[string]any)["id"])
	assert.Equal(t, second, posts[1].(map[string]any)["id"])

	status, body = api.do(http.MethodPost, "/api/posts", owner, map[string]string{"title": "", "description": "abc"})
	assertError(t, http.StatusUnprocessableEntity, status, body)

	status, body = api.do(http.MethodDelete, "/api/posts/"+first, other, nil)
	assertError(t, http.StatusForbidden, status, body)

	status, body = api.do(http.MethodDelete, "/api/posts/"+first, owner, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Deleted Post.", body["message"])

	status, body = api.do(http.MethodGet, "/api/posts/"+first, "", nil)
	assertError(t, http.StatusNotFound, status, body)

	status, body = api.do(http.MethodGet, "/api/posts/not-an-id", "", nil)
	assertError(t, http.StatusNotFound, status, body)
}

func TestEngagementRoutes(t *testing.T) {
	api := newTestAPI(t)
	_, tok := api.signup("a@x.com")
	pid := api.createPost(tok, "Hi")

	status, body := api.do(http.MethodPost, "/api/posts/unlike/"+pid, tok, nil)
	assertError(t, http.StatusConflict, status, body)
	assert.Equal(t, "Not liked.", body["message"])

	status, body = api.do(http.MethodPost, "/api/posts/comment/"+pid, tok, map[string]string{"text": ""})
	assertError(t, http.StatusUnprocessableEntity, status, body)

	for _, text := range []string{"one", "two", "three"} {
		status, body = api.do(http.MethodPost, "/api/posts/comment/"+pid, tok, map[string]string{"text": text})
		require.Equal(t, http.StatusOK, status, body)
	}

	status, body = api.do(http.MethodGet, "/api/posts/"+pid+"/comments?limit=2", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["comments"], 2)
	assert.Equal(t, true, body["has_more"])
	next := body["next_cursor"].(string)

	status, body = api.do(http.MethodGet, "/api/posts/"+pid+"/comments?limit=2&cursor="+next, "", nil)
	require.Equal(t, http.StatusOK, status)
	comments := body["comments"].([]any)
	require.Len(t, comments, 1)
	assert.Equal(t, "three", comments[0].(map[string]any)["text"])
	assert.Equal(t, false, body["has_more"])

	status, body = api.do(http.MethodPost, "/api/posts/like/"+"000000000000000000000000", tok, nil)
	assertError(t, http.StatusNotFound, status, body)
}

func TestFollowRoutes(t *testing.T) {
	api := newTestAPI(t)
	aID, aTok := api.signup("a@x.com")
	bID, _ := api.signup("b@x.com")

	status, _ := api.do(http.MethodPost, "/api/users/follow/"+bID, aTok, nil)
	require.Equal(t, http.StatusOK, status)

	status, body := api.do(http.MethodGet, "/api/users", "", nil)
	require.Equal(t, http.StatusOK, status)
	for _, u := range body["users"].([]any) {
		m := u.(map[string]any)
		switch m["id"] {
		case aID:
			assert.Equal(t, []any{bID}, m["following"])
		case bID:
			assert.Equal(t, []any{aID}, m["followers"])
		}
	}

	status, body = api.do(http.MethodPost, "/api/users/follow/"+aID, aTok, nil)
	assertError(t, http.StatusUnprocessableEntity, status, body)

	status, body = api.do(http.MethodPost, "/api/users/follow/000000000000000000000000", aTok, nil)
	assertError(t, http.StatusNotFound, status, body)

	status, _ = api.do(http.MethodPost, "/api/users/unfollow/"+bID, aTok, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestBoundary(t *testing.T) {
	api := newTestAPI(t)

	status, body := api.do(http.MethodGet, "/api/nowhere", "", nil)
	assertError(t, http.StatusNotFound, status, body)
	assert.Equal(t, "Could not find this route.", body["message"])

	status, body = api.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])

	uid, tok := api.signup("a@x.com")
	status, body = api.do(http.MethodGet, "/api/whoami", tok, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, uid, body["user_id"])
	assert.Equal(t, "a@x.com", body["email"])
}
