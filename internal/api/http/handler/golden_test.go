package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/playground-api/internal/clock"
	"github.com/dtroode/playground-api/internal/repository/memory"
	"github.com/dtroode/playground-api/internal/seed"
	"github.com/dtroode/playground-api/internal/service"
	"github.com/dtroode/playground-api/internal/testutil"
)

var goldenNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newSeededHandlers(t *testing.T) (*User, *Post) {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	users := memory.NewUserRepository()
	posts := memory.NewPostRepository(clock.NewStubClock(goldenNow))
	require.NoError(t, seed.Apply(context.Background(), users, posts, seed.Default(goldenNow)))

	return NewUser(service.NewUser(users, lg), lg, testMaxBody),
		NewPost(service.NewPost(posts, lg), lg, testMaxBody)
}

func TestHandlers_Golden(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
	}{
		{name: "posts_by_author_and_tag", method: http.MethodGet, target: "/api/posts?authorId=1&tag=typescript", wantStatus: http.StatusOK},
		{name: "posts_by_tag", method: http.MethodGet, target: "/api/posts?tag=tutorial", wantStatus: http.StatusOK},
		{name: "posts_get_missing", method: http.MethodGet, target: "/api/posts?id=99", wantStatus: http.StatusNotFound},
		{
			name:       "posts_create",
			method:     http.MethodPost,
			target:     "/api/posts",
			body:       `{"title":"Hello","content":"World","authorId":2,"tags":["go"]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "posts_create_without_tags",
			method:     http.MethodPost,
			target:     "/api/posts",
			body:       `{"title":"Hello","content":"World","authorId":2}`,
			wantStatus: http.StatusCreated,
		},
		{name: "posts_delete", method: http.MethodDelete, target: "/api/posts?id=3", wantStatus: http.StatusOK},
		{name: "users_list", method: http.MethodGet, target: "/api/users", wantStatus: http.StatusOK},
		{
			name:       "users_create_invalid_role",
			method:     http.MethodPost,
			target:     "/api/users",
			body:       `{"name":"Eve","email":"eve@example.com","role":"root"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "users_update",
			method:     http.MethodPut,
			target:     "/api/users",
			body:       `{"id":2,"name":"Jane Doe"}`,
			wantStatus: http.StatusOK,
		},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, posts := newSeededHandlers(t)

			var h http.HandlerFunc
			switch {
			case strings.HasPrefix(tt.target, "/api/users"):
				h = map[string]http.HandlerFunc{
					http.MethodGet: users.List, http.MethodPost: users.Create,
					http.MethodPut: users.Update, http.MethodDelete: users.Delete,
				}[tt.method]
			default:
				h = map[string]http.HandlerFunc{
					http.MethodGet: posts.List, http.MethodPost: posts.Create,
					http.MethodPut: posts.Update, http.MethodDelete: posts.Delete,
				}[tt.method]
			}

			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			g.Assert(t, tt.name, rec.Body.Bytes())
		})
	}
}

func TestHandlers_DeleteThenGet(t *testing.T) {
	_, posts := newSeededHandlers(t)

	rec := httptest.NewRecorder()
	posts.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/posts?id=2", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	posts.List(rec, httptest.NewRequest(http.MethodGet, "/api/posts?id=2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	posts.Delete(rec, httptest.NewRequest(http.MethodDelete, "/api/posts?id=2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
