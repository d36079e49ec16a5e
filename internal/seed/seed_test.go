package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/playground-api/internal/clock"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/repository/memory"
)

var now = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func TestDefault(t *testing.T) {
	data := Default(now)

	require.Len(t, data.Users, 3)
	require.Len(t, data.Posts, 3)
	for _, u := range data.Users {
		assert.True(t, u.Role.Valid())
	}
	assert.Equal(t, 2, data.Posts[2].AuthorID)
	assert.True(t, data.Posts[0].HasTag("typescript"))
}

func TestLoadFile(t *testing.T) {
	data, err := LoadFile("testdata/seed.yaml", now)
	require.NoError(t, err)

	require.Len(t, data.Users, 2)
	assert.Equal(t, model.User{ID: 10, Name: "Ada Lovelace", Email: "ada@example.com", Role: model.RoleAdmin}, data.Users[0])

	require.Len(t, data.Posts, 2)
	assert.Equal(t, time.Date(2025, 12, 10, 8, 0, 0, 0, time.UTC), data.Posts[0].CreatedAt)
	assert.Equal(t, []string{"history", "math"}, data.Posts[0].Tags)
	assert.Equal(t, now, data.Posts[1].CreatedAt)
	assert.NotNil(t, data.Posts[1].Tags)
	assert.False(t, data.Posts[1].Published)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.yaml", now)
	assert.ErrorContains(t, err, "failed to read seed file")
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{
			name:    "not yaml",
			raw:     "users: [",
			wantErr: "failed to decode seed file",
		},
		{
			name:    "bad role",
			raw:     "users:\n  - {id: 1, name: a, email: b, role: owner}\n",
			wantErr: "invalid user at index 0",
		},
		{
			name:    "post without author",
			raw:     "posts:\n  - {id: 1, title: a, content: b}\n",
			wantErr: "invalid post at index 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw), now)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	posts := memory.NewPostRepository(clock.NewStubClock(now))

	require.NoError(t, Apply(ctx, users, posts, Default(now)))
	assert.Equal(t, 3, users.Count(ctx))
	assert.Equal(t, 3, posts.Count(ctx))

	created, err := posts.Create(ctx, model.CreatePostParams{Title: "A", Content: "B", AuthorID: 1})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)

	dup := Data{Users: []model.User{{ID: 1}, {ID: 1}}}
	assert.ErrorContains(t, Apply(ctx, users, posts, dup), "failed to seed users")
}
