// Package seed loads the initial contents of the in-memory collections.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/validation"
)

// Data is the initial content of both collections.
type Data struct {
	Users []model.User
	Posts []model.Post
}

type fileUser struct {
	ID    int    `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type filePost struct {
	ID        int        `yaml:"id"`
	Title     string     `yaml:"title"`
	Content   string     `yaml:"content"`
	AuthorID  int        `yaml:"authorId"`
	Published bool       `yaml:"published"`
	Tags      []string   `yaml:"tags"`
	CreatedAt *time.Time `yaml:"createdAt"`
}

type file struct {
	Users []fileUser `yaml:"users"`
	Posts []filePost `yaml:"posts"`
}

// Default returns the demo records every fresh instance starts with.
func Default(now time.Time) Data {
	return Data{
		Users: []model.User{
			{ID: 1, Name: "John Doe", Email: "john@example.com", Role: model.RoleAdmin},
			{ID: 2, Name: "Jane Smith", Email: "jane@example.com", Role: model.RoleUser},
			{ID: 3, Name: "Bob Johnson", Email: "bob@example.com", Role: model.RoleUser},
		},
		Posts: []model.Post{
			{
				ID:        1,
				Title:     "Getting started with TypeScript",
				Content:   "TypeScript is a superset of JavaScript that adds static types...",
				AuthorID:  1,
				Published: true,
				Tags:      []string{"typescript", "javascript", "tutorial"},
				CreatedAt: now,
			},
			{
				ID:        2,
				Title:     "API routes in Next.js",
				Content:   "Next.js provides an easy way to build API endpoints...",
				AuthorID:  1,
				Published: true,
				Tags:      []string{"nextjs", "api", "tutorial"},
				CreatedAt: now,
			},
			{
				ID:        3,
				Title:     "Using generics in TypeScript",
				Content:   "Generics let you build components that work with many types...",
				AuthorID:  2,
				Published: false,
				Tags:      []string{"typescript", "generics", "advanced"},
				CreatedAt: now,
			},
		},
	}
}

// LoadFile reads seed records from a YAML document. Posts without createdAt get now.
func LoadFile(path string, now time.Time) (Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}

	return Parse(raw, now)
}

// Parse decodes and validates a YAML seed document.
func Parse(raw []byte, now time.Time) (Data, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Data{}, fmt.Errorf("failed to decode seed file: %w", err)
	}

	data := Data{
		Users: make([]model.User, 0, len(f.Users)),
		Posts: make([]model.Post, 0, len(f.Posts)),
	}

	for i, u := range f.Users {
		params := model.CreateUserParams{Name: u.Name, Email: u.Email, Role: model.Role(u.Role)}
		if err := validation.CreateUser(params); err != nil {
			return Data{}, fmt.Errorf("invalid user at index %d: %w", i, err)
		}
		data.Users = append(data.Users, model.User{ID: u.ID, Name: u.Name, Email: u.Email, Role: params.Role})
	}

	for i, p := range f.Posts {
		params := model.CreatePostParams{Title: p.Title, Content: p.Content, AuthorID: p.AuthorID, Tags: p.Tags}
		if err := validation.CreatePost(params); err != nil {
			return Data{}, fmt.Errorf("invalid post at index %d: %w", i, err)
		}
		createdAt := now
		if p.CreatedAt != nil {
			createdAt = p.CreatedAt.UTC()
		}
		data.Posts = append(data.Posts, model.Post{
			ID:        p.ID,
			Title:     p.Title,
			Content:   p.Content,
			AuthorID:  p.AuthorID,
			Published: p.Published,
			Tags:      p.Tags,
			CreatedAt: createdAt,
		}.Clone())
	}

	return data, nil
}

// Apply replaces the contents of both stores with data.
func Apply(ctx context.Context, users model.UserStore, posts model.PostStore, data Data) error {
	if err := users.Seed(ctx, data.Users); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := posts.Seed(ctx, data.Posts); err != nil {
		return fmt.Errorf("failed to seed posts: %w", err)
	}
	return nil
}
