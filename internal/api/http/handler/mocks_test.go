package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dtroode/playground-api/internal/model"
)

func ptr[T any](v T) *T { return &v }

// MockPostService mocks the PostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, params model.CreatePostParams) (model.Post, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, id int) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, filter model.PostFilter) ([]model.Post, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, params model.UpdatePostParams) (model.Post, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, id int) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

// MockUserService mocks the UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, id int) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, id int) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}
