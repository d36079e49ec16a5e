package service

import (
	"context"
	"fmt"

	"github.com/dtroode/playground-api/internal/logger"
	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/validation"
)

type User struct {
	userStore model.UserStore
	logger    *logger.Logger
}

func NewUser(userStore model.UserStore, logger *logger.Logger) *User {
	return &User{
		userStore: userStore,
		logger:    logger,
	}
}

func (s *User) CreateUser(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if err := validation.CreateUser(params); err != nil {
		return model.User{}, err
	}

	user, err := s.userStore.Create(ctx, params)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created", "user_id", user.ID, "role", user.Role)

	return user, nil
}

func (s *User) GetUser(ctx context.Context, id int) (model.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (s *User) ListUsers(ctx context.Context, filter model.UserFilter) ([]model.User, error) {
	if filter.ID != nil {
		user, err := s.GetUser(ctx, *filter.ID)
		if err != nil {
			return nil, err
		}
		return []model.User{user}, nil
	}

	users, err := s.userStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (s *User) UpdateUser(ctx context.Context, params model.UpdateUserParams) (model.User, error) {
	if err := validation.UpdateUser(params); err != nil {
		return model.User{}, err
	}

	user, err := s.userStore.Update(ctx, *params.ID, params)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated", "user_id", user.ID)

	return user, nil
}

func (s *User) DeleteUser(ctx context.Context, id int) (model.User, error) {
	user, err := s.userStore.Delete(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted", "user_id", user.ID)

	return user, nil
}
