package memory

import (
	"context"

	"github.com/dtroode/playground-api/internal/model"
	"github.com/dtroode/playground-api/internal/query"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	table *table[model.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		table: newTable(
			func(u model.User) int { return u.ID },
			func(u model.User) model.User { return u },
		),
	}
}

func (r *UserRepository) Create(_ context.Context, params model.CreateUserParams) (model.User, error) {
	user := r.table.insert(func(id int) model.User {
		return model.User{
			ID:    id,
			Name:  params.Name,
			Email: params.Email,
			Role:  params.Role,
		}
	})

	return user, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int) (model.User, error) {
	return r.table.get(id)
}

func (r *UserRepository) List(_ context.Context, filter model.UserFilter) ([]model.User, error) {
	return r.table.list(query.UserPredicates(filter)...), nil
}

func (r *UserRepository) Update(_ context.Context, id int, params model.UpdateUserParams) (model.User, error) {
	return r.table.update(id, func(existing model.User) model.User {
		return existing.Merge(params)
	})
}

func (r *UserRepository) Delete(_ context.Context, id int) (model.User, error) {
	return r.table.remove(id)
}

func (r *UserRepository) Count(_ context.Context) int {
	return r.table.count()
}

func (r *UserRepository) Seed(_ context.Context, users []model.User) error {
	return r.table.seed(users)
}
