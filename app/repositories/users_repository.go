package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type UserRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByName(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type userRepository struct {
	api *services.APIClient
}

func NewUserRepository(api *services.APIClient) UserRepositoryImpl {
	return &userRepository{api: api}
}

func (r *userRepository) List(ctx context.Context, includeInactive bool) ([]models.User, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var users []models.User
	if err := r.api.Get(ctx, "/users", query, &users); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := r.api.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByName resolves a user by username. A missing user is (nil, nil), not
// an error, so the uniqueness pre-check can fail open.
func (r *userRepository) GetByName(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	found, err := r.api.GetAllow404(ctx, "/users/username/"+url.PathEscape(username), &user)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	var user models.User
	if err := r.api.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (*models.User, error) {
	var user models.User
	if err := r.api.Put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/users/%d", id))
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.api.Get(ctx, "/users/count", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to fetch user count: %w", err)
	}
	return count, nil
}
