package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type SizeRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Size, error)
	GetByID(ctx context.Context, id int64) (*models.Size, error)
	GetByName(ctx context.Context, name string) (*models.Size, error)
	Create(ctx context.Context, req models.CreateSizeRequest) (*models.Size, error)
	Update(ctx context.Context, id int64, req models.UpdateSizeRequest) (*models.Size, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type sizeRepository struct {
	api *services.APIClient
}

func NewSizeRepository(api *services.APIClient) SizeRepositoryImpl {
	return &sizeRepository{api: api}
}

func (r *sizeRepository) List(ctx context.Context, includeInactive bool) ([]models.Size, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var sizes []models.Size
	if err := r.api.Get(ctx, "/sizes", query, &sizes); err != nil {
		return nil, fmt.Errorf("failed to fetch sizes: %w", err)
	}
	return sizes, nil
}

func (r *sizeRepository) GetByID(ctx context.Context, id int64) (*models.Size, error) {
	var size models.Size
	if err := r.api.Get(ctx, fmt.Sprintf("/sizes/%d", id), nil, &size); err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) GetByName(ctx context.Context, name string) (*models.Size, error) {
	var size models.Size
	found, err := r.api.GetAllow404(ctx, "/sizes/name/"+url.PathEscape(name), &size)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &size, nil
}

func (r *sizeRepository) Create(ctx context.Context, req models.CreateSizeRequest) (*models.Size, error) {
	var size models.Size
	if err := r.api.Post(ctx, "/sizes", req, &size); err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) Update(ctx context.Context, id int64, req models.UpdateSizeRequest) (*models.Size, error) {
	var size models.Size
	if err := r.api.Put(ctx, fmt.Sprintf("/sizes/%d", id), req, &size); err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/sizes/%d", id))
}

func (r *sizeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.api.Get(ctx, "/sizes/count", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to fetch size count: %w", err)
	}
	return count, nil
}
