package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type GenderRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Gender, error)
	GetByID(ctx context.Context, id int64) (*models.Gender, error)
	GetByCode(ctx context.Context, code string) (*models.Gender, error)
	GetByName(ctx context.Context, name string) (*models.Gender, error)
	Create(ctx context.Context, req models.CreateGenderRequest) (*models.Gender, error)
	Update(ctx context.Context, id int64, req models.UpdateGenderRequest) (*models.Gender, error)
	Delete(ctx context.Context, id int64) error
}

type genderRepository struct {
	api *services.APIClient
}

func NewGenderRepository(api *services.APIClient) GenderRepositoryImpl {
	return &genderRepository{api: api}
}

func (r *genderRepository) List(ctx context.Context, includeInactive bool) ([]models.Gender, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var genders []models.Gender
	if err := r.api.Get(ctx, "/genders", query, &genders); err != nil {
		return nil, fmt.Errorf("failed to fetch genders: %w", err)
	}
	return genders, nil
}

func (r *genderRepository) GetByID(ctx context.Context, id int64) (*models.Gender, error) {
	var gender models.Gender
	if err := r.api.Get(ctx, fmt.Sprintf("/genders/%d", id), nil, &gender); err != nil {
		return nil, err
	}
	return &gender, nil
}

func (r *genderRepository) GetByCode(ctx context.Context, code string) (*models.Gender, error) {
	var gender models.Gender
	found, err := r.api.GetAllow404(ctx, "/genders/code/"+url.PathEscape(code), &gender)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &gender, nil
}

// GetByName mirrors the other name lookups; the genders endpoint resolves by
// name under the same sub-path convention.
func (r *genderRepository) GetByName(ctx context.Context, name string) (*models.Gender, error) {
	var gender models.Gender
	found, err := r.api.GetAllow404(ctx, "/genders/name/"+url.PathEscape(name), &gender)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &gender, nil
}

func (r *genderRepository) Create(ctx context.Context, req models.CreateGenderRequest) (*models.Gender, error) {
	var gender models.Gender
	if err := r.api.Post(ctx, "/genders", req, &gender); err != nil {
		return nil, err
	}
	return &gender, nil
}

func (r *genderRepository) Update(ctx context.Context, id int64, req models.UpdateGenderRequest) (*models.Gender, error) {
	var gender models.Gender
	if err := r.api.Put(ctx, fmt.Sprintf("/genders/%d", id), req, &gender); err != nil {
		return nil, err
	}
	return &gender, nil
}

func (r *genderRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/genders/%d", id))
}
