package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type CategoryRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	GetByName(ctx context.Context, name string) (*models.Category, error)
	Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error)
	CreateWithImage(ctx context.Context, req models.CreateCategoryRequest, imagePath string) (*models.Category, error)
	Update(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.Category, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	api *services.APIClient
}

func NewCategoryRepository(api *services.APIClient) CategoryRepositoryImpl {
	return &categoryRepository{api: api}
}

func (r *categoryRepository) List(ctx context.Context, includeInactive bool) ([]models.Category, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var categories []models.Category
	if err := r.api.Get(ctx, "/categories", query, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var category models.Category
	if err := r.api.Get(ctx, fmt.Sprintf("/categories/%d", id), nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	found, err := r.api.GetAllow404(ctx, "/categories/name/"+url.PathEscape(name), &category)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, req models.CreateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := r.api.Post(ctx, "/categories", req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) CreateWithImage(ctx context.Context, req models.CreateCategoryRequest, imagePath string) (*models.Category, error) {
	fields := map[string]string{"categoryName": req.CategoryName}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.ParentID != nil {
		fields["parentId"] = strconv.FormatInt(*req.ParentID, 10)
	}
	files := map[string][]string{"image": {imagePath}}

	var category models.Category
	if err := r.api.PostMultipart(ctx, "/categories", fields, files, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, req models.UpdateCategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := r.api.Put(ctx, fmt.Sprintf("/categories/%d", id), req, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
