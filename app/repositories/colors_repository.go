package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type ColorRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Color, error)
	GetByID(ctx context.Context, id int64) (*models.Color, error)
	GetByName(ctx context.Context, name string) (*models.Color, error)
	Create(ctx context.Context, req models.CreateColorRequest) (*models.Color, error)
	Update(ctx context.Context, id int64, req models.UpdateColorRequest) (*models.Color, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)

	ListImages(ctx context.Context, colorID int64) ([]models.ColorImage, error)
	UploadImages(ctx context.Context, colorID int64, paths []string) ([]models.ColorImage, error)
	SetPrimaryImage(ctx context.Context, colorID, imageID int64) (*models.ColorImage, error)
	DeleteImage(ctx context.Context, colorID, imageID int64) error
}

type colorRepository struct {
	api *services.APIClient
}

func NewColorRepository(api *services.APIClient) ColorRepositoryImpl {
	return &colorRepository{api: api}
}

func (r *colorRepository) List(ctx context.Context, includeInactive bool) ([]models.Color, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var colors []models.Color
	if err := r.api.Get(ctx, "/colors", query, &colors); err != nil {
		return nil, fmt.Errorf("failed to fetch colors: %w", err)
	}
	return colors, nil
}

func (r *colorRepository) GetByID(ctx context.Context, id int64) (*models.Color, error) {
	var color models.Color
	if err := r.api.Get(ctx, fmt.Sprintf("/colors/%d", id), nil, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) GetByName(ctx context.Context, name string) (*models.Color, error) {
	var color models.Color
	found, err := r.api.GetAllow404(ctx, "/colors/name/"+url.PathEscape(name), &color)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &color, nil
}

func (r *colorRepository) Create(ctx context.Context, req models.CreateColorRequest) (*models.Color, error) {
	var color models.Color
	if err := r.api.Post(ctx, "/colors", req, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) Update(ctx context.Context, id int64, req models.UpdateColorRequest) (*models.Color, error) {
	var color models.Color
	if err := r.api.Put(ctx, fmt.Sprintf("/colors/%d", id), req, &color); err != nil {
		return nil, err
	}
	return &color, nil
}

func (r *colorRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/colors/%d", id))
}

func (r *colorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.api.Get(ctx, "/colors/count", nil, &count); err != nil {
		return 0, fmt.Errorf("failed to fetch color count: %w", err)
	}
	return count, nil
}

func (r *colorRepository) ListImages(ctx context.Context, colorID int64) ([]models.ColorImage, error) {
	var images []models.ColorImage
	if err := r.api.Get(ctx, fmt.Sprintf("/colors/%d/images", colorID), nil, &images); err != nil {
		return nil, fmt.Errorf("failed to fetch color images: %w", err)
	}
	return images, nil
}

func (r *colorRepository) UploadImages(ctx context.Context, colorID int64, paths []string) ([]models.ColorImage, error) {
	var images []models.ColorImage
	files := map[string][]string{"images": paths}
	if err := r.api.PostMultipart(ctx, fmt.Sprintf("/colors/%d/images", colorID), nil, files, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *colorRepository) SetPrimaryImage(ctx context.Context, colorID, imageID int64) (*models.ColorImage, error) {
	var image models.ColorImage
	if err := r.api.Put(ctx, fmt.Sprintf("/colors/%d/images/%d/primary", colorID, imageID), nil, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *colorRepository) DeleteImage(ctx context.Context, colorID, imageID int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/colors/%d/images/%d", colorID, imageID))
}
