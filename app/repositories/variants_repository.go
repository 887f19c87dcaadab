package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type VariantRepositoryImpl interface {
	ListByProduct(ctx context.Context, productID int64) ([]models.ProductVariant, error)
	GetByID(ctx context.Context, id int64) (*models.ProductVariant, error)
	// GetBySKU is the fail-open uniqueness lookup: (nil, nil) when no
	// variant carries the SKU.
	GetBySKU(ctx context.Context, sku string) (*models.ProductVariant, error)
	Create(ctx context.Context, req models.CreateVariantRequest) (*models.ProductVariant, error)
	BulkCreate(ctx context.Context, req models.BulkVariantCreateRequest) ([]models.ProductVariant, error)
	Update(ctx context.Context, id int64, req models.UpdateVariantRequest) (*models.ProductVariant, error)
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, variantID int64, imagePath string) (*models.ProductVariant, error)
}

type variantRepository struct {
	api *services.APIClient
}

func NewVariantRepository(api *services.APIClient) VariantRepositoryImpl {
	return &variantRepository{api: api}
}

func (r *variantRepository) ListByProduct(ctx context.Context, productID int64) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.api.Get(ctx, fmt.Sprintf("/variants/product/%d", productID), nil, &variants); err != nil {
		return nil, fmt.Errorf("failed to fetch variants: %w", err)
	}
	return variants, nil
}

func (r *variantRepository) GetByID(ctx context.Context, id int64) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.api.Get(ctx, fmt.Sprintf("/variants/%d", id), nil, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) GetBySKU(ctx context.Context, sku string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	found, err := r.api.GetAllow404(ctx, "/variants/sku/"+url.PathEscape(sku), &variant)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &variant, nil
}

func (r *variantRepository) Create(ctx context.Context, req models.CreateVariantRequest) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.api.Post(ctx, "/variants", req, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) BulkCreate(ctx context.Context, req models.BulkVariantCreateRequest) ([]models.ProductVariant, error) {
	var variants []models.ProductVariant
	if err := r.api.Post(ctx, "/variants/bulk", req, &variants); err != nil {
		return nil, err
	}
	return variants, nil
}

func (r *variantRepository) Update(ctx context.Context, id int64, req models.UpdateVariantRequest) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	if err := r.api.Put(ctx, fmt.Sprintf("/variants/%d", id), req, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}

func (r *variantRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/variants/%d", id))
}

func (r *variantRepository) UploadImage(ctx context.Context, variantID int64, imagePath string) (*models.ProductVariant, error) {
	var variant models.ProductVariant
	files := map[string][]string{"image": {imagePath}}
	if err := r.api.PostMultipart(ctx, fmt.Sprintf("/variants/%d/images", variantID), nil, files, &variant); err != nil {
		return nil, err
	}
	return &variant, nil
}
