package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type ProductRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetByName(ctx context.Context, name string) (*models.Product, error)
	Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
	CreateWithImages(ctx context.Context, req models.CreateProductRequest, imagePaths []string) (*models.Product, error)
	Update(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error)
	Delete(ctx context.Context, id int64) error

	ListImages(ctx context.Context, productID int64) ([]models.ProductImage, error)
	UploadImages(ctx context.Context, productID int64, paths []string) ([]models.ProductImage, error)
	SetPrimaryImage(ctx context.Context, productID, imageID int64) (*models.ProductImage, error)
	DeleteImage(ctx context.Context, productID, imageID int64) error
}

type productRepository struct {
	api *services.APIClient
}

func NewProductRepository(api *services.APIClient) ProductRepositoryImpl {
	return &productRepository{api: api}
}

func (r *productRepository) List(ctx context.Context, includeInactive bool) ([]models.Product, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var products []models.Product
	if err := r.api.Get(ctx, "/products", query, &products); err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.api.Get(ctx, fmt.Sprintf("/products/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByName(ctx context.Context, name string) (*models.Product, error) {
	var product models.Product
	found, err := r.api.GetAllow404(ctx, "/products/name/"+url.PathEscape(name), &product)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := r.api.Post(ctx, "/products", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateWithImages submits the product and its gallery files in a single
// multipart request, matching the combined create endpoint.
func (r *productRepository) CreateWithImages(ctx context.Context, req models.CreateProductRequest, imagePaths []string) (*models.Product, error) {
	fields := map[string]string{
		"productName": req.ProductName,
		"sku":         req.SKU,
		"status":      string(req.Status),
		"brandId":     strconv.FormatInt(req.BrandID, 10),
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Price != nil {
		fields["price"] = req.Price.String()
	}
	if req.GenderID != nil {
		fields["genderId"] = strconv.FormatInt(*req.GenderID, 10)
	}
	for i, id := range req.CategoryIDs {
		fields[fmt.Sprintf("categoryIds[%d]", i)] = strconv.FormatInt(id, 10)
	}

	files := map[string][]string{"images": imagePaths}

	var product models.Product
	if err := r.api.PostMultipart(ctx, "/products", fields, files, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, req models.UpdateProductRequest) (*models.Product, error) {
	var product models.Product
	if err := r.api.Put(ctx, fmt.Sprintf("/products/%d", id), req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/products/%d", id))
}

func (r *productRepository) ListImages(ctx context.Context, productID int64) ([]models.ProductImage, error) {
	var images []models.ProductImage
	if err := r.api.Get(ctx, fmt.Sprintf("/products/%d/images", productID), nil, &images); err != nil {
		return nil, fmt.Errorf("failed to fetch product images: %w", err)
	}
	return images, nil
}

func (r *productRepository) UploadImages(ctx context.Context, productID int64, paths []string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	files := map[string][]string{"images": paths}
	if err := r.api.PostMultipart(ctx, fmt.Sprintf("/products/%d/images", productID), nil, files, &images); err != nil {
		return nil, err
	}
	return images, nil
}

func (r *productRepository) SetPrimaryImage(ctx context.Context, productID, imageID int64) (*models.ProductImage, error) {
	var image models.ProductImage
	if err := r.api.Put(ctx, fmt.Sprintf("/products/%d/images/%d/primary", productID, imageID), nil, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) DeleteImage(ctx context.Context, productID, imageID int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/products/%d/images/%d", productID, imageID))
}
