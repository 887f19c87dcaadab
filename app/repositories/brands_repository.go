package repositories

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/demostore/go-store-admin/app/models"
	"github.com/demostore/go-store-admin/app/services"
)

type BrandRepositoryImpl interface {
	List(ctx context.Context, includeInactive bool) ([]models.Brand, error)
	GetByID(ctx context.Context, id int64) (*models.Brand, error)
	GetByName(ctx context.Context, name string) (*models.Brand, error)
	Create(ctx context.Context, req models.CreateBrandRequest) (*models.Brand, error)
	// CreateWithLogo submits the brand as multipart form data with the logo
	// file attached. The server stores the file and fills logoUrl itself.
	CreateWithLogo(ctx context.Context, req models.CreateBrandRequest, logoPath string) (*models.Brand, error)
	Update(ctx context.Context, id int64, req models.UpdateBrandRequest) (*models.Brand, error)
	UpdateWithLogo(ctx context.Context, id int64, req models.UpdateBrandRequest, logoPath string) (*models.Brand, error)
	Delete(ctx context.Context, id int64) error
}

type brandRepository struct {
	api *services.APIClient
}

func NewBrandRepository(api *services.APIClient) BrandRepositoryImpl {
	return &brandRepository{api: api}
}

func (r *brandRepository) List(ctx context.Context, includeInactive bool) ([]models.Brand, error) {
	query := url.Values{"includeInactive": {strconv.FormatBool(includeInactive)}}
	var brands []models.Brand
	if err := r.api.Get(ctx, "/brands", query, &brands); err != nil {
		return nil, fmt.Errorf("failed to fetch brands: %w", err)
	}
	return brands, nil
}

func (r *brandRepository) GetByID(ctx context.Context, id int64) (*models.Brand, error) {
	var brand models.Brand
	if err := r.api.Get(ctx, fmt.Sprintf("/brands/%d", id), nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetByName(ctx context.Context, name string) (*models.Brand, error) {
	var brand models.Brand
	found, err := r.api.GetAllow404(ctx, "/brands/name/"+url.PathEscape(name), &brand)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &brand, nil
}

func (r *brandRepository) Create(ctx context.Context, req models.CreateBrandRequest) (*models.Brand, error) {
	var brand models.Brand
	if err := r.api.Post(ctx, "/brands", req, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) CreateWithLogo(ctx context.Context, req models.CreateBrandRequest, logoPath string) (*models.Brand, error) {
	var brand models.Brand
	files := map[string][]string{"logo": {logoPath}}
	if err := r.api.PostMultipart(ctx, "/brands", brandFields(req.BrandName, req.Description, req.Website), files, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Update(ctx context.Context, id int64, req models.UpdateBrandRequest) (*models.Brand, error) {
	var brand models.Brand
	if err := r.api.Put(ctx, fmt.Sprintf("/brands/%d", id), req, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) UpdateWithLogo(ctx context.Context, id int64, req models.UpdateBrandRequest, logoPath string) (*models.Brand, error) {
	var brand models.Brand
	files := map[string][]string{"logo": {logoPath}}
	fields := brandFields(req.BrandName, req.Description, req.Website)
	if req.Status != "" {
		fields["status"] = string(req.Status)
	}
	if err := r.api.PutMultipart(ctx, fmt.Sprintf("/brands/%d", id), fields, files, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) Delete(ctx context.Context, id int64) error {
	return r.api.Delete(ctx, fmt.Sprintf("/brands/%d", id))
}

func brandFields(name, description, website string) map[string]string {
	fields := map[string]string{"brandName": name}
	if description != "" {
		fields["description"] = description
	}
	if website != "" {
		fields["website"] = website
	}
	return fields
}
