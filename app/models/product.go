package models

import "github.com/shopspring/decimal"

type Product struct {
	ProductID    int64            `json:"productId"`
	ProductName  string           `json:"productName"`
	SKU          string           `json:"sku"`
	Description  string           `json:"description,omitempty"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	ImageURL     string           `json:"imageUrl,omitempty"`
	ThumbnailURL string           `json:"thumbnailUrl,omitempty"`
	TotalStock   int              `json:"totalStock,omitempty"`
	Status       Status           `json:"status"`
	BrandName    string           `json:"brandName,omitempty"`
	Brand        *Brand           `json:"brand,omitempty"`
	Categories   []Category       `json:"categories,omitempty"`
	Gender       *Gender          `json:"gender,omitempty"`
	CreatedAt    string           `json:"createdAt,omitempty"`
	UpdatedAt    string           `json:"updatedAt,omitempty"`
}

func (p Product) EntityID() int64      { return p.ProductID }
func (p Product) EntityName() string   { return p.ProductName }
func (p Product) EntityStatus() Status { return p.Status }

type CreateProductRequest struct {
	ProductName string           `json:"productName" validate:"required,min=1,max=255"`
	SKU         string           `json:"sku" validate:"required,min=1,max=100"`
	Description string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Status      Status           `json:"status" validate:"required,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED"`
	BrandID     int64            `json:"brandId" validate:"required,gt=0"`
	CategoryIDs []int64          `json:"categoryIds,omitempty"`
	GenderID    *int64           `json:"genderId,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
}

type UpdateProductRequest struct {
	ProductName string           `json:"productName,omitempty" validate:"omitempty,min=1,max=255"`
	SKU         string           `json:"sku,omitempty" validate:"omitempty,min=1,max=100"`
	Description string           `json:"description,omitempty" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Status      Status           `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK DISCONTINUED"`
	BrandID     *int64           `json:"brandId,omitempty"`
	CategoryIDs []int64          `json:"categoryIds,omitempty"`
	GenderID    *int64           `json:"genderId,omitempty"`
	ImageURL    string           `json:"imageUrl,omitempty"`
}

// ProductImage is one entry in a product's image gallery.
type ProductImage struct {
	ImageID      int64  `json:"imageId"`
	ImageURL     string `json:"imageUrl"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	IsPrimary    bool   `json:"isPrimary"`
	DisplayOrder int    `json:"displayOrder,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}
