package models

import "github.com/shopspring/decimal"

// SimpleRef is the collapsed {id, name} form the backend uses when a variant
// references its product, size and color.
type SimpleRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ProductVariant struct {
	VariantID int64           `json:"variantId"`
	SKU       string          `json:"sku"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Status    Status          `json:"status"`
	ImagePath string          `json:"imagePath,omitempty"`
	Product   SimpleRef       `json:"product"`
	Size      SimpleRef       `json:"size"`
	Color     SimpleRef       `json:"color"`
	CreatedAt string          `json:"createdAt,omitempty"`
	UpdatedAt string          `json:"updatedAt,omitempty"`
}

type CreateVariantRequest struct {
	ProductID int64           `json:"productId" validate:"required,gt=0"`
	SizeID    int64           `json:"sizeId" validate:"required,gt=0"`
	ColorID   int64           `json:"colorId" validate:"required,gt=0"`
	SKU       string          `json:"sku" validate:"required,min=1,max=100"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock" validate:"gte=0"`
	Status    Status          `json:"status" validate:"required,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
}

type UpdateVariantRequest struct {
	SKU     string          `json:"sku" validate:"required,min=1,max=100"`
	SizeID  int64           `json:"sizeId" validate:"required,gt=0"`
	ColorID int64           `json:"colorId" validate:"required,gt=0"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock" validate:"gte=0"`
	Status  Status          `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE OUT_OF_STOCK"`
}

type BulkVariantItem struct {
	SizeID  int64           `json:"sizeId" validate:"required,gt=0"`
	ColorID int64           `json:"colorId" validate:"required,gt=0"`
	SKU     string          `json:"sku" validate:"required,min=1,max=100"`
	Price   decimal.Decimal `json:"price"`
	Stock   int             `json:"stock" validate:"gte=0"`
}

type BulkVariantCreateRequest struct {
	ProductID int64             `json:"productId" validate:"required,gt=0"`
	Variants  []BulkVariantItem `json:"variants" validate:"required,min=1,dive"`
}
