package models

type Brand struct {
	BrandID      int64  `json:"brandId"`
	BrandName    string `json:"brandName"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Description  string `json:"description,omitempty"`
	Website      string `json:"website,omitempty"`
	Status       Status `json:"status"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (b Brand) EntityID() int64      { return b.BrandID }
func (b Brand) EntityName() string   { return b.BrandName }
func (b Brand) EntityStatus() Status { return b.Status }

type CreateBrandRequest struct {
	BrandName   string `json:"brandName" validate:"required,min=1,max=100"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
}

type UpdateBrandRequest struct {
	BrandName   string `json:"brandName" validate:"required,min=1,max=100"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Status      Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
}
