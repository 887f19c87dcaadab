package models

type Size struct {
	SizeID       int64  `json:"sizeId"`
	SizeName     string `json:"sizeName"`
	Status       Status `json:"status"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (s Size) EntityID() int64      { return s.SizeID }
func (s Size) EntityName() string   { return s.SizeName }
func (s Size) EntityStatus() Status { return s.Status }

type CreateSizeRequest struct {
	SizeName string `json:"sizeName" validate:"required,min=1,max=10"`
}

type UpdateSizeRequest struct {
	SizeName string `json:"sizeName" validate:"required,min=1,max=10"`
	Status   Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
}
