package models

type Color struct {
	ColorID      int64  `json:"colorId"`
	ColorName    string `json:"colorName"`
	Status       Status `json:"status"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (c Color) EntityID() int64      { return c.ColorID }
func (c Color) EntityName() string   { return c.ColorName }
func (c Color) EntityStatus() Status { return c.Status }

type CreateColorRequest struct {
	ColorName string `json:"colorName" validate:"required,min=1,max=50"`
}

type UpdateColorRequest struct {
	ColorName string `json:"colorName" validate:"required,min=1,max=50"`
	Status    Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
}

// ColorImage is a gallery image attached to a color swatch.
type ColorImage struct {
	ImageID   int64  `json:"imageId"`
	ImageURL  string `json:"imageUrl"`
	IsPrimary bool   `json:"isPrimary"`
	CreatedAt string `json:"createdAt,omitempty"`
}
