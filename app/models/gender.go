package models

type Gender struct {
	GenderID     int64  `json:"genderId"`
	GenderName   string `json:"genderName"`
	GenderCode   string `json:"genderCode"`
	Description  string `json:"description,omitempty"`
	Status       Status `json:"status"`
	ProductCount int    `json:"productCount"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

func (g Gender) EntityID() int64      { return g.GenderID }
func (g Gender) EntityName() string   { return g.GenderName }
func (g Gender) EntityStatus() Status { return g.Status }

type CreateGenderRequest struct {
	GenderName  string `json:"genderName" validate:"required,min=1,max=50"`
	GenderCode  string `json:"genderCode" validate:"required,min=1,max=10"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateGenderRequest struct {
	GenderName  string `json:"genderName" validate:"required,min=1,max=50"`
	GenderCode  string `json:"genderCode" validate:"required,min=1,max=10"`
	Description string `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE DISCONTINUED"`
}
