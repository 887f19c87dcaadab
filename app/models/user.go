package models

// User is an account record managed through the admin screens.
// Timestamps stay as strings because the backend serializes LocalDateTime
// without a zone offset, which time.Time refuses to parse.
type User struct {
	UserID    int64  `json:"userId"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      Role   `json:"role"`
	Status    Status `json:"status"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (u User) EntityID() int64      { return u.UserID }
func (u User) EntityName() string   { return u.Username }
func (u User) EntityStatus() Status { return u.Status }

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,phone"`
	Role     Role   `json:"role" validate:"required,oneof=CUSTOMER ADMIN"`
}

type UpdateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,phone"`
	Role     Role   `json:"role,omitempty" validate:"omitempty,oneof=CUSTOMER ADMIN"`
	Status   Status `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE SUSPENDED"`
}
