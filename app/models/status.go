package models

// Status is the lifecycle state of a record as reported by the store API.
// Managed catalog entities use ACTIVE/INACTIVE/DISCONTINUED, users use
// ACTIVE/INACTIVE/SUSPENDED and products additionally use OUT_OF_STOCK.
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusInactive     Status = "INACTIVE"
	StatusDiscontinued Status = "DISCONTINUED"
	StatusSuspended    Status = "SUSPENDED"
	StatusOutOfStock   Status = "OUT_OF_STOCK"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)
