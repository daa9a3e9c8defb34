package domain

import "time"

const (
	RoleCustomer   = "customer"
	RoleCourier    = "courier"
	RoleDispatcher = "dispatcher"
	RoleAdmin      = "admin"
)

// ValidRole reports whether role is one of the four known roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleCourier, RoleDispatcher, RoleAdmin:
		return true
	}
	return false
}

// Profile models an authenticated actor: customer, courier, dispatcher or admin.
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"full_name"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
