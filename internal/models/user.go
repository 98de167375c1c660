package models

import "time"

// User roles.
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a storefront account.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Name      string    `json:"name" validate:"required,min=1,max=100"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	Role      string    `json:"role" validate:"omitempty,oneof=customer admin"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdmin reports whether the user may use the back-office endpoints.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
