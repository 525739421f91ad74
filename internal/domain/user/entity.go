package user

import "time"

type Role string

const (
	RoleCompanyAdmin Role = "COMPANY_ADMIN" // Manages tenant settings, employees and absences
	RoleEmployee     Role = "EMPLOYEE"      // Regular employee
)

type User struct {
	ID           string
	TenantID     string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role
	HomeLat      *float64
	HomeLng      *float64
	HomeAddress  *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can manage tenant settings and employees.
func (u *User) IsAdmin() bool {
	return u.Role == RoleCompanyAdmin
}

// HasHomeLocation reports whether a home-office reference point is set.
func (u *User) HasHomeLocation() bool {
	return u.HomeLat != nil && u.HomeLng != nil
}
