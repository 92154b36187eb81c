package user

import "time"

type Role string

const (
	RoleManager  Role = "manager"  // Can review and approve team attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID           string
	DisplayName  string
	Email        string
	Department   *string
	Role         Role
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager checks if the user can review team attendance
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
