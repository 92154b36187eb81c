package user

// UserResponse is the wire representation of a user identity.
type UserResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email"`
	Department  *string `json:"department,omitempty"`
	Role        string  `json:"role"`
}

// ToResponse converts a User entity to its wire representation.
func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Department:  u.Department,
		Role:        string(u.Role),
	}
}
