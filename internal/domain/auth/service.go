package auth

import (
	"context"

	"github.com/contoso/timereg-backend-go/internal/domain/user"
)

// AuthService is the identity collaborator. Login is deliberately permissive:
// any credentials are accepted for a known user unless a password hash is on
// file, in which case it must match.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// CurrentUser resolves the acting user from the request context.
	CurrentUser(ctx context.Context) (user.UserResponse, error)
}
