package response

import (
	"errors"
	"net/http"

	"github.com/contoso/timereg-backend-go/internal/domain/auth"
	"github.com/contoso/timereg-backend-go/internal/domain/timerecord"
	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Unknown errors never
// cross the boundary raw.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())

	// Time registration state-machine errors
	case errors.Is(err, timerecord.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, timerecord.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, timerecord.ErrInvalidApprovalStatus):
		BadRequest(w, err.Error())

	// Not-found errors
	case errors.Is(err, timerecord.ErrRecordNotFound):
		NotFound(w, "Time record not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Role errors
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
