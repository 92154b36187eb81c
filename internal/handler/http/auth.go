package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/contoso/timereg-backend-go/internal/domain/auth"
	"github.com/contoso/timereg-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) AuthHandler {
	return &authHandlerImpl{service: service}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode login request", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.service.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Me implements AuthHandler.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	current, err := h.service.CurrentUser(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, current)
}
