package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/contoso/timereg-backend-go/internal/domain/user"
	"github.com/contoso/timereg-backend-go/internal/pkg/email"
	"github.com/contoso/timereg-backend-go/internal/pkg/jwt"
	"github.com/contoso/timereg-backend-go/internal/repository/memory"
	authService "github.com/contoso/timereg-backend-go/internal/service/auth"
	teamService "github.com/contoso/timereg-backend-go/internal/service/team"
	timerecordService "github.com/contoso/timereg-backend-go/internal/service/timerecord"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// envelope mirrors the response package wire format for decoding.
type envelope struct {
	Success      bool              `json:"success"`
	Data         json.RawMessage   `json:"data"`
	ErrorMessage string            `json:"error_message"`
	Details      map[string]string `json:"details"`
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	users := memory.NewUserRepository([]user.User{
		{ID: "user-001", DisplayName: "John Doe", Email: "john.doe@contoso.com", Role: user.RoleEmployee},
		{ID: "user-100", DisplayName: "Sarah Connor", Email: "sarah.connor@contoso.com", Role: user.RoleManager},
	})
	records := memory.NewTimeRecordRepository()

	jwtService := jwt.NewJWTService("test-secret", "1h")

	return NewRouter(
		jwtService,
		NewAuthHandler(authService.NewAuthService(users, jwtService)),
		NewAttendanceHandler(timerecordService.NewTimeRegistrationService(records, users, time.UTC)),
		NewTeamHandler(teamService.NewTeamService(records, users, email.NewNoopNotifier(), time.UTC)),
		"test",
	)
}

func do(router *chi.Mux, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &env)
	}
	return rec, env
}

// login returns an access token for the given email.
func login(t *testing.T, router *chi.Mux, email string) string {
	t.Helper()

	rec, env := do(router, http.MethodPost, "/api/v1/auth/login", "", `{"email":"`+email+`","password":"whatever"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, env.Success)

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.AccessToken)
	return payload.AccessToken
}

func TestLogin_UnknownEmail(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(router, http.MethodPost, "/api/v1/auth/login", "", `{"email":"nobody@contoso.com"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid email or password", env.ErrorMessage)
}

func TestLogin_MissingEmail(t *testing.T) {
	router := newTestRouter(t)

	rec, env := do(router, http.MethodPost, "/api/v1/auth/login", "", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Details, "email")
}

func TestStatus_RequiresToken(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := do(router, http.MethodGet, "/api/v1/attendance/status", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMe(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john.doe@contoso.com")

	rec, env := do(router, http.MethodGet, "/api/v1/me", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "user-001", me.ID)
	assert.Equal(t, "employee", me.Role)
}

func TestAttendanceFlow(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john.doe@contoso.com")

	// Fresh session starts checked out
	rec, env := do(router, http.MethodGet, "/api/v1/attendance/status", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var status struct {
		IsCheckedIn bool `json:"is_checked_in"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.False(t, status.IsCheckedIn)

	// Check in
	rec, env = do(router, http.MethodPost, "/api/v1/attendance/check-in", token, `{"location":"Home Office"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	// A second check-in conflicts
	rec, env = do(router, http.MethodPost, "/api/v1/attendance/check-in", token, `{}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "already checked in, please check out first", env.ErrorMessage)

	// Status now reports the open record
	rec, env = do(router, http.MethodGet, "/api/v1/attendance/status", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.True(t, status.IsCheckedIn)

	// Check out, empty body allowed
	rec, _ = do(router, http.MethodPost, "/api/v1/attendance/check-out", token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	// A second check-out conflicts
	rec, env = do(router, http.MethodPost, "/api/v1/attendance/check-out", token, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "not checked in, please check in first", env.ErrorMessage)

	// The closed record shows up in the employee's history
	rec, env = do(router, http.MethodGet, "/api/v1/attendance/records", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var records []struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "user-001", records[0].UserID)
}

func TestTeam_ManagerOnly(t *testing.T) {
	router := newTestRouter(t)
	employee := login(t, router, "john.doe@contoso.com")
	manager := login(t, router, "sarah.connor@contoso.com")

	rec, env := do(router, http.MethodGet, "/api/v1/team/statistics", employee, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)

	rec, env = do(router, http.MethodGet, "/api/v1/team/statistics", manager, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		TotalEmployees int `json:"total_employees"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, 2, stats.TotalEmployees)
}

func TestTeam_ReviewUnknownRecord(t *testing.T) {
	router := newTestRouter(t)
	manager := login(t, router, "sarah.connor@contoso.com")

	rec, env := do(router, http.MethodPost, "/api/v1/team/records/missing/approve", manager, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
}

func TestRecords_InvalidDaysParam(t *testing.T) {
	router := newTestRouter(t)
	token := login(t, router, "john.doe@contoso.com")

	rec, _ := do(router, http.MethodGet, "/api/v1/attendance/records?days=abc", token, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
