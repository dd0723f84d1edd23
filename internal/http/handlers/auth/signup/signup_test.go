package signup_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/signup"
	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
	services "github.com/magabrotheeeer/agro-monitor/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Register(ctx context.Context, input models.NewUserInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func validBody() map[string]any {
	return map[string]any{
		"name":           "Maria Lopez Garcia",
		"email":          "maria@example.com",
		"password":       "super-secret-pass",
		"documentTypeId": "550e8400-e29b-41d4-a716-446655440000",
		"documentNumber": "10203040",
		"phone":          "3001234567",
	}
}

func doRequest(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestSignupHandler_Success(t *testing.T) {
	auth := new(AuthServiceMock)
	auth.On("Register", mock.Anything, mock.MatchedBy(func(input models.NewUserInput) bool {
		return input.Email == "maria@example.com" &&
			input.Name == "Maria Lopez Garcia" &&
			input.Phone != nil && *input.Phone == "3001234567"
	})).Return("new-user-uid", nil).Once()

	handler := signup.New(slog.New(slog.DiscardHandler), auth)
	rr := doRequest(t, handler, validBody())

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "user created successfully", resp["message"])
	assert.Equal(t, "new-user-uid", resp["userId"])
	auth.AssertExpectations(t)
}

func TestSignupHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(body map[string]any)
		wantField string
	}{
		{
			name:      "missing name",
			mutate:    func(b map[string]any) { delete(b, "name") },
			wantField: "name",
		},
		{
			name:      "bad email",
			mutate:    func(b map[string]any) { b["email"] = "not-an-email" },
			wantField: "email",
		},
		{
			name:      "short password",
			mutate:    func(b map[string]any) { b["password"] = "short" },
			wantField: "password",
		},
		{
			name:      "document type is not a uuid",
			mutate:    func(b map[string]any) { b["documentTypeId"] = "plain-string" },
			wantField: "documentTypeId",
		},
		{
			name:      "document number too short",
			mutate:    func(b map[string]any) { b["documentNumber"] = "12" },
			wantField: "documentNumber",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(AuthServiceMock)
			handler := signup.New(slog.New(slog.DiscardHandler), auth)

			body := validBody()
			tt.mutate(body)
			rr := doRequest(t, handler, body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Contains(t, resp.Errors, tt.wantField)
			// До сервиса невалидный запрос не доходит
			auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
		})
	}
}

func TestSignupHandler_InvalidJSON(t *testing.T) {
	auth := new(AuthServiceMock)
	handler := signup.New(slog.New(slog.DiscardHandler), auth)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", bytes.NewReader([]byte("{broken")))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	auth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestSignupHandler_Duplicate(t *testing.T) {
	auth := new(AuthServiceMock)
	auth.On("Register", mock.Anything, mock.Anything).
		Return("", services.ErrUserAlreadyExists).Once()

	handler := signup.New(slog.New(slog.DiscardHandler), auth)
	rr := doRequest(t, handler, validBody())

	assert.Equal(t, http.StatusConflict, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, services.ErrUserAlreadyExists.Error(), resp["message"])
	auth.AssertExpectations(t)
}

func TestSignupHandler_ServerErrors(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantMessage string
	}{
		{
			name:        "role not configured",
			serviceErr:  services.ErrRoleNotConfigured,
			wantMessage: services.ErrRoleNotConfigured.Error(),
		},
		{
			name:        "store failure is not leaked",
			serviceErr:  errors.New("pq: connection reset"),
			wantMessage: "failed to register user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(AuthServiceMock)
			auth.On("Register", mock.Anything, mock.Anything).
				Return("", tt.serviceErr).Once()

			handler := signup.New(slog.New(slog.DiscardHandler), auth)
			rr := doRequest(t, handler, validBody())

			assert.Equal(t, http.StatusInternalServerError, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp["message"])
			auth.AssertExpectations(t)
		})
	}
}
