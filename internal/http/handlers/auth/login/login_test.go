package login_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
	services "github.com/magabrotheeeer/agro-monitor/internal/services/auth"
)

type AuthServiceMock struct {
	mock.Mock
}

func (m *AuthServiceMock) Login(ctx context.Context, email, password string) (string, models.Session, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Get(1).(models.Session), args.Error(2)
}

func doRequest(t *testing.T, handler http.Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(raw))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestLoginHandler_Success(t *testing.T) {
	session := models.Session{
		UID:   "user-uid",
		Email: "maria@example.com",
		Name:  "Maria Lopez Garcia",
		Role:  "PRODUCTOR",
	}

	auth := new(AuthServiceMock)
	auth.On("Login", mock.Anything, "maria@example.com", "correct-password").
		Return("signed.jwt.token", session, nil).Once()

	handler := login.New(slog.New(slog.DiscardHandler), auth, time.Hour)
	rr := doRequest(t, handler, map[string]string{
		"email":    "maria@example.com",
		"password": "correct-password",
	})

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, response.StatusOK, resp.Status)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "signed.jwt.token", data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "user-uid", user["id"])
	assert.Equal(t, "maria@example.com", user["email"])
	assert.Equal(t, "Maria Lopez Garcia", user["name"])
	assert.Equal(t, "PRODUCTOR", user["role"])

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, login.SessionCookieName, cookie.Name)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	auth.AssertExpectations(t)
}

func TestLoginHandler_RejectionsAreIndistinguishable(t *testing.T) {
	// Ответ одинаков для неизвестного email и неверного пароля
	tests := []struct {
		name  string
		email string
	}{
		{name: "unknown email", email: "unknown@example.com"},
		{name: "wrong password", email: "maria@example.com"},
	}

	var bodies []string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := new(AuthServiceMock)
			auth.On("Login", mock.Anything, tt.email, "some-password").
				Return("", models.Session{}, services.ErrInvalidCredentials).Once()

			handler := login.New(slog.New(slog.DiscardHandler), auth, time.Hour)
			rr := doRequest(t, handler, map[string]string{
				"email":    tt.email,
				"password": "some-password",
			})

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Empty(t, rr.Result().Cookies())

			var resp response.Response
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, response.StatusError, resp.Status)
			assert.Equal(t, "invalid email or password", resp.Error)
			bodies = append(bodies, resp.Error)
		})
	}
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}

func TestLoginHandler_ValidationError(t *testing.T) {
	auth := new(AuthServiceMock)
	handler := login.New(slog.New(slog.DiscardHandler), auth, time.Hour)

	rr := doRequest(t, handler, map[string]string{
		"email":    "not-an-email",
		"password": "",
	})

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")
	auth.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginHandler_ServiceFailure(t *testing.T) {
	auth := new(AuthServiceMock)
	auth.On("Login", mock.Anything, "maria@example.com", "correct-password").
		Return("", models.Session{}, errors.New("db down")).Once()

	handler := login.New(slog.New(slog.DiscardHandler), auth, time.Hour)
	rr := doRequest(t, handler, map[string]string{
		"email":    "maria@example.com",
		"password": "correct-password",
	})

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp response.Response
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "internal error", resp.Error)
	auth.AssertExpectations(t)
}
