// Package login реализует HTTP-обработчик аутентификации пользователей.
//
// Обработчик декодирует JSON тела запроса, валидирует поля и делегирует
// вход сервису аутентификации. При успехе возвращается JWT сессии и
// устанавливается HttpOnly-cookie; неизвестный email и неверный пароль
// дают один и тот же ответ 401.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/http/validate"
	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
	services "github.com/magabrotheeeer/agro-monitor/internal/services/auth"
)

// SessionCookieName — имя cookie, в которой клиенту выдаётся токен сессии.
const SessionCookieName = "session_token"

// Request — структура входных данных для авторизации.
type Request struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, models.Session, error)
}

// Handler обрабатывает HTTP-запросы авторизации.
type Handler struct {
	log      *slog.Logger
	auth     Service
	tokenTTL time.Duration
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service, tokenTTL time.Duration) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		tokenTTL: tokenTTL,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю, выпускает JWT сессии.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Токен и данные сессии"
// @Failure 400 {object} response.Response "Некорректный JSON или ошибка валидации"
// @Failure 401 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /auth/login [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("email", req.Email))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	token, session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Warn("login rejected", slog.String("email", req.Email))
			w.WriteHeader(http.StatusUnauthorized)
			render.JSON(w, r, response.Error(services.ErrInvalidCredentials.Error()))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("internal error"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("login success", slog.String("email", session.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"token": token,
		"user":  session,
	}))
}
