// Package signup реализует HTTP-обработчик регистрации пользователей.
//
// Обработчик декодирует JSON тела запроса, валидирует поля по правилам
// регистрации и делегирует создание пользователя сервису аутентификации.
// Ошибки валидации возвращаются сгруппированными по полям; повторная
// регистрация с занятым email или документом даёт 409.
package signup

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/http/validate"
	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
	services "github.com/magabrotheeeer/agro-monitor/internal/services/auth"
)

// Request — входные данные для регистрации.
type Request struct {
	Name           string  `json:"name" validate:"required,min=3,max=100"`
	Email          string  `json:"email" validate:"required,email"`
	Password       string  `json:"password" validate:"required,min=8,max=100"`
	DocumentTypeID string  `json:"documentTypeId" validate:"required,uuid"`
	DocumentNumber string  `json:"documentNumber" validate:"required,min=4,max=20"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, input models.NewUserInput) (string, error)
}

// Handler обрабатывает HTTP-запросы регистрации.
type Handler struct {
	log      *slog.Logger
	auth     Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, auth Service) *Handler {
	return &Handler{
		log:      log,
		auth:     auth,
		validate: validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя с ролью PRODUCTOR. Пароль хэшируется перед сохранением.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Данные регистрации"
// @Success 201 {object} map[string]any "Пользователь создан"
// @Failure 400 {object} response.Response "Ошибки валидации по полям"
// @Failure 409 {object} map[string]any "Email или документ уже заняты"
// @Failure 500 {object} map[string]any "Внутренняя ошибка сервера"
// @Router /auth/signup [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.signup"

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
	log.Info("all fields are validated")

	uid, err := h.auth.Register(r.Context(), models.NewUserInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		DocumentTypeID: req.DocumentTypeID,
		DocumentNumber: req.DocumentNumber,
		Phone:          req.Phone,
		Address:        req.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserAlreadyExists):
			log.Warn("duplicate registration attempt", slog.String("email", req.Email))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, map[string]any{"message": err.Error()})
		case errors.Is(err, services.ErrRoleNotConfigured):
			log.Error("default role is not configured", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, map[string]any{"message": err.Error()})
		default:
			log.Error("failed to register new user", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, map[string]any{"message": "failed to register user"})
		}
		return
	}

	log.Info("created new user", slog.String("user_id", uid))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, map[string]any{
		"message": "user created successfully",
		"userId":  uid,
	})
}
