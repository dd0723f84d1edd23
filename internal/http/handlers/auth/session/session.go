// Package session реализует HTTP-обработчик интроспекции сессии.
// Возвращает набор утверждений {id, email, name, role}, восстановленный
// middleware из токена текущего запроса.
package session

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/http/middlewarectx"
	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
)

// Handler обрабатывает HTTP-запросы чтения текущей сессии.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Текущая сессия
// @Description Возвращает набор утверждений сессии текущего запроса.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Данные сессии"
// @Failure 401 {object} response.ErrorResponse "Нет валидного токена"
// @Router /auth/session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	session, ok := middlewarectx.SessionFromContext(r.Context())
	if !ok {
		log.Error("session not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	render.JSON(w, r, response.OKWithData(session))
}
