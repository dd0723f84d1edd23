// Package logout реализует HTTP-обработчик выхода из системы.
//
// Схема сессий stateless, поэтому выход сводится к удалению cookie на клиенте:
// ранее выданный токен остаётся криптографически валидным до истечения срока.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
)

// Handler обрабатывает HTTP-запросы выхода.
type Handler struct {
	log *slog.Logger
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger) *Handler {
	return &Handler{log: log}
}

// ServeHTTP godoc
// @Summary Выход из системы
// @Description Сбрасывает cookie сессии. Токен остаётся валидным до естественного истечения.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response "Сессия завершена"
// @Router /auth/logout [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	http.SetCookie(w, &http.Cookie{
		Name:     login.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	log.Info("session cookie cleared")
	render.JSON(w, r, response.OK())
}
