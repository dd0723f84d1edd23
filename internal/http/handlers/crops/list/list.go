// Package list реализует HTTP-обработчик каталога культур.
//
// Ответ безопасно кэшировать на секунды: каталог меняется редко, поэтому
// выставляются заголовки public, max-age и stale-while-revalidate.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/http/response"
	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// Service описывает интерфейс бизнес-логики каталога культур.
type Service interface {
	ListCrops(ctx context.Context) ([]models.Crop, error)
}

// Handler обрабатывает HTTP-запросы каталога культур.
type Handler struct {
	log        *slog.Logger
	monitoring Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, monitoring Service) *Handler {
	return &Handler{
		log:        log,
		monitoring: monitoring,
	}
}

// ServeHTTP godoc
// @Summary Каталог культур
// @Description Возвращает все культуры с названием цикла роста; культура без цикла получает метку "—".
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.Crop
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /crops [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.crops.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	crops, err := h.monitoring.ListCrops(r.Context())
	if err != nil {
		log.Error("failed to list crops", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list crops"))
		return
	}
	if crops == nil {
		crops = []models.Crop{}
	}

	w.Header().Set("Cache-Control", "public, max-age=60, stale-while-revalidate=30")
	log.Info("crops listed", slog.Int("count", len(crops)))
	render.JSON(w, r, crops)
}
