// Package list реализует HTTP-обработчик списка станций наблюдения.
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

// Service описывает интерфейс бизнес-логики списка станций.
type Service interface {
	ListStations(ctx context.Context) ([]models.Station, error)
}

// Handler обрабатывает HTTP-запросы списка станций.
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
// @Summary Список станций
// @Description Возвращает все станции наблюдения; name пока совпадает с id.
// @Tags Monitoring
// @Produce json
// @Success 200 {array} models.Station
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /stations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.stations.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stations, err := h.monitoring.ListStations(r.Context())
	if err != nil {
		log.Error("failed to list stations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list stations"))
		return
	}
	if stations == nil {
		stations = []models.Station{}
	}

	log.Info("stations listed", slog.Int("count", len(stations)))
	render.JSON(w, r, stations)
}
