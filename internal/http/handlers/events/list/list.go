// Package list реализует HTTP-обработчик выборки событий наблюдения.
//
// Все три параметра запроса — from, to, station — обязательны: отсутствие
// любого из них даёт 400 без обращения к хранилищу. Результат ограничен
// 100 строками, новые записи первыми.
package list

import (
	"context"
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
)

// dateLayout — формат дат параметров from и to.
const dateLayout = "2006-01-02"

// Request — параметры строки запроса выборки событий.
type Request struct {
	From    string `json:"from" validate:"required,datetime=2006-01-02"`
	To      string `json:"to" validate:"required,datetime=2006-01-02"`
	Station string `json:"station" validate:"required"`
}

// Service описывает интерфейс бизнес-логики выборки событий.
type Service interface {
	ListCaptureEvents(ctx context.Context, filter models.EventFilter) ([]models.CaptureEvent, error)
}

// Handler обрабатывает HTTP-запросы выборки событий.
type Handler struct {
	log        *slog.Logger
	monitoring Service
	validate   *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, monitoring Service) *Handler {
	return &Handler{
		log:        log,
		monitoring: monitoring,
		validate:   validate.New(),
	}
}

// ServeHTTP godoc
// @Summary Список событий наблюдения
// @Description Возвращает события станции за включительный диапазон дат, не более 100 строк, новые первыми.
// @Tags Monitoring
// @Produce json
// @Param from query string true "Начало диапазона (2006-01-02)"
// @Param to query string true "Конец диапазона (2006-01-02)"
// @Param station query string true "Идентификатор станции"
// @Success 200 {array} models.CaptureEvent
// @Failure 400 {object} response.Response "Отсутствует или некорректен параметр"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /capture-events [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.events.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	req := Request{
		From:    r.URL.Query().Get("from"),
		To:      r.URL.Query().Get("to"),
		Station: r.URL.Query().Get("station"),
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	from, _ := time.Parse(dateLayout, req.From)
	to, _ := time.Parse(dateLayout, req.To)

	events, err := h.monitoring.ListCaptureEvents(r.Context(), models.EventFilter{
		StationID: req.Station,
		From:      from,
		To:        to,
	})
	if err != nil {
		log.Error("failed to list capture events", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list capture events"))
		return
	}
	if events == nil {
		events = []models.CaptureEvent{}
	}

	log.Info("capture events listed", slog.Int("count", len(events)))
	render.JSON(w, r, events)
}
