// Package list реализует HTTP-обработчик справочника типов документов.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// Service описывает интерфейс бизнес-логики справочника типов документов.
type Service interface {
	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
}

// Handler обрабатывает HTTP-запросы справочника типов документов.
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
// @Summary Типы документов
// @Description Возвращает все типы документов из справочника.
// @Tags Reference
// @Produce json
// @Success 200 {array} models.DocumentType
// @Failure 500 {object} map[string]any "Ошибка хранилища"
// @Router /document-types [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.documenttypes.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	types, err := h.monitoring.ListDocumentTypes(r.Context())
	if err != nil {
		log.Error("failed to list document types", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, map[string]any{"message": "failed to load document types"})
		return
	}
	if types == nil {
		types = []models.DocumentType{}
	}

	log.Info("document types listed", slog.Int("count", len(types)))
	render.JSON(w, r, types)
}
