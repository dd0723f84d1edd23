// Package services содержит бизнес-логику выборки данных наблюдения:
// события станций, каталог культур, станции и типы документов.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/agro-monitor/internal/lib/sl"
	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

const (
	cropsCacheKey = "crops:catalog"
	// CropsCacheTTL — окно краткоживущего кэша каталога культур.
	// Каталог меняется редко, устаревание в пределах окна допустимо.
	CropsCacheTTL = 60 * time.Second
)

// MonitoringRepository описывает контракт чтения данных наблюдения из хранилища.
type MonitoringRepository interface {
	ListCaptureEvents(ctx context.Context, filter models.EventFilter) ([]models.CaptureEvent, error)
	ListCrops(ctx context.Context) ([]models.Crop, error)
	ListStations(ctx context.Context) ([]models.Station, error)
	ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error)
}

// CropsCache описывает контракт кэша каталога культур.
type CropsCache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
}

// MonitoringService предоставляет read-only операции для панели наблюдения.
type MonitoringService struct {
	repo  MonitoringRepository
	cache CropsCache
	log   *slog.Logger
}

// NewMonitoringService создает новый экземпляр MonitoringService.
func NewMonitoringService(repo MonitoringRepository, cache CropsCache, log *slog.Logger) *MonitoringService {
	return &MonitoringService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListCaptureEvents возвращает события станции за включительный диапазон дат,
// не более 100 строк, новые сверху. Перевёрнутый диапазон даёт пустой результат.
func (s *MonitoringService) ListCaptureEvents(ctx context.Context, filter models.EventFilter) ([]models.CaptureEvent, error) {
	const op = "services.monitoring.ListCaptureEvents"

	events, err := s.repo.ListCaptureEvents(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return events, nil
}

// ListCrops возвращает каталог культур, сперва пробуя краткоживущий кэш.
// Сбой кэша не фатален: каталог читается из хранилища напрямую.
func (s *MonitoringService) ListCrops(ctx context.Context) ([]models.Crop, error) {
	const op = "services.monitoring.ListCrops"

	var cached []models.Crop
	found, err := s.cache.Get(ctx, cropsCacheKey, &cached)
	if err != nil {
		s.log.Warn("crops cache read failed", sl.Err(err))
	}
	if found {
		return cached, nil
	}

	crops, err := s.repo.ListCrops(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cache.Set(ctx, cropsCacheKey, crops, CropsCacheTTL); err != nil {
		s.log.Warn("crops cache write failed", sl.Err(err))
	}
	return crops, nil
}

// ListStations возвращает все станции наблюдения.
func (s *MonitoringService) ListStations(ctx context.Context) ([]models.Station, error) {
	const op = "services.monitoring.ListStations"

	stations, err := s.repo.ListStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return stations, nil
}

// ListDocumentTypes возвращает справочник типов документов.
func (s *MonitoringService) ListDocumentTypes(ctx context.Context) ([]models.DocumentType, error) {
	const op = "services.monitoring.ListDocumentTypes"

	types, err := s.repo.ListDocumentTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return types, nil
}
