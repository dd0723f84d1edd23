package repository

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/agro-monitor/internal/models"
)

// MaxEventRows — жёсткий потолок выборки событий. Курсора пагинации нет:
// для большего объёма вызывающая сторона сужает диапазон дат.
const MaxEventRows = 100

// ListCaptureEvents возвращает события станции за включительный диапазон дат,
// упорядоченные по (capture_date, capture_hour) по убыванию, не более MaxEventRows строк.
// Диапазон с from > to даёт пустой результат, а не ошибку.
func (s *Storage) ListCaptureEvents(ctx context.Context, filter models.EventFilter) ([]models.CaptureEvent, error) {
	const op = "storage.ListCaptureEvents"

	query := `SELECT id, capture_date, capture_hour,
			      temperature_dht22, humidity_dht22, hydrogen_mq, radiation
			  FROM capture_events
			  WHERE station_id = $1
			    AND capture_date >= $2
			    AND capture_date <= $3
			  ORDER BY capture_date DESC, capture_hour DESC
			  LIMIT $4`
	rows, err := s.DB.QueryContext(ctx, query, filter.StationID, filter.From, filter.To, MaxEventRows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.CaptureEvent
	for rows.Next() {
		var e models.CaptureEvent
		if err = rows.Scan(&e.ID, &e.CaptureDate, &e.CaptureHour,
			&e.TemperatureDHT22, &e.HumidityDHT22, &e.HydrogenMQ, &e.Radiation); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListStations возвращает все станции. Отдельного человекочитаемого имени
// у станции пока нет, поэтому name совпадает с id.
func (s *Storage) ListStations(ctx context.Context) ([]models.Station, error) {
	const op = "storage.ListStations"

	query := `SELECT id FROM stations ORDER BY id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []models.Station
	for rows.Next() {
		var st models.Station
		if err = rows.Scan(&st.ID); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		st.Name = st.ID
		result = append(result, st)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
