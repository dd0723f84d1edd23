package models

import "time"

// CaptureEvent — один пакет показаний датчиков, снятый станцией.
// Записи неизменяемы после фиксации; порядок отображения задаётся
// парой (capture_date, capture_hour) по убыванию.
type CaptureEvent struct {
	ID               string    `json:"id"`
	CaptureDate      time.Time `json:"capture_date"`
	CaptureHour      int       `json:"capture_hour"`
	TemperatureDHT22 float64   `json:"temperature_dht22"`
	HumidityDHT22    float64   `json:"humidity_dht22"`
	HydrogenMQ       float64   `json:"hydrogen_mq"`
	Radiation        float64   `json:"radiation"`
}

// EventFilter — параметры выборки событий: станция и включительный диапазон дат.
// Проверка from <= to не выполняется: перевёрнутый диапазон даёт пустой результат.
type EventFilter struct {
	StationID string
	From      time.Time
	To        time.Time
}

// Station — физическая точка размещения датчиков с непрозрачным идентификатором.
type Station struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
