package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity - уровень эскалации, присвоенный событию близости
type Severity string

const (
	// SeverityNone - турист вне зоны и вне критических порогов
	SeverityNone Severity = "NONE"
	// SeverityWarning - предупреждение туристу, в БД не сохраняется
	SeverityWarning Severity = "WARNING"
	// SeverityCritical700 - турист ближе 700 метров к центру зоны
	SeverityCritical700 Severity = "CRITICAL_700"
	// SeverityCritical500 - турист ближе 500 метров к центру зоны
	SeverityCritical500 Severity = "CRITICAL_500"
	// SeverityPanic - тревожная кнопка, обходит cooldown
	SeverityPanic Severity = "PANIC_BUTTON"
)

// Critical сообщает, относится ли уровень к полицейскому критическому пути
func (s Severity) Critical() bool {
	return s == SeverityCritical500 || s == SeverityCritical700
}

// Alert представляет сохраненное полицейское оповещение.
// Записи только добавляются и никогда не изменяются.
type Alert struct {
	ID             uuid.UUID `json:"id"`
	TouristID      int64     `json:"tourist_id"`
	StationID      int64     `json:"station_id"`
	ZoneName       string    `json:"zone_name"`
	Severity       Severity  `json:"severity"`
	DistanceMeters int       `json:"distance_meters"` // 0 для panic-событий
	CreatedAt      time.Time `json:"created_at"`
}
