package service

import (
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// Пороговые значения эскалации в метрах. Фиксированы политикой и не зависят
// от радиуса конкретной зоны.
const (
	critical500Meters = 500.0
	critical700Meters = 700.0
)

// Classify сопоставляет расстояние до центра ближайшей зоны с уровнем эскалации.
// Оценивается только одна ближайшая зона; граница 500 метров относится к CRITICAL_500.
func Classify(distanceMeters, zoneRadiusMeters float64) models.Severity {
	switch {
	case distanceMeters <= critical500Meters:
		return models.SeverityCritical500
	case distanceMeters <= critical700Meters:
		return models.SeverityCritical700
	case distanceMeters <= zoneRadiusMeters:
		return models.SeverityWarning
	default:
		return models.SeverityNone
	}
}
