package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// UpdateLocationRequest DTO для обновления позиции туриста
// @Description DTO для обновления позиции туриста
type UpdateLocationRequest struct {
	TouristID string     `json:"tourist_id" validate:"required"`
	Latitude  *float64   `json:"latitude" validate:"required,latitude"`
	Longitude *float64   `json:"longitude" validate:"required,longitude"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// PanicRequest DTO для тревожной кнопки
// @Description DTO для тревожной кнопки
type PanicRequest struct {
	TouristID string   `json:"tourist_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// CreateTouristRequest DTO для регистрации туриста
// @Description DTO для регистрации туриста
type CreateTouristRequest struct {
	TouristID        string    `json:"tourist_id" validate:"required,min=2,max=64"`
	Name             string    `json:"name" validate:"required,min=2,max=255"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	Latitude         *float64  `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude        *float64  `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ValidFrom        time.Time `json:"valid_from" validate:"required"`
	ValidTo          time.Time `json:"valid_to" validate:"required,gtfield=ValidFrom"`
}

// AdjustSafetyScoreRequest DTO для изменения индекса безопасности
// @Description DTO для изменения индекса безопасности
type AdjustSafetyScoreRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CreateRiskZoneRequest DTO для создания зоны риска
// @Description DTO для создания зоны риска
type CreateRiskZoneRequest struct {
	Name         string   `json:"name" validate:"required,min=2,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int      `json:"radius_meters" validate:"required,gt=0"`
}

// CreatePoliceStationRequest DTO для создания участка
// @Description DTO для создания участка
type CreatePoliceStationRequest struct {
	Name               string   `json:"name" validate:"required,min=2,max=255"`
	Latitude           *float64 `json:"latitude" validate:"required,latitude"`
	Longitude          *float64 `json:"longitude" validate:"required,longitude"`
	JurisdictionRadius int      `json:"jurisdiction_radius,omitempty" validate:"omitempty,gt=0"`
}

// TouristResponse DTO для ответа с информацией о туристе
// @Description DTO для ответа с информацией о туристе
type TouristResponse struct {
	ID               int64      `json:"id"`
	TouristID        string     `json:"tourist_id"`
	Name             string     `json:"name"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
	SafetyScore      int        `json:"safety_score"`
	ValidFrom        time.Time  `json:"valid_from"`
	ValidTo          time.Time  `json:"valid_to"`
}

// RiskZoneResponse DTO для ответа с информацией о зоне риска
// @Description DTO для ответа с информацией о зоне риска
type RiskZoneResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	CreatedAt    time.Time `json:"created_at"`
}

// PoliceStationResponse DTO для ответа с информацией об участке
// @Description DTO для ответа с информацией об участке
type PoliceStationResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	JurisdictionRadius int     `json:"jurisdiction_radius"`
}

// AlertResponse DTO для ответа с информацией об оповещении
// @Description DTO для ответа с информацией об оповещении
type AlertResponse struct {
	ID             uuid.UUID       `json:"id"`
	TouristID      int64           `json:"tourist_id"`
	StationID      int64           `json:"station_id"`
	ZoneName       string          `json:"zone_name"`
	Severity       models.Severity `json:"severity"`
	DistanceMeters int             `json:"distance_meters"`
	CreatedAt      time.Time       `json:"created_at"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	ActiveTourists int `json:"active_tourists"`
}
