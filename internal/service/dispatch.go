package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
)

// Типы событий, рассылаемых подписанным участкам
const (
	EventAlert          = "alert"
	EventTouristUpdate  = "tourist_update"
	EventPanicAlert     = "panic-alert"
	EventTouristRemoved = "tourist_removed"
)

// AlertDispatcher доставляет событие всем текущим подписчикам участка.
// Доставка best-effort: отключенный участок событие не получит.
type AlertDispatcher interface {
	Publish(stationID int64, event string, payload any)
}

// TouristUpdateEvent - живое обновление позиции туриста для участка
type TouristUpdateEvent struct {
	TouristID   string    `json:"tourist_id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated time.Time `json:"last_updated"`
}

// AlertEvent - критическое оповещение для участка
type AlertEvent struct {
	ID             uuid.UUID       `json:"id"`
	TouristID      string          `json:"tourist_id"`
	TouristName    string          `json:"tourist_name"`
	ZoneName       string          `json:"zone_name"`
	Severity       models.Severity `json:"severity"`
	DistanceMeters int             `json:"distance_meters"`
	CreatedAt      time.Time       `json:"created_at"`
}

// PanicAlertEvent - событие тревожной кнопки для ближайшего участка
type PanicAlertEvent struct {
	ID          uuid.UUID       `json:"id"`
	TouristID   string          `json:"tourist_id"`
	TouristName string          `json:"tourist_name"`
	Latitude    float64         `json:"latitude"`
	Longitude   float64         `json:"longitude"`
	Severity    models.Severity `json:"severity"`
	CreatedAt   time.Time       `json:"created_at"`
}

// TouristRemovedEvent - уведомление об уходе туриста с карты участка
type TouristRemovedEvent struct {
	TouristID string `json:"tourist_id"`
}
