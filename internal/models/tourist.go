package models

import (
	"time"
)

// Tourist представляет зарегистрированного туриста с цифровым ID
type Tourist struct {
	ID               int64      `json:"id"`
	TouristID        string     `json:"tourist_id"` // внешний идентификатор, например T-001
	Name             string     `json:"name"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	LastUpdated      *time.Time `json:"last_updated,omitempty"`
	SafetyScore      int        `json:"safety_score"`
	ValidFrom        time.Time  `json:"valid_from"`
	ValidTo          time.Time  `json:"valid_to"`
}

// HasLocation сообщает, известна ли последняя позиция туриста
func (t *Tourist) HasLocation() bool {
	return t.Latitude != nil && t.Longitude != nil
}
