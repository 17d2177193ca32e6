package models

import (
	"time"
)

// Location представляет одну запись истории позиций туриста.
// Записи только добавляются и никогда не изменяются.
type Location struct {
	ID        int64     `json:"id"`
	TouristID int64     `json:"tourist_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}
