package models

// PoliceStation представляет участок с круговой зоной ответственности
type PoliceStation struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	JurisdictionRadius int     `json:"jurisdiction_radius"` // метры
}

// StationDistance - участок вместе с расстоянием до проверяемой точки
type StationDistance struct {
	Station  *PoliceStation `json:"station"`
	Distance float64        `json:"distance_meters"`
}
