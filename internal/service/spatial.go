package service

import (
	"context"

	"github.com/shenikar/tourist_safety_system/internal/models"
)

// SpatialIndex отвечает на геозапросы по зонам риска и участкам.
// Отсутствие совпадений не является ошибкой: возвращается nil или пустой срез.
// Реализации взаимозаменяемы: полный перебор в памяти или запрос к PostGIS.
type SpatialIndex interface {
	// NearestZone возвращает ближайшую зону риска и расстояние до ее центра в метрах
	NearestZone(ctx context.Context, lat, lng float64) (*models.RiskZone, float64, error)

	// CoveringStations возвращает участки, чей радиус ответственности покрывает
	// точку, отсортированные по возрастанию расстояния
	CoveringStations(ctx context.Context, lat, lng float64) ([]models.StationDistance, error)

	// NearestCoveringStation возвращает ближайший покрывающий участок
	NearestCoveringStation(ctx context.Context, lat, lng float64) (*models.PoliceStation, error)
}
