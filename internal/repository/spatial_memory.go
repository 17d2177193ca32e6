package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
	"github.com/shenikar/tourist_safety_system/pkg/geo"
)

// MemorySpatialIndex - реализация SpatialIndex полным перебором справочников
// с вычислением расстояний на клиенте. Поведенчески эквивалентна
// PostgresSpatialIndex, отличается только стоимостью.
type MemorySpatialIndex struct {
	zones    service.RiskZoneRepository
	stations service.PoliceStationRepository
}

func NewMemorySpatialIndex(zones service.RiskZoneRepository, stations service.PoliceStationRepository) service.SpatialIndex {
	return &MemorySpatialIndex{
		zones:    zones,
		stations: stations,
	}
}

// NearestZone возвращает ближайшую зону риска. При равных расстояниях
// побеждает первая встреченная в порядке перебора.
func (s *MemorySpatialIndex) NearestZone(ctx context.Context, lat, lng float64) (*models.RiskZone, float64, error) {
	zones, err := s.zones.List(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list risk zones for scan: %w", err)
	}

	var nearest *models.RiskZone
	var minDist float64
	for _, zone := range zones {
		dist := geo.Distance(lat, lng, zone.Latitude, zone.Longitude)
		if nearest == nil || dist < minDist {
			nearest = zone
			minDist = dist
			if dist == 0 {
				break
			}
		}
	}
	if nearest == nil {
		return nil, 0, nil
	}
	return nearest, minDist, nil
}

// CoveringStations возвращает участки, покрывающие точку, ближайшие первыми
func (s *MemorySpatialIndex) CoveringStations(ctx context.Context, lat, lng float64) ([]models.StationDistance, error) {
	stations, err := s.stations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list police stations for scan: %w", err)
	}

	covering := make([]models.StationDistance, 0)
	for _, station := range stations {
		dist := geo.Distance(lat, lng, station.Latitude, station.Longitude)
		if dist <= float64(station.JurisdictionRadius) {
			covering = append(covering, models.StationDistance{Station: station, Distance: dist})
		}
	}

	sort.SliceStable(covering, func(i, j int) bool {
		return covering[i].Distance < covering[j].Distance
	})
	return covering, nil
}

// NearestCoveringStation возвращает ближайший покрывающий участок
func (s *MemorySpatialIndex) NearestCoveringStation(ctx context.Context, lat, lng float64) (*models.PoliceStation, error) {
	covering, err := s.CoveringStations(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	if len(covering) == 0 {
		return nil, nil
	}
	return covering[0].Station, nil
}
