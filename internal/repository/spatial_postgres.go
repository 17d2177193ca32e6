package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

// PostgresSpatialIndex - реализация SpatialIndex, вычисляющая расстояния
// и покрытие на стороне PostGIS
type PostgresSpatialIndex struct {
	db *pgxpool.Pool
}

func NewPostgresSpatialIndex(db *pgxpool.Pool) service.SpatialIndex {
	return &PostgresSpatialIndex{db: db}
}

// NearestZone возвращает ближайшую зону риска и расстояние до ее центра.
// При равных расстояниях порядок определяется планом запроса.
func (s *PostgresSpatialIndex) NearestZone(ctx context.Context, lat, lng float64) (*models.RiskZone, float64, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			created_at,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
		FROM risk_zones
		ORDER BY distance ASC
		LIMIT 1;
	`
	zone := &models.RiskZone{}
	var distance float64
	err := s.db.QueryRow(ctx, query, lng, lat).Scan(
		&zone.ID,
		&zone.Name,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.CreatedAt,
		&distance,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to find nearest risk zone: %w", err)
	}
	return zone, distance, nil
}

// CoveringStations возвращает участки, покрывающие точку, ближайшие первыми
func (s *PostgresSpatialIndex) CoveringStations(ctx context.Context, lat, lng float64) ([]models.StationDistance, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			jurisdiction_radius,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) as distance
		FROM police_stations
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			jurisdiction_radius
		)
		ORDER BY distance ASC;
	`
	rows, err := s.db.Query(ctx, query, lng, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find covering stations: %w", err)
	}
	defer rows.Close()

	covering := make([]models.StationDistance, 0)
	for rows.Next() {
		station := &models.PoliceStation{}
		var distance float64
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Latitude,
			&station.Longitude,
			&station.JurisdictionRadius,
			&distance,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan covering station row: %w", err)
		}
		covering = append(covering, models.StationDistance{Station: station, Distance: distance})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error covering stations iteration: %w", err)
	}
	return covering, nil
}

// NearestCoveringStation возвращает ближайший покрывающий участок, nil если
// точка вне зоны ответственности всех участков
func (s *PostgresSpatialIndex) NearestCoveringStation(ctx context.Context, lat, lng float64) (*models.PoliceStation, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			jurisdiction_radius
		FROM police_stations
		WHERE ST_DWithin(
			location,
			ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			jurisdiction_radius
		)
		ORDER BY ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) ASC
		LIMIT 1;
	`
	station := &models.PoliceStation{}
	err := s.db.QueryRow(ctx, query, lng, lat).Scan(
		&station.ID,
		&station.Name,
		&station.Latitude,
		&station.Longitude,
		&station.JurisdictionRadius,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find nearest covering station: %w", err)
	}
	return station, nil
}
