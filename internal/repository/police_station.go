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

type PoliceStationRepository struct {
	db *pgxpool.Pool
}

func NewPoliceStationRepository(db *pgxpool.Pool) service.PoliceStationRepository {
	return &PoliceStationRepository{db: db}
}

// Create создает новую запись об участке в бд
func (r *PoliceStationRepository) Create(ctx context.Context, station *models.PoliceStation) error {
	query := `
		INSERT INTO police_stations (name, location, jurisdiction_radius)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4) RETURNING id;
	`
	radius := station.JurisdictionRadius
	if radius <= 0 {
		radius = 5000
	}
	err := r.db.QueryRow(ctx, query,
		station.Name,
		station.Longitude,
		station.Latitude,
		radius,
	).Scan(&station.ID)
	if err != nil {
		return fmt.Errorf("failed to create police station: %w", err)
	}
	station.JurisdictionRadius = radius
	return nil
}

// GetByID возвращает участок по ID, nil если не найден
func (r *PoliceStationRepository) GetByID(ctx context.Context, id int64) (*models.PoliceStation, error) {
	station := &models.PoliceStation{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			jurisdiction_radius
		FROM police_stations
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
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
		return nil, fmt.Errorf("failed to get police station by id: %w", err)
	}
	return station, nil
}

// List возвращает все участки
func (r *PoliceStationRepository) List(ctx context.Context) ([]*models.PoliceStation, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			jurisdiction_radius
		FROM police_stations
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list police stations: %w", err)
	}
	defer rows.Close()

	stations := make([]*models.PoliceStation, 0)
	for rows.Next() {
		station := &models.PoliceStation{}
		err := rows.Scan(
			&station.ID,
			&station.Name,
			&station.Latitude,
			&station.Longitude,
			&station.JurisdictionRadius,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan police station row: %w", err)
		}
		stations = append(stations, station)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error police stations iteration: %w", err)
	}
	return stations, nil
}

// TouristsForStation возвращает туристов, для которых данный участок
// является ближайшим
func (r *PoliceStationRepository) TouristsForStation(ctx context.Context, stationID int64) ([]*models.Tourist, error) {
	query := `
		SELECT ` + touristColumns + `
		FROM tourists
		WHERE location IS NOT NULL
		AND (
			SELECT ps.id
			FROM police_stations ps
			ORDER BY ST_Distance(ps.location, tourists.location) ASC
			LIMIT 1
		) = $1;
	`
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tourists for station: %w", err)
	}
	defer rows.Close()

	tourists := make([]*models.Tourist, 0)
	for rows.Next() {
		tourist, err := scanTourist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tourist row in TouristsForStation: %w", err)
		}
		tourists = append(tourists, tourist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tourists iteration in TouristsForStation: %w", err)
	}
	return tourists, nil
}
