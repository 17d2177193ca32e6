package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

const riskZonesCacheKey = "risk_zones:all"

type RiskZoneRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewRiskZoneRepository(db *pgxpool.Pool, redisClient *redis.Client) service.RiskZoneRepository {
	return &RiskZoneRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create создает новую запись о зоне риска в бд
func (r *RiskZoneRepository) Create(ctx context.Context, zone *models.RiskZone) error {
	query := `
		INSERT INTO risk_zones (name, location, radius_meters)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Longitude,
		zone.Latitude,
		zone.RadiusMeters,
	).Scan(&zone.ID, &zone.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create risk zone: %w", err)
	}
	return nil
}

// GetByID возвращает зону риска по ID, nil если не найдена
func (r *RiskZoneRepository) GetByID(ctx context.Context, id int64) (*models.RiskZone, error) {
	zone := &models.RiskZone{}
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			created_at
		FROM risk_zones
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&zone.ID,
		&zone.Name,
		&zone.Latitude,
		&zone.Longitude,
		&zone.RadiusMeters,
		&zone.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get risk zone by id: %w", err)
	}
	return zone, nil
}

// List возвращает все зоны риска
func (r *RiskZoneRepository) List(ctx context.Context) ([]*models.RiskZone, error) {
	query := `
		SELECT
			id,
			name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			created_at
		FROM risk_zones
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list risk zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.RiskZone, 0)
	for rows.Next() {
		zone := &models.RiskZone{}
		err := rows.Scan(
			&zone.ID,
			&zone.Name,
			&zone.Latitude,
			&zone.Longitude,
			&zone.RadiusMeters,
			&zone.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan risk zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error risk zones iteration: %w", err)
	}
	return zones, nil
}

// Delete удаляет зону риска
func (r *RiskZoneRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM risk_zones WHERE id = $1;`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete risk zone: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("risk zone with id %d not found for delete", id)
	}
	return nil
}

// GetZonesFromCache пытается получить справочник зон из Redis
func (r *RiskZoneRepository) GetZonesFromCache(ctx context.Context) ([]*models.RiskZone, error) {
	val, err := r.redisClient.Get(ctx, riskZonesCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get risk zones from cache: %w", err)
	}

	zones := make([]*models.RiskZone, 0)
	if err := json.Unmarshal(val, &zones); err != nil {
		return nil, fmt.Errorf("failed to unmarshal risk zones from cache: %w", err)
	}
	return zones, nil
}

// SetZonesCache сохраняет справочник зон в Redis
func (r *RiskZoneRepository) SetZonesCache(ctx context.Context, zones []*models.RiskZone) error {
	val, err := json.Marshal(zones)
	if err != nil {
		return fmt.Errorf("failed to marshal risk zones for cache: %w", err)
	}
	// Устанавливаем срок жизни кэша, например, 5 минут
	if err := r.redisClient.Set(ctx, riskZonesCacheKey, val, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to set risk zones in cache: %w", err)
	}
	return nil
}

// InvalidateZonesCache удаляет справочник зон из Redis кэша
func (r *RiskZoneRepository) InvalidateZonesCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, riskZonesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate risk zones cache: %w", err)
	}
	return nil
}
