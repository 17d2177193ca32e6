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

type LocationRepository struct {
	db *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) service.LocationRepository {
	return &LocationRepository{db: db}
}

// Save сохраняет запись истории позиций. Таблица append-only: записи
// никогда не обновляются и не удаляются.
func (r *LocationRepository) Save(ctx context.Context, loc *models.Location) error {
	query := `
		INSERT INTO locations (tourist_id, location, recorded_at)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		loc.TouristID,
		loc.Longitude,
		loc.Latitude,
		loc.Timestamp,
	).Scan(&loc.ID)
	if err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// GetReporterStats возвращает количество уникальных туристов, приславших
// позицию за последние minutes минут
func (r *LocationRepository) GetReporterStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT tourist_id)
		FROM locations
		WHERE recorded_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	err := r.db.QueryRow(ctx, query, minutes).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get location reporter stats: %w", err)
	}
	return count, nil
}
