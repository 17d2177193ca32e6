package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type TouristRepository struct {
	db *pgxpool.Pool
}

func NewTouristRepository(db *pgxpool.Pool) service.TouristRepository {
	return &TouristRepository{db: db}
}

const touristColumns = `
	id,
	tourist_id,
	name,
	COALESCE(emergency_contact, ''),
	ST_Y(location::geometry) as latitude,
	ST_X(location::geometry) as longitude,
	last_updated,
	safety_score,
	valid_from,
	valid_to
`

func scanTourist(row pgx.Row) (*models.Tourist, error) {
	t := &models.Tourist{}
	err := row.Scan(
		&t.ID,
		&t.TouristID,
		&t.Name,
		&t.EmergencyContact,
		&t.Latitude,
		&t.Longitude,
		&t.LastUpdated,
		&t.SafetyScore,
		&t.ValidFrom,
		&t.ValidTo,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create создает новую запись о туристе в бд. Значения по умолчанию
// (индекс безопасности, окно валидности) присваивает база.
func (r *TouristRepository) Create(ctx context.Context, tourist *models.Tourist) error {
	query := `
		INSERT INTO tourists (tourist_id, name, emergency_contact, location, last_updated)
		VALUES ($1, $2, NULLIF($3, ''), CASE WHEN $4::float8 IS NULL THEN NULL ELSE ST_SetSRID(ST_MakePoint($5, $4), 4326)::geography END, $6)
		RETURNING id, safety_score, valid_from, valid_to;
	`
	err := r.db.QueryRow(ctx, query,
		tourist.TouristID,
		tourist.Name,
		tourist.EmergencyContact,
		tourist.Latitude,
		tourist.Longitude,
		tourist.LastUpdated,
	).Scan(&tourist.ID, &tourist.SafetyScore, &tourist.ValidFrom, &tourist.ValidTo)
	if err != nil {
		return fmt.Errorf("failed to create tourist: %w", err)
	}
	return nil
}

// GetByTouristID возвращает туриста по внешнему ID, nil если не найден
func (r *TouristRepository) GetByTouristID(ctx context.Context, touristID string) (*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists WHERE tourist_id = $1;`

	tourist, err := scanTourist(r.db.QueryRow(ctx, query, touristID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tourist by tourist_id: %w", err)
	}
	return tourist, nil
}

// List возвращает всех туристов
func (r *TouristRepository) List(ctx context.Context) ([]*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists ORDER BY id;`
	return r.queryTourists(ctx, query)
}

// ListWithLocation возвращает туристов с известной позицией
func (r *TouristRepository) ListWithLocation(ctx context.Context) ([]*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists WHERE location IS NOT NULL ORDER BY id;`
	return r.queryTourists(ctx, query)
}

// ListStaleSince возвращает туристов с позицией, не обновлявшейся после cutoff
func (r *TouristRepository) ListStaleSince(ctx context.Context, cutoff time.Time) ([]*models.Tourist, error) {
	query := `SELECT ` + touristColumns + ` FROM tourists WHERE location IS NOT NULL AND last_updated < $1;`
	return r.queryTourists(ctx, query, cutoff)
}

func (r *TouristRepository) queryTourists(ctx context.Context, query string, args ...any) ([]*models.Tourist, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tourists: %w", err)
	}
	defer rows.Close()

	tourists := make([]*models.Tourist, 0)
	for rows.Next() {
		tourist, err := scanTourist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tourist row: %w", err)
		}
		tourists = append(tourists, tourist)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error tourists iteration: %w", err)
	}
	return tourists, nil
}

// UpdatePosition обновляет последнюю известную позицию туриста
func (r *TouristRepository) UpdatePosition(ctx context.Context, id int64, lat, lng float64, updatedAt time.Time) error {
	query := `
		UPDATE tourists SET
			location = ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
			last_updated = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, lng, lat, updatedAt, id)
	if err != nil {
		return fmt.Errorf("failed to update tourist position: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tourist with id %d not found for position update", id)
	}
	return nil
}

// UpdateSafetyScore устанавливает индекс безопасности туриста
func (r *TouristRepository) UpdateSafetyScore(ctx context.Context, id int64, score int) error {
	query := `UPDATE tourists SET safety_score = $1 WHERE id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, score, id)
	if err != nil {
		return fmt.Errorf("failed to update safety score: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("tourist with id %d not found for safety score update", id)
	}
	return nil
}

// ClearPosition убирает туриста с живой карты, сохраняя историю позиций
func (r *TouristRepository) ClearPosition(ctx context.Context, id int64) error {
	query := `UPDATE tourists SET location = NULL WHERE id = $1;`
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("failed to clear tourist position: %w", err)
	}
	return nil
}
