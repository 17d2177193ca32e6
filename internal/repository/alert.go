package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) service.AlertRepository {
	return &AlertRepository{db: db}
}

// Create сохраняет оповещение. Таблица append-only: записи никогда
// не обновляются и не удаляются.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (tourist_id, station_id, zone_name, severity, distance_meters)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.TouristID,
		alert.StationID,
		alert.ZoneName,
		alert.Severity,
		alert.DistanceMeters,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// ListByStation возвращает оповещения участка, новые первыми
func (r *AlertRepository) ListByStation(ctx context.Context, stationID int64) ([]*models.Alert, error) {
	query := `
		SELECT
			id,
			tourist_id,
			station_id,
			zone_name,
			severity,
			distance_meters,
			created_at
		FROM alerts
		WHERE station_id = $1
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by station: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.TouristID,
			&alert.StationID,
			&alert.ZoneName,
			&alert.Severity,
			&alert.DistanceMeters,
			&alert.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error alerts iteration: %w", err)
	}
	return alerts, nil
}
