package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// AlertRepository определяет контракт для работы с бд оповещений
type AlertRepository interface {
	Create(ctx context.Context, alert *models.Alert) error
	ListByStation(ctx context.Context, stationID int64) ([]*models.Alert, error)
}

// AlertService определяет контракт журнала оповещений. CreateAlert - единственный
// путь, которым любое оповещение (критическое или panic) попадает в систему.
type AlertService interface {
	CreateAlert(ctx context.Context, tourist *models.Tourist, zoneName string, severity models.Severity, distanceMeters int, lat, lng float64) (*models.Alert, error)
	ListByStation(ctx context.Context, stationID int64) ([]*models.Alert, error)
}

type alertService struct {
	repo    AlertRepository
	spatial SpatialIndex
	logger  *logrus.Logger
}

func NewAlertService(repo AlertRepository, spatial SpatialIndex, logger *logrus.Logger) AlertService {
	return &alertService{
		repo:    repo,
		spatial: spatial,
		logger:  logger,
	}
}

// CreateAlert создает оповещение, закрепляя его за ближайшим участком,
// покрывающим точку. Возвращает ErrNoJurisdiction, если точка вне зоны
// ответственности всех участков - оповещение при этом не создается.
func (s *alertService) CreateAlert(ctx context.Context, tourist *models.Tourist, zoneName string, severity models.Severity, distanceMeters int, lat, lng float64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "alert",
		"method":     "CreateAlert",
		"tourist_id": tourist.TouristID,
		"severity":   severity,
	})

	station, err := s.spatial.NearestCoveringStation(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to resolve covering station")
		return nil, fmt.Errorf("service: could not resolve covering station: %w", err)
	}
	if station == nil {
		log.Warn("No police station covers the alert location")
		return nil, ErrNoJurisdiction
	}

	alert := &models.Alert{
		TouristID:      tourist.ID,
		StationID:      station.ID,
		ZoneName:       zoneName,
		Severity:       severity,
		DistanceMeters: distanceMeters,
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return nil, fmt.Errorf("service: could not create alert: %w", err)
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, nil
}

// ListByStation возвращает оповещения участка, новые первыми
func (s *alertService) ListByStation(ctx context.Context, stationID int64) ([]*models.Alert, error) {
	alerts, err := s.repo.ListByStation(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}
	return alerts, nil
}
