package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// RiskZoneRepository определяет контракт для работы с бд зон риска.
// GetByID возвращает nil без ошибки, если зона не найдена; методы кеша
// работают со списком зон как с единым справочником.
type RiskZoneRepository interface {
	Create(ctx context.Context, zone *models.RiskZone) error
	GetByID(ctx context.Context, id int64) (*models.RiskZone, error)
	List(ctx context.Context) ([]*models.RiskZone, error)
	Delete(ctx context.Context, id int64) error
	GetZonesFromCache(ctx context.Context) ([]*models.RiskZone, error)
	SetZonesCache(ctx context.Context, zones []*models.RiskZone) error
	InvalidateZonesCache(ctx context.Context) error
}

// RiskZoneService определяет контракт управления справочником зон риска
type RiskZoneService interface {
	CreateZone(ctx context.Context, zone *models.RiskZone) error
	GetZone(ctx context.Context, id int64) (*models.RiskZone, error)
	ListZones(ctx context.Context) ([]*models.RiskZone, error)
	DeleteZone(ctx context.Context, id int64) error
}

type riskZoneService struct {
	repo   RiskZoneRepository
	logger *logrus.Logger
}

func NewRiskZoneService(repo RiskZoneRepository, logger *logrus.Logger) RiskZoneService {
	return &riskZoneService{
		repo:   repo,
		logger: logger,
	}
}

// CreateZone создает зону риска
func (s *riskZoneService) CreateZone(ctx context.Context, zone *models.RiskZone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk_zone",
		"method":  "CreateZone",
		"name":    zone.Name,
	})

	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create risk zone in repository")
		return fmt.Errorf("service: could not create risk zone: %w", err)
	}

	if err := s.repo.InvalidateZonesCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate risk zones cache")
	}

	log.WithField("zone_id", zone.ID).Info("Risk zone created successfully")
	return nil
}

// GetZone возвращает зону риска по ID
func (s *riskZoneService) GetZone(ctx context.Context, id int64) (*models.RiskZone, error) {
	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get risk zone: %w", err)
	}
	if zone == nil {
		return nil, fmt.Errorf("service: risk zone %d: %w", id, ErrZoneNotFound)
	}
	return zone, nil
}

// ListZones возвращает все зоны риска, используя Redis-кеш справочника
func (s *riskZoneService) ListZones(ctx context.Context) ([]*models.RiskZone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk_zone",
		"method":  "ListZones",
	})

	cached, err := s.repo.GetZonesFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read risk zones cache")
	}
	if cached != nil {
		return cached, nil
	}

	zones, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list risk zones from repository")
		return nil, fmt.Errorf("service: could not list risk zones: %w", err)
	}

	if err := s.repo.SetZonesCache(ctx, zones); err != nil {
		log.WithError(err).Warn("Failed to set risk zones cache")
	}
	return zones, nil
}

// DeleteZone удаляет зону риска
func (s *riskZoneService) DeleteZone(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "risk_zone",
		"method":  "DeleteZone",
		"zone_id": id,
	})

	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("service: could not get risk zone: %w", err)
	}
	if zone == nil {
		log.Warn("Attempted to delete a non-existent risk zone")
		return fmt.Errorf("service: risk zone %d not found for delete: %w", id, ErrZoneNotFound)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to delete risk zone in repository")
		return fmt.Errorf("service: could not delete risk zone: %w", err)
	}

	if err := s.repo.InvalidateZonesCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate risk zones cache")
	}

	log.Info("Risk zone deleted successfully")
	return nil
}
