package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// PoliceStationRepository определяет контракт для работы с бд участков.
// GetByID возвращает nil без ошибки, если участок не найден.
type PoliceStationRepository interface {
	Create(ctx context.Context, station *models.PoliceStation) error
	GetByID(ctx context.Context, id int64) (*models.PoliceStation, error)
	List(ctx context.Context) ([]*models.PoliceStation, error)
	TouristsForStation(ctx context.Context, stationID int64) ([]*models.Tourist, error)
}

// PoliceStationService определяет контракт управления справочником участков
type PoliceStationService interface {
	CreateStation(ctx context.Context, station *models.PoliceStation) error
	GetStation(ctx context.Context, id int64) (*models.PoliceStation, error)
	ListStations(ctx context.Context) ([]*models.PoliceStation, error)
	Nearby(ctx context.Context, lat, lng float64) ([]models.StationDistance, error)
	TouristsInJurisdiction(ctx context.Context, stationID int64) ([]*models.Tourist, error)
}

type policeStationService struct {
	repo    PoliceStationRepository
	spatial SpatialIndex
	logger  *logrus.Logger
}

func NewPoliceStationService(repo PoliceStationRepository, spatial SpatialIndex, logger *logrus.Logger) PoliceStationService {
	return &policeStationService{
		repo:    repo,
		spatial: spatial,
		logger:  logger,
	}
}

// CreateStation создает участок
func (s *policeStationService) CreateStation(ctx context.Context, station *models.PoliceStation) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "police_station",
		"method":  "CreateStation",
		"name":    station.Name,
	})

	if err := s.repo.Create(ctx, station); err != nil {
		log.WithError(err).Error("Failed to create police station in repository")
		return fmt.Errorf("service: could not create police station: %w", err)
	}

	log.WithField("station_id", station.ID).Info("Police station created successfully")
	return nil
}

// GetStation возвращает участок по ID
func (s *policeStationService) GetStation(ctx context.Context, id int64) (*models.PoliceStation, error) {
	station, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get police station: %w", err)
	}
	if station == nil {
		return nil, fmt.Errorf("service: police station %d: %w", id, ErrStationNotFound)
	}
	return station, nil
}

// ListStations возвращает все участки
func (s *policeStationService) ListStations(ctx context.Context) ([]*models.PoliceStation, error) {
	stations, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list police stations: %w", err)
	}
	return stations, nil
}

// Nearby возвращает все участки, покрывающие точку, ближайшие первыми.
// Намеренно шире, чем выбор одного участка при эскалации: справочная
// выдача показывает полный список юрисдикций, а не только победителя.
func (s *policeStationService) Nearby(ctx context.Context, lat, lng float64) ([]models.StationDistance, error) {
	covering, err := s.spatial.CoveringStations(ctx, lat, lng)
	if err != nil {
		return nil, fmt.Errorf("service: could not find nearby stations: %w", err)
	}
	return covering, nil
}

// TouristsInJurisdiction возвращает туристов, для которых данный участок
// является ближайшим
func (s *policeStationService) TouristsInJurisdiction(ctx context.Context, stationID int64) ([]*models.Tourist, error) {
	station, err := s.repo.GetByID(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get police station: %w", err)
	}
	if station == nil {
		return nil, fmt.Errorf("service: police station %d: %w", stationID, ErrStationNotFound)
	}

	tourists, err := s.repo.TouristsForStation(ctx, stationID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list tourists for station: %w", err)
	}
	return tourists, nil
}
