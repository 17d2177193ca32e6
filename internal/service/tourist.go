package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/sirupsen/logrus"
)

// TouristRepository определяет контракт для работы с бд туристов.
// GetByTouristID возвращает nil без ошибки, если турист не найден.
type TouristRepository interface {
	Create(ctx context.Context, tourist *models.Tourist) error
	GetByTouristID(ctx context.Context, touristID string) (*models.Tourist, error)
	List(ctx context.Context) ([]*models.Tourist, error)
	ListWithLocation(ctx context.Context) ([]*models.Tourist, error)
	UpdatePosition(ctx context.Context, id int64, lat, lng float64, updatedAt time.Time) error
	UpdateSafetyScore(ctx context.Context, id int64, score int) error
	ListStaleSince(ctx context.Context, cutoff time.Time) ([]*models.Tourist, error)
	ClearPosition(ctx context.Context, id int64) error
}

// CreateTouristInput - данные регистрации туриста
type CreateTouristInput struct {
	TouristID        string
	Name             string
	EmergencyContact string
	Latitude         *float64
	Longitude        *float64
	ValidFrom        time.Time
	ValidTo          time.Time
}

// TouristService определяет контракт для бизнес-логики управления туристами
type TouristService interface {
	Create(ctx context.Context, input CreateTouristInput) (*models.Tourist, error)
	List(ctx context.Context) ([]*models.Tourist, error)
	GetByTouristID(ctx context.Context, touristID string) (*models.Tourist, error)
	AdjustSafetyScore(ctx context.Context, touristID string, delta int) (*models.Tourist, error)
	StartInactivitySweeper(ctx context.Context)
}

type touristService struct {
	repo       TouristRepository
	spatial    SpatialIndex
	dispatcher AlertDispatcher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewTouristService(repo TouristRepository, spatial SpatialIndex, dispatcher AlertDispatcher, logger *logrus.Logger, cfg *config.Config) TouristService {
	return &touristService{
		repo:       repo,
		spatial:    spatial,
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// Create регистрирует туриста. Повторная регистрация с тем же внешним ID
// возвращает существующую запись.
func (s *touristService) Create(ctx context.Context, input CreateTouristInput) (*models.Tourist, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "tourist",
		"method":     "Create",
		"tourist_id": input.TouristID,
	})

	existing, err := s.repo.GetByTouristID(ctx, input.TouristID)
	if err != nil {
		log.WithError(err).Error("Failed to look up tourist")
		return nil, fmt.Errorf("service: could not look up tourist: %w", err)
	}
	if existing != nil {
		log.Info("Tourist already registered")
		return existing, nil
	}

	tourist := &models.Tourist{
		TouristID:        input.TouristID,
		Name:             input.Name,
		EmergencyContact: input.EmergencyContact,
		Latitude:         input.Latitude,
		Longitude:        input.Longitude,
		ValidFrom:        input.ValidFrom,
		ValidTo:          input.ValidTo,
	}
	if input.Latitude != nil && input.Longitude != nil {
		now := time.Now()
		tourist.LastUpdated = &now
	}

	if err := s.repo.Create(ctx, tourist); err != nil {
		log.WithError(err).Error("Failed to create tourist in repository")
		return nil, fmt.Errorf("service: could not create tourist: %w", err)
	}

	log.WithField("id", tourist.ID).Info("Tourist registered successfully")
	return tourist, nil
}

// List возвращает всех зарегистрированных туристов
func (s *touristService) List(ctx context.Context) ([]*models.Tourist, error) {
	tourists, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list tourists: %w", err)
	}
	return tourists, nil
}

// GetByTouristID возвращает туриста по внешнему ID
func (s *touristService) GetByTouristID(ctx context.Context, touristID string) (*models.Tourist, error) {
	tourist, err := s.repo.GetByTouristID(ctx, touristID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get tourist: %w", err)
	}
	if tourist == nil {
		return nil, fmt.Errorf("service: tourist %s: %w", touristID, ErrTouristNotFound)
	}
	return tourist, nil
}

// AdjustSafetyScore изменяет индекс безопасности туриста на delta,
// не опуская его ниже нуля
func (s *touristService) AdjustSafetyScore(ctx context.Context, touristID string, delta int) (*models.Tourist, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "tourist",
		"method":     "AdjustSafetyScore",
		"tourist_id": touristID,
		"delta":      delta,
	})

	tourist, err := s.repo.GetByTouristID(ctx, touristID)
	if err != nil {
		return nil, fmt.Errorf("service: could not get tourist: %w", err)
	}
	if tourist == nil {
		return nil, fmt.Errorf("service: tourist %s: %w", touristID, ErrTouristNotFound)
	}

	score := tourist.SafetyScore + delta
	if score < 0 {
		score = 0
	}
	if err := s.repo.UpdateSafetyScore(ctx, tourist.ID, score); err != nil {
		log.WithError(err).Error("Failed to update safety score")
		return nil, fmt.Errorf("service: could not update safety score: %w", err)
	}
	tourist.SafetyScore = score

	log.WithField("safety_score", score).Info("Safety score updated")
	return tourist, nil
}

// StartInactivitySweeper запускает фоновую уборку: туристы, не обновлявшие
// позицию дольше TouristInactiveAfter, снимаются с живой карты, а покрывающим
// участкам рассылается tourist_removed.
func (s *touristService) StartInactivitySweeper(ctx context.Context) {
	s.logger.Info("Starting tourist inactivity sweeper...")
	go func() {
		ticker := time.NewTicker(s.cfg.SweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info("Stopping tourist inactivity sweeper.")
				return
			case <-ticker.C:
				s.sweepInactive(ctx)
			}
		}
	}()
}

func (s *touristService) sweepInactive(ctx context.Context) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "tourist",
		"method":  "sweepInactive",
	})

	cutoff := time.Now().Add(-s.cfg.TouristInactiveAfter)
	stale, err := s.repo.ListStaleSince(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to list inactive tourists")
		return
	}

	for _, t := range stale {
		if !t.HasLocation() {
			continue
		}
		covering, err := s.spatial.CoveringStations(ctx, *t.Latitude, *t.Longitude)
		if err != nil {
			log.WithError(err).WithField("tourist_id", t.TouristID).Error("Failed to find covering stations for removal")
			continue
		}
		for _, sd := range covering {
			s.dispatcher.Publish(sd.Station.ID, EventTouristRemoved, TouristRemovedEvent{TouristID: t.TouristID})
		}
		if err := s.repo.ClearPosition(ctx, t.ID); err != nil {
			log.WithError(err).WithField("tourist_id", t.TouristID).Error("Failed to clear tourist position")
			continue
		}
		log.WithField("tourist_id", t.TouristID).Info("Inactive tourist removed from live map")
	}
}
