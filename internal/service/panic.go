package service

import (
	"context"
	"fmt"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// panicZoneName - имя зоны, записываемое в panic-оповещения
const panicZoneName = "SOS/Panic Event"

// PanicService определяет контракт немедленной эскалации по тревожной кнопке
type PanicService interface {
	TriggerPanic(ctx context.Context, touristID string, lat, lng float64) (*models.Alert, error)
}

type panicService struct {
	tourists   TouristRepository
	alerts     AlertService
	dispatcher AlertDispatcher
	webhooks   webhook.WebhookPublisher
	logger     *logrus.Logger
}

func NewPanicService(
	tourists TouristRepository,
	alerts AlertService,
	dispatcher AlertDispatcher,
	webhooks webhook.WebhookPublisher,
	logger *logrus.Logger,
) PanicService {
	return &panicService{
		tourists:   tourists,
		alerts:     alerts,
		dispatcher: dispatcher,
		webhooks:   webhooks,
		logger:     logger,
	}
}

// TriggerPanic создает PANIC_BUTTON оповещение, минуя окно подавления,
// и уведомляет только ближайший покрывающий участок. Отсутствие туриста или
// покрывающего участка - фатальные ошибки запроса.
func (s *panicService) TriggerPanic(ctx context.Context, touristID string, lat, lng float64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "panic",
		"method":     "TriggerPanic",
		"tourist_id": touristID,
	})
	log.Info("Panic trigger received")

	tourist, err := s.tourists.GetByTouristID(ctx, touristID)
	if err != nil {
		log.WithError(err).Error("Failed to look up tourist")
		return nil, fmt.Errorf("service: could not look up tourist: %w", err)
	}
	if tourist == nil {
		log.Warn("Panic trigger for unknown tourist")
		return nil, fmt.Errorf("service: tourist %s: %w", touristID, ErrTouristNotFound)
	}

	alert, err := s.alerts.CreateAlert(ctx, tourist, panicZoneName, models.SeverityPanic, 0, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to create panic alert")
		return nil, err
	}

	// Панический сигнал уходит только закрепленному за оповещением участку
	s.dispatcher.Publish(alert.StationID, EventPanicAlert, PanicAlertEvent{
		ID:          alert.ID,
		TouristID:   tourist.TouristID,
		TouristName: tourist.Name,
		Latitude:    lat,
		Longitude:   lng,
		Severity:    alert.Severity,
		CreatedAt:   alert.CreatedAt,
	})

	if err := s.webhooks.Publish(ctx, webhook.Event{
		AlertID:        alert.ID,
		TouristID:      tourist.TouristID,
		TouristName:    tourist.Name,
		StationID:      alert.StationID,
		ZoneName:       alert.ZoneName,
		Severity:       string(alert.Severity),
		DistanceMeters: 0,
		CreatedAt:      alert.CreatedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue panic webhook")
	}

	log.WithField("alert_id", alert.ID).Info("Panic alert dispatched")
	return alert, nil
}
