package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// LocationRepository определяет контракт для работы с историей позиций
type LocationRepository interface {
	Save(ctx context.Context, loc *models.Location) error
	GetReporterStats(ctx context.Context, minutes int) (int, error)
}

// NearestZoneInfo - ближайшая зона риска в результате обработки позиции
type NearestZoneInfo struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	DistanceMeters int    `json:"distance_meters"`
	RadiusMeters   int    `json:"radius_meters"`
}

// TouristAlert - предупреждение туристу, в БД не сохраняется
type TouristAlert struct {
	TouristID      string          `json:"tourist_id"`
	ZoneName       string          `json:"zone_name"`
	DistanceMeters int             `json:"distance_meters"`
	Level          models.Severity `json:"level"`
}

// PoliceAlertRef - ссылка на созданное полицейское оповещение
type PoliceAlertRef struct {
	ID       uuid.UUID       `json:"id"`
	Severity models.Severity `json:"severity"`
}

// ProcessResult - итог обработки одного обновления позиции
type ProcessResult struct {
	OK           bool             `json:"ok"`
	TouristID    string           `json:"tourist_id"`
	NearestZone  *NearestZoneInfo `json:"nearest_zone,omitempty"`
	TouristAlert *TouristAlert    `json:"tourist_alert,omitempty"`
	PoliceAlert  *PoliceAlertRef  `json:"police_alert,omitempty"`
}

// TouristPosition - последняя известная позиция туриста для общей карты
type TouristPosition struct {
	TouristID   string    `json:"tourist_id"`
	Name        string    `json:"name"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	LastUpdated time.Time `json:"last_updated"`
}

// LocationService определяет контракт конвейера обработки позиций
type LocationService interface {
	ProcessLocation(ctx context.Context, touristID string, lat, lng float64, ts *time.Time) (*ProcessResult, error)
	LatestPositions(ctx context.Context) ([]*TouristPosition, error)
	GetStats(ctx context.Context) (int, error)
}

type locationService struct {
	tourists   TouristRepository
	locations  LocationRepository
	alerts     AlertService
	spatial    SpatialIndex
	gate       *CooldownGate
	dispatcher AlertDispatcher
	webhooks   webhook.WebhookPublisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewLocationService(
	tourists TouristRepository,
	locations LocationRepository,
	alerts AlertService,
	spatial SpatialIndex,
	gate *CooldownGate,
	dispatcher AlertDispatcher,
	webhooks webhook.WebhookPublisher,
	logger *logrus.Logger,
	cfg *config.Config,
) LocationService {
	return &locationService{
		tourists:   tourists,
		locations:  locations,
		alerts:     alerts,
		spatial:    spatial,
		gate:       gate,
		dispatcher: dispatcher,
		webhooks:   webhooks,
		logger:     logger,
		cfg:        cfg,
	}
}

// ProcessLocation обрабатывает одно обновление позиции туриста:
// сохраняет историю, обновляет последнюю позицию, рассылает живую позицию
// покрывающим участкам, оценивает ближайшую зону риска и при необходимости
// создает и рассылает критическое оповещение с учетом окна подавления.
func (s *locationService) ProcessLocation(ctx context.Context, touristID string, lat, lng float64, ts *time.Time) (*ProcessResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "location",
		"method":     "ProcessLocation",
		"tourist_id": touristID,
	})
	log.Debug("Processing location update")

	now := time.Now()

	tourist, err := s.tourists.GetByTouristID(ctx, touristID)
	if err != nil {
		log.WithError(err).Error("Failed to look up tourist")
		return nil, fmt.Errorf("service: could not look up tourist: %w", err)
	}
	if tourist == nil {
		// Первое сообщение от неизвестного устройства: регистрируем туриста
		tourist = &models.Tourist{TouristID: touristID, Name: touristID}
		if err := s.tourists.Create(ctx, tourist); err != nil {
			log.WithError(err).Error("Failed to register tourist")
			return nil, fmt.Errorf("service: could not register tourist: %w", err)
		}
		log.Info("Registered new tourist from first location report")
	}

	recordedAt := now
	if ts != nil {
		recordedAt = *ts
	}

	// История позиций append-only: строка пишется всегда, независимо от
	// дальнейшего исхода конвейера
	loc := &models.Location{
		TouristID: tourist.ID,
		Latitude:  lat,
		Longitude: lng,
		Timestamp: recordedAt,
	}
	if err := s.locations.Save(ctx, loc); err != nil {
		log.WithError(err).Error("Failed to save location history")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	if err := s.tourists.UpdatePosition(ctx, tourist.ID, lat, lng, now); err != nil {
		log.WithError(err).Error("Failed to update tourist position")
		return nil, fmt.Errorf("service: could not update tourist position: %w", err)
	}
	tourist.Latitude = &lat
	tourist.Longitude = &lng
	tourist.LastUpdated = &now

	covering, err := s.spatial.CoveringStations(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to find covering stations")
		return nil, fmt.Errorf("service: could not find covering stations: %w", err)
	}

	// Живая позиция уходит всем покрывающим участкам безусловно
	for _, sd := range covering {
		s.dispatcher.Publish(sd.Station.ID, EventTouristUpdate, TouristUpdateEvent{
			TouristID:   tourist.TouristID,
			Name:        tourist.Name,
			Latitude:    lat,
			Longitude:   lng,
			LastUpdated: now,
		})
	}

	result := &ProcessResult{OK: true, TouristID: touristID}

	zone, dist, err := s.spatial.NearestZone(ctx, lat, lng)
	if err != nil {
		log.WithError(err).Error("Failed to find nearest risk zone")
		return nil, fmt.Errorf("service: could not find nearest risk zone: %w", err)
	}
	if zone == nil {
		return result, nil
	}

	distMeters := int(math.Round(dist))
	result.NearestZone = &NearestZoneInfo{
		ID:             zone.ID,
		Name:           zone.Name,
		DistanceMeters: distMeters,
		RadiusMeters:   zone.RadiusMeters,
	}

	// Предупреждение туристу выдается всегда, когда он внутри зоны,
	// независимо от того, дошло ли дело до полицейского оповещения
	if dist <= float64(zone.RadiusMeters) {
		result.TouristAlert = &TouristAlert{
			TouristID:      touristID,
			ZoneName:       zone.Name,
			DistanceMeters: distMeters,
			Level:          models.SeverityWarning,
		}
	}

	severity := Classify(dist, float64(zone.RadiusMeters))
	if severity.Critical() {
		alert, err := s.maybeCreatePoliceAlert(ctx, tourist, zone, severity, distMeters, lat, lng, covering, now)
		if err != nil {
			return nil, err
		}
		if alert != nil {
			result.PoliceAlert = &PoliceAlertRef{ID: alert.ID, Severity: alert.Severity}
		}
	}

	return result, nil
}

// maybeCreatePoliceAlert создает критическое оповещение, если пара турист/зона
// прошла окно подавления. Отказ гейта - не ошибка, а тихий пропуск; отсутствие
// покрывающего участка деградирует мягко: позиция обновлена, оповещения нет.
func (s *locationService) maybeCreatePoliceAlert(
	ctx context.Context,
	tourist *models.Tourist,
	zone *models.RiskZone,
	severity models.Severity,
	distMeters int,
	lat, lng float64,
	covering []models.StationDistance,
	now time.Time,
) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "location",
		"method":     "maybeCreatePoliceAlert",
		"tourist_id": tourist.TouristID,
		"zone_id":    zone.ID,
		"severity":   severity,
	})

	if !s.gate.TryAdmit(tourist.TouristID, zone.ID, now) {
		log.Debug("Police alert suppressed by cooldown")
		return nil, nil
	}

	alert, err := s.alerts.CreateAlert(ctx, tourist, zone.Name, severity, distMeters, lat, lng)
	if err != nil {
		// Окно отсчитывается от успешного создания: резервацию снимаем
		s.gate.Reset(tourist.TouristID, zone.ID)
		if errors.Is(err, ErrNoJurisdiction) {
			log.Warn("No covering station for police alert, skipping")
			return nil, nil
		}
		log.WithError(err).Error("Failed to create police alert")
		return nil, fmt.Errorf("service: could not create police alert: %w", err)
	}

	event := AlertEvent{
		ID:             alert.ID,
		TouristID:      tourist.TouristID,
		TouristName:    tourist.Name,
		ZoneName:       zone.Name,
		Severity:       alert.Severity,
		DistanceMeters: alert.DistanceMeters,
		CreatedAt:      alert.CreatedAt,
	}
	// Оповещаются все участки, покрывающие текущую точку, а не только владелец
	for _, sd := range covering {
		s.dispatcher.Publish(sd.Station.ID, EventAlert, event)
	}

	if err := s.webhooks.Publish(ctx, webhook.Event{
		AlertID:        alert.ID,
		TouristID:      tourist.TouristID,
		TouristName:    tourist.Name,
		StationID:      alert.StationID,
		ZoneName:       alert.ZoneName,
		Severity:       string(alert.Severity),
		DistanceMeters: alert.DistanceMeters,
		CreatedAt:      alert.CreatedAt,
	}); err != nil {
		log.WithError(err).Warn("Failed to enqueue alert webhook")
	}

	return alert, nil
}

// LatestPositions возвращает последние известные позиции туристов
func (s *locationService) LatestPositions(ctx context.Context) ([]*TouristPosition, error) {
	tourists, err := s.tourists.ListWithLocation(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list tourist positions: %w", err)
	}

	positions := make([]*TouristPosition, 0, len(tourists))
	for _, t := range tourists {
		if !t.HasLocation() {
			continue
		}
		pos := &TouristPosition{
			TouristID: t.TouristID,
			Name:      t.Name,
			Latitude:  *t.Latitude,
			Longitude: *t.Longitude,
		}
		if t.LastUpdated != nil {
			pos.LastUpdated = *t.LastUpdated
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// GetStats возвращает количество уникальных туристов, приславших позицию
// в пределах окна статистики
func (s *locationService) GetStats(ctx context.Context) (int, error) {
	count, err := s.locations.GetReporterStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		return 0, fmt.Errorf("service: could not get location stats: %w", err)
	}
	return count, nil
}
