package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	webhook_mocks "github.com/shenikar/tourist_safety_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type locationServiceMocks struct {
	tourists   *mocks.MockTouristRepository
	locations  *mocks.MockLocationRepository
	alerts     *mocks.MockAlertService
	spatial    *mocks.MockSpatialIndex
	dispatcher *mocks.MockAlertDispatcher
	webhooks   *webhook_mocks.MockWebhookPublisher
	gate       *CooldownGate
}

// newTestLocationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestLocationService(t *testing.T) (*locationService, *locationServiceMocks) {
	ctrl := gomock.NewController(t)
	m := &locationServiceMocks{
		tourists:   mocks.NewMockTouristRepository(ctrl),
		locations:  mocks.NewMockLocationRepository(ctrl),
		alerts:     mocks.NewMockAlertService(ctrl),
		spatial:    mocks.NewMockSpatialIndex(ctrl),
		dispatcher: mocks.NewMockAlertDispatcher(ctrl),
		webhooks:   webhook_mocks.NewMockWebhookPublisher(ctrl),
		gate:       NewCooldownGate(2 * time.Minute),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
	}

	service := NewLocationService(m.tourists, m.locations, m.alerts, m.spatial, m.gate, m.dispatcher, m.webhooks, logger, cfg)
	return service.(*locationService), m
}

func knownTourist() *models.Tourist {
	return &models.Tourist{
		ID:        7,
		TouristID: "T-001",
		Name:      "Иван Петров",
	}
}

func TestProcessLocation_CriticalAlert(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	zone := &models.RiskZone{ID: 3, Name: "Обрыв у реки", RadiusMeters: 1000}
	station := &models.PoliceStation{ID: 5, Name: "Центральный участок"}
	alert := &models.Alert{
		ID:             uuid.New(),
		TouristID:      tourist.ID,
		StationID:      station.ID,
		ZoneName:       zone.Name,
		Severity:       models.SeverityCritical500,
		DistanceMeters: 450,
		CreatedAt:      time.Now(),
	}

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).
		Return([]models.StationDistance{{Station: station, Distance: 1200}}, nil)
	m.dispatcher.EXPECT().Publish(station.ID, EventTouristUpdate, gomock.Any())
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(zone, 450.0, nil)
	m.alerts.EXPECT().
		CreateAlert(ctx, tourist, zone.Name, models.SeverityCritical500, 450, lat, lng).
		Return(alert, nil)
	m.dispatcher.EXPECT().Publish(station.ID, EventAlert, gomock.Any())
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "T-001", result.TouristID)
	require.NotNil(t, result.NearestZone)
	assert.Equal(t, zone.ID, result.NearestZone.ID)
	assert.Equal(t, 450, result.NearestZone.DistanceMeters)
	require.NotNil(t, result.PoliceAlert)
	assert.Equal(t, alert.ID, result.PoliceAlert.ID)
	assert.Equal(t, models.SeverityCritical500, result.PoliceAlert.Severity)

	// Турист внутри зоны: предупреждение выдается вместе с эскалацией
	require.NotNil(t, result.TouristAlert)
	assert.Equal(t, models.SeverityWarning, result.TouristAlert.Level)
	assert.Equal(t, 450, result.TouristAlert.DistanceMeters)
}

func TestProcessLocation_CooldownSuppressesRepeat(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	zone := &models.RiskZone{ID: 3, Name: "Обрыв у реки", RadiusMeters: 1000}

	// Пара турист/зона уже прошла гейт недавно
	require.True(t, m.gate.TryAdmit("T-001", zone.ID, time.Now()))

	// Ожидания: создание оповещения не вызывается вовсе
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(zone, 420.0, nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки: позиция обработана, полицейского оповещения нет,
	// но предупреждение туристу подавление не затрагивает
	require.NoError(t, err)
	assert.True(t, result.OK)
	require.NotNil(t, result.NearestZone)
	assert.Nil(t, result.PoliceAlert)
	require.NotNil(t, result.TouristAlert)
	assert.Equal(t, models.SeverityWarning, result.TouristAlert.Level)
	assert.Equal(t, 420, result.TouristAlert.DistanceMeters)
}

func TestProcessLocation_CriticalOutsideZoneRadius(t *testing.T) {
	// Подготовка: критический порог не зависит от радиуса зоны,
	// но турист при этом находится вне самой зоны
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	zone := &models.RiskZone{ID: 3, Name: "Обрыв у реки", RadiusMeters: 600}
	station := &models.PoliceStation{ID: 5, Name: "Центральный участок"}
	alert := &models.Alert{
		ID:             uuid.New(),
		TouristID:      tourist.ID,
		StationID:      station.ID,
		ZoneName:       zone.Name,
		Severity:       models.SeverityCritical700,
		DistanceMeters: 650,
		CreatedAt:      time.Now(),
	}

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).
		Return([]models.StationDistance{{Station: station, Distance: 1200}}, nil)
	m.dispatcher.EXPECT().Publish(station.ID, EventTouristUpdate, gomock.Any())
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(zone, 650.0, nil)
	m.alerts.EXPECT().
		CreateAlert(ctx, tourist, zone.Name, models.SeverityCritical700, 650, lat, lng).
		Return(alert, nil)
	m.dispatcher.EXPECT().Publish(station.ID, EventAlert, gomock.Any())
	m.webhooks.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки: эскалация есть, предупреждения туристу нет - он вне зоны
	require.NoError(t, err)
	require.NotNil(t, result.PoliceAlert)
	assert.Equal(t, models.SeverityCritical700, result.PoliceAlert.Severity)
	assert.Nil(t, result.TouristAlert)
}

func TestProcessLocation_WarningDoesNotEscalate(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	zone := &models.RiskZone{ID: 3, Name: "Обрыв у реки", RadiusMeters: 1000}

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(zone, 850.0, nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки: только предупреждение туристу, без записи в журнал
	require.NoError(t, err)
	require.NotNil(t, result.TouristAlert)
	assert.Equal(t, models.SeverityWarning, result.TouristAlert.Level)
	assert.Equal(t, zone.Name, result.TouristAlert.ZoneName)
	assert.Equal(t, 850, result.TouristAlert.DistanceMeters)
	assert.Nil(t, result.PoliceAlert)
}

func TestProcessLocation_NoZonesConfigured(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(nil, 0.0, nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Nil(t, result.NearestZone)
	assert.Nil(t, result.TouristAlert)
	assert.Nil(t, result.PoliceAlert)
}

func TestProcessLocation_NoJurisdictionDegradesGracefully(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	zone := &models.RiskZone{ID: 3, Name: "Обрыв у реки", RadiusMeters: 1000}

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(zone, 450.0, nil)
	m.alerts.EXPECT().
		CreateAlert(ctx, tourist, zone.Name, models.SeverityCritical500, 450, lat, lng).
		Return(nil, ErrNoJurisdiction)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-001", lat, lng, nil)

	// Проверки: запрос успешен, оповещения нет
	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Nil(t, result.PoliceAlert)

	// Резервация гейта снята: следующая попытка не подавляется окном
	assert.True(t, m.gate.TryAdmit("T-001", zone.ID, time.Now()))
}

func TestProcessLocation_RegistersUnknownTourist(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	lat, lng := 55.75, 37.61

	// Ожидания: турист неизвестен, регистрируется по первому сообщению
	m.tourists.EXPECT().GetByTouristID(ctx, "T-999").Return(nil, nil)
	m.tourists.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
			assert.Equal(t, "T-999", tourist.TouristID)
			assert.Equal(t, "T-999", tourist.Name)
			tourist.ID = 42
			return nil
		})
	m.locations.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location) error {
			assert.Equal(t, int64(42), loc.TouristID)
			return nil
		})
	m.tourists.EXPECT().UpdatePosition(ctx, int64(42), lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(nil, 0.0, nil)

	// Действие
	result, err := service.ProcessLocation(ctx, "T-999", lat, lng, nil)

	// Проверки
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestProcessLocation_ExplicitTimestampGoesToHistory(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	tourist := knownTourist()
	lat, lng := 55.75, 37.61
	reported := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Ожидания
	m.tourists.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	m.locations.EXPECT().Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, loc *models.Location) error {
			assert.Equal(t, reported, loc.Timestamp)
			return nil
		})
	m.tourists.EXPECT().UpdatePosition(ctx, tourist.ID, lat, lng, gomock.Any()).Return(nil)
	m.spatial.EXPECT().CoveringStations(ctx, lat, lng).Return(nil, nil)
	m.spatial.EXPECT().NearestZone(ctx, lat, lng).Return(nil, 0.0, nil)

	// Действие
	_, err := service.ProcessLocation(ctx, "T-001", lat, lng, &reported)

	// Проверки
	require.NoError(t, err)
}

func TestLatestPositions(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()
	lat, lng := 55.75, 37.61
	updated := time.Now()
	tourists := []*models.Tourist{
		{ID: 1, TouristID: "T-001", Name: "Иван Петров", Latitude: &lat, Longitude: &lng, LastUpdated: &updated},
		{ID: 2, TouristID: "T-002", Name: "Без позиции"},
	}

	// Ожидания
	m.tourists.EXPECT().ListWithLocation(ctx).Return(tourists, nil)

	// Действие
	positions, err := service.LatestPositions(ctx)

	// Проверки: турист без позиции на карту не попадает
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "T-001", positions[0].TouristID)
	assert.Equal(t, lat, positions[0].Latitude)
	assert.Equal(t, lng, positions[0].Longitude)
}

func TestGetStats(t *testing.T) {
	// Подготовка
	service, m := newTestLocationService(t)
	ctx := context.Background()

	// Ожидания
	m.locations.EXPECT().GetReporterStats(ctx, 60).Return(12, nil)

	// Действие
	count, err := service.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}
