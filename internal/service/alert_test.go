package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestAlertService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *mocks.MockSpatialIndex) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	spatialMock := mocks.NewMockSpatialIndex(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(repoMock, spatialMock, logger)
	return service.(*alertService), repoMock, spatialMock
}

func TestCreateAlert_AssignsNearestCoveringStation(t *testing.T) {
	// Подготовка
	service, repoMock, spatialMock := newTestAlertService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001", Name: "Иван Петров"}
	station := &models.PoliceStation{ID: 5, Name: "Центральный участок"}
	lat, lng := 55.75, 37.61
	alertID := uuid.New()
	createdAt := time.Now()

	// Ожидания
	spatialMock.EXPECT().NearestCoveringStation(ctx, lat, lng).Return(station, nil)
	repoMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, alert *models.Alert) error {
			assert.Equal(t, tourist.ID, alert.TouristID)
			assert.Equal(t, station.ID, alert.StationID)
			assert.Equal(t, "Обрыв у реки", alert.ZoneName)
			assert.Equal(t, models.SeverityCritical700, alert.Severity)
			assert.Equal(t, 620, alert.DistanceMeters)
			alert.ID = alertID
			alert.CreatedAt = createdAt
			return nil
		})

	// Действие
	alert, err := service.CreateAlert(ctx, tourist, "Обрыв у реки", models.SeverityCritical700, 620, lat, lng)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, alertID, alert.ID)
	assert.Equal(t, createdAt, alert.CreatedAt)
}

func TestCreateAlert_NoJurisdiction(t *testing.T) {
	// Подготовка
	service, _, spatialMock := newTestAlertService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001"}

	// Ожидания: точка вне зоны ответственности, запись в бд не создается
	spatialMock.EXPECT().NearestCoveringStation(ctx, 0.0, 0.0).Return(nil, nil)

	// Действие
	alert, err := service.CreateAlert(ctx, tourist, "Обрыв у реки", models.SeverityCritical500, 450, 0, 0)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJurisdiction))
	assert.Nil(t, alert)
}

func TestAlertListByStation(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{
		{ID: uuid.New(), StationID: 5, Severity: models.SeverityPanic},
		{ID: uuid.New(), StationID: 5, Severity: models.SeverityCritical500},
	}

	// Ожидания
	repoMock.EXPECT().ListByStation(ctx, int64(5)).Return(expected, nil)

	// Действие
	alerts, err := service.ListByStation(ctx, 5)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}
