package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestRiskZoneService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestRiskZoneService(t *testing.T) (*riskZoneService, *mocks.MockRiskZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockRiskZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewRiskZoneService(repoMock, logger)
	return service.(*riskZoneService), repoMock
}

func TestListZones_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestRiskZoneService(t)
	ctx := context.Background()
	cached := []*models.RiskZone{{ID: 3, Name: "Обрыв у реки"}}

	// Ожидания: попадание в кеш, бд не трогаем
	repoMock.EXPECT().GetZonesFromCache(ctx).Return(cached, nil)

	// Действие
	zones, err := service.ListZones(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, zones)
}

func TestListZones_CacheMissFallsBackToDB(t *testing.T) {
	// Подготовка
	service, repoMock := newTestRiskZoneService(t)
	ctx := context.Background()
	fromDB := []*models.RiskZone{{ID: 3, Name: "Обрыв у реки"}}

	// Ожидания
	repoMock.EXPECT().GetZonesFromCache(ctx).Return(nil, nil)
	repoMock.EXPECT().List(ctx).Return(fromDB, nil)
	repoMock.EXPECT().SetZonesCache(ctx, fromDB).Return(nil)

	// Действие
	zones, err := service.ListZones(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, fromDB, zones)
}

func TestCreateZone_InvalidatesCache(t *testing.T) {
	// Подготовка
	service, repoMock := newTestRiskZoneService(t)
	ctx := context.Background()
	zone := &models.RiskZone{Name: "Обрыв у реки", RadiusMeters: 1000}

	// Ожидания
	repoMock.EXPECT().Create(ctx, zone).Return(nil)
	repoMock.EXPECT().InvalidateZonesCache(ctx).Return(nil)

	// Действие
	err := service.CreateZone(ctx, zone)

	// Проверки
	require.NoError(t, err)
}

func TestGetZone_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestRiskZoneService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

	// Действие
	zone, err := service.GetZone(ctx, 404)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZoneNotFound))
	assert.Nil(t, zone)
}

func TestDeleteZone_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock := newTestRiskZoneService(t)
	ctx := context.Background()

	// Ожидания: удаление несуществующей зоны не доходит до бд
	repoMock.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

	// Действие
	err := service.DeleteZone(ctx, 404)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZoneNotFound))
}
