package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestStationService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestStationService(t *testing.T) (PoliceStationService, *mocks.MockPoliceStationRepository, *mocks.MockSpatialIndex) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockPoliceStationRepository(ctrl)
	spatialMock := mocks.NewMockSpatialIndex(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return NewPoliceStationService(repoMock, spatialMock, logger), repoMock, spatialMock
}

func TestNearby_ReturnsAllCoveringStations(t *testing.T) {
	// Подготовка: точку покрывают два участка, справочная выдача
	// отдает оба, а не только ближайший
	service, _, spatialMock := newTestStationService(t)
	ctx := context.Background()
	covering := []models.StationDistance{
		{Station: &models.PoliceStation{ID: 3, Name: "Западный участок"}, Distance: 800},
		{Station: &models.PoliceStation{ID: 5, Name: "Центральный участок"}, Distance: 2300},
	}

	// Ожидания
	spatialMock.EXPECT().CoveringStations(ctx, 55.75, 37.61).Return(covering, nil)

	// Действие
	nearby, err := service.Nearby(ctx, 55.75, 37.61)

	// Проверки: полный список, ближайшие первыми
	require.NoError(t, err)
	require.Len(t, nearby, 2)
	assert.Equal(t, int64(3), nearby[0].Station.ID)
	assert.Equal(t, int64(5), nearby[1].Station.ID)
	assert.LessOrEqual(t, nearby[0].Distance, nearby[1].Distance)
}

func TestTouristsInJurisdiction_StationNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestStationService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, int64(404)).Return(nil, nil)

	// Действие
	_, err := service.TouristsInJurisdiction(ctx, 404)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStationNotFound)
}
