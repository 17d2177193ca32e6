package repository

import (
	"context"
	"testing"

	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMemoryIndex — вспомогательная функция для создания индекса с моками справочников.
func newTestMemoryIndex(t *testing.T) (*MemorySpatialIndex, *mocks.MockRiskZoneRepository, *mocks.MockPoliceStationRepository) {
	ctrl := gomock.NewController(t)
	zonesMock := mocks.NewMockRiskZoneRepository(ctrl)
	stationsMock := mocks.NewMockPoliceStationRepository(ctrl)

	index := NewMemorySpatialIndex(zonesMock, stationsMock)
	return index.(*MemorySpatialIndex), zonesMock, stationsMock
}

func TestNearestZone_PicksClosest(t *testing.T) {
	// Подготовка
	index, zonesMock, _ := newTestMemoryIndex(t)
	ctx := context.Background()
	zones := []*models.RiskZone{
		{ID: 1, Name: "Дальняя", Latitude: 55.85, Longitude: 37.61, RadiusMeters: 1000},
		{ID: 2, Name: "Ближняя", Latitude: 55.752, Longitude: 37.61, RadiusMeters: 1000},
	}

	// Ожидания
	zonesMock.EXPECT().List(ctx).Return(zones, nil)

	// Действие
	zone, dist, err := index.NearestZone(ctx, 55.75, 37.61)

	// Проверки: примерно 222 метра до центра ближней зоны
	require.NoError(t, err)
	require.NotNil(t, zone)
	assert.Equal(t, int64(2), zone.ID)
	assert.InDelta(t, 222, dist, 5)
}

func TestNearestZone_NoZones(t *testing.T) {
	// Подготовка
	index, zonesMock, _ := newTestMemoryIndex(t)
	ctx := context.Background()

	// Ожидания
	zonesMock.EXPECT().List(ctx).Return(nil, nil)

	// Действие
	zone, dist, err := index.NearestZone(ctx, 55.75, 37.61)

	// Проверки: отсутствие зон - не ошибка
	require.NoError(t, err)
	assert.Nil(t, zone)
	assert.Zero(t, dist)
}

func TestCoveringStations_FiltersAndSortsByDistance(t *testing.T) {
	// Подготовка
	index, _, stationsMock := newTestMemoryIndex(t)
	ctx := context.Background()
	stations := []*models.PoliceStation{
		{ID: 1, Name: "Далекий", Latitude: 55.85, Longitude: 37.61, JurisdictionRadius: 5000},
		{ID: 2, Name: "Второй", Latitude: 55.76, Longitude: 37.61, JurisdictionRadius: 5000},
		{ID: 3, Name: "Ближний", Latitude: 55.752, Longitude: 37.61, JurisdictionRadius: 5000},
	}

	// Ожидания
	stationsMock.EXPECT().List(ctx).Return(stations, nil)

	// Действие
	covering, err := index.CoveringStations(ctx, 55.75, 37.61)

	// Проверки: далекий участок (около 11 км) отфильтрован, остальные
	// отсортированы по возрастанию расстояния
	require.NoError(t, err)
	require.Len(t, covering, 2)
	assert.Equal(t, int64(3), covering[0].Station.ID)
	assert.Equal(t, int64(2), covering[1].Station.ID)
	assert.Less(t, covering[0].Distance, covering[1].Distance)
}

func TestCoveringStations_ExcludesPointOutsideAllRadiuses(t *testing.T) {
	// Подготовка
	index, _, stationsMock := newTestMemoryIndex(t)
	ctx := context.Background()
	stations := []*models.PoliceStation{
		{ID: 1, Latitude: 55.85, Longitude: 37.61, JurisdictionRadius: 5000},
	}

	// Ожидания
	stationsMock.EXPECT().List(ctx).Return(stations, nil)

	// Действие
	covering, err := index.CoveringStations(ctx, 55.75, 37.61)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, covering)
}

func TestNearestCoveringStation(t *testing.T) {
	// Подготовка
	index, _, stationsMock := newTestMemoryIndex(t)
	ctx := context.Background()
	stations := []*models.PoliceStation{
		{ID: 2, Latitude: 55.76, Longitude: 37.61, JurisdictionRadius: 5000},
		{ID: 3, Latitude: 55.752, Longitude: 37.61, JurisdictionRadius: 5000},
	}

	// Ожидания
	stationsMock.EXPECT().List(ctx).Return(stations, nil)

	// Действие
	station, err := index.NearestCoveringStation(ctx, 55.75, 37.61)

	// Проверки
	require.NoError(t, err)
	require.NotNil(t, station)
	assert.Equal(t, int64(3), station.ID)
}

func TestNearestCoveringStation_NoJurisdiction(t *testing.T) {
	// Подготовка
	index, _, stationsMock := newTestMemoryIndex(t)
	ctx := context.Background()

	// Ожидания
	stationsMock.EXPECT().List(ctx).Return(nil, nil)

	// Действие
	station, err := index.NearestCoveringStation(ctx, 55.75, 37.61)

	// Проверки: nil без ошибки, решение об ошибке принимает вызывающий слой
	require.NoError(t, err)
	assert.Nil(t, station)
}
