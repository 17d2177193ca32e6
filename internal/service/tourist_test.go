package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/tourist_safety_system/internal/config"
	"github.com/shenikar/tourist_safety_system/internal/models"
	"github.com/shenikar/tourist_safety_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestTouristService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestTouristService(t *testing.T) (*touristService, *mocks.MockTouristRepository, *mocks.MockSpatialIndex, *mocks.MockAlertDispatcher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockTouristRepository(ctrl)
	spatialMock := mocks.NewMockSpatialIndex(ctrl)
	dispatcherMock := mocks.NewMockAlertDispatcher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		TouristInactiveAfter: 10 * time.Minute,
		SweepInterval:        time.Minute,
	}

	service := NewTouristService(repoMock, spatialMock, dispatcherMock, logger, cfg)
	return service.(*touristService), repoMock, spatialMock, dispatcherMock
}

func TestTouristCreate_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestTouristService(t)
	ctx := context.Background()
	input := CreateTouristInput{
		TouristID: "T-001",
		Name:      "Иван Петров",
		ValidFrom: time.Now(),
		ValidTo:   time.Now().Add(14 * 24 * time.Hour),
	}

	// Ожидания
	repoMock.EXPECT().GetByTouristID(ctx, "T-001").Return(nil, nil)
	repoMock.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, tourist *models.Tourist) error {
			assert.Equal(t, "T-001", tourist.TouristID)
			assert.Nil(t, tourist.LastUpdated) // без стартовой позиции
			tourist.ID = 7
			tourist.SafetyScore = 80
			return nil
		})

	// Действие
	tourist, err := service.Create(ctx, input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(7), tourist.ID)
	assert.Equal(t, 80, tourist.SafetyScore)
}

func TestTouristCreate_AlreadyRegistered(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestTouristService(t)
	ctx := context.Background()
	existing := &models.Tourist{ID: 7, TouristID: "T-001", Name: "Иван Петров"}

	// Ожидания: повторная регистрация возвращает существующую запись
	repoMock.EXPECT().GetByTouristID(ctx, "T-001").Return(existing, nil)

	// Действие
	tourist, err := service.Create(ctx, CreateTouristInput{TouristID: "T-001", Name: "Другое имя"})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, existing, tourist)
}

func TestAdjustSafetyScore_FloorsAtZero(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestTouristService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001", SafetyScore: 10}

	// Ожидания
	repoMock.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	repoMock.EXPECT().UpdateSafetyScore(ctx, int64(7), 0).Return(nil)

	// Действие
	got, err := service.AdjustSafetyScore(ctx, "T-001", -50)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0, got.SafetyScore)
}

func TestAdjustSafetyScore_TouristNotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestTouristService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().GetByTouristID(ctx, "T-404").Return(nil, nil)

	// Действие
	got, err := service.AdjustSafetyScore(ctx, "T-404", 5)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTouristNotFound))
	assert.Nil(t, got)
}

func TestSweepInactive_RemovesStaleTourists(t *testing.T) {
	// Подготовка
	service, repoMock, spatialMock, dispatcherMock := newTestTouristService(t)
	ctx := context.Background()
	lat, lng := 55.75, 37.61
	stale := []*models.Tourist{
		{ID: 7, TouristID: "T-001", Latitude: &lat, Longitude: &lng},
	}
	station := &models.PoliceStation{ID: 5}

	// Ожидания
	repoMock.EXPECT().ListStaleSince(ctx, gomock.Any()).Return(stale, nil)
	spatialMock.EXPECT().CoveringStations(ctx, lat, lng).
		Return([]models.StationDistance{{Station: station, Distance: 900}}, nil)
	dispatcherMock.EXPECT().Publish(station.ID, EventTouristRemoved, TouristRemovedEvent{TouristID: "T-001"})
	repoMock.EXPECT().ClearPosition(ctx, int64(7)).Return(nil)

	// Действие
	service.sweepInactive(ctx)
}

func TestSweepInactive_SkipsTouristsWithoutPosition(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestTouristService(t)
	ctx := context.Background()
	stale := []*models.Tourist{
		{ID: 7, TouristID: "T-001"}, // позиция уже снята
	}

	// Ожидания: ни геозапросов, ни рассылок
	repoMock.EXPECT().ListStaleSince(ctx, gomock.Any()).Return(stale, nil)

	// Действие
	service.sweepInactive(ctx)
}
