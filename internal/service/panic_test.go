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
	webhook_mocks "github.com/shenikar/tourist_safety_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestPanicService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestPanicService(t *testing.T) (*panicService, *mocks.MockTouristRepository, *mocks.MockAlertService, *mocks.MockAlertDispatcher, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	touristsMock := mocks.NewMockTouristRepository(ctrl)
	alertsMock := mocks.NewMockAlertService(ctrl)
	dispatcherMock := mocks.NewMockAlertDispatcher(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewPanicService(touristsMock, alertsMock, dispatcherMock, webhookMock, logger)
	return service.(*panicService), touristsMock, alertsMock, dispatcherMock, webhookMock
}

func TestTriggerPanic_Success(t *testing.T) {
	// Подготовка
	service, touristsMock, alertsMock, dispatcherMock, webhookMock := newTestPanicService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001", Name: "Иван Петров"}
	lat, lng := 55.75, 37.61
	alert := &models.Alert{
		ID:        uuid.New(),
		TouristID: tourist.ID,
		StationID: 5,
		ZoneName:  "SOS/Panic Event",
		Severity:  models.SeverityPanic,
		CreatedAt: time.Now(),
	}

	// Ожидания
	touristsMock.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	alertsMock.EXPECT().
		CreateAlert(ctx, tourist, "SOS/Panic Event", models.SeverityPanic, 0, lat, lng).
		Return(alert, nil)
	// Панический сигнал уходит только закрепленному участку
	dispatcherMock.EXPECT().Publish(int64(5), EventPanicAlert, gomock.Any())
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	// Действие
	got, err := service.TriggerPanic(ctx, "T-001", lat, lng)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, alert, got)
	assert.Equal(t, models.SeverityPanic, got.Severity)
	assert.Equal(t, 0, got.DistanceMeters)
}

func TestTriggerPanic_TouristNotFound(t *testing.T) {
	// Подготовка
	service, touristsMock, _, _, _ := newTestPanicService(t)
	ctx := context.Background()

	// Ожидания
	touristsMock.EXPECT().GetByTouristID(ctx, "T-404").Return(nil, nil)

	// Действие
	got, err := service.TriggerPanic(ctx, "T-404", 55.75, 37.61)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTouristNotFound))
	assert.Nil(t, got)
}

func TestTriggerPanic_NoJurisdictionIsFatal(t *testing.T) {
	// Подготовка
	service, touristsMock, alertsMock, _, _ := newTestPanicService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001", Name: "Иван Петров"}

	// Ожидания: оповещение не создано, рассылок и вебхуков нет
	touristsMock.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	alertsMock.EXPECT().
		CreateAlert(ctx, tourist, "SOS/Panic Event", models.SeverityPanic, 0, 55.75, 37.61).
		Return(nil, ErrNoJurisdiction)

	// Действие
	got, err := service.TriggerPanic(ctx, "T-001", 55.75, 37.61)

	// Проверки
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoJurisdiction))
	assert.Nil(t, got)
}

func TestTriggerPanic_WebhookFailureDoesNotFailRequest(t *testing.T) {
	// Подготовка
	service, touristsMock, alertsMock, dispatcherMock, webhookMock := newTestPanicService(t)
	ctx := context.Background()
	tourist := &models.Tourist{ID: 7, TouristID: "T-001", Name: "Иван Петров"}
	alert := &models.Alert{ID: uuid.New(), StationID: 5, Severity: models.SeverityPanic}

	// Ожидания
	touristsMock.EXPECT().GetByTouristID(ctx, "T-001").Return(tourist, nil)
	alertsMock.EXPECT().
		CreateAlert(ctx, tourist, "SOS/Panic Event", models.SeverityPanic, 0, 55.75, 37.61).
		Return(alert, nil)
	dispatcherMock.EXPECT().Publish(int64(5), EventPanicAlert, gomock.Any())
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down"))

	// Действие
	got, err := service.TriggerPanic(ctx, "T-001", 55.75, 37.61)

	// Проверки: отказ очереди вебхуков не роняет запрос
	require.NoError(t, err)
	assert.Equal(t, alert, got)
}
