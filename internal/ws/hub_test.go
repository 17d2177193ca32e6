package ws

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return NewHub(logger)
}

func newTestClient(stationID int64, buffer int) *Client {
	return &Client{
		ID:        uuid.New(),
		StationID: stationID,
		Send:      make(chan []byte, buffer),
		Done:      make(chan struct{}),
	}
}

func TestHub_PublishDeliversToSubscribers(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	client := newTestClient(5, 1)
	hub.Register(client)

	// Действие
	hub.Publish(5, "alert", map[string]string{"zone_name": "Обрыв у реки"})

	// Проверки
	require.Len(t, client.Send, 1)
	var envelope Envelope
	require.NoError(t, json.Unmarshal(<-client.Send, &envelope))
	assert.Equal(t, "alert", envelope.Event)
}

func TestHub_PublishToOtherStationIsNotDelivered(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	client := newTestClient(5, 1)
	hub.Register(client)

	// Действие
	hub.Publish(6, "alert", nil)

	// Проверки
	assert.Empty(t, client.Send)
}

func TestHub_PublishWithoutSubscribersIsNoop(t *testing.T) {
	// Подготовка
	hub := newTestHub()

	// Действие и Проверки: паники и блокировки нет
	hub.Publish(5, "alert", nil)
	assert.Zero(t, hub.Subscribers(5))
}

func TestHub_SlowClientDropsEvent(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	client := newTestClient(5, 1)
	hub.Register(client)

	// Действие: буфер вмещает только первое событие
	hub.Publish(5, "alert", nil)
	hub.Publish(5, "alert", nil)

	// Проверки
	assert.Len(t, client.Send, 1)
}

func TestHub_Unregister(t *testing.T) {
	// Подготовка
	hub := newTestHub()
	first := newTestClient(5, 1)
	second := newTestClient(5, 1)
	hub.Register(first)
	hub.Register(second)
	require.Equal(t, 2, hub.Subscribers(5))

	// Действие
	hub.Unregister(first)

	// Проверки: событие получает только оставшийся подписчик
	assert.Equal(t, 1, hub.Subscribers(5))
	hub.Publish(5, "alert", nil)
	assert.Empty(t, first.Send)
	assert.Len(t, second.Send, 1)

	// Повторная отписка безопасна
	hub.Unregister(first)
	assert.Equal(t, 1, hub.Subscribers(5))
}
