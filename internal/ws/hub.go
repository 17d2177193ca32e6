package ws

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Envelope - обертка события, отправляемая подписчику
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub ведет подписки участков: stationID -> множество активных соединений.
// Доставка best-effort без очередей и повторов: участок без подписчиков
// событие молча пропускает.
type Hub struct {
	mu       sync.RWMutex
	stations map[int64]map[uuid.UUID]*Client
	logger   *logrus.Logger
}

// NewHub создает новый Hub
func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		stations: make(map[int64]map[uuid.UUID]*Client),
		logger:   logger,
	}
}

// Register добавляет соединение в множество подписчиков его участка
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.stations[client.StationID]
	if !ok {
		clients = make(map[uuid.UUID]*Client)
		h.stations[client.StationID] = clients
	}
	clients[client.ID] = client

	h.logger.WithFields(logrus.Fields{
		"station_id": client.StationID,
		"client_id":  client.ID,
	}).Info("Police station client connected")
}

// Unregister удаляет соединение из множества подписчиков его участка
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.stations[client.StationID]
	if !ok {
		return
	}
	if _, ok := clients[client.ID]; !ok {
		return
	}
	delete(clients, client.ID)
	if len(clients) == 0 {
		delete(h.stations, client.StationID)
	}

	h.logger.WithFields(logrus.Fields{
		"station_id": client.StationID,
		"client_id":  client.ID,
	}).Info("Police station client disconnected")
}

// Publish отправляет событие всем текущим подписчикам участка.
// Медленный подписчик событие теряет: отправка неблокирующая.
func (h *Hub) Publish(stationID int64, event string, payload any) {
	message, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		h.logger.WithError(err).WithField("event", event).Error("Failed to marshal event payload")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.stations[stationID] {
		select {
		case client.Send <- message:
		default:
			h.logger.WithFields(logrus.Fields{
				"station_id": stationID,
				"client_id":  client.ID,
				"event":      event,
			}).Warn("Dropping event for slow client")
		}
	}
}

// Subscribers возвращает число активных подписчиков участка
func (h *Hub) Subscribers(stationID int64) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.stations[stationID])
}
