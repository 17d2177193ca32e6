package ws

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const sendBufferSize = 64

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client представляет одно подписанное соединение участка
type Client struct {
	ID        uuid.UUID
	StationID int64
	Conn      *websocket.Conn

	Send chan []byte
	Done chan struct{}
}

// ServeWS - gin-обработчик подключения подписчика. Рукопожатие несет
// station_id; соединение попадает в множество подписчиков этого участка.
func (h *Hub) ServeWS(c *gin.Context) {
	stationID, err := strconv.ParseInt(c.Query("station_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid station_id"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.WithError(err).Warn("Failed to upgrade websocket connection")
		return
	}

	client := &Client{
		ID:        uuid.New(),
		StationID: stationID,
		Conn:      conn,

		Send: make(chan []byte, sendBufferSize),
		Done: make(chan struct{}),
	}

	h.Register(client)

	go h.readPump(client)
	go h.writePump(client)
}

// readPump читает входящие сообщения до ошибки соединения.
// Подписчики ничего не присылают, но чтение нужно для обработки
// close-фреймов и обнаружения обрыва.
func (h *Hub) readPump(client *Client) {
	defer func() {
		h.Unregister(client)
		close(client.Done)
		client.Conn.Close()
	}()

	for {
		if _, _, err := client.Conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) writePump(client *Client) {
	for {
		select {
		case message := <-client.Send:
			if err := client.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-client.Done:
			return
		}
	}
}
