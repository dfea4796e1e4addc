package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"mansion-server/internal/engine"
	"mansion-server/pkg/api"
	"mansion-server/pkg/logger"
	"mansion-server/pkg/utils"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между WebSocket-соединением и GameService.
// Читающая горутина только декодирует кадры и кладет команды в канал
// движка; пишущая выгребает персональный канал Send. Сам Client никакого
// игрового состояния не хранит — авторитет у движка.
type Client struct {
	Game      *engine.GameService
	Conn      *websocket.Conn
	Send      chan []byte
	SessionID string
}

func NewClient(game *engine.GameService, conn *websocket.Conn) *Client {
	return &Client{
		Game:      game,
		Conn:      conn,
		Send:      make(chan []byte, sendBufferSize),
		SessionID: utils.GenerateID(),
	}
}

// readPump читает кадры клиента и превращает их в команды движка.
func (c *Client) readPump() {
	defer func() {
		// Транспорт закрылся: движок уберет игрока и разошлет player_left.
		c.Game.Commands <- engine.Command{SessionID: c.SessionID, Reply: c.Send}
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		logger.Log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			logger.Log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		_, payload, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("WS read error")
			}
			return
		}

		msg, err := api.DecodeClientMessage(payload)
		if err != nil {
			// Битый кадр или неизвестный тег: логируем и живем дальше,
			// соединение за это не рвется.
			logger.Log.WithError(err).WithField("session", c.SessionID).
				Debug("Malformed message ignored")
			continue
		}

		c.Game.Commands <- engine.Command{
			SessionID: c.SessionID,
			Reply:     c.Send,
			Msg:       msg,
		}
	}
}

// writePump отправляет кадры клиенту + Ping.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case frame := <-c.Send:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				logger.Log.WithError(err).Debug("write message failed")
				return
			}

		case <-ticker.C:
			if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				logger.Log.WithError(err).Warn("failed to set ping write deadline")
			}
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
