// Пакет client реализует клиентскую сторону протокола особняка:
// одно логическое подключение с автоматическим восстановлением,
// локальное зеркало чужих игроков и ограничение частоты исходящих
// позиций. Зеркало мутируется ТОЛЬКО обработчиками серверных сообщений —
// клиент никогда не выдумывает и не удаляет чужих игроков сам.
package client

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"mansion-server/pkg/api"
	"mansion-server/pkg/logger"
)

// State — явная машина состояний соединения.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

const (
	// ReconnectDelay — фиксированная пауза перед попыткой переподключения.
	// Попытки не ограничены: для казуального пространства политика
	// "рано или поздно восстановимся" важнее продакшенного backoff.
	ReconnectDelay = 3 * time.Second

	// PositionThrottle и PositionEpsilon задают дросселирование позиций:
	// кадр move уходит, если прошло достаточно времени ИЛИ позиция
	// сдвинулась заметно — резкий скачок доставляется сразу.
	PositionThrottle = 50 * time.Millisecond
	PositionEpsilon  = 0.1

	// ChatLogLimit — сколько сообщений чата клиент держит локально.
	ChatLogLimit = 50
)

// Conn — минимальный интерфейс транспорта (его реализует *websocket.Conn).
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Dialer устанавливает транспортное соединение с сервером.
type Dialer func(url string) (Conn, error)

// DefaultDialer подключается настоящим WebSocket.
func DefaultDialer(url string) (Conn, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	return conn, err
}

// Options — необязательные зависимости и колбэки клиента.
type Options struct {
	Dial   Dialer
	Clock  Clock
	OnChat func(api.ChatMessage)
}

// Client — клиент особняка. Безопасен для вызова из нескольких горутин.
type Client struct {
	mu sync.Mutex

	url    string
	dial   Dialer
	clock  Clock
	onChat func(api.ChatMessage)

	state State
	conn  Conn
	// gen растет с каждым подключением/отключением: читающие циклы и
	// отложенные dial'ы от прежних поколений молча умирают.
	gen int

	// name — имя, под которым мы в пространстве. Пустое имя означает
	// "автопереподключение не нужно" (после явного Disconnect).
	name string

	reconnect Timer

	self    *api.Player
	remotes map[string]*api.Player
	chat    []api.ChatMessage

	lastSend struct {
		x, y float64
		at   time.Time
		ok   bool
	}
}

// New создает клиент для данного адреса сервера.
func New(url string, opts Options) *Client {
	if opts.Dial == nil {
		opts.Dial = DefaultDialer
	}
	if opts.Clock == nil {
		opts.Clock = realClock{}
	}
	return &Client{
		url:     url,
		dial:    opts.Dial,
		clock:   opts.Clock,
		onChat:  opts.OnChat,
		remotes: make(map[string]*api.Player),
	}
}

// Connect начинает подключение под данным именем. Идемпотентен, пока
// соединение живо или уже устанавливается.
func (c *Client) Connect(name string) {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return
	}
	c.name = name
	c.state = StateConnecting
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	go c.establish(gen, name)
}

// establish делает dial и первый join вне мьютекса.
func (c *Client) establish(gen int, name string) {
	conn, err := c.dial(c.url)

	c.mu.Lock()
	if c.gen != gen {
		// Пока мы подключались, случился Disconnect или новый Connect.
		c.mu.Unlock()
		if err == nil {
			_ = conn.Close()
		}
		return
	}
	if err != nil {
		logger.Log.WithError(err).Debug("dial failed")
		c.state = StateDisconnected
		c.scheduleReconnectLocked()
		c.mu.Unlock()
		return
	}
	c.conn = conn
	c.state = StateConnected
	c.mu.Unlock()

	// Транспорт открыт — первым кадром уходит join.
	if err := c.write(conn, api.NewJoin(name)); err != nil {
		c.transportClosed(gen)
		return
	}

	go c.readLoop(gen, conn)
}

// readLoop применяет входящие серверные сообщения к локальному зеркалу.
func (c *Client) readLoop(gen int, conn Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			c.transportClosed(gen)
			return
		}

		msg, err := api.DecodeServerMessage(data)
		if err != nil {
			logger.Log.WithError(err).Debug("malformed server frame ignored")
			continue
		}
		c.apply(msg)
	}
}

// apply — единственное место, где мутируется локальный реестр.
func (c *Client) apply(msg api.ServerMessage) {
	var chatCb func(api.ChatMessage)
	var chatMsg api.ChatMessage

	c.mu.Lock()
	switch m := msg.(type) {
	case api.Welcome:
		self := m.Player
		c.self = &self
		c.remotes = make(map[string]*api.Player, len(m.Players))
		for i := range m.Players {
			p := m.Players[i]
			c.remotes[p.ID] = &p
		}
		c.chat = append([]api.ChatMessage(nil), m.RecentChat...)

	case api.PlayerJoined:
		p := m.Player
		c.remotes[p.ID] = &p

	case api.PlayerLeft:
		delete(c.remotes, m.PlayerID)

	case api.PlayerMoved:
		if p, ok := c.remotes[m.PlayerID]; ok {
			p.X = m.X
			p.Y = m.Y
		}

	case api.PlayerRoomChanged:
		if p, ok := c.remotes[m.PlayerID]; ok {
			p.Room = m.Room
		}

	case api.ChatEvent:
		c.chat = append(c.chat, m.Message)
		if len(c.chat) > ChatLogLimit {
			c.chat = c.chat[len(c.chat)-ChatLogLimit:]
		}
		chatCb = c.onChat
		chatMsg = m.Message

	case api.Error:
		logger.Log.WithField("message", m.Message).Warn("server error")
	}
	c.mu.Unlock()

	if chatCb != nil {
		chatCb(chatMsg)
	}
}

// transportClosed переводит машину в disconnected и, если имя еще
// задано, взводит РОВНО ОДИН таймер переподключения.
func (c *Client) transportClosed(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return // устаревшее соединение, новое уже живет своей жизнью
	}
	c.gen++
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
	c.state = StateDisconnected
	c.scheduleReconnectLocked()
}

func (c *Client) scheduleReconnectLocked() {
	if c.name == "" || c.reconnect != nil {
		return
	}
	logger.Log.Infof("reconnecting in %s", ReconnectDelay)
	c.reconnect = c.clock.AfterFunc(ReconnectDelay, func() {
		c.mu.Lock()
		c.reconnect = nil
		name := c.name
		c.mu.Unlock()

		if name != "" {
			c.Connect(name)
		}
	})
}

// Disconnect рвет соединение и выключает автопереподключение.
func (c *Client) Disconnect() {
	c.mu.Lock()
	c.name = ""
	if c.reconnect != nil {
		c.reconnect.Stop()
		c.reconnect = nil
	}
	c.gen++
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// SendPosition отправляет позицию с дросселированием: кадр подавляется,
// только если с прошлой отправки прошло меньше PositionThrottle И сдвиг
// меньше PositionEpsilon по обеим осям.
func (c *Client) SendPosition(x, y float64) {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return
	}

	now := c.clock.Now()
	if c.lastSend.ok && now.Sub(c.lastSend.at) < PositionThrottle {
		if math.Abs(x-c.lastSend.x) < PositionEpsilon && math.Abs(y-c.lastSend.y) < PositionEpsilon {
			c.mu.Unlock()
			return
		}
	}
	c.lastSend.x = x
	c.lastSend.y = y
	c.lastSend.at = now
	c.lastSend.ok = true

	conn := c.conn
	gen := c.gen
	c.mu.Unlock()

	if err := c.write(conn, api.NewMove(x, y)); err != nil {
		c.transportClosed(gen)
	}
}

// SendRoomChange сообщает серверу о переходе в другую комнату.
func (c *Client) SendRoomChange(room string) {
	c.send(api.NewRoomChange(room))
}

// SendChat отправляет сообщение чата. Пустой после trim текст не уходит.
func (c *Client) SendChat(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	c.send(api.NewChat(text))
}

func (c *Client) send(msg api.ClientMessage) {
	c.mu.Lock()
	if c.state != StateConnected || c.conn == nil {
		c.mu.Unlock()
		return
	}
	conn := c.conn
	gen := c.gen
	c.mu.Unlock()

	if err := c.write(conn, msg); err != nil {
		c.transportClosed(gen)
	}
}

func (c *Client) write(conn Conn, msg any) error {
	frame, err := api.Encode(msg)
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, frame)
}

// --- Снимки локального состояния для хоста/рендерера ---

// State возвращает текущее состояние машины соединения.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Self возвращает копию собственной записи игрока (nil до welcome).
func (c *Client) Self() *api.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.self == nil {
		return nil
	}
	self := *c.self
	return &self
}

// RemotePlayers возвращает снимок всех чужих игроков.
func (c *Client) RemotePlayers() []api.Player {
	c.mu.Lock()
	defer c.mu.Unlock()
	players := make([]api.Player, 0, len(c.remotes))
	for _, p := range c.remotes {
		players = append(players, *p)
	}
	return players
}

// ChatLog возвращает снимок локального лога чата.
func (c *Client) ChatLog() []api.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]api.ChatMessage(nil), c.chat...)
}
