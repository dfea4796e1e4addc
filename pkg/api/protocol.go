package api

// Пакет api описывает проводной протокол особняка: JSON-кадры поверх
// WebSocket, дискриминированные по полю "type". Структуры здесь — общий
// словарь сервера и клиента (аналог shared types на фронтенде).

// --- Общие DTO ---

// Player — снимок состояния одного участника.
// На сервере это авторитетная запись, на клиенте — зеркало чужого игрока.
type Player struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Color string  `json:"color"`
	Room  string  `json:"room"`
}

// ChatMessage — одна запись в общем чате.
type ChatMessage struct {
	ID         string `json:"id"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Text       string `json:"text"`
	Timestamp  int64  `json:"timestamp"` // Unix milliseconds
}

// --- КЛИЕНТ -> СЕРВЕР ---

// Теги клиентских сообщений.
const (
	TypeJoin       = "join"
	TypeMove       = "move"
	TypeRoomChange = "room_change"
	TypeChat       = "chat"
)

// ClientMessage — закрытое объединение всех сообщений клиент->сервер.
// Конкретный вариант определяется тегом "type"; неизвестные теги
// отвергаются на этапе декодирования, а не где-то глубже.
type ClientMessage interface {
	clientMessage()
}

// Join — первое (и единственно допустимое первым) сообщение соединения.
type Join struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// Move — клиент сообщает свою позицию в координатах сетки.
// Сервер доверяет координатам как есть (осознанная граница доверия).
type Move struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// RoomChange — аватар пересек границу комнаты.
type RoomChange struct {
	Type string `json:"type"`
	Room string `json:"room"`
}

// Chat — текст сообщения в общий чат.
type Chat struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func (Join) clientMessage()       {}
func (Move) clientMessage()       {}
func (RoomChange) clientMessage() {}
func (Chat) clientMessage()       {}

// Конструкторы проставляют тег, чтобы вызывающий код не мог его забыть.

func NewJoin(name string) Join             { return Join{Type: TypeJoin, Name: name} }
func NewMove(x, y float64) Move            { return Move{Type: TypeMove, X: x, Y: y} }
func NewRoomChange(room string) RoomChange { return RoomChange{Type: TypeRoomChange, Room: room} }
func NewChat(text string) Chat             { return Chat{Type: TypeChat, Text: text} }

// --- СЕРВЕР -> КЛИЕНТ ---

// Теги серверных сообщений.
const (
	TypeWelcome           = "welcome"
	TypePlayerJoined      = "player_joined"
	TypePlayerLeft        = "player_left"
	TypePlayerMoved       = "player_moved"
	TypePlayerRoomChanged = "player_room_changed"
	TypeError             = "error"
	// TypeChat используется в обе стороны: входящий текст и исходящее событие.
)

// ServerMessage — закрытое объединение всех сообщений сервер->клиент.
type ServerMessage interface {
	serverMessage()
}

// Welcome — ответ на join: собственная запись игрока, все остальные
// участники (без самого игрока) и хвост истории чата.
type Welcome struct {
	Type       string        `json:"type"`
	Player     Player        `json:"player"`
	Players    []Player      `json:"players"`
	RecentChat []ChatMessage `json:"recentChat"`
}

// PlayerJoined — в пространстве появился новый участник.
type PlayerJoined struct {
	Type   string `json:"type"`
	Player Player `json:"player"`
}

// PlayerLeft — участник отключился.
type PlayerLeft struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
}

// PlayerMoved — участник переместился.
type PlayerMoved struct {
	Type     string  `json:"type"`
	PlayerID string  `json:"playerId"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

// PlayerRoomChanged — участник перешел в другую комнату.
type PlayerRoomChanged struct {
	Type     string `json:"type"`
	PlayerID string `json:"playerId"`
	Room     string `json:"room"`
}

// ChatEvent — новое сообщение чата. Единственное событие, которое
// сервер шлет в том числе отправителю.
type ChatEvent struct {
	Type    string      `json:"type"`
	Message ChatMessage `json:"message"`
}

// Error — сервер отвергает операцию (например, до join).
// Соединение при этом остается открытым.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (Welcome) serverMessage()           {}
func (PlayerJoined) serverMessage()      {}
func (PlayerLeft) serverMessage()        {}
func (PlayerMoved) serverMessage()       {}
func (PlayerRoomChanged) serverMessage() {}
func (ChatEvent) serverMessage()         {}
func (Error) serverMessage()             {}

func NewWelcome(self Player, others []Player, recent []ChatMessage) Welcome {
	return Welcome{Type: TypeWelcome, Player: self, Players: others, RecentChat: recent}
}

func NewPlayerJoined(p Player) PlayerJoined {
	return PlayerJoined{Type: TypePlayerJoined, Player: p}
}

func NewPlayerLeft(playerID string) PlayerLeft {
	return PlayerLeft{Type: TypePlayerLeft, PlayerID: playerID}
}

func NewPlayerMoved(playerID string, x, y float64) PlayerMoved {
	return PlayerMoved{Type: TypePlayerMoved, PlayerID: playerID, X: x, Y: y}
}

func NewPlayerRoomChanged(playerID, room string) PlayerRoomChanged {
	return PlayerRoomChanged{Type: TypePlayerRoomChanged, PlayerID: playerID, Room: room}
}

func NewChatEvent(m ChatMessage) ChatEvent {
	return ChatEvent{Type: TypeChat, Message: m}
}

func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
