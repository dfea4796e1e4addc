package engine

import (
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"mansion-server/internal/network"
	"mansion-server/pkg/api"
	"mansion-server/pkg/logger"
	"mansion-server/pkg/mansion"
	"mansion-server/pkg/utils"
)

// Command — одна единица работы для движка: декодированное сообщение
// одной сессии либо ее отключение (Msg == nil).
type Command struct {
	// SessionID — идентичность соединения до (и после) join.
	SessionID string
	// Reply — канал отправки write pump'а этого соединения.
	// Нужен для ответов до того, как игрок зарегистрирован в хабе.
	Reply chan<- []byte
	// Msg — декодированное сообщение клиента; nil означает disconnect.
	Msg api.ClientMessage
}

// session — серверное состояние одного соединения.
// PlayerID пустой, пока соединение не прошло join.
type session struct {
	playerID string
	reply    chan<- []byte
}

// GameService — авторитетное состояние пространства: реестр игроков,
// таблица сессий и кольцо чата. ВСЕ мутации происходят в одной горутине
// run(), которая выбирает команды из Commands по одной и доводит каждую
// до конца. Поэтому ни реестр, ни кольцо не требуют блокировок.
type GameService struct {
	cfg   Config
	world *mansion.Map

	players  map[string]*api.Player
	sessions map[string]*session
	chatLog  []api.ChatMessage

	Commands chan Command
	Hub      *network.Broadcaster

	handlers map[string]func(*session, api.ClientMessage)

	// playerCount дублирует len(players) атомарно — его читает
	// HTTP-обработчик здоровья из чужой горутины.
	playerCount atomic.Int64

	done chan struct{}
}

func NewService(cfg Config, world *mansion.Map) *GameService {
	s := &GameService{
		cfg:      cfg,
		world:    world,
		players:  make(map[string]*api.Player),
		sessions: make(map[string]*session),
		Commands: make(chan Command, 256),
		Hub:      network.NewBroadcaster(),
		handlers: make(map[string]func(*session, api.ClientMessage)),
		done:     make(chan struct{}),
	}
	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[api.TypeJoin] = s.handleJoin
	s.handlers[api.TypeMove] = s.handleMove
	s.handlers[api.TypeRoomChange] = s.handleRoomChange
	s.handlers[api.TypeChat] = s.handleChat
}

// Start запускает цикл обработки команд.
func (s *GameService) Start() {
	go s.run()
}

// Stop останавливает цикл. После Stop команды больше не принимаются.
func (s *GameService) Stop() {
	close(s.done)
}

// PlayerCount — текущее число подключенных игроков (для /health).
func (s *GameService) PlayerCount() int {
	return int(s.playerCount.Load())
}

// World возвращает карту, на которой живет сервис.
func (s *GameService) World() *mansion.Map {
	return s.world
}

func (s *GameService) run() {
	for {
		select {
		case cmd := <-s.Commands:
			s.dispatch(cmd)
		case <-s.done:
			return
		}
	}
}

func (s *GameService) dispatch(cmd Command) {
	if cmd.Msg == nil {
		s.handleDisconnect(cmd.SessionID)
		return
	}

	sess, ok := s.sessions[cmd.SessionID]
	if !ok {
		sess = &session{reply: cmd.Reply}
		s.sessions[cmd.SessionID] = sess
	}

	if v, ok := cmd.Msg.(api.Validator); ok {
		if err := v.Validate(); err != nil {
			logger.Log.WithError(err).WithField("session", cmd.SessionID).
				Debug("Invalid message dropped")
			return
		}
	}

	handler, ok := s.handlers[api.TypeOf(cmd.Msg)]
	if !ok {
		logger.Log.WithField("session", cmd.SessionID).Warn("Unhandled message variant")
		return
	}
	handler(sess, cmd.Msg)
}

// reply шлет кадр напрямую в соединение сессии (минуя хаб —
// сессия может быть еще не зарегистрирована в нем).
func (s *GameService) reply(sess *session, msg api.ServerMessage) {
	frame, err := api.Encode(msg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode reply")
		return
	}
	select {
	case sess.reply <- frame:
	default:
	}
}

// broadcastExcept маршалит событие один раз и рассылает всем, кроме источника.
func (s *GameService) broadcastExcept(excludeID string, msg api.ServerMessage) {
	frame, err := api.Encode(msg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode broadcast")
		return
	}
	s.Hub.BroadcastExcept(excludeID, frame)
}

// --- Обработчики операций ---

// handleJoin регистрирует нового игрока: уникальный ID, случайный цвет
// из палитры, точка спавна. Отправителю уезжает welcome (он сам, все
// остальные, хвост чата), остальным — player_joined.
func (s *GameService) handleJoin(sess *session, msg api.ClientMessage) {
	join := msg.(api.Join)

	// Повторный join на уже присоединенном соединении — нарушение
	// протокола. Отвечаем ошибкой, соединение не рвем.
	if sess.playerID != "" {
		s.reply(sess, api.NewError("already joined"))
		return
	}

	player := &api.Player{
		ID:    utils.GenerateID(),
		Name:  truncate(join.Name, s.cfg.MaxNameLen),
		X:     float64(mansion.Spawn.X),
		Y:     float64(mansion.Spawn.Y),
		Color: utils.RandomColor(),
		Room:  string(mansion.SpawnRoom),
	}

	s.players[player.ID] = player
	sess.playerID = player.ID
	s.playerCount.Add(1)
	s.Hub.Attach(player.ID, sess.reply)

	others := make([]api.Player, 0, len(s.players)-1)
	for id, p := range s.players {
		if id != player.ID {
			others = append(others, *p)
		}
	}

	tail := s.chatLog
	if len(tail) > s.cfg.WelcomeChatTail {
		tail = tail[len(tail)-s.cfg.WelcomeChatTail:]
	}
	recent := make([]api.ChatMessage, len(tail))
	copy(recent, tail)

	s.reply(sess, api.NewWelcome(*player, others, recent))
	s.broadcastExcept(player.ID, api.NewPlayerJoined(*player))

	logger.Log.WithFields(logrus.Fields{
		"player_id": player.ID,
		"name":      player.Name,
	}).Info("Player joined")
}

// handleMove обновляет позицию игрока. Координаты принимаются как есть:
// сервер сознательно не перепроверяет проходимость клиентских позиций.
func (s *GameService) handleMove(sess *session, msg api.ClientMessage) {
	move := msg.(api.Move)

	player, ok := s.players[sess.playerID]
	if !ok {
		// move до join — тихий no-op, медленный клиент не наказывается.
		return
	}

	player.X = move.X
	player.Y = move.Y
	s.broadcastExcept(player.ID, api.NewPlayerMoved(player.ID, move.X, move.Y))
}

// handleRoomChange обновляет комнату игрока.
func (s *GameService) handleRoomChange(sess *session, msg api.ClientMessage) {
	rc := msg.(api.RoomChange)

	player, ok := s.players[sess.playerID]
	if !ok {
		return
	}

	player.Room = rc.Room
	s.broadcastExcept(player.ID, api.NewPlayerRoomChanged(player.ID, rc.Room))
}

// handleChat кладет сообщение в кольцо истории и рассылает ВСЕМ,
// включая отправителя — единственная операция с эхом себе.
func (s *GameService) handleChat(sess *session, msg api.ClientMessage) {
	chat := msg.(api.Chat)

	player, ok := s.players[sess.playerID]
	if !ok {
		return
	}

	text := truncate(strings.TrimSpace(chat.Text), s.cfg.MaxChatLen)
	if text == "" {
		return
	}

	entry := api.ChatMessage{
		ID:         utils.GenerateID(),
		PlayerID:   player.ID,
		PlayerName: player.Name,
		Text:       text,
		Timestamp:  time.Now().UnixMilli(),
	}

	s.chatLog = append(s.chatLog, entry)
	if len(s.chatLog) > s.cfg.MaxChatHistory {
		s.chatLog = s.chatLog[len(s.chatLog)-s.cfg.MaxChatHistory:]
	}

	frame, err := api.Encode(api.NewChatEvent(entry))
	if err != nil {
		logger.Log.WithError(err).Error("Failed to encode chat event")
		return
	}
	s.Hub.Broadcast(frame)

	logger.Log.WithFields(logrus.Fields{
		"player": player.Name,
		"len":    len(text),
	}).Debug("Chat message")
}

// handleDisconnect убирает игрока и сообщает остальным.
// Отключение — нормальное событие жизненного цикла, не ошибка.
func (s *GameService) handleDisconnect(sessionID string) {
	sess, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	delete(s.sessions, sessionID)

	if sess.playerID == "" {
		return
	}

	player := s.players[sess.playerID]
	s.Hub.Detach(sess.playerID)
	delete(s.players, sess.playerID)
	s.playerCount.Add(-1)

	s.broadcastExcept(sess.playerID, api.NewPlayerLeft(sess.playerID))

	name := sess.playerID
	if player != nil {
		name = player.Name
	}
	logger.Log.WithField("name", name).Info("Player left")
}

// truncate ограничивает строку n символами (рунами, не байтами).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
