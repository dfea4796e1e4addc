package network

import "sync"

// Broadcaster занимается только рассылкой готовых JSON-кадров по
// персональным каналам подключенных игроков. Кадр маршалится один раз
// на рассылку, каналы принадлежат write pump'ам соединений.
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: PlayerID -> канал отправки его соединения
	subscribers map[string]chan<- []byte
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan<- []byte),
	}
}

// Attach привязывает канал отправки соединения к игроку.
// Канал создает и закрывает соединение, хаб им только пользуется.
func (b *Broadcaster) Attach(playerID string, send chan<- []byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[playerID] = send
}

// Detach отвязывает игрока. Канал не закрывается — им владеет write pump.
func (b *Broadcaster) Detach(playerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscribers, playerID)
}

// SendTo отправляет кадр конкретному игроку (Unicast).
func (b *Broadcaster) SendTo(playerID string, frame []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if ch, ok := b.subscribers[playerID]; ok {
		select {
		case ch <- frame:
		default:
			// Переполненный канал — медленный или умирающий клиент.
			// Пропускаем его и не тормозим остальных.
		}
	}
}

// Broadcast отправляет кадр всем подключенным.
func (b *Broadcaster) Broadcast(frame []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subscribers {
		select {
		case ch <- frame:
		default:
		}
	}
}

// BroadcastExcept отправляет кадр всем, кроме одного игрока
// (стандартный случай: событие не возвращается его источнику).
func (b *Broadcaster) BroadcastExcept(excludeID string, frame []byte) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		if id == excludeID {
			continue
		}
		select {
		case ch <- frame:
		default:
		}
	}
}

// SubscriberCount возвращает количество активных подписчиков.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
