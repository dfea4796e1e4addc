package agent

import (
	"context"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"mansion-server/internal/client"
	"mansion-server/internal/motion"
	"mansion-server/pkg/logger"
	"mansion-server/pkg/mansion"
)

// Bot — "игрок-компьютер" (Headless Agent). Это пример ВНЕШНЕГО клиента:
// он подключается к серверу тем же протоколом, что и настоящий фронтенд,
// водит собственный аватар через контроллер движения и сообщает свою
// позицию через клиентскую библиотеку.
//
// Жизненный цикл:
//  1. New -> клиент, аватар и карта собираются вместе.
//  2. Run -> Connect, затем цикл тиков: стоим -> выбираем цель ->
//     идем по маршруту, дросселированно отправляя позицию.
//  3. Отмена контекста -> Disconnect и выход.
type Bot struct {
	Name string

	client *client.Client
	avatar *motion.Avatar
	world  *mansion.Map
	rng    *rand.Rand

	// targets — клетки, между которыми слоняется бот.
	// Обычно это позиции выложенных товаров.
	targets []mansion.Point
}

// New создает бота. Если targets пуст, цели выбираются по всей карте.
func New(name string, cl *client.Client, world *mansion.Map, targets []mansion.Point, seed int64) *Bot {
	return &Bot{
		Name:    name,
		client:  cl,
		avatar:  motion.New(world),
		world:   world,
		rng:     rand.New(rand.NewSource(seed)),
		targets: targets,
	}
}

// tickInterval — шаг симуляции бота. У браузерного клиента это кадр
// анимации, у бота — обычный тикер.
const tickInterval = 50 * time.Millisecond

// idlePause — сколько тиков бот отдыхает, дойдя до цели.
const idlePause = 40

// Run ведет бота до отмены контекста.
func (b *Bot) Run(ctx context.Context) {
	b.client.Connect(b.Name)
	defer b.client.Disconnect()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	rest := 0
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			logger.Log.WithField("bot", b.Name).Info("Bot stopped")
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now

			if b.avatar.State == motion.StateIdle {
				if rest > 0 {
					rest--
					continue
				}
				b.pickTarget()
				continue
			}

			ev := b.avatar.Advance(dt)
			b.client.SendPosition(b.avatar.X, b.avatar.Y)
			if ev.RoomChanged {
				b.client.SendRoomChange(string(ev.Room))
				logger.Log.WithFields(logrus.Fields{
					"bot":  b.Name,
					"room": ev.Room,
				}).Debug("Bot changed room")
			}
			if ev.Arrived {
				rest = idlePause
			}
		}
	}
}

// pickTarget выбирает следующую цель: случайный товар либо случайная
// проходимая клетка, и прокладывает к ней маршрут.
func (b *Bot) pickTarget() {
	for attempts := 0; attempts < 10; attempts++ {
		var target mansion.Point
		if len(b.targets) > 0 {
			target = b.targets[b.rng.Intn(len(b.targets))]
		} else {
			target = mansion.Point{
				X: b.rng.Intn(b.world.Width),
				Y: b.rng.Intn(b.world.Height),
			}
		}

		if b.avatar.MoveTo(target.X, target.Y) {
			return
		}
	}
	// Все попытки мимо (непроходимые или недостижимые клетки) —
	// подождем следующего тика.
}
