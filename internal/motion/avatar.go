// Пакет motion владеет непрерывной позицией локального аватара и ведет
// его по вычисленному маршруту. Advance — чистая функция тика: ее можно
// звать из реального цикла кадров, из теста с синтетическим Δt или из
// детерминированной симуляции, планировщик ей безразличен.
package motion

import (
	"math"

	"mansion-server/internal/pathfind"
	"mansion-server/pkg/mansion"
)

// State — состояние аватара.
type State string

const (
	StateIdle    State = "idle"
	StateWalking State = "walking"
)

// Direction — одно из 8 направлений компаса, в котором смотрит аватар.
type Direction string

const (
	DirN  Direction = "N"
	DirNE Direction = "NE"
	DirE  Direction = "E"
	DirSE Direction = "SE"
	DirS  Direction = "S"
	DirSW Direction = "SW"
	DirW  Direction = "W"
	DirNW Direction = "NW"
)

// DefaultSpeed — скорость аватара в клетках в секунду.
const DefaultSpeed = 5.0

// Events — что произошло за один тик. Кроме позиции и направления это
// единственные наблюдаемые снаружи изменения; хост использует смену
// комнаты для камеры/интерфейса и для room_change по сети.
type Events struct {
	RoomChanged bool
	Room        mansion.RoomID
	Arrived     bool // путь пройден до конца, аватар снова idle
}

// Avatar — локальный аватар. Владелец один (контроллер движения),
// мутация происходит ровно раз за тик симуляции.
type Avatar struct {
	X, Y      float64
	Direction Direction
	State     State
	Speed     float64
	Path      []mansion.Point
	Room      mansion.RoomID

	world *mansion.Map
}

// New создает аватар в точке спавна, смотрящим на юг.
func New(world *mansion.Map) *Avatar {
	return &Avatar{
		X:         float64(mansion.Spawn.X),
		Y:         float64(mansion.Spawn.Y),
		Direction: DirS,
		State:     StateIdle,
		Speed:     DefaultSpeed,
		Room:      mansion.SpawnRoom,
		world:     world,
	}
}

// MoveTo прокладывает маршрут от текущей (округленной) клетки к цели.
// Непроходимая цель или недостижимый маршрут — отказ без смены состояния:
// пустой путь значит "движение не начато".
func (a *Avatar) MoveTo(x, y int) bool {
	if !a.world.WalkableAt(x, y) {
		return false
	}

	start := mansion.Point{X: int(math.Round(a.X)), Y: int(math.Round(a.Y))}
	path := pathfind.FindPath(start, mansion.Point{X: x, Y: y}, a.world)
	if len(path) == 0 {
		return false
	}

	a.Path = path
	a.State = StateWalking
	return true
}

// TeleportToRoom мгновенно переносит аватар в центр комнаты и сбрасывает путь.
func (a *Avatar) TeleportToRoom(id mansion.RoomID) Events {
	center := a.world.RoomCenter(id)
	a.X = float64(center.X)
	a.Y = float64(center.Y)
	a.Path = nil
	a.State = StateIdle

	var ev Events
	if id != a.Room {
		a.Room = id
		ev.RoomChanged = true
		ev.Room = id
	}
	return ev
}

// Advance продвигает аватар на dt секунд вдоль пути.
//
// Если до следующей путевой точки остается не больше, чем speed·dt,
// аватар прищелкивается к ней точно, точка снимается с пути, обновляются
// направление и комната; при опустевшем пути состояние становится idle.
// Иначе позиция двигается линейно к точке на speed·dt.
func (a *Avatar) Advance(dt float64) Events {
	var ev Events

	if a.State != StateWalking || len(a.Path) == 0 {
		return ev
	}

	target := a.Path[0]
	dx := float64(target.X) - a.X
	dy := float64(target.Y) - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	step := a.Speed * dt

	a.Direction = directionOf(dx, dy)

	if dist <= step {
		a.X = float64(target.X)
		a.Y = float64(target.Y)
		a.Path = a.Path[1:]

		if room, ok := a.world.RoomAt(target.X, target.Y); ok && room != a.Room {
			a.Room = room
			ev.RoomChanged = true
			ev.Room = room
		}

		if len(a.Path) == 0 {
			a.State = StateIdle
			ev.Arrived = true
		}
		return ev
	}

	ratio := step / dist
	a.X += dx * ratio
	a.Y += dy * ratio
	return ev
}

// directionOf квантует вектор движения в 8 секторов компаса по 45°.
// Сектора — полуоткрытые диапазоны угла atan2 в градусах, покрывающие
// [-180°, 180°); ось Y сетки растет вниз, поэтому положительный dy — юг.
func directionOf(dx, dy float64) Direction {
	if dx == 0 && dy == 0 {
		return DirS
	}

	angle := math.Atan2(dy, dx) * 180 / math.Pi

	switch {
	case angle >= -22.5 && angle < 22.5:
		return DirE
	case angle >= 22.5 && angle < 67.5:
		return DirSE
	case angle >= 67.5 && angle < 112.5:
		return DirS
	case angle >= 112.5 && angle < 157.5:
		return DirSW
	case angle >= 157.5 || angle < -157.5:
		return DirW
	case angle >= -157.5 && angle < -112.5:
		return DirNW
	case angle >= -112.5 && angle < -67.5:
		return DirN
	default: // [-67.5, -22.5)
		return DirNE
	}
}
