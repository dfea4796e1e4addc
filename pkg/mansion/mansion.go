// Пакет mansion описывает статичную карту особняка: прямоугольную сетку
// тайлов 20x20, разбитую на именованные комнаты.
//
// Конвенция авторинга карты: у каждой комнаты стены строятся только по
// верхней и левой границе, двери прорезаются явным списком. Нижняя и
// правая границы открыты — там, где две комнаты примыкают друг к другу
// без смоделированной стены, переход возможен и без дверного тайла.
// Это осознанное "open-plan" соседство, а не ошибка разметки.
package mansion

// TileType — тип одного тайла сетки.
type TileType string

const (
	TileEmpty TileType = "empty"
	TileFloor TileType = "floor"
	TileWall  TileType = "wall"
	TileDoor  TileType = "door"
)

// RoomID идентификатор комнаты ("entree", "keuken", ...).
type RoomID string

// Point — целочисленная клетка сетки.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds — прямоугольник комнаты в координатах сетки, границы включительно.
type Bounds struct {
	StartX, StartY int
	EndX, EndY     int
}

// Contains проверяет, попадает ли клетка в прямоугольник.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.StartX && x <= b.EndX && y >= b.StartY && y <= b.EndY
}

// Room — именованная прямоугольная область сетки.
// Color и FloorColor нужны только рендереру, ядро их не трогает.
type Room struct {
	ID         RoomID
	Name       string
	Bounds     Bounds
	Color      string
	FloorColor string
}

// Tile — статичное описание одной клетки. Неизменяем после Build.
type Tile struct {
	Type     TileType
	Walkable bool
	Room     RoomID
}

// Map — карта особняка. Строится один раз при старте, дальше только чтение.
// Инвариант: каждая клетка в границах имеет ровно один Tile; клетка
// проходима тогда и только тогда, когда ее тип floor или door.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // [y][x]
	Rooms  []Room
}

// Build конструирует карту особняка из декларативного списка комнат:
// сначала все клетки пустые, затем каждая комната размечает свои стены
// (верх и лево) и пол, затем фиксированный список дверей пробивает
// проходы между комнатами.
func Build() *Map {
	m := &Map{
		Width:  MapWidth,
		Height: MapHeight,
		Rooms:  Rooms,
	}

	m.Tiles = make([][]Tile, m.Height)
	for y := 0; y < m.Height; y++ {
		row := make([]Tile, m.Width)
		for x := 0; x < m.Width; x++ {
			row[x] = Tile{Type: TileEmpty, Walkable: false, Room: SpawnRoom}
		}
		m.Tiles[y] = row
	}

	for _, room := range m.Rooms {
		carveRoom(m, room)
	}

	for _, door := range Doors {
		if !m.InBounds(door.X, door.Y) {
			continue
		}
		tile := &m.Tiles[door.Y][door.X]
		tile.Type = TileDoor
		tile.Walkable = true
	}

	return m
}

// carveRoom размечает одну комнату: верхняя и левая кромка — стены,
// остальное — пол.
func carveRoom(m *Map, room Room) {
	for y := room.Bounds.StartY; y <= room.Bounds.EndY; y++ {
		for x := room.Bounds.StartX; x <= room.Bounds.EndX; x++ {
			if !m.InBounds(x, y) {
				continue
			}
			isTopEdge := y == room.Bounds.StartY
			isLeftEdge := x == room.Bounds.StartX

			if isTopEdge || isLeftEdge {
				m.Tiles[y][x] = Tile{Type: TileWall, Walkable: false, Room: room.ID}
			} else {
				m.Tiles[y][x] = Tile{Type: TileFloor, Walkable: true, Room: room.ID}
			}
		}
	}
}

// InBounds проверяет границы сетки.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt возвращает тайл клетки. Для клетки вне границ — пустой тайл.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return Tile{Type: TileEmpty, Walkable: false}
	}
	return m.Tiles[y][x]
}

// WalkableAt сообщает, можно ли стоять на клетке.
func (m *Map) WalkableAt(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[y][x].Walkable
}

// RoomAt возвращает комнату, которой принадлежит клетка.
// Поиск идет по списку комнат в порядке объявления: комнаты на практике
// не пересекаются, но на общих кромках выигрывает объявленная первой.
// Вторым значением возвращается false, если клетка не попала ни в одну комнату.
func (m *Map) RoomAt(x, y int) (RoomID, bool) {
	for _, room := range m.Rooms {
		if room.Bounds.Contains(x, y) {
			return room.ID, true
		}
	}
	return "", false
}

// RoomByID ищет комнату по идентификатору.
func (m *Map) RoomByID(id RoomID) (Room, bool) {
	for _, room := range m.Rooms {
		if room.ID == id {
			return room, true
		}
	}
	return Room{}, false
}

// RoomCenter возвращает центр комнаты со сдвигом на одну клетку от
// верхней и левой стены, чтобы точка гарантированно легла не на стену.
// Для неизвестной комнаты возвращается точка спавна.
func (m *Map) RoomCenter(id RoomID) Point {
	room, ok := m.RoomByID(id)
	if !ok {
		return Spawn
	}
	return Point{
		X: (room.Bounds.StartX + 1 + room.Bounds.EndX) / 2,
		Y: (room.Bounds.StartY + 1 + room.Bounds.EndY) / 2,
	}
}
