package mansion

// Размер сетки особняка.
const (
	MapWidth  = 20
	MapHeight = 20
)

// Идентификаторы комнат.
const (
	RoomGarage     RoomID = "garage"
	RoomKeuken     RoomID = "keuken"
	RoomWoonkamer  RoomID = "woonkamer"
	RoomHomeOffice RoomID = "home_office"
	RoomBadkamer   RoomID = "badkamer"
	RoomEntree     RoomID = "entree"
	RoomSlaapkamer RoomID = "slaapkamer"
	RoomTuin       RoomID = "tuin"
)

// SpawnRoom и Spawn — где появляется новый аватар: центр прихожей.
const SpawnRoom = RoomEntree

var Spawn = Point{X: 10, Y: 10}

// Rooms — декларативная планировка особняка.
// Порядок объявления значим: RoomAt разрешает спорные кромки в пользу
// объявленной раньше комнаты.
var Rooms = []Room{
	{
		ID:         RoomGarage,
		Name:       "Garage",
		Bounds:     Bounds{StartX: 0, StartY: 0, EndX: 7, EndY: 5},
		Color:      "#4a5568",
		FloorColor: "#718096",
	},
	{
		ID:         RoomKeuken,
		Name:       "Keuken",
		Bounds:     Bounds{StartX: 0, StartY: 6, EndX: 5, EndY: 11},
		Color:      "#f6e05e",
		FloorColor: "#faf089",
	},
	{
		ID:         RoomWoonkamer,
		Name:       "Woonkamer",
		Bounds:     Bounds{StartX: 6, StartY: 0, EndX: 13, EndY: 7},
		Color:      "#9f7aea",
		FloorColor: "#b794f4",
	},
	{
		ID:         RoomHomeOffice,
		Name:       "Home Office",
		Bounds:     Bounds{StartX: 14, StartY: 0, EndX: 19, EndY: 5},
		Color:      "#4299e1",
		FloorColor: "#63b3ed",
	},
	{
		ID:         RoomBadkamer,
		Name:       "Badkamer",
		Bounds:     Bounds{StartX: 0, StartY: 12, EndX: 5, EndY: 17},
		Color:      "#38b2ac",
		FloorColor: "#4fd1c5",
	},
	{
		ID:         RoomEntree,
		Name:       "Entree",
		Bounds:     Bounds{StartX: 6, StartY: 8, EndX: 13, EndY: 13},
		Color:      "#ed8936",
		FloorColor: "#f6ad55",
	},
	{
		ID:         RoomSlaapkamer,
		Name:       "Slaapkamer",
		Bounds:     Bounds{StartX: 14, StartY: 6, EndX: 19, EndY: 13},
		Color:      "#fc8181",
		FloorColor: "#feb2b2",
	},
	{
		ID:         RoomTuin,
		Name:       "Tuin",
		Bounds:     Bounds{StartX: 6, StartY: 14, EndX: 19, EndY: 19},
		Color:      "#48bb78",
		FloorColor: "#68d391",
	},
}

// Doors — единственные легальные проходы сквозь смоделированные стены.
var Doors = []Point{
	{X: 6, Y: 4},   // Garage -> Woonkamer
	{X: 3, Y: 6},   // Keuken, верхний вход
	{X: 6, Y: 9},   // Entree -> Woonkamer
	{X: 14, Y: 3},  // Woonkamer -> Home Office
	{X: 14, Y: 9},  // Entree -> Slaapkamer
	{X: 3, Y: 12},  // Keuken -> Badkamer
	{X: 10, Y: 14}, // Entree -> Tuin
}

// productSlots — фиксированные позиции выкладки товаров по комнатам.
// Все позиции лежат на полу (не на стенах и не на дверях).
var productSlots = map[RoomID][]Point{
	RoomGarage: {
		{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 2, Y: 4}, {X: 5, Y: 3},
	},
	RoomKeuken: {
		{X: 2, Y: 8}, {X: 4, Y: 8}, {X: 2, Y: 10}, {X: 4, Y: 10},
	},
	RoomWoonkamer: {
		{X: 8, Y: 2}, {X: 10, Y: 2}, {X: 12, Y: 2},
		{X: 8, Y: 5}, {X: 10, Y: 5}, {X: 12, Y: 5},
	},
	RoomHomeOffice: {
		{X: 16, Y: 2}, {X: 18, Y: 2}, {X: 16, Y: 4}, {X: 18, Y: 4},
	},
	RoomBadkamer: {
		{X: 2, Y: 14}, {X: 4, Y: 14}, {X: 2, Y: 16},
	},
	RoomEntree: {
		{X: 8, Y: 10}, {X: 10, Y: 10}, {X: 12, Y: 10},
	},
	RoomSlaapkamer: {
		{X: 16, Y: 8}, {X: 18, Y: 8}, {X: 16, Y: 11}, {X: 18, Y: 11},
	},
	RoomTuin: {
		{X: 8, Y: 16}, {X: 10, Y: 16}, {X: 12, Y: 16},
		{X: 14, Y: 16}, {X: 16, Y: 16}, {X: 18, Y: 16},
	},
}
