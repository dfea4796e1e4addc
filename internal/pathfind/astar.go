// Пакет pathfind считает маршруты по 8-связной сетке особняка.
//
// Алгоритм — A* с эвристикой Чебышёва (max(|dx|,|dy|)): она допустима и
// согласована при стоимости шага 1 по прямой и √2 по диагонали, поэтому
// диагональные срезы находятся без переоценки. Закрытые узлы повторно
// не открываются — при таких малых и почти равных стоимостях ребер
// возможное отклонение от оптимума незначительно, и этот компромисс
// сохранен сознательно ради совпадения маршрутов с клиентом.
package pathfind

import (
	"container/heap"
	"math"

	"mansion-server/pkg/mansion"
)

// neighbor — смещение до соседа и стоимость шага.
type neighbor struct {
	dx, dy   int
	cost     float64
	diagonal bool
}

var neighborOffsets = [...]neighbor{
	{dx: 0, dy: -1, cost: 1},                           // N
	{dx: 1, dy: -1, cost: math.Sqrt2, diagonal: true},  // NE
	{dx: 1, dy: 0, cost: 1},                            // E
	{dx: 1, dy: 1, cost: math.Sqrt2, diagonal: true},   // SE
	{dx: 0, dy: 1, cost: 1},                            // S
	{dx: -1, dy: 1, cost: math.Sqrt2, diagonal: true},  // SW
	{dx: -1, dy: 0, cost: 1},                           // W
	{dx: -1, dy: -1, cost: math.Sqrt2, diagonal: true}, // NW
}

// node — один узел поиска. Узлы живут в арене (растущем срезе),
// родитель хранится как индекс в ней. Так реконструкция пути не
// требует ссылочной возни, а состояние поиска легко инспектировать.
type node struct {
	x, y   int
	g, f   float64
	parent int32 // индекс родителя в арене, -1 у старта
	open   bool  // узел сейчас в открытом множестве
	closed bool
	heapIx int // позиция в куче, поддерживается openHeap
}

// search держит арену и открытое множество одного запуска A*.
type search struct {
	arena  []node
	byCell map[[2]int]int32 // клетка -> индекс узла в арене
	open   openHeap
}

// openHeap — минимальная куча индексов арены, упорядоченная по f.
// Равные f специально не разруливаются: порядок кучи и есть порядок обхода.
type openHeap struct {
	s     *search
	items []int32
}

func (h openHeap) Len() int { return len(h.items) }

func (h openHeap) Less(i, j int) bool {
	return h.s.arena[h.items[i]].f < h.s.arena[h.items[j]].f
}

func (h openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.s.arena[h.items[i]].heapIx = i
	h.s.arena[h.items[j]].heapIx = j
}

func (h *openHeap) Push(v any) {
	ix := v.(int32)
	h.s.arena[ix].heapIx = len(h.items)
	h.items = append(h.items, ix)
}

func (h *openHeap) Pop() any {
	last := len(h.items) - 1
	ix := h.items[last]
	h.items = h.items[:last]
	return ix
}

// heuristic — расстояние Чебышёва до цели.
func heuristic(x, y, tx, ty int) float64 {
	dx := math.Abs(float64(tx - x))
	dy := math.Abs(float64(ty - y))
	return math.Max(dx, dy)
}

// FindPath возвращает маршрут от start до end: последовательность клеток
// БЕЗ стартовой, с конечной включительно. Пустой результат означает
// "маршрута нет" (цель непроходима, вне сетки или недостижима) — вызывающий
// обязан трактовать его как "движение не начато", а не как "уже на месте".
func FindPath(start, end mansion.Point, m *mansion.Map) []mansion.Point {
	if !m.WalkableAt(end.X, end.Y) {
		return nil
	}

	s := &search{byCell: make(map[[2]int]int32)}
	s.open.s = s

	startIx := s.add(start.X, start.Y, 0, heuristic(start.X, start.Y, end.X, end.Y), -1)
	heap.Push(&s.open, startIx)

	for s.open.Len() > 0 {
		currentIx := heap.Pop(&s.open).(int32)
		current := &s.arena[currentIx]
		current.open = false

		if current.x == end.X && current.y == end.Y {
			return s.reconstruct(currentIx)
		}
		current.closed = true

		for _, nb := range neighborOffsets {
			nx, ny := current.x+nb.dx, current.y+nb.dy
			if !m.WalkableAt(nx, ny) {
				continue
			}
			// Диагональ разрешена, только если проходимы ОБЕ смежные
			// ортогональные клетки — иначе путь срезал бы угол стены.
			if nb.diagonal {
				if !m.WalkableAt(current.x+nb.dx, current.y) || !m.WalkableAt(current.x, current.y+nb.dy) {
					continue
				}
			}

			g := current.g + nb.cost
			key := [2]int{nx, ny}

			if ix, seen := s.byCell[key]; seen {
				known := &s.arena[ix]
				if known.closed {
					continue
				}
				// Узел уже в открытом множестве: улучшаем, если нашли дешевле.
				if known.open && g < known.g {
					h := known.f - known.g
					known.g = g
					known.f = g + h
					known.parent = currentIx
					heap.Fix(&s.open, known.heapIx)
				}
				continue
			}

			ix := s.add(nx, ny, g, heuristic(nx, ny, end.X, end.Y), currentIx)
			heap.Push(&s.open, ix)
		}
	}

	// Открытое множество исчерпано, цель не достигнута.
	return nil
}

// add кладет новый узел в арену и индекс по клетке.
func (s *search) add(x, y int, g, h float64, parent int32) int32 {
	ix := int32(len(s.arena))
	s.arena = append(s.arena, node{
		x: x, y: y,
		g: g, f: g + h,
		parent: parent,
		open:   true,
	})
	s.byCell[[2]int{x, y}] = ix
	return ix
}

// reconstruct идет по родительским индексам от цели к старту,
// разворачивает порядок и отбрасывает стартовую клетку.
func (s *search) reconstruct(goal int32) []mansion.Point {
	var reversed []mansion.Point
	for ix := goal; ix != -1; ix = s.arena[ix].parent {
		reversed = append(reversed, mansion.Point{X: s.arena[ix].x, Y: s.arena[ix].y})
	}

	// Последний элемент reversed — старт, он в путь не входит.
	path := make([]mansion.Point, 0, len(reversed)-1)
	for i := len(reversed) - 2; i >= 0; i-- {
		path = append(path, reversed[i])
	}
	return path
}
