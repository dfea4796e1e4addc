package pathfind

import (
	"math"
	"testing"

	"mansion-server/pkg/mansion"
)

// checkPath verifies the structural invariants every returned path
// must hold: starts adjacent to the origin, ends at the target, each
// step moves to one of the 8 neighbours, every cell is walkable and
// no diagonal step cuts a corner.
func checkPath(t *testing.T, m *mansion.Map, start, end mansion.Point, path []mansion.Point) {
	t.Helper()

	if len(path) == 0 {
		t.Fatalf("empty path from %v to %v", start, end)
	}
	if last := path[len(path)-1]; last != end {
		t.Fatalf("path ends at %v, want %v", last, end)
	}

	prev := start
	for i, p := range path {
		dx := p.X - prev.X
		dy := p.Y - prev.Y
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx == 0 && dy == 0) {
			t.Fatalf("step %d: %v -> %v is not a single-cell move", i, prev, p)
		}
		if !m.WalkableAt(p.X, p.Y) {
			t.Fatalf("step %d: cell %v is not walkable", i, p)
		}
		if dx != 0 && dy != 0 {
			if !m.WalkableAt(prev.X+dx, prev.Y) || !m.WalkableAt(prev.X, prev.Y+dy) {
				t.Fatalf("step %d: diagonal %v -> %v cuts a corner", i, prev, p)
			}
		}
		prev = p
	}
}

func TestFindPathWithinRoom(t *testing.T) {
	m := mansion.Build()

	start := mansion.Point{X: 9, Y: 9}
	end := mansion.Point{X: 12, Y: 12}

	path := FindPath(start, end, m)
	checkPath(t, m, start, end, path)
}

func TestFindPathAcrossRooms(t *testing.T) {
	m := mansion.Build()

	// Entree to garage: has to pass through at least one door cell.
	start := mansion.Point{X: 10, Y: 10}
	end := mansion.Point{X: 3, Y: 3}

	path := FindPath(start, end, m)
	checkPath(t, m, start, end, path)

	throughDoor := false
	for _, p := range path {
		if m.TileAt(p.X, p.Y).Type == mansion.TileDoor {
			throughDoor = true
			break
		}
	}
	if !throughDoor {
		t.Error("path into a walled room never crossed a door")
	}
}

func TestFindPathToWall(t *testing.T) {
	m := mansion.Build()

	// Garage's top-left corner is a wall cell.
	if m.WalkableAt(0, 0) {
		t.Fatal("expected (0,0) to be a wall")
	}
	if path := FindPath(mansion.Spawn, mansion.Point{X: 0, Y: 0}, m); path != nil {
		t.Errorf("path to a wall = %v, want nil", path)
	}
}

func TestFindPathOutOfBounds(t *testing.T) {
	m := mansion.Build()

	if path := FindPath(mansion.Spawn, mansion.Point{X: 25, Y: 25}, m); path != nil {
		t.Errorf("path out of bounds = %v, want nil", path)
	}
	if path := FindPath(mansion.Spawn, mansion.Point{X: -1, Y: 5}, m); path != nil {
		t.Errorf("path out of bounds = %v, want nil", path)
	}
}

func TestFindPathToSelf(t *testing.T) {
	m := mansion.Build()

	path := FindPath(mansion.Spawn, mansion.Spawn, m)
	if len(path) != 0 {
		t.Errorf("path to self = %v, want empty", path)
	}
}

func TestDiagonalShorterThanManhattan(t *testing.T) {
	m := mansion.Build()

	// Open floor inside the entree: the diagonal route should be taken.
	start := mansion.Point{X: 9, Y: 9}
	end := mansion.Point{X: 12, Y: 12}

	path := FindPath(start, end, m)
	checkPath(t, m, start, end, path)

	cost := 0.0
	prev := start
	for _, p := range path {
		if p.X != prev.X && p.Y != prev.Y {
			cost += math.Sqrt2
		} else {
			cost += 1
		}
		prev = p
	}
	if want := 3 * math.Sqrt2; math.Abs(cost-want) > 1e-9 {
		t.Errorf("path cost = %f, want %f (pure diagonal)", cost, want)
	}
}

func TestWholeMapReachableFromSpawn(t *testing.T) {
	m := mansion.Build()

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.WalkableAt(x, y) {
				continue
			}
			end := mansion.Point{X: x, Y: y}
			if end == mansion.Spawn {
				continue
			}
			path := FindPath(mansion.Spawn, end, m)
			if len(path) == 0 {
				t.Errorf("no path from spawn to walkable cell (%d,%d)", x, y)
			}
		}
	}
}
