package motion

import (
	"testing"

	"mansion-server/pkg/mansion"
)

func TestNewAvatarAtSpawn(t *testing.T) {
	a := New(mansion.Build())

	if a.X != float64(mansion.Spawn.X) || a.Y != float64(mansion.Spawn.Y) {
		t.Errorf("avatar at (%f,%f), want spawn %v", a.X, a.Y, mansion.Spawn)
	}
	if a.State != StateIdle || a.Direction != DirS || a.Room != mansion.SpawnRoom {
		t.Errorf("state=%s dir=%s room=%s, want idle/S/%s", a.State, a.Direction, a.Room, mansion.SpawnRoom)
	}
}

func TestMoveToRejectsWall(t *testing.T) {
	a := New(mansion.Build())

	if a.MoveTo(0, 0) {
		t.Error("MoveTo onto a wall must fail")
	}
	if a.State != StateIdle || len(a.Path) != 0 {
		t.Errorf("failed MoveTo changed state: %s, path %v", a.State, a.Path)
	}
}

func TestMoveToCurrentCell(t *testing.T) {
	a := New(mansion.Build())

	// The route to the cell we are standing on is empty, so no motion starts.
	if a.MoveTo(mansion.Spawn.X, mansion.Spawn.Y) {
		t.Error("MoveTo current cell must fail")
	}
	if a.State != StateIdle {
		t.Errorf("state = %s, want idle", a.State)
	}
}

// An avatar walking a multi-waypoint path with fixed small ticks ends up
// exactly on the final waypoint and goes back to idle.
func TestAdvanceTraversesPath(t *testing.T) {
	a := New(mansion.Build())

	if !a.MoveTo(13, 13) {
		t.Fatal("MoveTo(13,13) failed")
	}
	if a.State != StateWalking {
		t.Fatalf("state = %s, want walking", a.State)
	}

	arrived := false
	for i := 0; i < 1000; i++ {
		ev := a.Advance(0.05)
		if ev.Arrived {
			arrived = true
			break
		}
	}

	if !arrived {
		t.Fatal("avatar never arrived")
	}
	if a.X != 13 || a.Y != 13 {
		t.Errorf("final position (%f,%f), want exactly (13,13)", a.X, a.Y)
	}
	if a.State != StateIdle || len(a.Path) != 0 {
		t.Errorf("state=%s path=%v after arrival", a.State, a.Path)
	}
}

func TestAdvanceSnapsOneWaypointPerTick(t *testing.T) {
	a := New(mansion.Build())

	if !a.MoveTo(13, 13) {
		t.Fatal("MoveTo(13,13) failed")
	}
	waypoints := len(a.Path)

	// A huge dt still consumes at most one waypoint per tick.
	ev := a.Advance(10)
	if ev.Arrived {
		t.Error("single tick must not finish a multi-waypoint path")
	}
	if len(a.Path) != waypoints-1 {
		t.Errorf("path len = %d, want %d", len(a.Path), waypoints-1)
	}
	// First waypoint of the diagonal route is (11,11).
	if a.X != 11 || a.Y != 11 {
		t.Errorf("position (%f,%f) after first snap, want (11,11)", a.X, a.Y)
	}
}

func TestAdvanceIdleIsNoop(t *testing.T) {
	a := New(mansion.Build())

	ev := a.Advance(1)
	if ev.Arrived || ev.RoomChanged {
		t.Errorf("idle tick produced events: %+v", ev)
	}
	if a.X != float64(mansion.Spawn.X) || a.Y != float64(mansion.Spawn.Y) {
		t.Errorf("idle tick moved the avatar to (%f,%f)", a.X, a.Y)
	}
}

func TestAdvanceReportsRoomChange(t *testing.T) {
	a := New(mansion.Build())

	// Entree -> tuin passes the door at (10,14).
	if !a.MoveTo(10, 16) {
		t.Fatal("MoveTo(10,16) failed")
	}

	var changedTo mansion.RoomID
	for i := 0; i < 1000; i++ {
		ev := a.Advance(0.05)
		if ev.RoomChanged {
			changedTo = ev.Room
		}
		if ev.Arrived {
			break
		}
	}

	if changedTo != mansion.RoomTuin {
		t.Errorf("room change reported %q, want %q", changedTo, mansion.RoomTuin)
	}
	if a.Room != mansion.RoomTuin {
		t.Errorf("avatar room = %q, want %q", a.Room, mansion.RoomTuin)
	}
}

func TestTeleportToRoom(t *testing.T) {
	world := mansion.Build()
	a := New(world)

	ev := a.TeleportToRoom(mansion.RoomKeuken)
	if !ev.RoomChanged || ev.Room != mansion.RoomKeuken {
		t.Errorf("teleport events = %+v", ev)
	}

	center := world.RoomCenter(mansion.RoomKeuken)
	if a.X != float64(center.X) || a.Y != float64(center.Y) {
		t.Errorf("teleported to (%f,%f), want room center %v", a.X, a.Y, center)
	}
	if a.State != StateIdle || len(a.Path) != 0 {
		t.Errorf("teleport left state=%s path=%v", a.State, a.Path)
	}

	// Teleport into the room we are already in reports no change.
	if ev := a.TeleportToRoom(mansion.RoomKeuken); ev.RoomChanged {
		t.Error("repeat teleport reported a room change")
	}
}

func TestDirectionOf(t *testing.T) {
	cases := []struct {
		dx, dy float64
		want   Direction
	}{
		{1, 0, DirE},
		{1, 1, DirSE},
		{0, 1, DirS},
		{-1, 1, DirSW},
		{-1, 0, DirW},
		{-1, -1, DirNW},
		{0, -1, DirN},
		{1, -1, DirNE},
		{0, 0, DirS}, // no motion keeps the default facing
	}

	for _, c := range cases {
		if got := directionOf(c.dx, c.dy); got != c.want {
			t.Errorf("directionOf(%v,%v) = %s, want %s", c.dx, c.dy, got, c.want)
		}
	}
}
