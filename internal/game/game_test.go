package game

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-rogue/internal/components"
	"github.com/vovakirdan/tui-rogue/internal/config"
	"github.com/vovakirdan/tui-rogue/internal/core"
	"github.com/vovakirdan/tui-rogue/internal/ecs"
	"github.com/vovakirdan/tui-rogue/internal/grid"
	"github.com/vovakirdan/tui-rogue/internal/maze"
)

func testSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s := NewSession(SessionConfig{
		Runtime: core.RuntimeConfig{
			Width:     6,
			Height:    5,
			Generator: maze.RecursiveBacktrackerID,
			Seed:      seed,
		},
	}, nil)
	if err := s.SetupLevel(); err != nil {
		t.Fatalf("SetupLevel: %v", err)
	}
	return s
}

func playerPosition(t *testing.T, s *Session) *components.Position {
	t.Helper()
	player := s.World().FirstWithTag(components.TagPlayer)
	if player == nil {
		t.Fatal("no player entity")
	}
	posC, ok := player.Component(components.TypePosition)
	if !ok {
		t.Fatal("player has no position")
	}
	return posC.(*components.Position)
}

// openFloorWorld builds a world with an all-floor grid and a movement
// system, bypassing generation, for focused movement tests.
func openFloorWorld(t *testing.T, w, h int) *ecs.World {
	t.Helper()
	world := ecs.NewWorld()
	g, err := grid.New(w, h)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	world.SetGrid(g)
	world.AddSystem(NewMovementSystem(nil))
	return world
}

func movable(t *testing.T, w *ecs.World, row, col int) *ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	e.MustAddComponent(&components.Position{Row: row, Col: col})
	e.MustAddComponent(components.NewMovement())
	e.MustAddComponent(&components.Input{})
	return e
}

func intend(e *ecs.Entity, a core.Action) {
	c, _ := e.Component(components.TypeInput)
	c.(*components.Input).Intent = a
}

func pos(e *ecs.Entity) *components.Position {
	c, _ := e.Component(components.TypePosition)
	return c.(*components.Position)
}

func TestMovementCommitsOnOpenFloor(t *testing.T) {
	w := openFloorWorld(t, 5, 5)
	e := movable(t, w, 2, 2)

	intend(e, core.ActionMoveEast)
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p := pos(e); p.Row != 2 || p.Col != 3 {
		t.Errorf("position = (%d,%d), want (2,3)", p.Row, p.Col)
	}

	// Intent was consumed: another update without input must not move.
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p := pos(e); p.Row != 2 || p.Col != 3 {
		t.Errorf("position moved without intent: (%d,%d)", p.Row, p.Col)
	}
}

func TestMovementRejectedAtBounds(t *testing.T) {
	w := openFloorWorld(t, 3, 3)

	cases := []struct {
		name     string
		row, col int
		action   core.Action
	}{
		{"north off top", 0, 1, core.ActionMoveNorth},
		{"south off bottom", 2, 1, core.ActionMoveSouth},
		{"west off left", 1, 0, core.ActionMoveWest},
		{"east off right", 1, 2, core.ActionMoveEast},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := movable(t, w, tc.row, tc.col)
			intend(e, tc.action)
			if err := w.Update(); err != nil {
				t.Fatalf("Update: %v", err)
			}
			if p := pos(e); p.Row != tc.row || p.Col != tc.col {
				t.Errorf("position = (%d,%d), want unchanged (%d,%d)", p.Row, p.Col, tc.row, tc.col)
			}
		})
	}
}

func TestMovementRejectedByWallCell(t *testing.T) {
	w := openFloorWorld(t, 3, 3)
	w.Grid().At(1, 2).SetWall(true)

	e := movable(t, w, 1, 1)
	intend(e, core.ActionMoveEast)
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p := pos(e); p.Row != 1 || p.Col != 1 {
		t.Errorf("moved into wall: (%d,%d)", p.Row, p.Col)
	}
}

func TestMovementRejectedByBlockingEntity(t *testing.T) {
	w := openFloorWorld(t, 3, 3)

	blocker := w.CreateEntity()
	blocker.MustAddComponent(&components.Position{Row: 1, Col: 2})
	w.TagEntity(blocker, components.TagBlocking)

	e := movable(t, w, 1, 1)
	intend(e, core.ActionMoveEast)
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p := pos(e); p.Row != 1 || p.Col != 1 {
		t.Errorf("moved into blocker: (%d,%d)", p.Row, p.Col)
	}
}

func TestMovementHonorsAllowedDirections(t *testing.T) {
	w := openFloorWorld(t, 3, 3)
	e := movable(t, w, 1, 1)

	moveC, _ := e.Component(components.TypeMovement)
	moveC.(*components.Movement).Allowed[core.East] = false

	intend(e, core.ActionMoveEast)
	if err := w.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if p := pos(e); p.Col != 1 {
		t.Errorf("moved in forbidden direction: col %d", p.Col)
	}
}

func playerStats(t *testing.T, s *Session) (*components.Health, *components.Visibility) {
	t.Helper()
	player := s.World().FirstWithTag(components.TagPlayer)
	if player == nil {
		t.Fatal("no player entity")
	}
	hC, ok := player.Component(components.TypeHealth)
	if !ok {
		t.Fatal("player has no health")
	}
	vC, ok := player.Component(components.TypeVisibility)
	if !ok {
		t.Fatal("player has no visibility")
	}
	return hC.(*components.Health), vC.(*components.Visibility)
}

func TestSessionSpawnsConfiguredPlayerStats(t *testing.T) {
	// Mirrors how the play command builds a session from a loaded
	// config after a difficulty preset adjusted the player stats.
	gc := config.DefaultGameConfig()
	if err := config.ApplyPreset(&gc, config.DifficultyEasy); err != nil {
		t.Fatalf("ApplyPreset: %v", err)
	}

	s := NewSession(SessionConfig{
		Runtime: core.RuntimeConfig{
			Width:     gc.Maze.Width,
			Height:    gc.Maze.Height,
			Generator: gc.Maze.Generator,
			Seed:      21,
		},
		Growth:       gc.Progression.GrowthPerLevel(),
		MaxW:         gc.Progression.MaxWidth,
		MaxH:         gc.Progression.MaxHeight,
		PlayerHealth: gc.Player.Health,
		VisionRadius: gc.Player.VisionRadius,
	}, nil)
	if err := s.SetupLevel(); err != nil {
		t.Fatalf("SetupLevel: %v", err)
	}

	hp, vis := playerStats(t, s)
	if hp.Max() != gc.Player.Health || hp.Current() != gc.Player.Health {
		t.Errorf("player health = %d/%d, config says %d",
			hp.Current(), hp.Max(), gc.Player.Health)
	}
	if vis.Radius != gc.Player.VisionRadius {
		t.Errorf("vision radius = %d, config says %d", vis.Radius, gc.Player.VisionRadius)
	}

	// Stats survive a level transition: the respawned player uses the
	// same configured values.
	if err := s.advanceLevel(); err != nil {
		t.Fatalf("advanceLevel: %v", err)
	}
	hp, _ = playerStats(t, s)
	if hp.Max() != gc.Player.Health {
		t.Errorf("player health = %d after descent, config says %d", hp.Max(), gc.Player.Health)
	}
}

func TestSessionPlayerStatsDefaults(t *testing.T) {
	s := testSession(t, 13)

	hp, vis := playerStats(t, s)
	if hp.Max() != defaultPlayerHealth {
		t.Errorf("player health = %d, want default %d", hp.Max(), defaultPlayerHealth)
	}
	if vis.Radius != defaultVisionRadius {
		t.Errorf("vision radius = %d, want default %d", vis.Radius, defaultVisionRadius)
	}
}

func TestSnapshotKeepsPlayerStats(t *testing.T) {
	s := NewSession(SessionConfig{
		Runtime: core.RuntimeConfig{
			Width:     6,
			Height:    5,
			Generator: maze.RecursiveBacktrackerID,
			Seed:      55,
		},
		PlayerHealth: 15,
		VisionRadius: 4,
	}, nil)
	if err := s.SetupLevel(); err != nil {
		t.Fatalf("SetupLevel: %v", err)
	}

	restored, err := RestoreSession(s.Snapshot(), nil)
	if err != nil {
		t.Fatalf("RestoreSession: %v", err)
	}

	// The respawn after the next descent must still use the
	// configured stats, not the defaults.
	if err := restored.advanceLevel(); err != nil {
		t.Fatalf("advanceLevel: %v", err)
	}
	hp, vis := playerStats(t, restored)
	if hp.Max() != 15 {
		t.Errorf("player health = %d after restore and descent, want 15", hp.Max())
	}
	if vis.Radius != 4 {
		t.Errorf("vision radius = %d after restore and descent, want 4", vis.Radius)
	}
}

func TestSessionSetupPlacesPlayerAndStairs(t *testing.T) {
	s := testSession(t, 7)

	g := s.World().Grid()
	p := playerPosition(t, s)
	if p.Row != 1 || p.Col != 1 {
		t.Errorf("player starts at (%d,%d), want (1,1)", p.Row, p.Col)
	}

	stairs := s.World().FirstWithTag(components.TagStairs)
	sp := pos(stairs)
	if sp.Row != g.Height()-2 || sp.Col != g.Width()-2 {
		t.Errorf("stairs at (%d,%d), want (%d,%d)", sp.Row, sp.Col, g.Height()-2, g.Width()-2)
	}

	if s.Level() != 1 || s.State() != StateRunning {
		t.Errorf("level=%d state=%s after setup", s.Level(), s.State())
	}
}

func TestLevelCompletionFiresExactlyOnce(t *testing.T) {
	s := testSession(t, 11)

	// Doctor the level: put the stairs directly east of the player and
	// make sure that cell is walkable.
	p := playerPosition(t, s)
	target := s.World().Grid().At(p.Row, p.Col+1)
	target.SetWall(false)
	for _, wallEnt := range s.World().EntitiesWithTag(components.TagWall) {
		wp := pos(wallEnt)
		if wp.Row == target.Row && wp.Col == target.Column {
			s.World().RemoveEntity(wallEnt.ID)
		}
	}
	stairs := s.World().FirstWithTag(components.TagStairs)
	sp := pos(stairs)
	sp.Row, sp.Col = target.Row, target.Column

	res, err := s.RunTurn(core.ActionMoveEast)
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	if !res.LevelCompleted {
		t.Fatal("stepping onto stairs should complete the level")
	}
	if res.Level != 2 || s.Level() != 2 {
		t.Errorf("level = %d, want exactly 2", s.Level())
	}

	// The next turn starts the new level; no spurious second completion.
	res, err = s.RunTurn(core.ActionNone)
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	if res.LevelCompleted || res.Level != 2 {
		t.Errorf("second turn: completed=%v level=%d", res.LevelCompleted, res.Level)
	}
}

func TestRegenerationRebuildsEntities(t *testing.T) {
	s := testSession(t, 3)
	before := s.World().EntityCount()

	if err := s.advanceLevel(); err != nil {
		t.Fatalf("advanceLevel: %v", err)
	}

	if s.World().FirstWithTag(components.TagPlayer) == nil {
		t.Error("player missing after regeneration")
	}
	if s.World().FirstWithTag(components.TagStairs) == nil {
		t.Error("stairs missing after regeneration")
	}
	if s.World().EntityCount() == 0 || before == 0 {
		t.Error("entity tables should be populated before and after")
	}
	p := playerPosition(t, s)
	if p.Row != 1 || p.Col != 1 {
		t.Errorf("player at (%d,%d) after regeneration, want entry (1,1)", p.Row, p.Col)
	}
}

func TestQuitTerminatesCleanly(t *testing.T) {
	s := testSession(t, 5)

	res, err := s.RunTurn(core.ActionQuit)
	if err != nil {
		t.Fatalf("RunTurn: %v", err)
	}
	if !res.Terminated || s.State() != StateTerminated {
		t.Error("quit should terminate the session")
	}

	// Further turns are inert.
	res, err = s.RunTurn(core.ActionMoveEast)
	if err != nil {
		t.Fatalf("RunTurn after quit: %v", err)
	}
	if !res.Terminated {
		t.Error("turns after termination should report terminated")
	}
}

func TestRunTurnBeforeSetupFails(t *testing.T) {
	s := NewSession(SessionConfig{Runtime: core.DefaultConfig()}, nil)
	if _, err := s.RunTurn(core.ActionMoveEast); err == nil {
		t.Error("RunTurn before SetupLevel should fail")
	}
}

func TestMazeSystemIdempotentPerLevel(t *testing.T) {
	s := testSession(t, 9)
	w := s.World()

	g := w.Grid()
	count := w.EntityCount()

	// Re-running the maze system for the same level must be a no-op.
	if err := s.maze.Update(w); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if w.Grid() != g {
		t.Error("grid replaced on same-level rerun")
	}
	if w.EntityCount() != count {
		t.Errorf("entity count changed %d -> %d on same-level rerun", count, w.EntityCount())
	}
}

func TestSessionDeterministicForSeed(t *testing.T) {
	a := testSession(t, 1234)
	b := testSession(t, 1234)

	ga, gb := a.World().Grid(), b.World().Grid()
	if ga.Width() != gb.Width() || ga.Height() != gb.Height() {
		t.Fatal("identically seeded sessions generated different dims")
	}
	ga.EachCell(func(c *grid.Cell) bool {
		if c.IsWall() != gb.At(c.Row, c.Column).IsWall() {
			t.Errorf("(%d,%d) diverged between identically seeded sessions", c.Row, c.Column)
		}
		return true
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := testSession(t, 77)
	s.RunTurn(core.ActionMoveEast)
	s.RunTurn(core.ActionMoveSouth)

	path := filepath.Join(t.TempDir(), "save.yaml")
	if err := s.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := LoadSession(path, nil)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}

	if restored.Level() != s.Level() || restored.Turns() != s.Turns() {
		t.Errorf("level/turns = %d/%d, want %d/%d",
			restored.Level(), restored.Turns(), s.Level(), s.Turns())
	}
	if restored.World().EntityCount() != s.World().EntityCount() {
		t.Errorf("entity count = %d, want %d",
			restored.World().EntityCount(), s.World().EntityCount())
	}

	origPos := playerPosition(t, s)
	restPos := playerPosition(t, restored)
	if *origPos != *restPos {
		t.Errorf("player position = %+v, want %+v", restPos, origPos)
	}

	og, rg := s.World().Grid(), restored.World().Grid()
	if og.Width() != rg.Width() || og.Height() != rg.Height() {
		t.Fatal("grid dims diverged after load")
	}
	og.EachCell(func(c *grid.Cell) bool {
		if c.IsWall() != rg.At(c.Row, c.Column).IsWall() {
			t.Errorf("grid cell (%d,%d) diverged after load", c.Row, c.Column)
		}
		return true
	})

	if restored.World().NextEntityID() != s.World().NextEntityID() {
		t.Error("next entity ID not preserved")
	}

	// The restored session keeps playing.
	if _, err := restored.RunTurn(core.ActionMoveNorth); err != nil {
		t.Errorf("RunTurn on restored session: %v", err)
	}
}

func TestLoadRejectsCorruptSnapshot(t *testing.T) {
	if _, err := RestoreSession(WorldRecord{}, nil); err == nil {
		t.Error("empty record should be rejected")
	}

	rec := WorldRecord{
		Seed: 5, Generator: maze.BinaryTreeID, Level: 1,
		BaseW: 4, BaseH: 4,
		Width: 999, Height: 999, // cannot match the regenerated grid
	}
	if _, err := RestoreSession(rec, nil); err == nil {
		t.Error("grid dim mismatch should be rejected")
	}
}

func TestRenderDrawsEntities(t *testing.T) {
	w := ecs.NewWorld()
	g, _ := grid.New(5, 5)
	w.SetGrid(g)

	SpawnWall(w, 0, 0)
	SpawnStairs(w, 2, 3)
	SpawnPlayer(w, 1, 1, defaultPlayerHealth, defaultVisionRadius)

	screen := core.NewScreen(10, 10)
	Render(w, screen, 2, 1)

	if c := screen.GetCell(2, 1); c.Rune != wallGlyph {
		t.Errorf("wall cell = %q", c.Rune)
	}
	if c := screen.GetCell(5, 3); c.Rune != stairsGlyph {
		t.Errorf("stairs cell = %q", c.Rune)
	}
	if c := screen.GetCell(3, 2); c.Rune != playerGlyph {
		t.Errorf("player cell = %q", c.Rune)
	}
}

func TestRenderSkipsInvisible(t *testing.T) {
	w := ecs.NewWorld()
	g, _ := grid.New(3, 3)
	w.SetGrid(g)

	e := w.CreateEntity()
	e.MustAddComponent(&components.Position{Row: 0, Col: 0})
	e.MustAddComponent(&components.Render{Glyph: 'x', Color: core.ColorRed})
	e.MustAddComponent(&components.Visibility{Visible: false})

	screen := core.NewScreen(5, 5)
	Render(w, screen, 0, 0)
	if c := screen.GetCell(0, 0); c.Rune != ' ' {
		t.Errorf("invisible entity drawn: %q", c.Rune)
	}
}
