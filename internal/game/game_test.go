package game

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// flatConfig returns a 20x20 world with only the bedrock row, so the player
// spawns at (10, 1) and the marker at (10, 19).
func flatConfig() config.SandboxConfig {
	cfg := config.DefaultSandboxConfig()
	cfg.Generation = []config.LayerConfig{
		{Material: "bedrock", Over: []string{"bedrock"}, MinThickness: 1, MaxThickness: 1},
	}
	return cfg
}

func newGame(t *testing.T, cfg config.SandboxConfig) *Game {
	t.Helper()
	g, err := New(cfg, 42, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewPlacesPlayerOnSurface(t *testing.T) {
	g := newGame(t, config.DefaultSandboxConfig())
	w := g.World()

	col := w.Width() / 2
	want := world.P(col, w.Surface(col))
	if got := g.State().Player; got != want {
		t.Errorf("player at %v, expected %v", got, want)
	}
	if w.IsOccupied(want) {
		t.Errorf("player spawned inside terrain at %v", want)
	}

	s := g.State()
	if !s.Alive || s.Health != 100 || s.Mode != ModeEntity {
		t.Errorf("unexpected initial state %+v", s)
	}
	if tile, _ := w.Tile(s.Marker); tile.Kind != world.KindMarker {
		t.Errorf("marker tile missing at %v", s.Marker)
	}
	if s.Marker.Y != w.Height()-1 {
		t.Errorf("marker at %v, expected top row", s.Marker)
	}
	if s.Marker.X != col {
		t.Errorf("marker at %v, expected above the spawn column %d", s.Marker, col)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultSandboxConfig()
	cfg.World.Width = 0
	if _, err := New(cfg, 1, nil); err == nil {
		t.Error("New should reject an invalid config")
	}
}

func TestSpawnColumn(t *testing.T) {
	cfg := flatConfig()
	cfg.Player.SpawnColumn = 3
	g := newGame(t, cfg)
	if got := g.State().Player; got != world.P(3, 1) {
		t.Errorf("player at %v, expected (3,1)", got)
	}
}

func TestStepThrottled(t *testing.T) {
	g := newGame(t, flatConfig())
	start := time.Unix(0, 0)
	interval := TickInterval(g.Config().Loop.TickRate)

	if !g.Step(frame(), start).Ticked {
		t.Fatal("first step should tick")
	}
	r := g.Step(frame(core.ActionRight), start.Add(interval/2))
	if r.Ticked {
		t.Error("step inside the interval should not tick")
	}
	if r.State.Tick != 1 {
		t.Errorf("tick = %d, expected 1", r.State.Tick)
	}
	if !g.Step(frame(), start.Add(interval)).Ticked {
		t.Error("step after the interval should tick")
	}
}

func TestShouldRenderIndependentOfTicks(t *testing.T) {
	cfg := flatConfig()
	cfg.Loop.TickRate = 1
	cfg.Loop.MaxFPS = 0
	g := newGame(t, cfg)
	start := time.Unix(0, 0)

	g.Step(frame(), start)
	renders := 0
	for i := 0; i < 10; i++ {
		now := start.Add(time.Duration(i) * 2 * time.Millisecond)
		if g.Step(frame(), now).Ticked {
			t.Errorf("unexpected tick at %v", now)
		}
		if g.ShouldRender(now) {
			renders++
		}
	}
	if renders != 10 {
		t.Errorf("rendered %d frames, expected 10", renders)
	}
}

func TestStateChangesRedrawImmediately(t *testing.T) {
	g := newGame(t, flatConfig())
	start := time.Unix(0, 0)

	tests := []struct {
		name   string
		action core.Action
	}{
		{"pause", core.ActionPause},
		{"respawn", core.ActionRespawn},
		{"mode", core.ActionToggleMode},
	}
	for i, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			now := start.Add(time.Duration(i) * time.Second)
			if !g.ShouldRender(now) {
				t.Fatal("first frame should render")
			}
			if g.ShouldRender(now.Add(time.Millisecond)) {
				t.Fatal("frame inside the interval should not render")
			}
			g.Tick(frame(tc.action))
			if !g.ShouldRender(now.Add(time.Millisecond)) {
				t.Errorf("%s was not redrawn on the next poll", tc.name)
			}
		})
	}
}

func TestEntityModeMovesPlayer(t *testing.T) {
	g := newGame(t, flatConfig())
	p := g.Player()
	start := p.Pos

	g.Tick(frame(core.ActionRight))
	if p.Pos.X != start.X+4 || p.Pos.Y != start.Y {
		t.Errorf("after Right: pos %v, expected (%v,%v)", p.Pos, start.X+4, start.Y)
	}

	g.Tick(frame(core.ActionUp))
	if p.Pos.Y <= start.Y {
		t.Errorf("after Up: y = %v, expected above %v", p.Pos.Y, start.Y)
	}
}

func TestEntityModeBlockedByTerrain(t *testing.T) {
	g := newGame(t, flatConfig())
	p := g.Player()
	start := p.Pos

	for i := 0; i < 5; i++ {
		g.Tick(frame(core.ActionDown))
	}
	if p.Pos.Y != start.Y {
		t.Errorf("player sank into bedrock: y = %v, expected %v", p.Pos.Y, start.Y)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, flatConfig())
	p := g.Player()
	start := p.Pos

	g.Tick(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	g.Tick(frame(core.ActionRight))
	if p.Pos != start || g.State().Tick != 0 {
		t.Errorf("paused game advanced: pos %v tick %d", p.Pos, g.State().Tick)
	}

	g.Tick(frame(core.ActionPause))
	if g.State().Paused {
		t.Error("expected unpaused")
	}
	if g.State().Tick != 1 {
		t.Errorf("tick = %d, expected 1", g.State().Tick)
	}
}

func TestMarkerMode(t *testing.T) {
	g := newGame(t, flatConfig())
	p := g.Player()
	playerStart := p.Pos

	g.Tick(frame(core.ActionToggleMode))
	if g.State().Mode != ModeMarker {
		t.Fatalf("mode = %s, expected marker", g.State().Mode)
	}

	g.Tick(frame(core.ActionLeft))
	if got := g.State().Marker; got != world.P(9, 19) {
		t.Errorf("marker at %v, expected (9,19)", got)
	}
	if p.Pos != playerStart {
		t.Errorf("player moved in marker mode: %v", p.Pos)
	}

	// The marker cannot leave the world.
	for i := 0; i < 3; i++ {
		g.Tick(frame(core.ActionUp))
	}
	if got := g.State().Marker; got != world.P(9, 19) {
		t.Errorf("marker at %v, expected (9,19)", got)
	}

	g.Tick(frame(core.ActionToggleMode))
	if g.State().Mode != ModeEntity {
		t.Errorf("mode = %s, expected entity", g.State().Mode)
	}
}

// dropMarker moves the marker straight down onto the bedrock.
func dropMarker(g *Game) {
	for g.State().Marker.Y > 1 {
		g.Tick(frame(core.ActionDown))
	}
}

func TestMarkerCrushesPlayer(t *testing.T) {
	g := newGame(t, flatConfig())
	g.Tick(frame(core.ActionToggleMode))
	dropMarker(g)

	s := g.State()
	if s.Marker != world.P(10, 1) {
		t.Fatalf("marker at %v, expected (10,1)", s.Marker)
	}
	if s.Health != 75 {
		t.Errorf("health = %d, expected 75", s.Health)
	}
	if !s.Alive || s.Deaths != 0 {
		t.Errorf("player should survive one crush: %+v", s)
	}

	// Bedrock stops the marker.
	g.Tick(frame(core.ActionDown))
	if g.State().Marker != world.P(10, 1) || g.State().Health != 75 {
		t.Errorf("blocked move changed state: %+v", g.State())
	}
}

func TestDeathAndRespawn(t *testing.T) {
	cfg := flatConfig()
	cfg.Player.CrushDamage = 500
	g := newGame(t, cfg)
	g.Tick(frame(core.ActionToggleMode))
	dropMarker(g)

	s := g.State()
	if s.Alive || s.Health != 0 || s.Deaths != 1 {
		t.Fatalf("expected dead player, got %+v", s)
	}

	// Dead players ignore impulses.
	g.Tick(frame(core.ActionToggleMode))
	g.Tick(frame(core.ActionRight))
	if v := g.Player().Vel; v != (core.Vec2{}) {
		t.Errorf("dead player gained velocity %v", v)
	}

	g.Tick(frame(core.ActionRespawn))
	s = g.State()
	if !s.Alive || s.Health != s.MaxHealth {
		t.Errorf("respawn did not restore health: %+v", s)
	}
	if s.Player != world.P(10, 1) {
		t.Errorf("respawned at %v, expected (10,1)", s.Player)
	}
	if v := g.Player().Vel; v != (core.Vec2{}) {
		t.Errorf("respawned with velocity %v", v)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := [][]core.Action{
		{core.ActionRight},
		{core.ActionRight, core.ActionUp},
		{},
		{core.ActionToggleMode},
		{core.ActionDown},
		{core.ActionLeft},
		{core.ActionToggleMode, core.ActionLeft},
	}

	run := func() (State, string) {
		g := newGame(t, config.DefaultSandboxConfig())
		for i := 0; i < 50; i++ {
			g.Tick(frame(inputs[i%len(inputs)]...))
		}
		return g.State(), g.World().Dump()
	}

	s1, d1 := run()
	s2, d2 := run()
	if s1 != s2 {
		t.Errorf("state mismatch: %+v vs %+v", s1, s2)
	}
	if d1 != d2 {
		t.Error("world dumps differ")
	}
}

func TestRenderHUD(t *testing.T) {
	g := newGame(t, flatConfig())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"HP 100/100", "mode entity", "pos (10,1)", "tick 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	// World is 40 columns wide, centered in 80: bedrock row at screen row 20.
	if got := screen.Row(20); !strings.Contains(got, strings.Repeat("█", 40)) {
		t.Errorf("bedrock row = %q", got)
	}
	if got := screen.Get(20+2*10, 19); got != '(' {
		t.Errorf("player glyph = %q, expected '('", got)
	}

	g.Tick(frame(core.ActionPause))
	g.Render(screen)
	if got := screen.Row(21); !strings.Contains(got, "PAUSED") {
		t.Errorf("status row = %q, expected PAUSED", got)
	}
}

func TestBuilder(t *testing.T) {
	b := Builder{Config: config.DefaultSandboxConfig()}

	g, err := b.Build("flat", 7)
	if err != nil {
		t.Fatalf("Build(flat) failed: %v", err)
	}
	if g.Preset() != "flat" || g.Seed() != 7 {
		t.Errorf("preset %q seed %d", g.Preset(), g.Seed())
	}
	for x := 0; x < g.World().Width(); x++ {
		if s := g.World().Surface(x); s != 5 {
			t.Errorf("column %d surface = %d, expected 5", x, s)
		}
	}

	g, err = b.Build("", 7)
	if err != nil {
		t.Fatalf("Build(\"\") failed: %v", err)
	}
	if g.Preset() != CustomPreset {
		t.Errorf("preset = %q, expected %q", g.Preset(), CustomPreset)
	}

	if _, err := b.Build("lava-lake", 7); err == nil {
		t.Error("Build should reject an unknown preset")
	}
}
