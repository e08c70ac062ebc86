// Package game runs a sandbox session: it owns the world and the player,
// maps input frames to player impulses or marker moves, and throttles the
// simulation and rendering phases independently.
package game

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/core"
	"github.com/vovakirdan/tui-sandbox/internal/world"
)

// Game is a single-player sandbox session. It is not safe for concurrent use.
type Game struct {
	cfg    config.SandboxConfig
	phys   world.Physics
	seed   int64
	preset string
	logger *log.Logger

	world     *world.World
	player    world.Handle
	spawn     core.Vec2
	marker    world.Pos
	hasMarker bool

	mode   Mode
	paused bool
	tick   uint64
	deaths int

	ticks  *Limiter
	frames *Limiter
}

// New generates a world from cfg and seed, spawns the player on top of the
// terrain in the spawn column and places the marker tile in the top row.
// A nil logger discards output.
func New(cfg config.SandboxConfig, seed int64, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gen, err := cfg.GenConfig()
	if err != nil {
		return nil, err
	}
	w, err := world.New(cfg.World.Width, cfg.World.Height, cfg.World.TileSize, gen, seed)
	if err != nil {
		return nil, fmt.Errorf("game: create world: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:    cfg,
		phys:   cfg.PhysicsParams(),
		seed:   seed,
		logger: logger,
		world:  w,
		mode:   ModeEntity,
		ticks:  NewLimiter(TickInterval(cfg.Loop.TickRate)),
		frames: NewLimiter(FrameInterval(cfg.Loop.MaxFPS)),
	}

	col := cfg.Player.SpawnColumn
	if col < 0 || col >= w.Width() {
		col = w.Width() / 2
	}
	row := min(w.Surface(col), w.Height()-1)
	g.spawn = w.ToWorld(world.P(col, row))
	g.player = w.Spawn(world.NewPlayer(g.spawn, cfg.Player.MaxHealth))
	g.placeMarker(col)

	logger.Debug("session started", "seed", seed, "size", fmt.Sprintf("%dx%d", w.Width(), w.Height()), "spawn", world.P(col, row))
	return g, nil
}

// placeMarker puts the marker in the top row, preferring column col and
// falling back to the first free top-row cell.
func (g *Game) placeMarker(col int) {
	top := g.world.Height() - 1
	candidates := []int{col}
	for x := 0; x < g.world.Width(); x++ {
		candidates = append(candidates, x)
	}
	for _, x := range candidates {
		p := world.P(x, top)
		if g.world.IsOccupied(p) {
			continue
		}
		if _, err := g.world.SetTile(p, world.Marker()); err == nil {
			g.marker = p
			g.hasMarker = true
			return
		}
	}
}

// World returns the underlying world.
func (g *Game) World() *world.World {
	return g.world
}

// Player returns the player entity.
func (g *Game) Player() *world.Entity {
	p, _ := g.world.Entity(g.player)
	return p
}

// Seed returns the generation seed.
func (g *Game) Seed() int64 {
	return g.seed
}

// Config returns the session configuration.
func (g *Game) Config() config.SandboxConfig {
	return g.cfg
}

// Step runs one tick if the tick limiter allows it at now.
func (g *Game) Step(in core.InputFrame, now time.Time) StepResult {
	if !g.ticks.Ready(now) {
		return StepResult{State: g.State()}
	}
	g.Tick(in)
	return StepResult{Ticked: true, State: g.State()}
}

// ShouldRender reports whether the frame limiter allows a redraw at now.
func (g *Game) ShouldRender(now time.Time) bool {
	return g.frames.Ready(now)
}

// Tick applies in and advances the simulation by one tick, ignoring the
// tick limiter. Pause, respawn and mode changes are drawn on the next
// ShouldRender call.
func (g *Game) Tick(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
		g.frames.Reset()
	}
	if in.Has(core.ActionRespawn) {
		g.respawn()
		g.frames.Reset()
	}
	if in.Has(core.ActionToggleMode) && g.hasMarker {
		if g.mode == ModeEntity {
			g.mode = ModeMarker
		} else {
			g.mode = ModeEntity
		}
		g.frames.Reset()
	}
	if g.paused {
		return
	}

	for _, a := range core.DirectionalActions {
		if !in.Has(a) {
			continue
		}
		dx, dy := a.Delta()
		switch g.mode {
		case ModeEntity:
			g.pushPlayer(dx, dy)
		case ModeMarker:
			if g.world.MoveTileRelative(&g.marker, dx, dy) {
				g.crush()
			}
		}
	}

	g.world.Update(g.phys)
	g.tick++
}

func (g *Game) pushPlayer(dx, dy int) {
	p, ok := g.world.Entity(g.player)
	if !ok || !p.Alive() {
		return
	}
	imp := g.cfg.Player.Impulse
	p.Push(core.V(float64(dx)*imp, float64(dy)*imp), g.cfg.Player.MaxSpeed)
}

// crush damages the player when the marker occupies the player's cell.
func (g *Game) crush() {
	p, ok := g.world.Entity(g.player)
	if !ok || !p.Alive() || g.world.ToTile(p.Pos) != g.marker {
		return
	}
	p.Damage(g.cfg.Player.CrushDamage)
	g.logger.Debug("player crushed", "tick", g.tick, "health", p.Health)
	if !p.Alive() {
		g.deaths++
		g.logger.Debug("player died", "tick", g.tick, "deaths", g.deaths)
	}
}

func (g *Game) respawn() {
	p, ok := g.world.Entity(g.player)
	if !ok {
		return
	}
	p.Respawn()
	p.Pos = g.spawn
	g.logger.Debug("player respawned", "tick", g.tick)
}
