package game

import "github.com/vovakirdan/tui-sandbox/internal/world"

// Mode selects what the directional keys control.
type Mode string

const (
	ModeEntity Mode = "entity" // directions push the player
	ModeMarker Mode = "marker" // directions move the marker tile
)

// State captures the externally visible session state.
type State struct {
	Tick      uint64
	Deaths    int
	Alive     bool
	Paused    bool
	Mode      Mode
	Health    int
	MaxHealth int
	Player    world.Pos // grid cell under the player's center
	Marker    world.Pos
}

// StepResult is returned by Game.Step.
type StepResult struct {
	Ticked bool // false when the tick limiter skipped this iteration
	State  State
}

// State returns the current session state.
func (g *Game) State() State {
	s := State{
		Tick:   g.tick,
		Deaths: g.deaths,
		Paused: g.paused,
		Mode:   g.mode,
		Marker: g.marker,
	}
	if p, ok := g.world.Entity(g.player); ok {
		s.Alive = p.Alive()
		s.Health = p.Health
		s.MaxHealth = p.MaxHealth
		s.Player = g.world.ToTile(p.Pos)
	}
	return s
}
