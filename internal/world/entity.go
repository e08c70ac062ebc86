package world

import (
	"fmt"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// EntityKind identifies which variant an Entity is.
type EntityKind uint8

const (
	EntityPlayer EntityKind = iota
)

// String returns the entity kind name.
func (k EntityKind) String() string {
	switch k {
	case EntityPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Handle is an opaque reference to an entity stored in a World. A handle
// becomes stale once its entity is despawned, even if the slot is reused.
type Handle struct {
	Index      uint32
	Generation uint32
}

// String returns a compact representation of the handle.
func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.Index, h.Generation)
}

type slot struct {
	generation uint32
	entity     *Entity // nil when the slot is free
}

// Physics holds the tuning used by Entity.Update.
type Physics struct {
	FrictionDivisor float64 // velocity is divided by this every tick
	Epsilon         float64 // velocity components below this snap to zero
	HalfExtent      float64 // collision probe distance from the entity center
	Gravity         float64 // subtracted from vertical velocity every tick
}

// DefaultPhysics returns tuning suited to a tile size of 20.
func DefaultPhysics() Physics {
	return Physics{
		FrictionDivisor: 1.5,
		Epsilon:         0.05,
		HalfExtent:      9,
		Gravity:         0,
	}
}

// Entity is a mobile actor. Its position is in entity space and is
// independent of any grid cell.
type Entity struct {
	Kind      EntityKind
	Pos       core.Vec2
	Vel       core.Vec2
	Health    int
	MaxHealth int
}

// NewPlayer creates a player entity at pos with full health.
func NewPlayer(pos core.Vec2, maxHealth int) Entity {
	if maxHealth < 1 {
		maxHealth = 1
	}
	return Entity{
		Kind:      EntityPlayer,
		Pos:       pos,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

// Alive reports whether the entity has health left.
func (e *Entity) Alive() bool {
	return e.Health > 0
}

// Damage subtracts n health, clamping at zero. Negative n is ignored.
func (e *Entity) Damage(n int) {
	if n <= 0 {
		return
	}
	e.Health = max(e.Health-n, 0)
}

// Heal adds n health, clamping at MaxHealth. Dead entities stay dead.
func (e *Entity) Heal(n int) {
	if n <= 0 || !e.Alive() {
		return
	}
	e.Health = min(e.Health+n, e.MaxHealth)
}

// Respawn restores full health and stops the entity.
func (e *Entity) Respawn() {
	e.Health = e.MaxHealth
	e.Vel = core.Vec2{}
}

// Push adds an impulse to the velocity, limiting each component to
// [-maxSpeed, maxSpeed] when maxSpeed is positive.
func (e *Entity) Push(impulse core.Vec2, maxSpeed float64) {
	e.Vel = e.Vel.Add(impulse)
	if maxSpeed > 0 {
		e.Vel.X = core.ClampF(e.Vel.X, -maxSpeed, maxSpeed)
		e.Vel.Y = core.ClampF(e.Vel.Y, -maxSpeed, maxSpeed)
	}
}

// Update advances the entity's physics by one tick against w.
//
// Each axis moves only if the cell at the entity's leading edge on that axis
// is free. A blocked axis keeps its velocity.
func (e *Entity) Update(w *World, phys Physics) {
	if !e.Alive() {
		return
	}

	if e.Vel.X != 0 {
		nx := e.Pos.X + e.Vel.X
		probe := core.V(nx+core.Sign(e.Vel.X)*phys.HalfExtent, e.Pos.Y)
		if !w.IsOccupied(w.ToTile(probe)) {
			e.Pos.X = nx
		}
	}
	if e.Vel.Y != 0 {
		ny := e.Pos.Y + e.Vel.Y
		probe := core.V(e.Pos.X, ny+core.Sign(e.Vel.Y)*phys.HalfExtent)
		if !w.IsOccupied(w.ToTile(probe)) {
			e.Pos.Y = ny
		}
	}

	bounds := w.Bounds()
	e.Pos.X = core.ClampF(e.Pos.X, 0, bounds.X)
	e.Pos.Y = core.ClampF(e.Pos.Y, 0, bounds.Y)

	e.Vel.Y -= phys.Gravity
	if phys.FrictionDivisor > 0 {
		e.Vel = e.Vel.Div(phys.FrictionDivisor)
	}
	e.Vel.X = core.SnapZero(e.Vel.X, phys.Epsilon)
	e.Vel.Y = core.SnapZero(e.Vel.Y, phys.Epsilon)
}

// Spawn adds e to the world and returns its handle.
func (w *World) Spawn(e Entity) Handle {
	ent := e
	var h Handle
	if n := len(w.free); n > 0 {
		idx := w.free[n-1]
		w.free = w.free[:n-1]
		w.slots[idx].entity = &ent
		h = Handle{Index: idx, Generation: w.slots[idx].generation}
	} else {
		w.slots = append(w.slots, slot{entity: &ent})
		h = Handle{Index: uint32(len(w.slots) - 1)}
	}
	w.order = append(w.order, h)
	return h
}

// Entity returns the entity referenced by h, or false for a stale or
// unknown handle.
func (w *World) Entity(h Handle) (*Entity, bool) {
	if int(h.Index) >= len(w.slots) {
		return nil, false
	}
	s := w.slots[h.Index]
	if s.entity == nil || s.generation != h.Generation {
		return nil, false
	}
	return s.entity, true
}

// Entities returns the handles of all live entities in insertion order.
func (w *World) Entities() []Handle {
	return append([]Handle(nil), w.order...)
}

// Despawn removes the entity referenced by h. It returns false if the handle
// is stale.
func (w *World) Despawn(h Handle) bool {
	if _, ok := w.Entity(h); !ok {
		return false
	}
	s := &w.slots[h.Index]
	s.entity = nil
	s.generation++
	w.free = append(w.free, h.Index)
	for i, oh := range w.order {
		if oh == h {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}
