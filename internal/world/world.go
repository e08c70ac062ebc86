// Package world implements the tile grid, layered terrain generation and the
// entity arena of the sandbox.
//
// Grid coordinates have their origin at the bottom-left cell; row 0 is the
// bedrock row. Entities live in continuous render space measured in render
// units, where one tile spans TileSize units and tile (x, y) is centered on
// (x*TileSize, y*TileSize).
package world

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// ErrOutOfBounds is returned when a grid position lies outside the world.
var ErrOutOfBounds = errors.New("position out of bounds")

// World owns a fixed-size grid of tiles and the entities living on it.
// Tiles are stored in row-major order: index = y*width + x.
// It is not safe for concurrent use.
type World struct {
	width    int
	height   int
	tileSize float64
	tiles    []Tile

	slots []slot
	free  []uint32
	order []Handle
}

// NewEmpty creates a world with every cell Empty and no entities.
func NewEmpty(width, height int, tileSize float64) (*World, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("world: invalid dimensions %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("world: invalid tile size %v", tileSize)
	}
	return &World{
		width:    width,
		height:   height,
		tileSize: tileSize,
		tiles:    make([]Tile, width*height),
	}, nil
}

// New creates a world and eagerly generates its terrain from gen using a
// RNG seeded with seed.
func New(width, height int, tileSize float64, gen GenConfig, seed int64) (*World, error) {
	w, err := NewEmpty(width, height, tileSize)
	if err != nil {
		return nil, err
	}
	if err := Generate(w, gen, NewRand(seed)); err != nil {
		return nil, err
	}
	return w, nil
}

// Width returns the number of columns.
func (w *World) Width() int {
	return w.width
}

// Height returns the number of rows.
func (w *World) Height() int {
	return w.height
}

// TileSize returns the number of render units one tile spans.
func (w *World) TileSize() float64 {
	return w.tileSize
}

// InBounds reports whether p addresses a cell of the grid.
func (w *World) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < w.width && p.Y >= 0 && p.Y < w.height
}

func (w *World) index(p Pos) int {
	return p.Y*w.width + p.X
}

// Tile returns the tile at p, or false if p is out of bounds.
func (w *World) Tile(p Pos) (Tile, bool) {
	if !w.InBounds(p) {
		return Tile{}, false
	}
	return w.tiles[w.index(p)], true
}

// SetTile replaces the tile at p and returns the tile now stored there.
func (w *World) SetTile(p Pos, t Tile) (Tile, error) {
	if !w.InBounds(p) {
		return Tile{}, fmt.Errorf("world: set tile %s: %w", p, ErrOutOfBounds)
	}
	i := w.index(p)
	w.tiles[i] = t
	return w.tiles[i], nil
}

// Remove replaces the tile at p with Empty and returns the previous tile.
func (w *World) Remove(p Pos) (Tile, error) {
	if !w.InBounds(p) {
		return Tile{}, fmt.Errorf("world: remove tile %s: %w", p, ErrOutOfBounds)
	}
	i := w.index(p)
	prev := w.tiles[i]
	w.tiles[i] = Empty()
	return prev, nil
}

// SwapTiles exchanges the tiles at a and b in place.
func (w *World) SwapTiles(a, b Pos) error {
	if !w.InBounds(a) {
		return fmt.Errorf("world: swap %s: %w", a, ErrOutOfBounds)
	}
	if !w.InBounds(b) {
		return fmt.Errorf("world: swap %s: %w", b, ErrOutOfBounds)
	}
	i, j := w.index(a), w.index(b)
	w.tiles[i], w.tiles[j] = w.tiles[j], w.tiles[i]
	return nil
}

// IsOccupied reports whether the tile at p is anything but Empty.
// Out-of-bounds positions are never occupied.
func (w *World) IsOccupied(p Pos) bool {
	t, ok := w.Tile(p)
	return ok && !t.IsEmpty()
}

// MoveTile swaps the tiles at from and to. It fails without mutating the
// grid if either position is out of bounds or to is occupied.
func (w *World) MoveTile(from, to Pos) bool {
	if !w.InBounds(from) || !w.InBounds(to) || w.IsOccupied(to) {
		return false
	}
	return w.SwapTiles(from, to) == nil
}

// MoveTileRelative moves the tile at *pos by (dx, dy) and updates *pos on
// success. Targets with a negative coordinate are rejected; there is no
// wraparound.
func (w *World) MoveTileRelative(pos *Pos, dx, dy int) bool {
	target := pos.Add(dx, dy)
	if target.X < 0 || target.Y < 0 {
		return false
	}
	if !w.MoveTile(*pos, target) {
		return false
	}
	*pos = target
	return true
}

// Surface returns the row just above the highest terrain tile in column x,
// or 0 if the column has no terrain. Markers do not count. It returns
// Height() when the top cell is terrain.
func (w *World) Surface(x int) int {
	for y := w.height - 1; y >= 0; y-- {
		if t, ok := w.Tile(P(x, y)); ok && t.IsTerrain() {
			return y + 1
		}
	}
	return 0
}

// ToTile converts an entity-space position to the nearest grid cell.
func (w *World) ToTile(v core.Vec2) Pos {
	return Pos{
		X: int(math.Round(v.X / w.tileSize)),
		Y: int(math.Round(v.Y / w.tileSize)),
	}
}

// ToWorld returns the entity-space center of the grid cell p.
func (w *World) ToWorld(p Pos) core.Vec2 {
	return core.V(float64(p.X)*w.tileSize, float64(p.Y)*w.tileSize)
}

// Bounds returns the largest valid entity-space coordinates. Entity
// positions are clamped to [0, max] on both axes.
func (w *World) Bounds() core.Vec2 {
	return w.ToWorld(P(w.width-1, w.height-1))
}

// Update advances the world by one tick: every tile is updated first, then
// every live entity in insertion order.
func (w *World) Update(phys Physics) {
	for i := range w.tiles {
		w.tiles[i] = w.tiles[i].Update()
	}
	for _, h := range w.Entities() {
		if e, ok := w.Entity(h); ok {
			e.Update(w, phys)
		}
	}
}

// Dump returns the grid as text, one line per row with the top row first.
func (w *World) Dump() string {
	var sb strings.Builder
	sb.Grow((w.width + 1) * w.height)
	for y := w.height - 1; y >= 0; y-- {
		for x := 0; x < w.width; x++ {
			sb.WriteRune(w.tiles[w.index(P(x, y))].Letter())
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Count returns how many tiles satisfy match.
func (w *World) Count(match func(Tile) bool) int {
	n := 0
	for _, t := range w.tiles {
		if match(t) {
			n++
		}
	}
	return n
}
