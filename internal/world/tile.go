package world

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-sandbox/internal/core"
)

// Kind identifies which variant a Tile holds.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindTerrain
	KindMarker
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindTerrain:
		return "terrain"
	case KindMarker:
		return "marker"
	default:
		return "unknown"
	}
}

// Material is the texture of a terrain tile. Materials are ordered from
// hardest to lightest and generation stacks them in that order.
type Material uint8

const (
	Bedrock Material = iota
	Stone
	Dirt
	Grass
)

var materialNames = map[Material]string{
	Bedrock: "bedrock",
	Stone:   "stone",
	Dirt:    "dirt",
	Grass:   "grass",
}

// String returns the lowercase material name.
func (m Material) String() string {
	if name, ok := materialNames[m]; ok {
		return name
	}
	return fmt.Sprintf("material(%d)", uint8(m))
}

// ParseMaterial converts a material name (case-insensitive) to a Material.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range materialNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("world: unknown material %q", name)
}

// Tile is the content of a single grid cell. It is a closed set of
// variants selected by Kind; Material is only meaningful for terrain.
// A tile has no position of its own, its grid slot is its position.
type Tile struct {
	Kind     Kind
	Material Material
}

// Empty returns an empty (unoccupied) tile.
func Empty() Tile {
	return Tile{Kind: KindEmpty}
}

// Terrain returns a terrain tile of the given material.
func Terrain(m Material) Tile {
	return Tile{Kind: KindTerrain, Material: m}
}

// Marker returns the player marker tile.
func Marker() Tile {
	return Tile{Kind: KindMarker}
}

// IsEmpty reports whether the tile is the Empty variant.
func (t Tile) IsEmpty() bool {
	return t.Kind == KindEmpty
}

// IsTerrain reports whether the tile is terrain.
func (t Tile) IsTerrain() bool {
	return t.Kind == KindTerrain
}

// Update is the per-tick hook. All current variants are static.
func (t Tile) Update() Tile {
	return t
}

// Letter returns the single character used by Dump.
func (t Tile) Letter() rune {
	switch t.Kind {
	case KindTerrain:
		switch t.Material {
		case Bedrock:
			return 'B'
		case Stone:
			return 'S'
		case Dirt:
			return 'D'
		case Grass:
			return 'G'
		}
		return '?'
	case KindMarker:
		return 'M'
	default:
		return '.'
	}
}

// Glyph returns the two screen cells a tile is drawn with.
func (t Tile) Glyph() [2]core.Cell {
	switch t.Kind {
	case KindTerrain:
		c := core.Cell{Rune: '█', Color: t.Color()}
		if t.Material == Grass {
			return [2]core.Cell{{Rune: '▀', Color: core.ColorBrightGreen}, {Rune: '▀', Color: core.ColorBrightGreen}}
		}
		return [2]core.Cell{c, c}
	case KindMarker:
		return [2]core.Cell{{Rune: '[', Color: core.ColorCyan}, {Rune: ']', Color: core.ColorCyan}}
	default:
		blank := core.Cell{Rune: ' ', Color: core.ColorDefault}
		return [2]core.Cell{blank, blank}
	}
}

// Color returns the render color of the tile.
func (t Tile) Color() core.Color {
	switch t.Kind {
	case KindTerrain:
		switch t.Material {
		case Bedrock:
			return core.ColorDarkGray
		case Stone:
			return core.ColorGray
		case Dirt:
			return core.ColorBrown
		case Grass:
			return core.ColorBrightGreen
		}
	case KindMarker:
		return core.ColorCyan
	}
	return core.ColorDefault
}
