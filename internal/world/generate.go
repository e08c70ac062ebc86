package world

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
)

// LayerConfig describes one horizontal band of terrain.
type LayerConfig struct {
	Material     Material
	ValidBelow   []Material // materials this layer may rest on
	MinThickness int
	MaxThickness int
}

// GenConfig is an ordered list of layers. The first layer is the base: its
// material always fills row 0 of every column.
type GenConfig struct {
	Layers []LayerConfig
}

// DefaultGenConfig returns bedrock, stone, dirt and grass bands.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Layers: []LayerConfig{
			{Material: Bedrock, ValidBelow: []Material{Bedrock}, MinThickness: 1, MaxThickness: 1},
			{Material: Stone, ValidBelow: []Material{Bedrock, Stone}, MinThickness: 2, MaxThickness: 4},
			{Material: Dirt, ValidBelow: []Material{Stone, Dirt}, MinThickness: 1, MaxThickness: 3},
			{Material: Grass, ValidBelow: []Material{Dirt}, MinThickness: 1, MaxThickness: 1},
		},
	}
}

// Validate checks that the layer list can be generated.
func (c GenConfig) Validate() error {
	if len(c.Layers) == 0 {
		return errors.New("world: generation needs at least one layer")
	}
	var errs []error
	for i, l := range c.Layers {
		if l.MinThickness < 0 {
			errs = append(errs, fmt.Errorf("world: layer %d (%s): negative min thickness %d", i, l.Material, l.MinThickness))
		}
		if l.MaxThickness < l.MinThickness {
			errs = append(errs, fmt.Errorf("world: layer %d (%s): max thickness %d below min %d", i, l.Material, l.MaxThickness, l.MinThickness))
		}
	}
	if c.Layers[0].MinThickness < 1 {
		errs = append(errs, fmt.Errorf("world: base layer (%s) must be at least one row thick", c.Layers[0].Material))
	}
	return errors.Join(errs...)
}

// allows reports whether the layer may be placed on top of m.
func (l LayerConfig) allows(m Material) bool {
	return slices.Contains(l.ValidBelow, m)
}

// thickness draws a band thickness uniformly from [min, max], with both
// bounds capped at limit. A band can never be taller than the world.
func (l LayerConfig) thickness(rng *rand.Rand, limit int) int {
	hi := min(l.MaxThickness, limit)
	lo := min(l.MinThickness, hi)
	return lo + rng.Intn(hi-lo+1)
}

// NewRand returns the deterministic RNG used for generation.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Generate fills w with the layers of cfg. Layers are applied in order and
// each one sees the tiles committed by the previous ones. An invalid cfg
// leaves w untouched.
func Generate(w *World, cfg GenConfig, rng *rand.Rand) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	base := cfg.Layers[0]
	for x := 0; x < w.width; x++ {
		w.tiles[w.index(P(x, 0))] = Terrain(base.Material)
		w.growColumn(x, base, base.thickness(rng, w.height)-1)
	}
	for _, layer := range cfg.Layers[1:] {
		for x := 0; x < w.width; x++ {
			w.growColumn(x, layer, layer.thickness(rng, w.height))
		}
	}
	return nil
}

// growColumn stacks up to h tiles of the layer's material in column x,
// walking upward from row 0. Occupied cells are skipped without using up
// thickness. The column stops growing once the terrain directly below the
// next cell is not a valid bottom for this layer.
func (w *World) growColumn(x int, layer LayerConfig, h int) {
	for y := 0; y < w.height && h > 0; y++ {
		p := P(x, y)
		if w.IsOccupied(p) {
			continue
		}
		if below, ok := w.Tile(p.Below()); ok && below.IsTerrain() && !layer.allows(below.Material) {
			return
		}
		w.tiles[w.index(p)] = Terrain(layer.Material)
		h--
	}
}
