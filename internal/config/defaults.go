package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

//go:embed defaults/sandbox.yaml
var defaultSandboxYAML []byte

// DefaultSandboxConfig returns the built-in sandbox configuration.
func DefaultSandboxConfig() SandboxConfig {
	phys := world.DefaultPhysics()
	return SandboxConfig{
		World: WorldConfig{
			Width:    20,
			Height:   20,
			TileSize: 20,
		},
		Physics: PhysicsConfig{
			FrictionDivisor: phys.FrictionDivisor,
			Epsilon:         phys.Epsilon,
			HalfExtent:      phys.HalfExtent,
			Gravity:         phys.Gravity,
		},
		Player: PlayerConfig{
			MaxHealth:   100,
			Impulse:     4,
			MaxSpeed:    12,
			CrushDamage: 25,
			SpawnColumn: -1,
		},
		Loop: LoopConfig{
			TickRate: 30,
			MaxFPS:   60,
		},
		Generation: LayersFromGen(world.DefaultGenConfig()),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSandboxYAML
}

// LayersFromGen converts a generation config to its YAML form.
func LayersFromGen(gen world.GenConfig) []LayerConfig {
	layers := make([]LayerConfig, 0, len(gen.Layers))
	for _, l := range gen.Layers {
		over := make([]string, 0, len(l.ValidBelow))
		for _, m := range l.ValidBelow {
			over = append(over, m.String())
		}
		layers = append(layers, LayerConfig{
			Material:     l.Material.String(),
			Over:         over,
			MinThickness: l.MinThickness,
			MaxThickness: l.MaxThickness,
		})
	}
	return layers
}
