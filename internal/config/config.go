// Package config provides YAML-based sandbox configuration loading and
// validation.
package config

// SandboxConfig contains all tunable parameters of a sandbox session.
type SandboxConfig struct {
	World      WorldConfig   `yaml:"world"`
	Physics    PhysicsConfig `yaml:"physics"`
	Player     PlayerConfig  `yaml:"player"`
	Loop       LoopConfig    `yaml:"loop"`
	Generation []LayerConfig `yaml:"generation"`
}

// WorldConfig defines the grid dimensions.
type WorldConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	TileSize float64 `yaml:"tile_size"` // render units per tile
}

// PhysicsConfig defines per-tick entity physics.
type PhysicsConfig struct {
	FrictionDivisor float64 `yaml:"friction_divisor"`
	Epsilon         float64 `yaml:"epsilon"`
	HalfExtent      float64 `yaml:"half_extent"`
	Gravity         float64 `yaml:"gravity"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	MaxHealth   int     `yaml:"max_health"`
	Impulse     float64 `yaml:"impulse"`      // velocity added per pressed direction
	MaxSpeed    float64 `yaml:"max_speed"`    // per-axis velocity cap, 0 = none
	CrushDamage int     `yaml:"crush_damage"` // damage when the marker lands on the player
	SpawnColumn int     `yaml:"spawn_column"` // -1 = center column
}

// LoopConfig defines tick and frame rates.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second
	MaxFPS   int `yaml:"max_fps"`   // 0 = unlimited
}

// LayerConfig describes one generation band in YAML form.
type LayerConfig struct {
	Material     string   `yaml:"material"`
	Over         []string `yaml:"over"` // materials the band may rest on
	MinThickness int      `yaml:"min_thickness"`
	MaxThickness int      `yaml:"max_thickness"`
}
