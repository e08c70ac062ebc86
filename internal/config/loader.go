package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

const configFile = "sandbox.yaml"

// Load loads the sandbox configuration.
// Search order: customPath -> ~/.sandbox/configs/sandbox.yaml -> ./configs/sandbox.yaml -> embedded default
// Fields missing from a file keep their default values. A file that exists
// but cannot be read or parsed is an error rather than skipped.
func Load(customPath string) (SandboxConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, _, err := loadFile(customPath, true)
		return cfg, err
	}

	// Try user config directory, then the local configs directory
	candidates := []string{filepath.Join("configs", configFile)}
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		cfg, found, err := loadFile(path, false)
		if err != nil {
			return SandboxConfig{}, err
		}
		if found {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultSandboxYAML)
	if err != nil {
		return DefaultSandboxConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses the config at path. A missing file is reported
// as not found unless required is set.
func loadFile(path string, required bool) (SandboxConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return SandboxConfig{}, false, nil
		}
		return SandboxConfig{}, false, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return SandboxConfig{}, true, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, true, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the
// result.
func Parse(data []byte) (SandboxConfig, error) {
	cfg := DefaultSandboxConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SandboxConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SandboxConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sandbox", "configs", filename)
}

// Validate reports every invalid field of the configuration.
func (c SandboxConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: world size %dx%d must be positive", c.World.Width, c.World.Height))
	}
	if c.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("config: tile_size %v must be positive", c.World.TileSize))
	}
	if c.Physics.FrictionDivisor < 1 {
		errs = append(errs, fmt.Errorf("config: friction_divisor %v must be at least 1", c.Physics.FrictionDivisor))
	}
	if c.Physics.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("config: epsilon %v must not be negative", c.Physics.Epsilon))
	}
	if c.Physics.HalfExtent < 0 || c.Physics.HalfExtent >= c.World.TileSize {
		errs = append(errs, fmt.Errorf("config: half_extent %v must be in [0, tile_size)", c.Physics.HalfExtent))
	}
	if c.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("config: max_health %d must be positive", c.Player.MaxHealth))
	}
	if c.Player.CrushDamage < 0 {
		errs = append(errs, fmt.Errorf("config: crush_damage %d must not be negative", c.Player.CrushDamage))
	}
	if c.Player.SpawnColumn >= c.World.Width {
		errs = append(errs, fmt.Errorf("config: spawn_column %d outside world width %d", c.Player.SpawnColumn, c.World.Width))
	}
	if c.Loop.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("config: tick_rate %d must be positive", c.Loop.TickRate))
	}
	if c.Loop.MaxFPS < 0 {
		errs = append(errs, fmt.Errorf("config: max_fps %d must not be negative", c.Loop.MaxFPS))
	}
	if _, err := c.GenConfig(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// GenConfig converts the YAML generation layers to a world.GenConfig.
func (c SandboxConfig) GenConfig() (world.GenConfig, error) {
	gen := world.GenConfig{Layers: make([]world.LayerConfig, 0, len(c.Generation))}
	for i, l := range c.Generation {
		m, err := world.ParseMaterial(l.Material)
		if err != nil {
			return world.GenConfig{}, fmt.Errorf("config: generation layer %d: %w", i, err)
		}
		below := make([]world.Material, 0, len(l.Over))
		for _, name := range l.Over {
			bm, err := world.ParseMaterial(name)
			if err != nil {
				return world.GenConfig{}, fmt.Errorf("config: generation layer %d: %w", i, err)
			}
			below = append(below, bm)
		}
		gen.Layers = append(gen.Layers, world.LayerConfig{
			Material:     m,
			ValidBelow:   below,
			MinThickness: l.MinThickness,
			MaxThickness: l.MaxThickness,
		})
	}
	if err := gen.Validate(); err != nil {
		return world.GenConfig{}, err
	}
	return gen, nil
}

// PhysicsParams returns the world physics tuning.
func (c SandboxConfig) PhysicsParams() world.Physics {
	return world.Physics{
		FrictionDivisor: c.Physics.FrictionDivisor,
		Epsilon:         c.Physics.Epsilon,
		HalfExtent:      c.Physics.HalfExtent,
		Gravity:         c.Physics.Gravity,
	}
}
