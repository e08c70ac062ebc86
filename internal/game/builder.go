package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sandbox/internal/config"
	"github.com/vovakirdan/tui-sandbox/internal/registry"
)

// CustomPreset names sessions whose layers come from the configuration file.
const CustomPreset = "custom"

// Builder creates games from a base configuration and a preset name.
type Builder struct {
	Config config.SandboxConfig
	Logger *log.Logger
}

// Build creates a game for preset. An empty preset keeps the configured
// generation layers.
func (b Builder) Build(preset string, seed int64) (*Game, error) {
	cfg := b.Config
	name := CustomPreset
	if preset != "" {
		p, err := registry.Get(preset)
		if err != nil {
			return nil, err
		}
		cfg.Generation = config.LayersFromGen(p.Gen)
		name = p.ID
	}

	logger := b.Logger
	if logger != nil {
		logger = logger.With("preset", name)
	}
	g, err := New(cfg, seed, logger)
	if err != nil {
		return nil, err
	}
	g.preset = name
	return g, nil
}

// Preset returns the preset name the game was built from.
func (g *Game) Preset() string {
	if g.preset == "" {
		return CustomPreset
	}
	return g.preset
}
