package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sandbox/internal/world"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSandboxConfig()) {
		t.Errorf("embedded defaults drifted from DefaultSandboxConfig():\n%+v\n%+v", cfg, DefaultSandboxConfig())
	}
}

func TestDefaultGenConfigRoundTrip(t *testing.T) {
	gen, err := DefaultSandboxConfig().GenConfig()
	if err != nil {
		t.Fatalf("GenConfig() failed: %v", err)
	}
	if !reflect.DeepEqual(gen, world.DefaultGenConfig()) {
		t.Errorf("GenConfig() = %+v, expected world defaults", gen)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := `
world:
  width: 40
loop:
  max_fps: 0
generation:
  - material: stone
    over: [stone]
    min_thickness: 2
    max_thickness: 3
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.World.Width != 40 {
		t.Errorf("Width = %d, expected 40", cfg.World.Width)
	}
	if cfg.World.Height != 20 {
		t.Errorf("Height = %d, expected default 20", cfg.World.Height)
	}
	if cfg.Loop.MaxFPS != 0 || cfg.Loop.TickRate != 30 {
		t.Errorf("Loop = %+v, expected max_fps 0 and default tick rate", cfg.Loop)
	}
	if len(cfg.Generation) != 1 || cfg.Generation[0].Material != "stone" {
		t.Errorf("Generation = %+v, expected a single stone layer", cfg.Generation)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `
world:
  width: -3
physics:
  friction_divisor: 0.5
generation:
  - material: lava
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load() should reject invalid values")
	}
	for _, want := range []string{"world size", "friction_divisor", "lava"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %q", err, want)
		}
	}
}

func writeUserConfig(t *testing.T, data string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".sandbox", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadUserConfig(t *testing.T) {
	writeUserConfig(t, "world:\n  height: 12\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.World.Height != 12 {
		t.Errorf("Height = %d, expected 12 from the user config", cfg.World.Height)
	}
}

func TestLoadReportsInvalidUserConfig(t *testing.T) {
	path := writeUserConfig(t, "loop:\n  tick_rate: 0\n")

	_, err := Load("")
	if err == nil {
		t.Fatal("Load() should report an invalid user config")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q does not name %s", err, path)
	}
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSandboxConfig()) {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestHugeThicknessGenerates(t *testing.T) {
	data := `
generation:
  - material: bedrock
    over: [bedrock]
    min_thickness: 1
    max_thickness: 1
  - material: stone
    over: [bedrock, stone]
    min_thickness: 0
    max_thickness: 9223372036854775807
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	gen, err := cfg.GenConfig()
	if err != nil {
		t.Fatalf("GenConfig() failed: %v", err)
	}
	if _, err := world.New(cfg.World.Width, cfg.World.Height, cfg.World.TileSize, gen, 1); err != nil {
		t.Errorf("world.New() failed: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SandboxConfig)
	}{
		{"zero tile size", func(c *SandboxConfig) { c.World.TileSize = 0 }},
		{"half extent too large", func(c *SandboxConfig) { c.Physics.HalfExtent = 20 }},
		{"negative epsilon", func(c *SandboxConfig) { c.Physics.Epsilon = -1 }},
		{"no health", func(c *SandboxConfig) { c.Player.MaxHealth = 0 }},
		{"negative crush damage", func(c *SandboxConfig) { c.Player.CrushDamage = -5 }},
		{"spawn outside world", func(c *SandboxConfig) { c.Player.SpawnColumn = 20 }},
		{"zero tick rate", func(c *SandboxConfig) { c.Loop.TickRate = 0 }},
		{"negative fps", func(c *SandboxConfig) { c.Loop.MaxFPS = -1 }},
		{"no layers", func(c *SandboxConfig) { c.Generation = nil }},
		{"unknown bottom", func(c *SandboxConfig) { c.Generation[1].Over = []string{"sand"} }},
	}

	if err := DefaultSandboxConfig().Validate(); err != nil {
		t.Fatalf("defaults should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSandboxConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestPhysicsParams(t *testing.T) {
	cfg := DefaultSandboxConfig()
	cfg.Physics.Gravity = 0.5

	p := cfg.PhysicsParams()
	if p.Gravity != 0.5 || p.FrictionDivisor != cfg.Physics.FrictionDivisor {
		t.Errorf("PhysicsParams() = %+v", p)
	}
}
