package registry

import "github.com/vovakirdan/tui-sandbox/internal/world"

func init() {
	Register("layered", func() Preset {
		return Preset{
			ID:          "layered",
			Title:       "Layered",
			Description: "Bedrock, stone, dirt and a grass cap",
			Gen:         world.DefaultGenConfig(),
		}
	})

	Register("flat", func() Preset {
		return Preset{
			ID:          "flat",
			Title:       "Flat",
			Description: "Even stone floor with a dirt and grass top",
			Gen: world.GenConfig{Layers: []world.LayerConfig{
				{Material: world.Bedrock, ValidBelow: []world.Material{world.Bedrock}, MinThickness: 1, MaxThickness: 1},
				{Material: world.Stone, ValidBelow: []world.Material{world.Bedrock, world.Stone}, MinThickness: 2, MaxThickness: 2},
				{Material: world.Dirt, ValidBelow: []world.Material{world.Stone}, MinThickness: 1, MaxThickness: 1},
				{Material: world.Grass, ValidBelow: []world.Material{world.Dirt}, MinThickness: 1, MaxThickness: 1},
			}},
		}
	})

	Register("deep", func() Preset {
		return Preset{
			ID:          "deep",
			Title:       "Deep",
			Description: "Thick ragged bedrock and stone, sparse topsoil",
			Gen: world.GenConfig{Layers: []world.LayerConfig{
				{Material: world.Bedrock, ValidBelow: []world.Material{world.Bedrock}, MinThickness: 1, MaxThickness: 3},
				{Material: world.Stone, ValidBelow: []world.Material{world.Bedrock, world.Stone}, MinThickness: 3, MaxThickness: 8},
				{Material: world.Dirt, ValidBelow: []world.Material{world.Stone, world.Dirt}, MinThickness: 0, MaxThickness: 2},
				{Material: world.Grass, ValidBelow: []world.Material{world.Dirt}, MinThickness: 0, MaxThickness: 1},
			}},
		}
	})
}
