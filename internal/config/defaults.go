package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultSceneConfig returns the built-in scene, used if the embedded YAML
// cannot be parsed.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Name:     "default",
		Mode:     ModeInt,
		Viewport: CornersConfig{X1: 0, Y1: 0, X2: 40, Y2: 12},
		Canvas:   CanvasConfig{Width: 40, Height: 12},
		Items: []ItemConfig{
			{
				Name:    "window",
				Corners: &CornersConfig{X1: 2, Y1: 1, X2: 22, Y2: 9},
				Color:   "cyan",
			},
			{
				Name:  "dialog",
				Pos:   &PointConfig{X: 16, Y: 5},
				Size:  &SizeConfig{W: 20, H: 5},
				Color: "yellow",
			},
		},
	}
}
