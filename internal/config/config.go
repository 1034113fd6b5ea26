// Package config provides YAML-based scene loading for rectctl.
package config

import (
	"fmt"
	"math"
)

// Mode selects the coordinate type a scene is evaluated with.
type Mode string

const (
	ModeInt   Mode = "int"
	ModeFloat Mode = "float"
)

// SceneConfig describes a viewport and the rectangles placed in it.
type SceneConfig struct {
	Name     string        `yaml:"name"`
	Mode     Mode          `yaml:"mode"`
	Viewport CornersConfig `yaml:"viewport"`
	Items    []ItemConfig  `yaml:"items"`
	Canvas   CanvasConfig  `yaml:"canvas"`
	Points   []PointConfig `yaml:"points"` // Extra points folded into the scene bounds
}

// CornersConfig is a rectangle given by its two corners. The corners are
// taken as written; an inverted rectangle is allowed.
type CornersConfig struct {
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
	X2 float64 `yaml:"x2"`
	Y2 float64 `yaml:"y2"`
}

// PointConfig is a single coordinate.
type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// SizeConfig is a width/height pair.
type SizeConfig struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// ItemConfig is one named rectangle. Exactly one of Corners or Pos+Size
// must be set.
type ItemConfig struct {
	Name    string         `yaml:"name"`
	Corners *CornersConfig `yaml:"corners,omitempty"`
	Pos     *PointConfig   `yaml:"pos,omitempty"`
	Size    *SizeConfig    `yaml:"size,omitempty"`
	Color   string         `yaml:"color"`
	Fill    string         `yaml:"fill"` // Single character, defaults to '#'
}

// CanvasConfig sets the preview size used by the draw command.
// Zero means size from the terminal.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Validate checks the scene for problems the geometry layer cannot
// represent: unknown modes, unnamed or duplicate items, ambiguous item
// shapes, infinite or NaN coordinates, and fractional coordinates in
// integer mode.
func (c *SceneConfig) Validate() error {
	switch c.Mode {
	case ModeInt, ModeFloat:
	case "":
		c.Mode = ModeInt
	default:
		return fmt.Errorf("config: unknown mode %q (want %q or %q)", c.Mode, ModeInt, ModeFloat)
	}

	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("config: canvas size must not be negative")
	}

	if err := c.checkCoords("viewport", c.Viewport.X1, c.Viewport.Y1, c.Viewport.X2, c.Viewport.Y2); err != nil {
		return err
	}
	for i, p := range c.Points {
		if err := c.checkCoords(fmt.Sprintf("points[%d]", i), p.X, p.Y); err != nil {
			return err
		}
	}

	seen := make(map[string]bool, len(c.Items))
	for i, item := range c.Items {
		if item.Name == "" {
			return fmt.Errorf("config: items[%d] has no name", i)
		}
		if seen[item.Name] {
			return fmt.Errorf("config: duplicate item %q", item.Name)
		}
		seen[item.Name] = true

		hasCorners := item.Corners != nil
		hasPosSize := item.Pos != nil || item.Size != nil
		switch {
		case hasCorners && hasPosSize:
			return fmt.Errorf("config: item %q sets both corners and pos/size", item.Name)
		case !hasCorners && (item.Pos == nil || item.Size == nil):
			return fmt.Errorf("config: item %q needs corners or both pos and size", item.Name)
		}

		if hasCorners {
			k := item.Corners
			if err := c.checkCoords("item "+item.Name, k.X1, k.Y1, k.X2, k.Y2); err != nil {
				return err
			}
		} else {
			if err := c.checkCoords("item "+item.Name, item.Pos.X, item.Pos.Y, item.Size.W, item.Size.H); err != nil {
				return err
			}
		}

		if len([]rune(item.Fill)) > 1 {
			return fmt.Errorf("config: item %q fill must be a single character", item.Name)
		}
	}
	return nil
}

// checkCoords rejects non-finite values in any mode and fractional values
// in int mode.
func (c *SceneConfig) checkCoords(what string, vals ...float64) error {
	for _, v := range vals {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return fmt.Errorf("config: %s has non-finite coordinate %v", what, v)
		}
		if c.Mode == ModeInt && v != math.Trunc(v) {
			return fmt.Errorf("config: %s has fractional coordinate %v in int mode", what, v)
		}
	}
	return nil
}
