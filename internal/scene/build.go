package scene

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rectkit/internal/canvas"
	"github.com/vovakirdan/rectkit/internal/config"
	"github.com/vovakirdan/rectkit/internal/geom"
)

// Queryer is the part of a Scene that does not depend on the coordinate
// type. Coordinates passed in are converted to the scene's type, which
// truncates for integer scenes.
type Queryer interface {
	Name() string
	Mode() config.Mode
	ViewportString() string
	Summaries() []Summary
	HitTestXY(x, y float64) []string
	Collisions() []Pair
	ClipToViewport() []Outcome
	ConstrainToViewport() []Outcome
	Repair() []Outcome
	Sorted() []string
	BoundsString() string
	Draw(c *canvas.Canvas)
}

var (
	_ Queryer = (*Scene[int])(nil)
	_ Queryer = (*Scene[float64])(nil)
)

// FromConfig builds a scene from a validated config, using int or float64
// coordinates according to cfg.Mode.
func FromConfig(cfg config.SceneConfig, logger *log.Logger) (Queryer, error) {
	switch cfg.Mode {
	case config.ModeFloat:
		return Build[float64](cfg, logger)
	case config.ModeInt, "":
		return Build[int](cfg, logger)
	default:
		return nil, fmt.Errorf("scene: unknown mode %q", cfg.Mode)
	}
}

// Build builds a Scene[T] from cfg. Coordinates are converted to T as is;
// cfg.Validate rejects fractional values for integer scenes.
func Build[T geom.Scalar](cfg config.SceneConfig, logger *log.Logger) (*Scene[T], error) {
	vp := cfg.Viewport
	s := New(cfg.Name, geom.R(T(vp.X1), T(vp.Y1), T(vp.X2), T(vp.Y2)), logger)
	s.mode = cfg.Mode
	if s.mode == "" {
		s.mode = config.ModeInt
	}

	for _, ic := range cfg.Items {
		item := Item[T]{Name: ic.Name}

		if ic.Corners != nil {
			k := ic.Corners
			item.Rect = geom.R(T(k.X1), T(k.Y1), T(k.X2), T(k.Y2))
		} else if ic.Pos != nil && ic.Size != nil {
			pos := geom.Pt(T(ic.Pos.X), T(ic.Pos.Y))
			item.Rect = geom.FromPosSize(pos, geom.Sz(ic.Size.W, ic.Size.H))
		} else {
			return nil, fmt.Errorf("scene: item %q has no shape", ic.Name)
		}

		color, ok := canvas.ParseColor(ic.Color)
		if !ok {
			return nil, fmt.Errorf("scene: item %q has unknown color %q", ic.Name, ic.Color)
		}
		item.Color = color

		if fill := []rune(ic.Fill); len(fill) > 0 {
			item.Fill = fill[0]
		}

		if err := s.Add(item); err != nil {
			return nil, err
		}
	}

	for _, p := range cfg.Points {
		s.AddPoint(geom.Pt(T(p.X), T(p.Y)))
	}

	s.logger.Debug("scene built", "name", s.name, "items", len(s.items), "viewport", s.viewport)
	return s, nil
}

// Mode reports the coordinate mode s was built with. It is empty for a
// scene created with New.
func (s *Scene[T]) Mode() config.Mode {
	return s.mode
}

// ViewportString returns the viewport rendered with Rect.String.
func (s *Scene[T]) ViewportString() string {
	return s.viewport.String()
}

// BoundsString returns Bounds rendered with Rect.String.
func (s *Scene[T]) BoundsString() string {
	return s.Bounds().String()
}

// HitTestXY is HitTest for a coordinate pair given as float64.
func (s *Scene[T]) HitTestXY(x, y float64) []string {
	return s.HitTest(geom.Pt(T(x), T(y)))
}

// Summaries lists every item with its area and validity.
func (s *Scene[T]) Summaries() []Summary {
	out := make([]Summary, len(s.items))
	for i, it := range s.items {
		out[i] = Summary{
			Name:  it.Name,
			Rect:  it.Rect,
			Area:  float64(it.Rect.Area()),
			Valid: it.Rect.IsValid(),
		}
	}
	return out
}
