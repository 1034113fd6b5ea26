package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rectkit/internal/scene"
)

var hitCmd = &cobra.Command{
	Use:   "hit <x> <y>",
	Short: "List items containing a point, topmost first",
	Long: `List the items whose rectangle contains the point (x, y).
Edges are inclusive. In int mode the coordinates are truncated.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseCoords(args)
		if err != nil {
			return err
		}
		q, _, err := loadScene()
		if err != nil {
			return err
		}
		printHits(cmd.OutOrStdout(), q.HitTestXY(coords[0], coords[1]))
		return nil
	},
}

var collideCmd = &cobra.Command{
	Use:   "collide",
	Short: "List pairs of items whose interiors overlap",
	Long: `List every pair of colliding items. Items that only share an edge or
a corner do not collide.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, _, err := loadScene()
		if err != nil {
			return err
		}
		printPairs(cmd.OutOrStdout(), q.Collisions())
		return nil
	},
}

var boundsCmd = &cobra.Command{
	Use:   "bounds [x y ...]",
	Short: "Bounding box of all items and extra points",
	Long: `Print the smallest rectangle containing every item corner, every point
listed in the scene file and any coordinate pairs given as arguments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args)%2 != 0 {
			return fmt.Errorf("bounds: expected coordinate pairs, got %d values", len(args))
		}
		coords, err := parseCoords(args)
		if err != nil {
			return err
		}

		cfg, err := loadConfigWithPoints(coords)
		if err != nil {
			return err
		}
		q, err := scene.FromConfig(cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Bounds: %s\n", q.BoundsString())
		return nil
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "List items ordered by area, smallest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, _, err := loadScene()
		if err != nil {
			return err
		}
		for i, name := range q.Sorted() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %d. %s\n", i+1, name)
		}
		return nil
	},
}

func parseCoords(args []string) ([]float64, error) {
	coords := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		coords[i] = v
	}
	return coords, nil
}

func printHits(w io.Writer, hits []string) {
	if len(hits) == 0 {
		fmt.Fprintln(w, "No items at that point.")
		return
	}
	for _, name := range hits {
		fmt.Fprintf(w, "  %s\n", name)
	}
}

func printPairs(w io.Writer, pairs []scene.Pair) {
	if len(pairs) == 0 {
		fmt.Fprintln(w, "No collisions.")
		return
	}
	for _, p := range pairs {
		fmt.Fprintf(w, "  %s <-> %s\n", p.A, p.B)
	}
}
