package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rectkit/internal/config"
	"github.com/vovakirdan/rectkit/internal/scene"
)

var (
	flagDrawAfter bool
	flagSave      bool
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Clip every item to the viewport",
	Long: `Shrink every item to its intersection with the viewport. Items that lie
entirely outside collapse to a zero-area rectangle on the viewport edge.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "clip", func(q scene.Queryer) []scene.Outcome {
			return q.ClipToViewport()
		})
	},
}

var constrainCmd = &cobra.Command{
	Use:   "constrain",
	Short: "Move every item inside the viewport",
	Long: `Translate every item so it lies inside the viewport without changing
its size. Items larger than the viewport are left in place and reported.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "constrain", func(q scene.Queryer) []scene.Outcome {
			return q.ConstrainToViewport()
		})
	},
}

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Fix inverted items",
	Long:  `Swap the corners of every item whose lower-right corner lies above or left of its upper-left corner.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMutation(cmd, "repair", func(q scene.Queryer) []scene.Outcome {
			return q.Repair()
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{clipCmd, constrainCmd, repairCmd} {
		c.Flags().BoolVar(&flagDrawAfter, "draw", false, "Preview the scene after the change")
		c.Flags().BoolVar(&flagSave, "save", false, "Record the changes in the history database")
	}
}

func runMutation(cmd *cobra.Command, op string, apply func(scene.Queryer) []scene.Outcome) error {
	q, cfg, err := loadScene()
	if err != nil {
		return err
	}

	out := apply(q)
	printOutcomes(cmd.OutOrStdout(), out)

	if flagSave && len(out) > 0 {
		if err := saveOutcomes(q.Name(), op, out); err != nil {
			return err
		}
		logger.Info("history saved", "scene", q.Name(), "op", op, "entries", len(out))
	}

	if flagDrawAfter {
		fmt.Fprintln(cmd.OutOrStdout())
		drawScene(cmd.OutOrStdout(), q, cfg)
	}
	return nil
}

func printOutcomes(w io.Writer, out []scene.Outcome) {
	if len(out) == 0 {
		fmt.Fprintln(w, "Nothing to do.")
		return
	}

	maxNameLen := 0
	for _, o := range out {
		maxNameLen = max(maxNameLen, len(o.Name))
	}

	for _, o := range out {
		switch {
		case !o.OK:
			fmt.Fprintf(w, "  %-*s  unchanged (does not fit)  %s\n", maxNameLen, o.Name, o.Before)
		case o.Changed():
			fmt.Fprintf(w, "  %-*s  %s -> %s\n", maxNameLen, o.Name, o.Before, o.After)
		default:
			fmt.Fprintf(w, "  %-*s  unchanged  %s\n", maxNameLen, o.Name, o.Before)
		}
	}
}

// loadConfigWithPoints loads the scene config and appends extra points
// given as flat x, y pairs.
func loadConfigWithPoints(coords []float64) (config.SceneConfig, error) {
	cfg, err := config.LoadScene(flagScene)
	if err != nil {
		return cfg, err
	}
	for i := 0; i+1 < len(coords); i += 2 {
		cfg.Points = append(cfg.Points, config.PointConfig{X: coords[i], Y: coords[i+1]})
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
