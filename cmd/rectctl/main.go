// rectctl loads a scene of named rectangles and runs geometry queries
// against it.
//
// Usage:
//
//	rectctl show              - List the scene's viewport and items
//	rectctl hit <x> <y>       - Items containing a point, topmost first
//	rectctl collide           - Pairs of items whose interiors overlap
//	rectctl bounds [x y ...]  - Bounding box of all items and extra points
//	rectctl sort              - Items ordered by area
//	rectctl clip              - Clip every item to the viewport
//	rectctl constrain         - Move every item inside the viewport
//	rectctl repair            - Fix inverted items
//	rectctl draw              - Preview the scene in the terminal
//	rectctl history [scene]   - Changes recorded with --save
//
// Global flags:
//
//	--scene <path>  - Scene YAML (default: ~/.rectkit/scene.yaml, ./configs/scene.yaml, built-in)
//	--verbose       - Debug logging
//	--db <path>     - History database (default: ~/.rectkit/history.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/rectkit/internal/config"
	"github.com/vovakirdan/rectkit/internal/scene"
)

var (
	// Global flags
	flagScene   string
	flagVerbose bool
	flagDBPath  string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rectctl",
	Short: "rectctl - Query axis-aligned rectangles",
	Long: `rectctl loads a scene (a viewport plus named rectangles) and runs
hit-testing, collision, clipping and bounds queries against it.

Examples:
  rectctl show
  rectctl hit 12 4
  rectctl collide --scene ./my-scene.yaml
  rectctl clip --draw
  rectctl bounds 0 0 100 40`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(flagVerbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagScene, "scene", "", "Path to scene YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rectkit/history.db", "Path to history database")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(hitCmd)
	rootCmd.AddCommand(collideCmd)
	rootCmd.AddCommand(boundsCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(clipCmd)
	rootCmd.AddCommand(constrainCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(historyCmd)
}

func newLogger(verbose bool) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		Prefix:          "rectctl",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// loadScene reads the scene named by --scene (or the default search path)
// and builds it.
func loadScene() (scene.Queryer, config.SceneConfig, error) {
	cfg, err := config.LoadScene(flagScene)
	if err != nil {
		return nil, cfg, err
	}
	logger.Debug("scene loaded", "name", cfg.Name, "mode", cfg.Mode, "items", len(cfg.Items))

	q, err := scene.FromConfig(cfg, logger)
	if err != nil {
		return nil, cfg, err
	}
	return q, cfg, nil
}
