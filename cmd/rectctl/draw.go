package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rectkit/internal/canvas"
	"github.com/vovakirdan/rectkit/internal/config"
	"github.com/vovakirdan/rectkit/internal/scene"
)

var (
	flagWidth  int
	flagHeight int
	flagPlain  bool
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Preview the scene in the terminal",
	Long: `Rasterize the viewport and its items into a character grid. The
viewport's upper-left corner is placed at the top-left of the preview.

Canvas size is taken from --width/--height, then the scene file, then the
terminal size.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, cfg, err := loadScene()
		if err != nil {
			return err
		}
		drawScene(cmd.OutOrStdout(), q, cfg)
		return nil
	},
}

func init() {
	drawCmd.Flags().IntVar(&flagWidth, "width", 0, "Canvas width in columns")
	drawCmd.Flags().IntVar(&flagHeight, "height", 0, "Canvas height in rows")
	drawCmd.Flags().BoolVar(&flagPlain, "plain", false, "Disable colors")
}

func drawScene(w io.Writer, q scene.Queryer, cfg config.SceneConfig) {
	width, height := canvasSize(cfg)
	logger.Debug("drawing", "width", width, "height", height)

	c := canvas.New(width, height)
	q.Draw(c)

	if flagPlain {
		fmt.Fprintln(w, c.String())
		return
	}
	fmt.Fprintln(w, c.Render())
}

func canvasSize(cfg config.SceneConfig) (int, int) {
	// Default dimensions
	width, height := 80, 24

	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h-1 // Leave room for the prompt
	}
	if cfg.Canvas.Width > 0 {
		width = cfg.Canvas.Width
	}
	if cfg.Canvas.Height > 0 {
		height = cfg.Canvas.Height
	}
	if flagWidth > 0 {
		width = flagWidth
	}
	if flagHeight > 0 {
		height = flagHeight
	}
	return width, height
}
