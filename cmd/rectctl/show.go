package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rectkit/internal/scene"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List the scene's viewport and items",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, _, err := loadScene()
		if err != nil {
			return err
		}
		printSummary(cmd.OutOrStdout(), q)
		return nil
	},
}

func printSummary(w io.Writer, q scene.Queryer) {
	fmt.Fprintf(w, "Scene %q (%s)\n", q.Name(), q.Mode())
	fmt.Fprintf(w, "Viewport: %s\n", q.ViewportString())
	fmt.Fprintln(w)

	sums := q.Summaries()
	if len(sums) == 0 {
		fmt.Fprintln(w, "No items.")
		return
	}

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, s := range sums {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Fprintf(w, "  %-*s  %-10s  %-5s  %s\n", maxNameLen, "Name", "Area", "Valid", "Rect")
	fmt.Fprintf(w, "  %-*s  %-10s  %-5s  %s\n", maxNameLen, "----", "----", "-----", "----")
	for _, s := range sums {
		fmt.Fprintf(w, "  %-*s  %-10g  %-5t  %s\n", maxNameLen, s.Name, s.Area, s.Valid, s.Rect)
	}
}
