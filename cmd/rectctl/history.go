package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/rectkit/internal/scene"
	"github.com/vovakirdan/rectkit/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history [scene]",
	Short: "Show recorded clip/constrain/repair changes",
	Long: `Show the changes saved with --save, newest first. Without a scene
name, entries for every scene are shown.

Examples:
  rectctl clip --save
  rectctl history
  rectctl history desktop --limit 5
  rectctl history desktop --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of entries")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the history of the given scene")
}

func runHistory(cmd *cobra.Command, args []string) error {
	var sceneName string
	if len(args) == 1 {
		sceneName = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	w := cmd.OutOrStdout()

	if flagClear {
		if sceneName == "" {
			return fmt.Errorf("history: --clear needs a scene name")
		}
		if err := store.Clear(sceneName); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared history for %q.\n", sceneName)
		return nil
	}

	entries, err := store.History(sceneName, flagLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history recorded yet.")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-10s  %-12s  %s\n", "Date", "Scene", "Op", "Item", "Change")
	fmt.Fprintf(w, "  %-16s  %-10s  %-10s  %-12s  %s\n", "----", "-----", "--", "----", "------")
	for _, e := range entries {
		change := e.Before + " -> " + e.After
		if !e.OK {
			change = "refused: " + e.Before
		}
		fmt.Fprintf(w, "  %-16s  %-10s  %-10s  %-12s  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04"), e.Scene, e.Op, e.Item, change)
	}
	return nil
}

func saveOutcomes(sceneName, op string, out []scene.Outcome) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries := make([]storage.Entry, len(out))
	for i, o := range out {
		entries[i] = storage.Entry{
			Scene:  sceneName,
			Op:     op,
			Item:   o.Name,
			Before: o.Before.String(),
			After:  o.After.String(),
			OK:     o.OK,
		}
	}
	return store.Record(entries)
}
