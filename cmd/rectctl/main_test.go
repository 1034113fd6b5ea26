package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
name: test
mode: int
viewport: { x1: 0, y1: 0, x2: 20, y2: 10 }
items:
  - name: left
    corners: { x1: 0, y1: 0, x2: 10, y2: 10 }
  - name: right
    corners: { x1: 10, y1: 0, x2: 20, y2: 10 }
  - name: mid
    pos: { x: 8, y: 2 }
    size: { w: 4, h: 4 }
  - name: away
    corners: { x1: 30, y1: 30, x2: 35, y2: 35 }
  - name: flipped
    corners: { x1: 5, y1: 5, x2: 2, y2: 2 }
`

func writeScene(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(testScene), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags are package globals; reset them between runs.
	flagScene, flagVerbose, flagDrawAfter = "", false, false
	flagWidth, flagHeight, flagPlain = 0, 0, false
	flagSave, flagLimit, flagClear = false, 20, false
	flagDBPath = filepath.Join(t.TempDir(), "history.db")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHitCommand(t *testing.T) {
	path := writeScene(t)

	out, err := run(t, "hit", "10", "3", "--scene", path)
	if err != nil {
		t.Fatalf("hit failed: %v", err)
	}
	lines := strings.Fields(out)
	expected := []string{"mid", "right", "left"}
	if strings.Join(lines, ",") != strings.Join(expected, ",") {
		t.Errorf("hit output = %q, expected %v", out, expected)
	}
}

func TestHitCommandBadCoordinate(t *testing.T) {
	if _, err := run(t, "hit", "ten", "3", "--scene", writeScene(t)); err == nil {
		t.Error("expected error for non-numeric coordinate")
	}
}

func TestCollideCommand(t *testing.T) {
	out, err := run(t, "collide", "--scene", writeScene(t))
	if err != nil {
		t.Fatalf("collide failed: %v", err)
	}
	if strings.Contains(out, "left <-> right") {
		t.Errorf("edge-sharing items reported as colliding:\n%s", out)
	}
	if !strings.Contains(out, "left <-> mid") || !strings.Contains(out, "right <-> mid") {
		t.Errorf("missing collisions:\n%s", out)
	}
}

func TestClipCommand(t *testing.T) {
	out, err := run(t, "clip", "--scene", writeScene(t))
	if err != nil {
		t.Fatalf("clip failed: %v", err)
	}
	if !strings.Contains(out, "Rect(ul=(30,30), lr=(35,35)) -> Rect(ul=(20,10), lr=(20,10))") {
		t.Errorf("away should collapse onto the viewport corner:\n%s", out)
	}
}

func TestConstrainCommand(t *testing.T) {
	out, err := run(t, "constrain", "--scene", writeScene(t))
	if err != nil {
		t.Fatalf("constrain failed: %v", err)
	}
	if !strings.Contains(out, "Rect(ul=(30,30), lr=(35,35)) -> Rect(ul=(15,5), lr=(20,10))") {
		t.Errorf("away should be pulled into the viewport:\n%s", out)
	}
}

func TestRepairCommand(t *testing.T) {
	out, err := run(t, "repair", "--scene", writeScene(t), "--draw", "--plain")
	if err != nil {
		t.Fatalf("repair failed: %v", err)
	}
	if !strings.Contains(out, "flipped") || !strings.Contains(out, "Rect(ul=(2,2), lr=(5,5))") {
		t.Errorf("flipped should be repaired:\n%s", out)
	}
	if !strings.Contains(out, "┌") {
		t.Errorf("--draw should print a preview:\n%s", out)
	}
}

func TestBoundsCommand(t *testing.T) {
	path := writeScene(t)

	out, err := run(t, "bounds", "--scene", path)
	if err != nil {
		t.Fatalf("bounds failed: %v", err)
	}
	if !strings.Contains(out, "Rect(ul=(0,0), lr=(35,35))") {
		t.Errorf("bounds output = %q", out)
	}

	out, err = run(t, "bounds", "--scene", path, "--", "-5", "40")
	if err != nil {
		t.Fatalf("bounds with points failed: %v", err)
	}
	if !strings.Contains(out, "Rect(ul=(-5,0), lr=(35,40))") {
		t.Errorf("bounds output = %q", out)
	}

	if _, err := run(t, "bounds", "1", "--scene", path); err == nil {
		t.Error("expected error for odd number of coordinates")
	}
}

func TestDrawCommand(t *testing.T) {
	out, err := run(t, "draw", "--scene", writeScene(t), "--plain", "--width", "20", "--height", "10")
	if err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "left") {
		t.Errorf("first row should start with the left label, got %q", lines[0])
	}
}

func TestShowAndSortCommands(t *testing.T) {
	path := writeScene(t)

	out, err := run(t, "show", "--scene", path)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, `Scene "test" (int)`) {
		t.Errorf("show header missing:\n%s", out)
	}

	out, err = run(t, "sort", "--scene", path)
	if err != nil {
		t.Fatalf("sort failed: %v", err)
	}
	if !strings.Contains(out, "1. flipped") {
		t.Errorf("smallest item should sort first:\n%s", out)
	}
}

func TestSaveAndHistory(t *testing.T) {
	scenePath := writeScene(t)
	dbPath := filepath.Join(t.TempDir(), "history.db")

	if _, err := run(t, "constrain", "--save", "--scene", scenePath, "--db", dbPath); err != nil {
		t.Fatalf("constrain --save failed: %v", err)
	}

	out, err := run(t, "history", "test", "--db", dbPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "constrain") || !strings.Contains(out, "away") {
		t.Errorf("history should list the constrain of away:\n%s", out)
	}

	if _, err := run(t, "history", "test", "--clear", "--db", dbPath); err != nil {
		t.Fatalf("history --clear failed: %v", err)
	}
	out, err = run(t, "history", "--db", dbPath)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if !strings.Contains(out, "No history recorded yet.") {
		t.Errorf("history should be empty after clear:\n%s", out)
	}

	if _, err := run(t, "history", "--clear", "--db", dbPath); err == nil {
		t.Error("expected error for --clear without a scene")
	}
}
