package levels_test

import (
	"errors"
	"math/rand"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
	"github.com/vovakirdan/cube-blast/internal/games/blast/levels"
)

// getTestdataPath returns path to testdata/levels.
func getTestdataPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", "levels")
}

func TestLoaderLoadAll(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 3 {
		t.Fatalf("expected 3 levels, got %d", len(lvls))
	}
	for i, lvl := range lvls {
		if lvl.Number != i+1 {
			t.Errorf("levels[%d].Number = %d, want %d", i, lvl.Number, i+1)
		}
	}
	if lvls[1].FilePath != "lvl02.json" {
		t.Errorf("first file wins on duplicate numbers, got %q", lvls[1].FilePath)
	}
	if lvls[2].FilePath != "extra/lvl03.yml" {
		t.Errorf("nested files are loaded, got %q", lvls[2].FilePath)
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByNumber(1)
	if err != nil {
		t.Fatalf("LoadByNumber failed: %v", err)
	}
	if lvl.Width != 3 || lvl.Height != 2 || lvl.Moves != 5 {
		t.Errorf("got %dx%d moves %d, want 3x2 moves 5", lvl.Width, lvl.Height, lvl.Moves)
	}

	g, err := lvl.Build(rand.New(rand.NewSource(1)), nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	tests := []struct {
		x, y int
		code string
	}{
		{0, 0, "bo"},
		{1, 0, "r"},
		{2, 0, "r"},
		{0, 1, "g"},
		{2, 1, "s"},
	}
	for _, tc := range tests {
		if got := g.At(core.C(tc.x, tc.y)).Code(); got != tc.code {
			t.Errorf("cell (%d,%d) = %q, want %q", tc.x, tc.y, got, tc.code)
		}
	}
	if !g.At(core.C(1, 1)).IsBlock() {
		t.Error("rand should resolve to a colored block")
	}
	if n := len(g.PendingEmpties()); n != 0 {
		t.Errorf("fresh grid has %d pending empties", n)
	}
}

func TestBuildInvalidCode(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	lvl, err := loader.LoadByNumber(2)
	if err != nil {
		t.Fatal(err)
	}
	g, err := lvl.Build(rand.New(rand.NewSource(1)), nil)
	if g == nil {
		t.Fatal("Build must still produce a grid")
	}
	var bad *levels.InvalidTypeCodeError
	if !errors.As(err, &bad) {
		t.Fatalf("expected InvalidTypeCodeError, got %v", err)
	}
	if bad.Code != "zz" || bad.Index != 1 {
		t.Errorf("got code %q index %d", bad.Code, bad.Index)
	}
	if !g.At(core.C(1, 0)).IsBlock() {
		t.Error("invalid code should become a colored block")
	}
	if !g.At(core.C(1, 1)).IsRocket() {
		t.Error("hro should load as a rocket")
	}
}

func TestBuildShortGrid(t *testing.T) {
	lvl := levels.Level{Number: 4, Width: 2, Height: 2, Moves: 1, Codes: []string{"s"}}
	g, err := lvl.Build(rand.New(rand.NewSource(1)), nil)
	if err == nil {
		t.Error("missing codes should be reported")
	}
	if g.EmptyCount() != 0 {
		t.Error("missing codes are filled with blocks")
	}

	bad := levels.Level{Number: 5, Width: 0, Height: 2}
	if _, err := bad.Build(rand.New(rand.NewSource(1)), nil); err == nil {
		t.Error("zero width must fail")
	}
}

func TestLoadLevelFallback(t *testing.T) {
	loader := levels.NewLoader(getTestdataPath())

	_, err := loader.LoadByNumber(42)
	var missing *levels.MissingLevelDataError
	if !errors.As(err, &missing) || missing.Number != 42 {
		t.Fatalf("expected MissingLevelDataError for 42, got %v", err)
	}

	lvl, err := loader.LoadLevel(42)
	if err != nil {
		t.Fatalf("LoadLevel should fall back: %v", err)
	}
	if lvl.Number != 1 {
		t.Errorf("fallback level = %d, want 1", lvl.Number)
	}

	empty := levels.NewLoader(t.TempDir())
	if _, err := empty.LoadLevel(3); !errors.As(err, &missing) {
		t.Errorf("empty pack should report missing level, got %v", err)
	}
}

func TestLevelGoals(t *testing.T) {
	lvl := levels.Level{Codes: []string{"bo", "bo", "v", "r", "s", "rand"}}
	goals := lvl.Goals()
	if goals[core.ObstacleBox] != 2 || goals[core.ObstacleVase] != 1 || goals[core.ObstacleStone] != 1 {
		t.Errorf("Goals() = %v", goals)
	}
}

func TestParseCode(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, code := range []string{"r", "g", "b", "y", "bo", "s", "v", "hro", "vro"} {
		e, ok := levels.ParseCode(code, rng)
		if !ok {
			t.Errorf("ParseCode(%q) not recognized", code)
			continue
		}
		if e.Code() != code {
			t.Errorf("ParseCode(%q).Code() = %q", code, e.Code())
		}
	}
	if _, ok := levels.ParseCode("R", rng); ok {
		t.Error("codes are case sensitive")
	}
}

func TestDefaultPack(t *testing.T) {
	loader := levels.Default()

	lvls, err := loader.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(lvls) != 10 {
		t.Fatalf("embedded pack has %d levels, want 10", len(lvls))
	}
	for i, lvl := range lvls {
		if lvl.Number != i+1 {
			t.Errorf("pack level %d numbered %d", i+1, lvl.Number)
		}
		if len(lvl.Codes) != lvl.Width*lvl.Height {
			t.Errorf("level %d has %d codes for %dx%d", lvl.Number, len(lvl.Codes), lvl.Width, lvl.Height)
		}
		if _, err := lvl.Build(rand.New(rand.NewSource(int64(i))), nil); err != nil {
			t.Errorf("level %d: %v", lvl.Number, err)
		}
		if len(lvl.Goals()) == 0 {
			t.Errorf("level %d has no obstacle goals", lvl.Number)
		}
	}
}

func TestLastAndNextNumber(t *testing.T) {
	pack := []levels.Level{{Number: 1}, {Number: 2}, {Number: 5}}

	if n := levels.LastNumber(pack); n != 5 {
		t.Errorf("LastNumber() = %d, want 5", n)
	}
	if n := levels.LastNumber(nil); n != 0 {
		t.Errorf("LastNumber(nil) = %d, want 0", n)
	}

	tests := []struct {
		after int
		want  int
	}{
		{0, 1},
		{1, 2},
		{2, 5},
		{3, 5},
		{5, 6},
		{9, 10},
	}
	for _, tt := range tests {
		if got := levels.NextNumber(pack, tt.after); got != tt.want {
			t.Errorf("NextNumber(%d) = %d, want %d", tt.after, got, tt.want)
		}
	}
}
