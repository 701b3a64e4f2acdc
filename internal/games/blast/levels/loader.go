package levels

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-blast/internal/games/blast/levels/formats"
)

//go:embed pack/*.json
var packFS embed.FS

// Loader handles loading levels from a file tree.
type Loader struct {
	Root   string
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader reading the directory root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root, fsys: os.DirFS(root), logger: log.New(io.Discard)}
}

// Default returns a loader over the pack compiled into the binary.
func Default() *Loader {
	sub, err := fs.Sub(packFS, "pack")
	if err != nil {
		panic(err)
	}
	return &Loader{Root: "embedded", fsys: sub, logger: log.New(io.Discard)}
}

// WithLogger sets the logger used for skipped files and fallbacks.
func (l *Loader) WithLogger(logger *log.Logger) *Loader {
	if logger != nil {
		l.logger = logger
	}
	return l
}

// LoadAll scans and loads every level file.
// Returns levels sorted by number for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	seen := make(map[int]string)

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		level, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			l.logger.Warn("skipping level file", "path", p, "err", err)
			return nil
		}
		if prev, dup := seen[level.Number]; dup {
			l.logger.Warn("duplicate level number", "number", level.Number, "kept", prev, "skipped", p)
			return nil
		}
		seen[level.Number] = p
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Number < levels[j].Number
	})
	return levels, nil
}

// LoadFile loads a single level file relative to the loader root.
func (l *Loader) LoadFile(name string) (Level, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading %s: %w", name, err)
	}

	ext := strings.ToLower(path.Ext(name))
	if !isSupportedExtension(ext) {
		return Level{}, fmt.Errorf("levels: unsupported extension %q", ext)
	}
	rec, err := formats.Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing %s: %w", name, err)
	}

	return Level{
		Number:   rec.LevelNumber,
		Width:    rec.GridWidth,
		Height:   rec.GridHeight,
		Moves:    rec.MoveCount,
		Codes:    rec.Grid,
		FilePath: name,
	}, nil
}

// LoadByNumber loads a specific level.
func (l *Loader) LoadByNumber(n int) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range levels {
		if lvl.Number == n {
			return lvl, nil
		}
	}
	return Level{}, &MissingLevelDataError{Number: n}
}

// LoadLevel loads level n, falling back to level 1 when n is missing.
// The MissingLevelDataError for n is returned only if level 1 is missing too.
func (l *Loader) LoadLevel(n int) (Level, error) {
	lvl, err := l.LoadByNumber(n)
	var missing *MissingLevelDataError
	if err == nil || n == 1 || !errors.As(err, &missing) {
		return lvl, err
	}
	fallback, ferr := l.LoadByNumber(1)
	if ferr != nil {
		return Level{}, err
	}
	l.logger.Warn("level missing, falling back to level 1", "requested", n)
	return fallback, nil
}

// Count returns the number of loadable levels.
func (l *Loader) Count() (int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	return len(levels), nil
}

// LastNumber returns the highest level number in the pack, 0 if it is empty.
func (l *Loader) LastNumber() (int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	return LastNumber(levels), nil
}

// NextNumber returns the first level number after n in the pack.
func (l *Loader) NextNumber(n int) (int, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return 0, err
	}
	return NextNumber(levels, n), nil
}

// LastNumber returns the highest Number in pack. Numbers may have gaps, so
// this is not len(pack).
func LastNumber(pack []Level) int {
	last := 0
	for _, lvl := range pack {
		last = max(last, lvl.Number)
	}
	return last
}

// NextNumber returns the smallest Number in pack above n. Past the last
// level it returns max(n, LastNumber(pack))+1, which every caller treats
// as "all levels finished".
func NextNumber(pack []Level, n int) int {
	next := 0
	for _, lvl := range pack {
		if lvl.Number > n && (next == 0 || lvl.Number < next) {
			next = lvl.Number
		}
	}
	if next == 0 {
		return max(n, LastNumber(pack)) + 1
	}
	return next
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
