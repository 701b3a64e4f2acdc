// Package levels provides level loading for Cube Blast.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
)

// CodeRandom resolves to a random block color when the grid is built.
const CodeRandom = "rand"

// MissingLevelDataError reports a level number absent from the pack.
type MissingLevelDataError struct {
	Number int
}

func (e *MissingLevelDataError) Error() string {
	return fmt.Sprintf("levels: level %d not found", e.Number)
}

// InvalidTypeCodeError reports an unrecognized grid code.
type InvalidTypeCodeError struct {
	Code  string
	Index int
}

func (e *InvalidTypeCodeError) Error() string {
	return fmt.Sprintf("levels: invalid type code %q at index %d", e.Code, e.Index)
}

// Level represents a complete level definition.
type Level struct {
	Number   int
	Width    int
	Height   int
	Moves    int
	Codes    []string
	FilePath string
}

// ParseCode maps a type code to an entity. "rand" draws from rng.
func ParseCode(code string, rng *rand.Rand) (core.Entity, bool) {
	switch code {
	case "r":
		return core.Block(core.ColorRed), true
	case "g":
		return core.Block(core.ColorGreen), true
	case "b":
		return core.Block(core.ColorBlue), true
	case "y":
		return core.Block(core.ColorYellow), true
	case CodeRandom:
		return core.Block(core.RandomColor(rng)), true
	case "bo":
		return core.NewObstacle(core.ObstacleBox), true
	case "s":
		return core.NewObstacle(core.ObstacleStone), true
	case "v":
		return core.NewObstacle(core.ObstacleVase), true
	case "hro":
		return core.NewRocket(core.Horizontal), true
	case "vro":
		return core.NewRocket(core.Vertical), true
	}
	return core.Empty(), false
}

// Build creates the grid for this level. Index i of Codes lands on
// column i%Width of row i/Width, row 0 being the bottom. Unknown or
// missing codes are logged and replaced by a random block; the returned
// error joins every InvalidTypeCodeError and is informational.
func (l *Level) Build(rng *rand.Rand, logger *log.Logger) (*core.GridState, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if l.Width <= 0 || l.Height <= 0 {
		return nil, fmt.Errorf("levels: level %d has invalid size %dx%d", l.Number, l.Width, l.Height)
	}

	g := core.NewGridState(l.Width, l.Height)
	var errs []error
	for i := 0; i < l.Width*l.Height; i++ {
		code := ""
		if i < len(l.Codes) {
			code = l.Codes[i]
		}
		e, ok := ParseCode(code, rng)
		if !ok {
			err := &InvalidTypeCodeError{Code: code, Index: i}
			logger.Warn("invalid type code", "level", l.Number, "code", code, "index", i)
			errs = append(errs, err)
			e = core.Block(core.RandomColor(rng))
		}
		g.MustSet(core.C(i%l.Width, i/l.Width), e)
	}
	if extra := len(l.Codes) - l.Width*l.Height; extra > 0 {
		logger.Warn("extra grid codes ignored", "level", l.Number, "extra", extra)
	}
	g.ResetPendingEmpties()
	return g, errors.Join(errs...)
}

// Goals returns the obstacle census of the level without building it.
func (l *Level) Goals() map[core.ObstacleKind]int {
	out := make(map[core.ObstacleKind]int)
	for _, code := range l.Codes {
		switch code {
		case "bo":
			out[core.ObstacleBox]++
		case "s":
			out[core.ObstacleStone]++
		case "v":
			out[core.ObstacleVase]++
		}
	}
	return out
}
