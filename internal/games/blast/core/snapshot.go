package core

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// Snapshot captures the observable simulation state for determinism checks
// and replays.
type Snapshot struct {
	Tick      uint64
	State     State
	MovesLeft int
	Width     int
	Height    int
	Cells     []string // type code per cell, row 0 first; "" for empty
	Goals     map[ObstacleKind]int
}

// Snapshot returns the current snapshot.
func (s *TurnSequencer) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		State:     s.state,
		MovesLeft: s.moves,
		Width:     s.grid.Width(),
		Height:    s.grid.Height(),
		Cells:     s.grid.Codes(),
		Goals:     s.goals.Remaining(),
	}
}

// Hash returns an FNV-1a digest of the board, budget, state and goals.
// The tick counter is not included.
func (sn Snapshot) Hash() uint64 {
	h := fnv.New64a()
	write := func(s string) {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	write(strconv.Itoa(sn.Width))
	write(strconv.Itoa(sn.Height))
	write(strconv.Itoa(sn.MovesLeft))
	write(sn.State.String())
	for _, c := range sn.Cells {
		write(c)
	}
	for _, k := range ObstacleKinds {
		if n, ok := sn.Goals[k]; ok {
			write(k.String() + "=" + strconv.Itoa(n))
		}
	}
	return h.Sum64()
}

// Board renders the cells as text with the top row first, one padded
// code per cell and "." for empty cells.
func (sn Snapshot) Board() string {
	var b strings.Builder
	for y := sn.Height - 1; y >= 0; y-- {
		for x := 0; x < sn.Width; x++ {
			code := sn.Cells[y*sn.Width+x]
			if code == "" {
				code = "."
			}
			b.WriteString(code)
			b.WriteString(strings.Repeat(" ", 4-len(code)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
