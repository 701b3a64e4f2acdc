package blast

import (
	"strconv"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/cube-blast/internal/core"
	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
)

const hudHeight = 4

var blockColors = map[core.Color]platformcore.Color{
	core.ColorRed:    platformcore.ColorRed,
	core.ColorGreen:  platformcore.ColorGreen,
	core.ColorBlue:   platformcore.ColorBlue,
	core.ColorYellow: platformcore.ColorYellow,
}

var obstacleLabels = map[core.ObstacleKind]string{
	core.ObstacleBox:   "Box",
	core.ObstacleStone: "Stone",
	core.ObstacleVase:  "Vase",
}

// glyph returns the rune and color an entity is drawn with.
func (g *Game) glyph(e core.Entity, c core.Cell) (rune, platformcore.Color) {
	switch e.Kind {
	case core.KindBlock:
		r, _ := utf8.DecodeRuneInString(g.cfg.Render.BlockGlyph)
		if g.cfg.Gameplay.ShowRocketHint && g.hint[c] {
			r = '◆'
		}
		return r, blockColors[e.Color]
	case core.KindRocket:
		if e.Orientation == core.Horizontal {
			return '↔', platformcore.ColorMagenta
		}
		return '↕', platformcore.ColorMagenta
	case core.KindObstacle:
		switch e.Obstacle {
		case core.ObstacleBox:
			return '▤', platformcore.ColorBrown
		case core.ObstacleStone:
			return '▲', platformcore.ColorWhite
		case core.ObstacleVase:
			if e.Health < e.Obstacle.MaxHealth() {
				return 'ʊ', platformcore.ColorCyan
			}
			return 'U', platformcore.ColorCyan
		}
	}
	if _, ok := g.flash[c]; ok {
		return '·', platformcore.ColorBrightYellow
	}
	return ' ', platformcore.ColorDefault
}

// boardOrigin returns the screen position of the board's top-left cell.
func (g *Game) boardOrigin() (int, int, bool) {
	grid := g.seq.Grid()
	cw := g.cfg.Render.CellWidth
	w := grid.Width()*cw + 2
	h := grid.Height() + 2
	if g.cfg.Render.ShowCoordinates {
		w += 3
		h++
	}
	if w > g.screenW || h+hudHeight > g.screenH {
		return 0, 0, false
	}
	r := platformcore.CenterIn(g.screenW, g.screenH-hudHeight, w, h)
	x, y := r.X+1, r.Y+hudHeight+1
	if g.cfg.Render.ShowCoordinates {
		x += 3
	}
	return x, y, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	switch {
	case g.finished:
		g.renderOverlay(dst, "All Levels Finished", "Q: quit | B: menu")
		return
	case g.loadErr != nil:
		g.renderOverlay(dst, "Cannot load level", g.loadErr.Error())
		return
	case g.seq == nil:
		return
	}

	ox, oy, ok := g.boardOrigin()
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	g.renderBoard(dst, ox, oy)

	switch {
	case g.outcome == platformcore.OutcomeWon:
		g.renderOverlay(dst, "Level "+strconv.Itoa(g.levelNum)+" Complete!", "N: next level | R: replay")
	case g.outcome == platformcore.OutcomeLost:
		g.renderOverlay(dst, "Out of Moves", "R: retry | B: menu")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.seq.Stuck():
		g.renderOverlay(dst, "No Moves Possible", "R: restart | B: menu")
	}
}

// phaseLabels names the cascade stages shown in the HUD.
var phaseLabels = map[core.Phase]string{
	core.PhaseExplode: "Blasting",
	core.PhaseFall:    "Falling",
	core.PhaseFill:    "Refilling",
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Cube Blast"
	if g.seq != nil {
		hud += " | Level " + strconv.Itoa(g.levelNum) + "/" + strconv.Itoa(g.lastLevel) +
			" | Moves: " + strconv.Itoa(g.seq.MovesLeft())
		if goals := g.goalText(); goals != "" {
			hud += " | " + goals
		}
		if label, ok := phaseLabels[g.seq.Phase()]; ok {
			hud += " | " + label
		}
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetWithColor(x, 1, '─', platformcore.ColorGray)
		dst.SetWithColor(x, 3, '─', platformcore.ColorGray)
	}
	dst.DrawTextWithColor(0, 2, " ←↑↓→: Move | Enter: Blast | R: Restart | P: Pause | B: Menu", platformcore.ColorGray)
}

// goalText lists remaining obstacle goals in display order.
func (g *Game) goalText() string {
	var parts []string
	for _, k := range core.ObstacleKinds {
		n, ok := g.goals[k]
		if !ok {
			continue
		}
		parts = append(parts, obstacleLabels[k]+" "+strconv.Itoa(n))
	}
	return strings.Join(parts, "  ")
}

func (g *Game) renderBoard(dst *platformcore.Screen, ox, oy int) {
	grid := g.seq.Grid()
	cw := g.cfg.Render.CellWidth
	h := grid.Height()

	dst.DrawBox(platformcore.NewRect(ox-1, oy-1, grid.Width()*cw+2, h+2), platformcore.ColorGray)

	// screen row 0 of the board is the top grid row
	sy := func(y int) int { return oy + h - 1 - y }

	for _, c := range grid.AllCells() {
		r, col := g.glyph(grid.At(c), c)
		x := ox + c.X*cw + cw/2
		dst.SetWithColor(x, sy(c.Y), r, col)
	}

	pr, _ := utf8.DecodeRuneInString(g.cfg.Render.ProjectileGlyph)
	for _, p := range g.seq.Projectiles() {
		dst.SetWithColor(ox+p.Pos.X*cw+cw/2, sy(p.Pos.Y), pr, platformcore.ColorBrightRed)
	}

	if g.outcome == platformcore.OutcomeNone {
		dst.Highlight(ox+g.cursor.X*cw, sy(g.cursor.Y), cw)
	}

	if g.cfg.Render.ShowCoordinates {
		for y := 0; y < h; y++ {
			dst.DrawTextWithColor(ox-4, sy(y), strconv.Itoa(y), platformcore.ColorGray)
		}
		for x := 0; x < grid.Width(); x++ {
			dst.DrawTextWithColor(ox+x*cw+cw/2, oy+h+1, strconv.Itoa(x%10), platformcore.ColorGray)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	r := platformcore.CenterIn(dst.Width(), dst.Height(), boxW, 5)

	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(r, platformcore.ColorWhite)
	dst.DrawTextCentered(r.Y+1, line1, platformcore.ColorBrightYellow)
	dst.DrawTextCentered(r.Y+3, line2, platformcore.ColorDefault)
}
