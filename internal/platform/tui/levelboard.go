package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	blastcore "github.com/vovakirdan/cube-blast/internal/games/blast/core"
	"github.com/vovakirdan/cube-blast/internal/games/blast/levels"
)

// LevelBoardKeyMap defines the key bindings for the level board.
type LevelBoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Play   key.Binding
	Back   key.Binding
	Quit   key.Binding
	Toggle key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LevelBoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Play, k.Back, k.Toggle}
}

// FullHelp returns key bindings for the full help view.
func (k LevelBoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Play},
		{k.Back, k.Quit, k.Toggle},
	}
}

// DefaultLevelBoardKeyMap returns default key bindings.
func DefaultLevelBoardKeyMap() LevelBoardKeyMap {
	return LevelBoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Play: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// Level status labels shown in the board.
const (
	statusDone    = "done"
	statusCurrent = "current"
	statusLocked  = "locked"
)

// LevelStatus classifies level n against the stored progress.
func LevelStatus(n, current int) string {
	switch {
	case n < current:
		return statusDone
	case n == current:
		return statusCurrent
	default:
		return statusLocked
	}
}

// FormatGoals renders an obstacle census as "Box 3 Vase 2".
func FormatGoals(goals map[blastcore.ObstacleKind]int) string {
	var parts []string
	for _, k := range blastcore.ObstacleKinds {
		if n := goals[k]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", strings.ToUpper(k.String()[:1])+k.String()[1:], n))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

// LevelBoardModel lists the pack with each level's status.
type LevelBoardModel struct {
	levels   []levels.Level
	current  int
	table    table.Model
	help     help.Model
	keys     LevelBoardKeyMap
	width    int
	height   int
	quitting bool
	back     bool
	chosen   int // level picked with Play, 0 if none
}

// NewLevelBoardModel creates the level board for the given pack.
func NewLevelBoardModel(pack []levels.Level, current, width, height int) LevelBoardModel {
	h := help.New()
	h.ShowAll = false

	m := LevelBoardModel{
		levels:  pack,
		current: current,
		keys:    DefaultLevelBoardKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

func (m *LevelBoardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Size", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Goals", Width: 22},
		{Title: "Status", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *LevelBoardModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	cursor := 0
	for i, lvl := range m.levels {
		rows[i] = table.Row{
			strconv.Itoa(lvl.Number),
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			strconv.Itoa(lvl.Moves),
			FormatGoals(lvl.Goals()),
			LevelStatus(lvl.Number, m.current),
		}
		if lvl.Number == m.current {
			cursor = i
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(cursor)
}

// Init initializes the level board.
func (m LevelBoardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the level board.
func (m LevelBoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Toggle):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Play):
			i := m.table.Cursor()
			if i >= 0 && i < len(m.levels) && m.levels[i].Number <= m.current {
				m.chosen = m.levels[i].Number
				return m, tea.Quit
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level board.
func (m LevelBoardModel) View() string {
	if m.quitting || m.back || m.chosen != 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(centerText("LEVELS", m.width)))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		empty := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
		b.WriteString(centerText(tableStyle.Render(empty.Render("No levels found.")), m.width))
	} else {
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Chosen returns the level picked for play, 0 if none.
func (m LevelBoardModel) Chosen() int {
	return m.chosen
}

// IsGoingBack returns true if user wants to go back to menu.
func (m LevelBoardModel) IsGoingBack() bool {
	return m.back
}

// RunLevelBoard shows the level board. It returns the level picked for
// play (0 for none) and whether the player asked to go back to the menu.
func RunLevelBoard(pack []levels.Level, current, width, height int) (chosen int, goBack bool, err error) {
	p := tea.NewProgram(NewLevelBoardModel(pack, current, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return 0, false, err
	}
	m, ok := final.(LevelBoardModel)
	if !ok {
		return 0, false, nil
	}
	return m.Chosen(), m.IsGoingBack(), nil
}
