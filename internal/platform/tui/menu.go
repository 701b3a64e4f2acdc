package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cube-blast/internal/core"
)

// MenuChoice is what the player picked on the main menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceLevels
	ChoiceReset
	ChoiceQuit
)

// ProgressReader is the part of the progress store the menus read.
type ProgressReader interface {
	CurrentLevel() (int, error)
}

// MenuItem is one button of the main menu.
type MenuItem struct {
	Label    string
	Choice   MenuChoice
	Disabled bool
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	level     int
	finished  bool
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates the main menu. The play button reads "Level N", or
// "Finished" once progress is past lastLevel, the highest level number.
func NewMenuModel(progress ProgressReader, lastLevel int, cfg core.RuntimeConfig) MenuModel {
	level := 1
	if progress != nil {
		if n, err := progress.CurrentLevel(); err == nil {
			level = n
		}
	}
	finished := level > lastLevel

	play := MenuItem{Label: "Level " + strconv.Itoa(level), Choice: ChoicePlay}
	if finished {
		play = MenuItem{Label: "Finished", Choice: ChoicePlay, Disabled: true}
	}

	m := MenuModel{
		items: []MenuItem{
			play,
			{Label: "Levels", Choice: ChoiceLevels},
			{Label: "Reset progress", Choice: ChoiceReset, Disabled: progress == nil},
			{Label: "Quit", Choice: ChoiceQuit},
		},
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		level:     level,
		finished:  finished,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if finished {
		m.cursor = 1
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = ChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		m.cursor = m.step(-1)

	case MenuActionDown:
		m.cursor = m.step(1)

	case MenuActionLevels:
		m.choice = ChoiceLevels
		return m, tea.Quit

	case MenuActionSelect:
		item := m.items[m.cursor]
		if item.Disabled {
			return m, nil
		}
		m.choice = item.Choice
		return m, tea.Quit
	}
	return m, nil
}

// step moves the cursor by dir, skipping disabled items.
func (m MenuModel) step(dir int) int {
	for i := m.cursor + dir; i >= 0 && i < len(m.items); i += dir {
		if !m.items[i].Disabled {
			return i
		}
	}
	return m.cursor
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	disabledStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  C U B E   B L A S T  "), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		label := "  " + item.Label + "  "
		switch {
		case item.Disabled:
			label = disabledStyle.Render(label)
		case i == m.cursor:
			label = selectedStyle.Render(label)
		}
		b.WriteString(centerText(label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(footerStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Levels  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Choice returns what the player picked, ChoiceNone while the menu runs.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Level  int
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(progress ProgressReader, lastLevel int, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(progress, lastLevel, cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok || m.choice == ChoiceNone {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.choice, Level: m.level, Config: m.config}, nil
}
