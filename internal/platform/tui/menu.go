package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"orbrun/internal/config"
	"orbrun/internal/core"
	"orbrun/internal/storage"
)

// menuChoice identifies an entry in the main menu.
type menuChoice int

const (
	menuNewRun menuChoice = iota
	menuEnterSeed
	menuHighScores
	menuQuit
)

var menuLabels = []string{
	menuNewRun:     "New Run",
	menuEnterSeed:  "Enter Seed",
	menuHighScores: "High Scores",
	menuQuit:       "Quit",
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor         int
	width          int
	height         int
	store          *storage.Store
	config         core.RuntimeConfig
	seedCfg        config.SeedConfig
	keyMapper      *KeyMapper
	seedInput      textinput.Model
	enteringSeed   bool
	seedErr        string
	quitting       bool
	startSeed      *uint64 // Set when a run should start
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, seedCfg config.SeedConfig) MenuModel {
	ti := textinput.New()
	ti.Placeholder = "0x12345678"
	ti.CharLimit = 18 // "0x" plus sixteen hex digits
	ti.Width = 20

	return MenuModel{
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		config:    cfg,
		seedCfg:   seedCfg,
		keyMapper: NewKeyMapper(),
		seedInput: ti,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.enteringSeed {
			return m.handleSeedKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuLabels)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		return m.selectItem()
	}

	return m, nil
}

// selectItem activates the highlighted menu entry.
func (m MenuModel) selectItem() (tea.Model, tea.Cmd) {
	switch menuChoice(m.cursor) {
	case menuNewRun:
		seed, err := m.seedCfg.ResolveSeed()
		if err != nil {
			seed = config.FixedSeed
		}
		m.startSeed = &seed
		return m, tea.Quit

	case menuEnterSeed:
		m.enteringSeed = true
		m.seedErr = ""
		m.seedInput.SetValue("")
		return m, m.seedInput.Focus()

	case menuHighScores:
		m.openScoreboard = true
		return m, tea.Quit

	case menuQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleSeedKey processes input while the seed prompt is open.
func (m MenuModel) handleSeedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.enteringSeed = false
		m.seedInput.Blur()
		return m, nil

	case "enter":
		seed, err := config.ParseSeed(m.seedInput.Value())
		if err != nil {
			m.seedErr = err.Error()
			return m, nil
		}
		m.startSeed = &seed
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.seedInput, cmd = m.seedInput.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	// Title
	title := "  O R B I T   R U N N E R  "
	b.WriteString("\n")
	b.WriteString(centerText(title, m.width))
	b.WriteString("\n\n")

	if m.enteringSeed {
		b.WriteString(centerText("Level seed (hex or decimal)", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.seedInput.View(), m.width))
		b.WriteString("\n")
		if m.seedErr != "" {
			b.WriteString(centerText(m.seedErr, m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Start  |  Esc: Back", m.width))
		b.WriteString("\n")
		return b.String()
	}

	for i, label := range menuLabels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	// Footer with controls and a hint about the starting score
	b.WriteString("\n")
	b.WriteString(centerText("Runs start behind the scoring line, so the score opens negative.", m.width))
	b.WriteString("\n\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// StartSeed returns the chosen seed, or nil if no run was started.
func (m MenuModel) StartSeed() *uint64 {
	return m.startSeed
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Seed            uint64
	StartRun        bool
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, seedCfg config.SeedConfig) (MenuResult, error) {
	model := NewMenuModel(store, cfg, seedCfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.WantsScoreboard() {
		result.WantsScoreboard = true
		return result, nil
	}

	if m.IsQuitting() {
		result.Quit = true
		return result, nil
	}

	if seed := m.StartSeed(); seed != nil {
		result.Seed = *seed
		result.StartRun = true
	} else {
		result.Quit = true
	}

	return result, nil
}
