package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/uno"
)

// Game is the set of intents the TUI can send. *host.Host implements it.
type Game interface {
	PlayCard(id uno.CardID) (game.Snapshot, error)
	DrawCard() (game.Snapshot, error)
	ChooseColor(color uno.Color) (game.Snapshot, error)
	Pass() (game.Snapshot, error)
	Restart() (game.Snapshot, error)
	Snapshot() (game.Snapshot, error)
}

// TUIModel represents the Bubble Tea model for the game
type TUIModel struct {
	game   Game
	events <-chan host.Event
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog     []string
	snapshot    game.Snapshot
	hasSnapshot bool
	quitting    bool
	focusedPane int // 0 = log, 1 = input

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// eventMsg carries a host event into Update
type eventMsg struct {
	event host.Event
}

// resultMsg reports the outcome of an intent. Only failures are shown;
// successful intents are rendered from the event they publish.
type resultMsg struct {
	err error
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// NewTUIModel creates a TUI driving g and rendering events
func NewTUIModel(g Game, events <-chan host.Event, logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(g, events, logger, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(g Game, events <-chan host.Event, logger *log.Logger, testMode bool) *TUIModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "play <n>, draw, color <c>, pass, new, quit"
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	m := &TUIModel{
		game:        g,
		events:      events,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		actionInput: ti,
		gameLog:     []string{},
		focusedPane: 1,
		testMode:    testMode,
		capturedLog: []string{},
	}
	if snap, err := g.Snapshot(); err == nil {
		m.setSnapshot(snap)
	}
	return m
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForEvents())
}

// listenForEvents waits for the next host event
func (m *TUIModel) listenForEvents() tea.Cmd {
	if m.events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-m.events
		if !ok {
			return QuitMsg{}
		}
		return eventMsg{event: event}
	}
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case eventMsg:
		m.HandleEvent(msg.event)
		cmds = append(cmds, m.listenForEvents())

	case resultMsg:
		if msg.err != nil {
			m.AddLogEntry(ErrorStyle.Render(describeError(msg.err)))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				input := strings.TrimSpace(m.actionInput.Value())
				m.actionInput.SetValue("")
				if cmd := m.ProcessInput(input); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	if m.quitting {
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

// ProcessInput parses a line of input. Intents are returned as commands so
// the host is never called from inside Update.
func (m *TUIModel) ProcessInput(input string) tea.Cmd {
	cmd, err := parseCommand(input, m.snapshot.Phase)
	if err != nil {
		m.AddLogEntry(ErrorStyle.Render(err.Error()))
		return nil
	}

	switch cmd.kind {
	case cmdQuit:
		m.quitting = true
		return nil
	case cmdHelp:
		m.AddLogEntry(InfoStyle.Render(helpText))
		return nil
	case cmdNew:
		return m.intent(func() (game.Snapshot, error) { return m.game.Restart() })
	case cmdDraw:
		return m.intent(m.game.DrawCard)
	case cmdPass:
		return m.intent(m.game.Pass)
	case cmdColor:
		color := cmd.color
		return m.intent(func() (game.Snapshot, error) { return m.game.ChooseColor(color) })
	case cmdPlay:
		id, err := resolveCard(cmd, m.snapshot.PlayerHand)
		if err != nil {
			m.AddLogEntry(ErrorStyle.Render(err.Error()))
			return nil
		}
		return m.intent(func() (game.Snapshot, error) { return m.game.PlayCard(id) })
	}
	return nil
}

func (m *TUIModel) intent(run func() (game.Snapshot, error)) tea.Cmd {
	return func() tea.Msg {
		_, err := run()
		return resultMsg{err: err}
	}
}

// describeError turns engine errors into short user facing text
func describeError(err error) string {
	switch {
	case errors.Is(err, game.ErrCardNotInHand):
		return "You don't have that card."
	case errors.Is(err, game.ErrColorPending):
		return "Choose a color first: color <red|blue|green|yellow>"
	case errors.Is(err, game.ErrCannotPass):
		return "You can only pass when the deck is empty and nothing is playable."
	case errors.Is(err, game.ErrGameOver):
		return "The game is over. Type 'new' to play again."
	case errors.Is(err, game.ErrIllegalMove):
		return "That card can't be played. Match the color or value, or play a wild."
	case errors.Is(err, game.ErrNotYourTurn):
		return "Wait for your turn."
	case errors.Is(err, game.ErrDeckEmpty):
		return "The deck is empty."
	case errors.Is(err, game.ErrNoPendingWild):
		return "There is no wild waiting for a color."
	default:
		return err.Error()
	}
}

// HandleEvent applies a host event to the model
func (m *TUIModel) HandleEvent(event host.Event) {
	if event.Type == host.EventStart {
		m.ClearLog()
	}
	m.setSnapshot(event.Snapshot)
	for _, line := range FormatEvent(event) {
		m.AddLogEntry(line)
	}
}

func (m *TUIModel) setSnapshot(snap game.Snapshot) {
	m.snapshot = snap
	m.hasSnapshot = true

	switch snap.Phase {
	case game.AwaitingColorChoice:
		m.actionInput.Placeholder = "Choose a color: red, blue, green or yellow"
	case game.GameOver:
		m.actionInput.Placeholder = "Type 'new' to play again or 'quit' to exit"
	case game.ComputerThinking:
		m.actionInput.Placeholder = "Computer is thinking..."
	default:
		m.actionInput.Placeholder = "play <n>, draw, color <c>, pass, new, quit"
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#04B575")).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 25)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	logWidth := max(m.width-sidebarWidth-4, 1)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = logWidth
	m.logViewport.Height = paneHeight
	if !m.initialized && logWidth > 1 && paneHeight > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#626262")).
		Width(logWidth).
		Height(paneHeight)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(lipgloss.Color("#04B575"))
	}
	logPane := logStyle.Render(m.logViewport.View())

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logPane, sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane shows the table: discard, active color and counts
func (m *TUIModel) renderSidebarPane() string {
	if !m.hasSnapshot {
		return InfoStyle.Render("No game yet")
	}
	s := m.snapshot

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(" UNO "))
	content.WriteString("\n\n")
	fmt.Fprintf(&content, "Discard: %s\n", formatCard(s.DiscardTop))
	fmt.Fprintf(&content, "Color:   %s\n", CardStyle(s.ActiveColor).Render(s.ActiveColor.String()))
	fmt.Fprintf(&content, "Deck:    %d\n", s.DeckSize)
	fmt.Fprintf(&content, "Pile:    %d\n", s.DiscardSize)
	fmt.Fprintf(&content, "Turn:    %s\n", s.CurrentPlayer.Name())
	fmt.Fprintf(&content, "Order:   %s\n\n", s.Direction)
	content.WriteString(InfoStyle.Render(fmt.Sprintf("Computer holds %d", s.ComputerHandSize)))
	return content.String()
}

// renderActionPane renders the hand, status line and input
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	if m.hasSnapshot {
		content.WriteString(m.renderHand())
		content.WriteString("\n")
		content.WriteString(WarningStyle.Render(m.snapshot.Message))
		content.WriteString("\n")
	}

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	help := "Tab to scroll log • Enter to submit • Ctrl+C to quit"
	if m.focusedPane == 0 {
		help = "Log focused: ↑↓ scroll, PgUp/PgDn half page, Tab to input"
	}
	content.WriteString(InfoStyle.Render(help))
	return content.String()
}

// renderHand numbers the player's cards and dims the unplayable ones
func (m *TUIModel) renderHand() string {
	playable := make(map[uno.CardID]bool, len(m.snapshot.PlayableIDs))
	for _, id := range m.snapshot.PlayableIDs {
		playable[id] = true
	}

	cards := make([]string, 0, len(m.snapshot.PlayerHand))
	for i, card := range m.snapshot.PlayerHand {
		label := fmt.Sprintf("%d:%s", i+1, card)
		style := CardStyle(card.Color)
		if !playable[card.ID] {
			style = style.Faint(true).Bold(false)
		}
		cards = append(cards, style.Render(label))
	}
	return HandInfoStyle.Render("Hand: ") + strings.Join(cards, "  ")
}

// formatCard renders a single card in its color
func formatCard(card uno.Card) string {
	return CardStyle(card.Color).Render(card.String())
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// ClearLog clears the game log
func (m *TUIModel) ClearLog() {
	m.gameLog = []string{}
	m.logViewport.SetContent("")
}

// Snapshot returns the last state the model rendered
func (m *TUIModel) Snapshot() (game.Snapshot, bool) {
	return m.snapshot, m.hasSnapshot
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
