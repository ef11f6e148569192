package tui

import (
	"errors"
	"fmt"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/lox/uno-cli/internal/host"
)

const bridgeBuffer = 64

// TUIInterface runs the terminal renderer against a host
type TUIInterface struct {
	model       *TUIModel
	program     *tea.Program
	host        *host.Host
	unsubscribe func()
	running     atomic.Bool
	logger      *log.Logger
}

// NewTUIInterface subscribes a renderer to h. Extra program options are
// passed to bubbletea; the alt screen is always used.
func NewTUIInterface(h *host.Host, logger *log.Logger, opts ...tea.ProgramOption) *TUIInterface {
	bridge := NewBridge(bridgeBuffer, logger)
	unsubscribe := h.Subscribe(bridge)
	model := NewTUIModel(h, bridge.Events(), logger)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)

	return &TUIInterface{
		model:       model,
		program:     program,
		host:        h,
		unsubscribe: unsubscribe,
		logger:      logger,
	}
}

// Run deals the first game and blocks until the player quits
func (ti *TUIInterface) Run() error {
	if _, err := ti.host.Start(); err != nil && !errors.Is(err, host.ErrAlreadyStarted) {
		return fmt.Errorf("failed to start game: %w", err)
	}

	ti.logger.Info("Starting TUI", "host_id", ti.host.ID())
	ti.running.Store(true)
	defer ti.running.Store(false)
	if _, err := ti.program.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// Close stops the renderer and detaches it from the host
func (ti *TUIInterface) Close() error {
	ti.unsubscribe()
	// Quit blocks until the program reads it, so only send it while running
	if ti.running.Load() {
		ti.program.Quit()
	}
	return nil
}
