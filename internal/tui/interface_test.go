package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/coder/quartz"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUIInterfaceReceivesHostEvents(t *testing.T) {
	logger := quietLogger()
	h := host.New(
		host.WithClock(quartz.NewMock(t)),
		host.WithLogger(logger),
		host.WithRNG(randutil.New(3)),
	)
	t.Cleanup(func() { _ = h.Close() })

	ti := NewTUIInterface(h, logger, tea.WithInput(nil), tea.WithOutput(io.Discard))

	_, err := h.Start()
	require.NoError(t, err)

	select {
	case event := <-ti.model.events:
		assert.Equal(t, host.EventStart, event.Type)
		assert.Equal(t, h.GameID(), event.GameID)
	case <-time.After(time.Second):
		t.Fatal("no event delivered to the renderer")
	}

	require.NoError(t, ti.Close())
	_, err = h.Restart()
	require.NoError(t, err)
	select {
	case event := <-ti.model.events:
		t.Fatalf("unexpected event after close: %s", event.Type)
	default:
	}
}
