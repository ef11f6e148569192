package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/internal/host"
	"github.com/lox/uno-cli/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	clock := quartz.NewMock(t)
	seed := int64(0)
	factory := func() *host.Host {
		seed++
		return host.New(
			host.WithClock(clock),
			host.WithLogger(logger),
			host.WithRNG(randutil.New(seed)),
		)
	}

	srv := NewServer("127.0.0.1:0", factory, logger)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func dial(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestHealth(t *testing.T) {
	_, ts := startTestServer(t)

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", string(body))
}

func TestConnectionDealsGame(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dial(t, ts)

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeState, msg.Type)
	assert.Equal(t, host.EventStart, msg.Event)
	assert.NotEmpty(t, msg.GameID)
	require.NotNil(t, msg.Snapshot)
	assert.Equal(t, game.AwaitingPlayerMove, msg.Snapshot.Phase)
	assert.Len(t, msg.Snapshot.PlayerHand, game.DefaultHandSize)
	assert.Equal(t, game.DefaultHandSize, msg.Snapshot.ComputerHandSize)
}

func TestDrawOverWebsocket(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dial(t, ts)
	start := readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeDraw}))

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeState, msg.Type)
	assert.Equal(t, host.EventDraw, msg.Event)
	require.Len(t, msg.Effects, 1)
	assert.Equal(t, game.EffectDraw, msg.Effects[0].Kind)
	assert.Len(t, msg.Snapshot.PlayerHand, len(start.Snapshot.PlayerHand)+1)
	assert.Equal(t, game.ComputerThinking, msg.Snapshot.Phase)
}

func TestRejectedMessages(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dial(t, ts)
	readMessage(t, conn)

	tests := []struct {
		name string
		msg  ClientMessage
		code string
	}{
		{name: "unknown type", msg: ClientMessage{Type: "dance"}, code: "invalid_message"},
		{name: "play without card", msg: ClientMessage{Type: MessageTypePlay}, code: "invalid_message"},
		{name: "card not held", msg: ClientMessage{Type: MessageTypePlay, CardID: "purple-1-1"}, code: "illegal_move"},
		{name: "bad color", msg: ClientMessage{Type: MessageTypeChooseColor, Color: "wild"}, code: "invalid_color"},
		{name: "no pending wild", msg: ClientMessage{Type: MessageTypeChooseColor, Color: "red"}, code: "no_pending_wild"},
		{name: "pass with deck", msg: ClientMessage{Type: MessageTypePass}, code: "illegal_move"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, conn.WriteJSON(tt.msg))
			msg := readMessage(t, conn)
			assert.Equal(t, MessageTypeError, msg.Type)
			assert.Equal(t, tt.code, msg.Code)
			assert.NotEmpty(t, msg.Error)
			assert.Nil(t, msg.Snapshot)
		})
	}
}

func TestRestartOverWebsocket(t *testing.T) {
	_, ts := startTestServer(t)
	conn := dial(t, ts)
	first := readMessage(t, conn)

	require.NoError(t, conn.WriteJSON(ClientMessage{Type: MessageTypeStart}))
	msg := readMessage(t, conn)
	assert.Equal(t, host.EventStart, msg.Event)
	assert.NotEqual(t, first.GameID, msg.GameID)
}

func TestConnectionsAreTracked(t *testing.T) {
	srv, ts := startTestServer(t)
	conn := dial(t, ts)
	readMessage(t, conn)
	assert.Equal(t, 1, srv.ConnectionCount())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return srv.ConnectionCount() == 0 }, 5*time.Second, 10*time.Millisecond)
}
