package tui

import (
	"testing"

	"github.com/lox/uno-cli/internal/game"
	"github.com/lox/uno-cli/uno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		phase   game.Phase
		want    command
		wantErr bool
	}{
		{input: "3", want: command{kind: cmdPlay, index: 3}},
		{input: "play 2", want: command{kind: cmdPlay, index: 2}},
		{input: "p red-5-1", want: command{kind: cmdPlay, cardID: "red-5-1"}},
		{input: "wild4-0", want: command{kind: cmdPlay, cardID: "wild4-0"}},
		{input: "draw", want: command{kind: cmdDraw}},
		{input: "D", want: command{kind: cmdDraw}},
		{input: "color green", want: command{kind: cmdColor, color: uno.Green}},
		{input: "c y", want: command{kind: cmdColor, color: uno.Yellow}},
		{input: "blue", phase: game.AwaitingColorChoice, want: command{kind: cmdColor, color: uno.Blue}},
		{input: "pass", want: command{kind: cmdPass}},
		{input: "new", want: command{kind: cmdNew}},
		{input: "quit", want: command{kind: cmdQuit}},
		{input: "?", want: command{kind: cmdHelp}},
		{input: "", wantErr: true},
		{input: "0", wantErr: true},
		{input: "blue", phase: game.AwaitingPlayerMove, wantErr: true},
		{input: "color wild", wantErr: true},
		{input: "play", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseCommand(tt.input, tt.phase)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveCard(t *testing.T) {
	hand := []uno.Card{uno.NewCard(uno.Red, uno.One, 1), uno.NewCard(uno.Blue, uno.Two, 1)}

	id, err := resolveCard(command{kind: cmdPlay, index: 2}, hand)
	require.NoError(t, err)
	assert.Equal(t, uno.CardID("blue-2-1"), id)

	id, err = resolveCard(command{kind: cmdPlay, cardID: "green-3-1"}, hand)
	require.NoError(t, err)
	assert.Equal(t, uno.CardID("green-3-1"), id)

	_, err = resolveCard(command{kind: cmdPlay, index: 3}, hand)
	assert.Error(t, err)
}
