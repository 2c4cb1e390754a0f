package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/bot"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsQuit(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "end of input", err: player.ErrQuit, want: true},
		{name: "interrupt", err: context.Canceled, want: true},
		{name: "wrapped interrupt", err: fmt.Errorf("turn 1: %w", context.Canceled), want: true},
		{name: "other", err: game.ErrInvalidMove, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isQuit(tt.err))
		})
	}
}

func TestSeatPlayers(t *testing.T) {
	cfg := config.Default()
	cfg.ThinkDelay = 0
	con := console.New(strings.NewReader("x\nn\n"), io.Discard, false, false)

	first, second, err := seatPlayers(context.Background(), con, bot.NewMoveCalculator(), cfg)
	require.NoError(t, err)
	assert.True(t, first.IsBot)
	assert.Equal(t, game.PlayerMax, first.Mark)
	assert.False(t, second.IsBot)
	assert.Equal(t, game.PlayerMin, second.Mark)
}

func TestSeatPlayers_InterruptWhileWaiting(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { w.Close() })
	con := console.New(r, io.Discard, false, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := seatPlayers(ctx, con, bot.NewMoveCalculator(), config.Default())
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.True(t, isQuit(err), "got %v", err)
	case <-time.After(time.Second):
		t.Fatal("seatPlayers did not return after the interrupt")
	}
}
