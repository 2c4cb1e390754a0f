package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrNoMove is returned when the bot is asked to move on a finished board.
var ErrNoMove = errors.New("bot has no move")

// Source feeds the bot's moves to a session.
// It implements the player.MoveSource interface.
type Source struct {
	calc       *MoveCalculator
	mark       game.Cell
	thinkDelay time.Duration
}

// NewSource creates a move source that plays mark.
func NewSource(calc *MoveCalculator, mark game.Cell, thinkDelay time.Duration) *Source {
	return &Source{
		calc:       calc,
		mark:       mark,
		thinkDelay: thinkDelay,
	}
}

// NextMove computes the bot's move and then waits out the think delay.
func (s *Source) NextMove(ctx context.Context, board *game.Board) (game.Move, error) {
	move := s.calc.CalculateNextMove(ctx, board, s.mark)
	if move == game.NoMove {
		return game.NoMove, ErrNoMove
	}

	if s.thinkDelay > 0 {
		slog.DebugContext(ctx, "Bot is thinking...", "delay", s.thinkDelay)
		timer := time.NewTimer(s.thinkDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return game.NoMove, ctx.Err()
		}
	}
	return move, nil
}

// NewBotPlayer creates a new player instance that is a bot.
func NewBotPlayer(calc *MoveCalculator, mark game.Cell, thinkDelay time.Duration) *player.Player {
	p := player.NewPlayer("Computer", mark, NewSource(calc, mark, thinkDelay))
	p.ID = "bot-" + uuid.New().String()[:8]
	p.IsBot = true
	return p
}
