// Package session runs one game between two players.
package session

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-CLI/internal/session"

var tracer = otel.Tracer(instrumentationName)

// ErrInvalidPlayers is returned by NewSession when the two players don't hold
// opposite marks.
var ErrInvalidPlayers = errors.New("players must hold opposite marks")

// Renderer shows the game to the people playing it.
type Renderer interface {
	// Render is called before each turn with the player about to move.
	Render(board *game.Board, next *player.Player)
	// BadMove is called when a player picks an occupied or invalid cell.
	BadMove(p *player.Player, m game.Move)
	// Finish is called once with the final board; winner is Empty on a draw.
	Finish(board *game.Board, winner game.Cell)
}

// Session owns the board for the lifetime of one game.
type Session struct {
	ID       string
	game     *game.Game
	players  map[game.Cell]*player.Player
	renderer Renderer
}

// NewSession creates a session where first makes the opening move.
func NewSession(first, second *player.Player, renderer Renderer) (*Session, error) {
	if first == nil || second == nil || first.Mark == game.Empty || first.Mark.Opponent() != second.Mark {
		return nil, ErrInvalidPlayers
	}
	return &Session{
		ID:   uuid.New().String(),
		game: game.NewGame(first.Mark),
		players: map[game.Cell]*player.Player{
			first.Mark:  first,
			second.Mark: second,
		},
		renderer: renderer,
	}, nil
}

// Board returns the session's board.
func (s *Session) Board() *game.Board {
	return &s.game.Board
}

// Run plays turns until someone wins or the board is full and returns the
// winning mark, game.Empty for a draw.
func (s *Session) Run(ctx context.Context) (game.Cell, error) {
	ctx, span := tracer.Start(ctx, "session.Run", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("session.first", s.game.CurrentTurn.String()),
	))
	defer span.End()

	slog.InfoContext(ctx, "Session started", "session.id", s.ID, "first", s.game.CurrentTurn.String())

	for !s.game.IsOver() {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Session cancelled")
			return game.Empty, err
		}
		if err := s.playTurn(ctx); err != nil {
			slog.WarnContext(ctx, "Session aborted", "session.id", s.ID, "error", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "Session aborted")
			return game.Empty, err
		}
	}

	winner := s.game.Winner
	span.SetAttributes(attribute.String("session.winner", winner.String()))
	slog.InfoContext(ctx, "Session finished", "session.id", s.ID, "winner", winner.String(), "board", s.game.Board.String())

	s.renderer.Finish(&s.game.Board, winner)
	return winner, nil
}

// playTurn asks the current player for moves until one is accepted.
func (s *Session) playTurn(ctx context.Context) error {
	p := s.players[s.game.CurrentTurn]
	ctx, span := tracer.Start(ctx, "session.playTurn", trace.WithAttributes(
		attribute.String("session.id", s.ID),
		attribute.String("player.id", p.ID),
		attribute.String("player.mark", p.Mark.String()),
	))
	defer span.End()

	s.renderer.Render(&s.game.Board, p)

	for {
		// Sources get a copy so nothing they do can corrupt the game.
		snapshot := s.game.Board
		m, err := p.Source.NextMove(ctx, &snapshot)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "Player failed to move")
			return fmt.Errorf("player %s: %w", p.ID, err)
		}

		err = s.game.Move(m)
		switch {
		case err == nil:
			span.SetAttributes(attribute.Int("move.row", m.Row), attribute.Int("move.col", m.Col))
			slog.DebugContext(ctx, "Move applied", "session.id", s.ID, "player.id", p.ID, "row", m.Row, "col", m.Col)
			return nil
		case errors.Is(err, game.ErrCellOccupied), errors.Is(err, game.ErrInvalidMove):
			slog.InfoContext(ctx, "Move rejected", "session.id", s.ID, "player.id", p.ID, "row", m.Row, "col", m.Col, "error", err)
			if p.IsBot {
				return fmt.Errorf("bot %s picked %+v: %w", p.ID, m, err)
			}
			s.renderer.BadMove(p, m)
		default:
			return fmt.Errorf("failed to apply move: %w", err)
		}
	}
}
