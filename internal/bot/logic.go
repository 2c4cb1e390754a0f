package bot

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/search"
	"log/slog"
	"math/rand/v2"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/Tic-Tac-Toe-CLI/internal/bot"

var tracer = otel.Tracer(instrumentationName)

const (
	strategyOpening = "opening"
	strategyMinimax = "minimax"
)

// MoveCalculator chooses the computer's moves: a random cell on an empty
// board, a full minimax search otherwise.
type MoveCalculator struct {
	intn           func(n int) int
	moves          metric.Int64Counter
	searchDuration metric.Float64Histogram
}

// NewMoveCalculator creates a MoveCalculator reporting to the global meter provider.
func NewMoveCalculator() *MoveCalculator {
	meter := otel.Meter(instrumentationName)

	moves, err := meter.Int64Counter("bot.moves",
		metric.WithDescription("Moves chosen by the bot"),
		metric.WithUnit("{move}"),
	)
	if err != nil {
		otel.Handle(err)
		moves = noop.Int64Counter{}
	}

	searchDuration, err := meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Time spent in the minimax search"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		otel.Handle(err)
		searchDuration = noop.Float64Histogram{}
	}

	return &MoveCalculator{
		intn:           rand.IntN,
		moves:          moves,
		searchDuration: searchDuration,
	}
}

// CalculateNextMove returns the move for mark, or game.NoMove when the game is over.
func (c *MoveCalculator) CalculateNextMove(ctx context.Context, board *game.Board, mark game.Cell) game.Move {
	ctx, span := tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("bot.mark", mark.String()),
		attribute.String("game.board", board.String()),
	))
	defer span.End()

	cells := board.EmptyCells()
	if len(cells) == 0 || board.IsTerminal() {
		return game.NoMove
	}

	var move game.Move
	strategy := strategyMinimax
	if len(cells) == game.Size*game.Size {
		// Every opening draws under perfect play, so don't bother searching.
		strategy = strategyOpening
		move = cells[c.intn(len(cells))]
	} else {
		start := time.Now()
		res := search.Minimax(board, len(cells), mark)
		elapsed := float64(time.Since(start).Microseconds()) / 1000

		c.searchDuration.Record(ctx, elapsed, metric.WithAttributes(attribute.Int("search.depth", len(cells))))
		span.SetAttributes(
			attribute.Int("search.depth", len(cells)),
			attribute.Int("search.score", res.Score),
		)
		move = res.Move
	}

	c.moves.Add(ctx, 1, metric.WithAttributes(attribute.String("bot.strategy", strategy)))
	span.SetAttributes(
		attribute.String("bot.strategy", strategy),
		attribute.Int("move.row", move.Row),
		attribute.Int("move.col", move.Col),
	)
	slog.DebugContext(ctx, "Bot chose move", "strategy", strategy, "row", move.Row, "col", move.Col)
	return move
}
