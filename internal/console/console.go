// Package console is the text interface: prompts, the human move source and
// the board renderer.
package console

import (
	"bufio"
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"ctchen222/Tic-Tac-Toe-CLI/internal/validator"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/logrusorgru/aurora"
)

const (
	clearScreen = "\x1b[H\x1b[2J"
	separator   = "---------------"
)

// seat is how a mark is shown on screen.
type seat struct {
	name   string
	symbol string
}

// inputLine is one line read from the terminal, or the error that ended input.
type inputLine struct {
	text string
	err  error
}

// Console talks to the person at the terminal.
type Console struct {
	in    *bufio.Scanner
	lines chan inputLine
	once  sync.Once
	out   io.Writer
	au    aurora.Aurora
	clear bool
	human game.Cell
	seats map[game.Cell]seat
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer, color, clear bool) *Console {
	return &Console{
		in:    bufio.NewScanner(in),
		lines: make(chan inputLine),
		out:   out,
		au:    aurora.NewAurora(color),
		clear: clear,
		human: game.Empty,
		seats: make(map[game.Cell]seat, 2),
	}
}

// Seat registers the name and symbol shown for mark.
func (c *Console) Seat(mark game.Cell, name, symbol string) {
	c.seats[mark] = seat{name: name, symbol: symbol}
}

// SetHuman tells the console which mark the person at the terminal plays,
// so the result can be announced from their side.
func (c *Console) SetHuman(mark game.Cell) {
	c.human = mark
}

// ChooseSymbol asks the human for X or O.
func (c *Console) ChooseSymbol(ctx context.Context) (string, error) {
	for {
		c.printf("\nChoose X or O\nChosen: ")
		line, err := c.readLine(ctx)
		if err != nil {
			return "", err
		}
		choice := strings.ToUpper(line)
		if validator.Var(choice, "oneof=X O") == nil {
			return choice, nil
		}
	}
}

// ChooseFirst asks whether the human wants to move first.
func (c *Console) ChooseFirst(ctx context.Context) (bool, error) {
	c.Clear()
	for {
		c.printf("First to start?[y/n]: ")
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		choice := strings.ToUpper(line)
		if validator.Var(choice, "oneof=Y N") == nil {
			return choice == "Y", nil
		}
	}
}

// Clear wipes the terminal when clearing is enabled.
func (c *Console) Clear() {
	if c.clear {
		c.printf(clearScreen)
	}
}

// Bye is printed when the human leaves.
func (c *Console) Bye() {
	c.printf("Bye\n")
}

// Render shows whose turn it is and the board.
func (c *Console) Render(board *game.Board, next *player.Player) {
	c.Clear()
	if next != nil {
		c.header(next.Mark)
	}
	c.grid(board)
}

// BadMove reports a move on an occupied or invalid cell.
func (c *Console) BadMove(*player.Player, game.Move) {
	c.printf("Bad move\n")
}

// Finish shows the final board and the result.
func (c *Console) Finish(board *game.Board, winner game.Cell) {
	c.Clear()
	if winner != game.Empty {
		c.header(winner)
	}
	c.grid(board)

	switch {
	case winner == game.Empty:
		c.printf("%s\n", c.au.Yellow("DRAW!"))
	case c.human == game.Empty:
		c.printf("%s\n", c.au.Bold(c.seats[winner].symbol+" WINS!"))
	case winner == c.human:
		c.printf("%s\n", c.au.Green("YOU WIN!"))
	default:
		c.printf("%s\n", c.au.Red("YOU LOSE!"))
	}
}

func (c *Console) header(mark game.Cell) {
	s := c.seats[mark]
	c.printf("%s turn [%s]\n", s.name, s.symbol)
}

func (c *Console) grid(board *game.Board) {
	c.printf("\n%s\n", separator)
	for r := range game.Size {
		for col := range game.Size {
			c.printf("| %s |", c.symbol(board[r][col]))
		}
		c.printf("\n%s\n", separator)
	}
}

func (c *Console) symbol(cell game.Cell) string {
	if cell == game.Empty {
		return " "
	}
	s := c.seats[cell].symbol
	if cell == c.human {
		return c.au.Cyan(s).String()
	}
	return c.au.Magenta(s).String()
}

// readLine returns the next input line, or ctx's error as soon as ctx is
// done even while the terminal read is still blocked.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			return "", player.ErrQuit
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// scan feeds c.lines until input ends. The terminal read cannot be
// interrupted, so a pending read outlives a cancelled prompt.
func (c *Console) scan() {
	for c.in.Scan() {
		c.lines <- inputLine{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
	}
	close(c.lines)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// HumanSource reads the human's moves from the console.
// It implements the player.MoveSource interface.
type HumanSource struct {
	c *Console
}

// HumanSource returns the move source for the person at the terminal.
func (c *Console) HumanSource() *HumanSource {
	return &HumanSource{c: c}
}

// NextMove prompts until a numpad key between 1 and 9 is entered.
// Whether the cell is free is up to the session.
func (h *HumanSource) NextMove(ctx context.Context, _ *game.Board) (game.Move, error) {
	for {
		h.c.printf("Use numpad (1..9): ")
		line, err := h.c.readLine(ctx)
		if err != nil {
			return game.NoMove, err
		}
		key, err := strconv.Atoi(line)
		if err != nil || validator.Var(key, "min=1,max=9") != nil {
			h.c.printf("Bad choice\n")
			continue
		}
		return NumpadMove(key), nil
	}
}

// NumpadMove maps keys 1..9 onto the board row by row.
func NumpadMove(key int) game.Move {
	return game.Move{Row: (key - 1) / game.Size, Col: (key - 1) % game.Size}
}
