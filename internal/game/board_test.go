package game

import (
	"testing"
)

const (
	X = PlayerMax
	O = PlayerMin
	E = Empty
)

func TestIsWinner(t *testing.T) {
	tests := []struct {
		name   string
		board  Board
		player Cell
		want   bool
	}{
		{name: "row 0", board: Board{{X, X, X}, {O, O, E}, {E, E, E}}, player: X, want: true},
		{name: "row 1", board: Board{{X, X, E}, {O, O, O}, {X, E, E}}, player: O, want: true},
		{name: "row 2", board: Board{{O, O, E}, {E, E, E}, {X, X, X}}, player: X, want: true},
		{name: "col 0", board: Board{{O, X, E}, {O, X, E}, {O, E, X}}, player: O, want: true},
		{name: "col 1", board: Board{{O, X, E}, {E, X, O}, {E, X, E}}, player: X, want: true},
		{name: "col 2", board: Board{{X, X, O}, {E, E, O}, {X, E, O}}, player: O, want: true},
		{name: "main diagonal", board: Board{{X, O, E}, {E, X, O}, {E, E, X}}, player: X, want: true},
		{name: "anti-diagonal", board: Board{{X, X, O}, {E, O, E}, {O, E, X}}, player: O, want: true},
		{name: "other player holds the line", board: Board{{X, X, X}, {O, O, E}, {E, E, E}}, player: O, want: false},
		{name: "empty board", board: Board{}, player: X, want: false},
		{name: "full board without three in a row", board: Board{{X, O, X}, {X, O, O}, {O, X, X}}, player: X, want: false},
		{name: "full board without three in a row for O", board: Board{{X, O, X}, {X, O, O}, {O, X, X}}, player: O, want: false},
		{name: "Empty never wins", board: Board{}, player: Empty, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsWinner(tt.player); got != tt.want {
				t.Errorf("IsWinner(%v) on %s = %v, want %v", tt.player, tt.board.String(), got, tt.want)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	t.Run("Empty board is row-major", func(t *testing.T) {
		b := Board{}
		got := b.EmptyCells()
		if len(got) != 9 {
			t.Fatalf("expected 9 empty cells, got %d", len(got))
		}
		i := 0
		for r := range Size {
			for c := range Size {
				if got[i] != (Move{Row: r, Col: c}) {
					t.Errorf("cell %d = %+v, want {%d %d}", i, got[i], r, c)
				}
				i++
			}
		}
	})

	t.Run("Partial board", func(t *testing.T) {
		b := Board{{X, E, O}, {E, X, E}, {O, E, E}}
		want := []Move{{0, 1}, {1, 0}, {1, 2}, {2, 1}, {2, 2}}
		got := b.EmptyCells()
		if len(got) != len(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("cell %d = %+v, want %+v", i, got[i], want[i])
			}
		}
	})

	t.Run("Full board", func(t *testing.T) {
		b := Board{{X, O, X}, {X, O, O}, {O, X, X}}
		if got := b.EmptyCells(); len(got) != 0 {
			t.Errorf("expected no empty cells, got %v", got)
		}
	})
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  bool
	}{
		{name: "empty board", board: Board{}, want: false},
		{name: "X won", board: Board{{X, X, X}, {O, O, E}, {E, E, E}}, want: true},
		{name: "O won", board: Board{{X, X, O}, {X, O, E}, {O, E, E}}, want: true},
		// A drawn full board is only caught by IsFull / empty-cell exhaustion.
		{name: "full board draw is not terminal", board: Board{{X, O, X}, {X, O, O}, {O, X, X}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.IsTerminal(); got != tt.want {
				t.Errorf("IsTerminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFull(t *testing.T) {
	full := Board{{X, O, X}, {X, O, O}, {O, X, X}}
	if !full.IsFull() {
		t.Error("expected full board to be full")
	}
	partial := Board{{X, O, X}, {X, O, O}, {O, X, E}}
	if partial.IsFull() {
		t.Error("expected board with an empty cell not to be full")
	}
}

func TestSetMove(t *testing.T) {
	t.Run("Empty cell", func(t *testing.T) {
		b := Board{}
		if !b.SetMove(Move{Row: 1, Col: 2}, O) {
			t.Fatal("expected SetMove to succeed on an empty cell")
		}
		if b[1][2] != O {
			t.Errorf("expected cell (1,2) to be %v, got %v", O, b[1][2])
		}
	})

	t.Run("Occupied cell", func(t *testing.T) {
		b := Board{{X, E, E}, {E, E, E}, {E, E, E}}
		before := b
		if b.SetMove(Move{Row: 0, Col: 0}, O) {
			t.Fatal("expected SetMove to fail on an occupied cell")
		}
		if b != before {
			t.Errorf("board changed after failed SetMove: %s", b.String())
		}
	})

	t.Run("Out of range", func(t *testing.T) {
		b := Board{}
		for _, m := range []Move{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, NoMove} {
			if b.SetMove(m, X) {
				t.Errorf("expected SetMove(%+v) to fail", m)
			}
		}
		if b != (Board{}) {
			t.Errorf("board changed after out-of-range SetMove: %s", b.String())
		}
	})
}

func TestUnset(t *testing.T) {
	b := Board{}
	m := Move{Row: 2, Col: 0}
	b.SetMove(m, X)
	b.Unset(m)
	if b != (Board{}) {
		t.Errorf("expected empty board after Unset, got %s", b.String())
	}
	b.Unset(NoMove)
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		want  int
	}{
		{name: "max wins", board: Board{{X, X, X}, {O, O, E}, {E, E, E}}, want: ScoreMaxWins},
		{name: "min wins", board: Board{{X, X, O}, {X, O, E}, {O, E, E}}, want: ScoreMinWins},
		{name: "draw", board: Board{{X, O, X}, {X, O, O}, {O, X, X}}, want: ScoreDraw},
		{name: "in progress", board: Board{{X, E, E}, {E, O, E}, {E, E, E}}, want: ScoreDraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.board.Evaluate(); got != tt.want {
				t.Errorf("Evaluate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestOpponent(t *testing.T) {
	if PlayerMax.Opponent() != PlayerMin {
		t.Error("expected PlayerMin to oppose PlayerMax")
	}
	if PlayerMin.Opponent() != PlayerMax {
		t.Error("expected PlayerMax to oppose PlayerMin")
	}
	if Empty.Opponent() != Empty {
		t.Error("expected Empty to have no opponent")
	}
}

func TestBoardString(t *testing.T) {
	b := Board{{X, E, O}, {E, X, E}, {O, E, E}}
	if got, want := b.String(), "x.o/.x./o.."; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
