package player

import (
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlayer(t *testing.T) {
	p := NewPlayer("Human", game.PlayerMin, nil)

	if _, err := uuid.Parse(p.ID); err != nil {
		t.Errorf("Expected a uuid player ID, got %q: %v", p.ID, err)
	}
	if p.Name != "Human" {
		t.Errorf("Expected name Human, got %s", p.Name)
	}
	if p.Mark != game.PlayerMin {
		t.Errorf("Expected mark %v, got %v", game.PlayerMin, p.Mark)
	}
	if p.IsBot {
		t.Error("Expected new player not to be a bot")
	}

	other := NewPlayer("Human", game.PlayerMin, nil)
	if other.ID == p.ID {
		t.Error("Expected distinct IDs for distinct players")
	}
}
