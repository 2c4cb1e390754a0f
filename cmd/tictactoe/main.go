package main

import (
	"context"
	"ctchen222/Tic-Tac-Toe-CLI/internal/bot"
	"ctchen222/Tic-Tac-Toe-CLI/internal/config"
	"ctchen222/Tic-Tac-Toe-CLI/internal/console"
	"ctchen222/Tic-Tac-Toe-CLI/internal/game"
	"ctchen222/Tic-Tac-Toe-CLI/internal/logger"
	"ctchen222/Tic-Tac-Toe-CLI/internal/player"
	"ctchen222/Tic-Tac-Toe-CLI/internal/session"
	"ctchen222/Tic-Tac-Toe-CLI/internal/telemetry"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("tictactoe: %v", err)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// Initialize logging
	out, closeLog, err := logger.OpenOutput(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Init(out, cfg.SlogLevel())

	con := console.New(os.Stdin, os.Stdout, cfg.Color, cfg.ClearScreen)
	calc := bot.NewMoveCalculator()

	first, second, err := seatPlayers(ctx, con, calc, cfg)
	if isQuit(err) {
		con.Bye()
		return nil
	}
	if err != nil {
		return err
	}

	sess, err := session.NewSession(first, second, con)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "Starting game", "session.id", sess.ID, "self_play", cfg.SelfPlay)
	if _, err := sess.Run(ctx); err != nil {
		if isQuit(err) {
			con.Bye()
			return nil
		}
		return err
	}
	return nil
}

// isQuit reports whether err means the person left: end of input or an
// interrupt.
func isQuit(err error) bool {
	return errors.Is(err, player.ErrQuit) || errors.Is(err, context.Canceled)
}

// seatPlayers builds both players in move order. The computer always plays
// PlayerMax and the human PlayerMin; X and O are only labels.
func seatPlayers(ctx context.Context, con *console.Console, calc *bot.MoveCalculator, cfg *config.Config) (first, second *player.Player, err error) {
	if cfg.SelfPlay {
		con.Seat(game.PlayerMax, "Computer", "X")
		con.Seat(game.PlayerMin, "Computer", "O")
		return bot.NewBotPlayer(calc, game.PlayerMax, cfg.ThinkDelay),
			bot.NewBotPlayer(calc, game.PlayerMin, cfg.ThinkDelay),
			nil
	}

	con.Clear()
	humanSymbol, err := con.ChooseSymbol(ctx)
	if err != nil {
		return nil, nil, err
	}
	computerSymbol := "X"
	if humanSymbol == "X" {
		computerSymbol = "O"
	}

	humanFirst, err := con.ChooseFirst(ctx)
	if err != nil {
		return nil, nil, err
	}

	human := player.NewPlayer("Human", game.PlayerMin, con.HumanSource())
	computer := bot.NewBotPlayer(calc, game.PlayerMax, cfg.ThinkDelay)
	con.Seat(game.PlayerMin, human.Name, humanSymbol)
	con.Seat(game.PlayerMax, computer.Name, computerSymbol)
	con.SetHuman(game.PlayerMin)

	if humanFirst {
		return human, computer, nil
	}
	return computer, human, nil
}
