package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/board"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/config"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/logger"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/picture"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string) error {

	// -------------------------------------------------------------------------
	// Load the configuration.

	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	// -------------------------------------------------------------------------
	// Construct the logger. The terminal belongs to the board so logs go to
	// a file.

	log, err := logger.New(cfg.LogFile, cfg.Debug)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	log.Infow("startup", "height", cfg.Height, "width", cfg.Width, "player1", cfg.Player1, "player2", cfg.Player2)

	// -------------------------------------------------------------------------
	// Construct the players.

	p1, err := game.NewPlayer(cfg.Player1)
	if err != nil {
		return fmt.Errorf("player1: %w", err)
	}

	p2, err := game.NewPlayer(cfg.Player2)
	if err != nil {
		return fmt.Errorf("player2: %w", err)
	}

	// -------------------------------------------------------------------------
	// Collect everything that wants to hear about the game besides the board.

	notify := game.Notifiers{logger.NewGameEvents(log)}

	if cfg.PictureDir != "" {
		notify = append(notify, picture.NewWriter(log, cfg.PictureDir))
	}

	// -------------------------------------------------------------------------
	// Create the board and initialize the display

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}

	boardCfg := board.Config{
		Height:    cfg.Height,
		Width:     cfg.Width,
		Players:   [2]game.Player{p1, p2},
		Animate:   cfg.Animate,
		DropDelay: cfg.DropDelay,
	}

	b, err := board.New(log, screen, boardCfg, notify)
	if err != nil {
		return fmt.Errorf("new board: %w", err)
	}
	defer b.Shutdown()

	// -------------------------------------------------------------------------
	// Start handling board input

	<-b.Run()

	log.Infow("shutdown")

	return nil
}
