// Package logger provides the application logger and a journal of game events.
package logger

import (
	"fmt"

	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"go.uber.org/zap"
)

// New constructs a production logger that writes to the file at path. The
// terminal belongs to the game board, so nothing is written to stdout or
// stderr. An empty path returns a logger that discards everything.
func New(path string, debug bool) (*zap.SugaredLogger, error) {
	if path == "" {
		return zap.NewNop().Sugar(), nil
	}

	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.DisableStacktrace = true

	if debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	log, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return log.Sugar(), nil
}

// =============================================================================

// GameEvents writes the state changes of a game to the log. It implements the
// game.Notifier interface.
type GameEvents struct {
	log *zap.SugaredLogger
}

// NewGameEvents constructs a journal of game events.
func NewGameEvents(log *zap.SugaredLogger) *GameEvents {
	return &GameEvents{
		log: log,
	}
}

// PiecePlaced implements the game.Notifier interface.
func (ge *GameEvents) PiecePlaced(row int, column int, player game.Player) {
	ge.log.Debugw("piece placed", "row", row, "column", column, "player", player.String())
}

// GameEnded implements the game.Notifier interface.
func (ge *GameEvents) GameEnded(result game.Result) {
	s := result.Board

	switch {
	case result.Tied:
		ge.log.Infow("game ended", "game_id", s.GameID, "result", string(game.StatusTied), "moves", s.Moves, "board", s.String())

	default:
		ge.log.Infow("game ended", "game_id", s.GameID, "result", string(game.StatusWon), "winner", result.Winner.String(), "moves", s.Moves, "board", s.String())
	}
}
