// Package game provides the board and turn rules for Connect Four.
package game

import (
	"fmt"

	"github.com/google/uuid"
)

// Status represents where a game is in its lifecycle.
type Status string

// Set of game statuses. Won and tied are terminal.
const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusTied       Status = "tied"
)

type lastMove struct {
	row    int
	column int
	player Player
}

type options struct {
	height int
	width  int
	notify Notifiers
}

// Option configures a game at construction.
type Option func(*options)

// WithSize sets the board dimensions.
func WithSize(height int, width int) Option {
	return func(o *options) {
		o.height = height
		o.width = width
	}
}

// WithNotifier adds a notifier that receives the game's state changes.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notify = append(o.notify, n)
	}
}

// Game owns the turn order and lifecycle of a single match.
type Game struct {
	id       uuid.UUID
	board    *Board
	players  [2]Player
	active   int
	status   Status
	winner   Player
	line     Line
	lastMove lastMove
	moves    int
	notify   Notifiers
}

// New constructs a game between two players. The first player moves first.
func New(p1 Player, p2 Player, opts ...Option) (*Game, error) {
	o := options{
		height: DefaultHeight,
		width:  DefaultWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if p1.IsZero() || p2.IsZero() {
		return nil, ErrEmptyName
	}

	if p1.Equal(p2) {
		return nil, fmt.Errorf("%w: both are %s", ErrSamePlayer, p1)
	}

	board, err := NewBoard(o.height, o.width)
	if err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}

	g := Game{
		id:      uuid.New(),
		board:   board,
		players: [2]Player{p1, p2},
		status:  StatusInProgress,
		lastMove: lastMove{
			row:    -1,
			column: -1,
		},
		notify: o.notify,
	}

	return &g, nil
}

// PlayTurn drops the active player's piece into the column. Moves after the
// game has ended, into a column that does not exist, or into a full column
// are ignored. It reports whether the move was played.
func (g *Game) PlayTurn(column int) bool {
	if g.status != StatusInProgress {
		return false
	}

	if column < 0 || column >= g.board.Width() {
		return false
	}

	row, ok := g.board.Drop(column)
	if !ok {
		return false
	}

	player := g.players[g.active]
	if err := g.board.Occupy(row, column, player); err != nil {
		return false
	}

	g.moves++
	g.lastMove = lastMove{
		row:    row,
		column: column,
		player: player,
	}

	g.notify.PiecePlaced(row, column, player)

	// A move that completes four and fills the board is a win.
	if line, won := g.board.FindLine(player); won {
		g.status = StatusWon
		g.winner = player
		g.line = line
		g.notify.GameEnded(Result{
			Winner: player,
			Line:   line,
			Board:  g.Snapshot(),
		})
		return true
	}

	if g.board.IsFull() {
		g.status = StatusTied
		g.notify.GameEnded(Result{
			Tied:  true,
			Board: g.Snapshot(),
		})
		return true
	}

	g.active = 1 - g.active

	return true
}

// ID returns the unique id of the game.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Status returns the current status of the game.
func (g *Game) Status() Status {
	return g.status
}

// IsOver reports whether the game reached a terminal status.
func (g *Game) IsOver() bool {
	return g.status != StatusInProgress
}

// Winner returns the winning player, if there is one.
func (g *Game) Winner() (Player, bool) {
	return g.winner, g.status == StatusWon
}

// Active returns the player whose turn it is. After the game ends this is
// the player who made the last move.
func (g *Game) Active() Player {
	return g.players[g.active]
}

// Players returns both players in turn order.
func (g *Game) Players() [2]Player {
	return g.players
}

// Moves returns the number of pieces played.
func (g *Game) Moves() int {
	return g.moves
}
