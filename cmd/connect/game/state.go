package game

import "strings"

// Cell represents a cell in the game board.
type Cell struct {
	HasPiece bool
	Player   Player
}

// LastMove represents the last move in the game. Row and Column are -1 before
// the first move.
type LastMove struct {
	Row    int
	Column int
	Player Player
}

// Snapshot represent the state of the game for any UI to display. It is a
// copy and does not change as the game continues.
type Snapshot struct {
	GameID   string
	Height   int
	Width    int
	Cells    [][]Cell
	Players  [2]Player
	Active   Player
	Status   Status
	Winner   Player
	Line     Line
	LastMove LastMove
	Moves    int
}

// Snapshot captures the current state of the game.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]Cell, g.board.Height())
	for r := range cells {
		cells[r] = make([]Cell, g.board.Width())
		for c := range cells[r] {
			p := g.board.At(r, c)
			cells[r][c] = Cell{HasPiece: !p.IsZero(), Player: p}
		}
	}

	return Snapshot{
		GameID:  g.id.String(),
		Height:  g.board.Height(),
		Width:   g.board.Width(),
		Cells:   cells,
		Players: g.players,
		Active:  g.Active(),
		Status:  g.status,
		Winner:  g.winner,
		Line:    g.line,
		LastMove: LastMove{
			Row:    g.lastMove.row,
			Column: g.lastMove.column,
			Player: g.lastMove.player,
		},
		Moves: g.moves,
	}
}

// Seat returns 1 or 2 for the players in turn order and 0 for anyone else.
func (s Snapshot) Seat(p Player) int {
	switch {
	case p.IsZero():
		return 0
	case p.Equal(s.Players[0]):
		return 1
	case p.Equal(s.Players[1]):
		return 2
	}

	return 0
}

// String converts the board into a text representation. The first player is
// shown as X, the second as O and empty cells as a dot.
func (s Snapshot) String() string {
	var data strings.Builder

	for _, row := range s.Cells {
		data.WriteString("|")
		for _, cell := range row {
			switch s.Seat(cell.Player) {
			case 1:
				data.WriteString("X|")
			case 2:
				data.WriteString("O|")
			default:
				data.WriteString(".|")
			}
		}
		data.WriteString("\n")
	}

	return data.String()
}
