package game

import "errors"

// Default board dimensions.
const (
	DefaultHeight = 6
	DefaultWidth  = 7
)

// connect is the number of pieces in a row needed to win.
const connect = 4

// Set of errors returned by the game package.
var (
	ErrInvalidSize  = errors.New("board height and width must be positive")
	ErrEmptyName    = errors.New("player name is empty")
	ErrSamePlayer   = errors.New("players must be distinct")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrCellOccupied = errors.New("cell is already occupied")
)

// Position identifies a cell on the board. Row 0 is the top row.
type Position struct {
	Row    int
	Column int
}

// Line is a four-in-a-row on the board.
type Line [connect]Position

// directions holds the row and column step for the four kinds of line:
// horizontal, vertical, down-right and down-left.
var directions = [...][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// Board is the grid of cells for a single game. A cell holds the zero Player
// when it is empty. Once a cell is occupied it never changes.
type Board struct {
	height int
	width  int
	cells  [][]Player
}

// NewBoard constructs an empty board with the given dimensions.
func NewBoard(height int, width int) (*Board, error) {
	if height <= 0 || width <= 0 {
		return nil, ErrInvalidSize
	}

	cells := make([][]Player, height)
	for row := range cells {
		cells[row] = make([]Player, width)
	}

	b := Board{
		height: height,
		width:  width,
		cells:  cells,
	}

	return &b, nil
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// At returns the player occupying the cell, or the zero Player if the cell is
// empty or out of bounds.
func (b *Board) At(row int, column int) Player {
	if !b.inBounds(row, column) {
		return Player{}
	}

	return b.cells[row][column]
}

// Drop finds the lowest empty row in the column. It returns false when the
// column is full or does not exist. The board is not changed; the caller
// commits the piece with Occupy.
func (b *Board) Drop(column int) (int, bool) {
	if column < 0 || column >= b.width {
		return -1, false
	}

	// Walk the column from the bottom up.
	for row := b.height - 1; row >= 0; row-- {
		if b.cells[row][column].IsZero() {
			return row, true
		}
	}

	return -1, false
}

// Occupy records that the player holds the cell.
func (b *Board) Occupy(row int, column int, player Player) error {
	switch {
	case player.IsZero():
		return ErrEmptyName
	case !b.inBounds(row, column):
		return ErrOutOfBounds
	case !b.cells[row][column].IsZero():
		return ErrCellOccupied
	}

	b.cells[row][column] = player

	return nil
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell.IsZero() {
				return false
			}
		}
	}

	return true
}

// CheckWinFrom reports whether the player has four in a row anywhere on the
// board.
func (b *Board) CheckWinFrom(player Player) bool {
	_, found := b.FindLine(player)
	return found
}

// FindLine scans every cell as a possible start of a line in each direction
// and returns the first four-in-a-row held by the player.
func (b *Board) FindLine(player Player) (Line, bool) {
	if player.IsZero() {
		return Line{}, false
	}

	for row := 0; row < b.height; row++ {
		for col := 0; col < b.width; col++ {
			for _, dir := range directions {
				if line, ok := b.lineFrom(row, col, dir, player); ok {
					return line, true
				}
			}
		}
	}

	return Line{}, false
}

// lineFrom checks the four cells starting at (row, col) in the direction.
func (b *Board) lineFrom(row int, col int, dir [2]int, player Player) (Line, bool) {
	var line Line

	for i := range line {
		r := row + dir[0]*i
		c := col + dir[1]*i

		if !b.inBounds(r, c) || !b.cells[r][c].Equal(player) {
			return Line{}, false
		}

		line[i] = Position{Row: r, Column: c}
	}

	return line, true
}

func (b *Board) inBounds(row int, column int) bool {
	return row >= 0 && row < b.height && column >= 0 && column < b.width
}
