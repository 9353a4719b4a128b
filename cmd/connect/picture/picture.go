// Package picture draws game boards as PNG images.
package picture

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
)

/*
	|.|.|.|.|.|.|.|
	|.|.|.|.|.|.|.|
	|.|.|.|.|.|.|.|
	|.|.|.|O|.|.|.|
	|.|.|.|X|.|.|.|
	|X|.|.|X|O|.|.|

	Each cell is a circle spaced gap pixels apart, with a margin around the
	board. Empty cells are white holes in a navy board.
*/

const (
	margin = 20
	gap    = 25
	radius = 10
)

// seatColors are used when a player's name is not a colour name, or names
// the same colour as the other player.
var seatColors = [2]color.RGBA{
	colornames.Red,
	colornames.Gold,
}

// Render draws the board in the snapshot as a PNG. A winning line is ringed.
func Render(s game.Snapshot) ([]byte, error) {
	if s.Height <= 0 || s.Width <= 0 {
		return nil, errors.New("board has no cells")
	}

	width := 2*margin + gap*(s.Width-1)
	height := 2*margin + gap*(s.Height-1)

	dc := gg.NewContext(width, height)
	dc.SetColor(colornames.Navy)
	dc.Clear()

	for r, row := range s.Cells {
		for c, cell := range row {
			x, y := center(r, c)

			dc.SetColor(cellColor(s, cell))
			dc.DrawCircle(x, y, radius)
			dc.Fill()
		}
	}

	if s.Status == game.StatusWon {
		dc.SetColor(colornames.White)
		dc.SetLineWidth(3)

		for _, pos := range s.Line {
			x, y := center(pos.Row, pos.Column)
			dc.DrawCircle(x, y, radius+2)
			dc.Stroke()
		}
	}

	var b bytes.Buffer
	if err := dc.EncodePNG(&b); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	return b.Bytes(), nil
}

// PlayerColor returns the colour of the player's seat in the snapshot. The
// two seats never share a colour.
func PlayerColor(s game.Snapshot, p game.Player) color.RGBA {
	colors := assignColors(s.Players)

	if s.Seat(p) == 2 {
		return colors[1]
	}

	return colors[0]
}

// namedColor maps a player's name to a colour, so a player named "Dark
// Green" is drawn in dark green.
func namedColor(p game.Player) (color.RGBA, bool) {
	name := strings.ToLower(strings.ReplaceAll(p.String(), " ", ""))
	c, exists := colornames.Map[name]
	return c, exists
}

// assignColors picks a distinct colour for each seat. A seat without a named
// colour, or whose colour is already taken by the first seat, gets the first
// seat colour the other player is not using.
func assignColors(players [2]game.Player) [2]color.RGBA {
	first, ok1 := namedColor(players[0])
	second, ok2 := namedColor(players[1])

	if !ok1 {
		first = freeColor(second)
	}

	if !ok2 || second == first {
		second = freeColor(first)
	}

	return [2]color.RGBA{first, second}
}

func freeColor(taken color.RGBA) color.RGBA {
	for _, c := range seatColors {
		if c != taken {
			return c
		}
	}

	return seatColors[0]
}

func cellColor(s game.Snapshot, cell game.Cell) color.Color {
	if !cell.HasPiece {
		return colornames.White
	}

	return PlayerColor(s, cell.Player)
}

// center returns the pixel position of the centre of a cell.
func center(row int, column int) (float64, float64) {
	return float64(margin + gap*column), float64(margin + gap*row)
}

// =============================================================================

// Writer saves a picture of every finished game into a directory. It
// implements the game.Notifier interface.
type Writer struct {
	log *zap.SugaredLogger
	dir string
}

// NewWriter constructs a writer that saves pictures into dir.
func NewWriter(log *zap.SugaredLogger, dir string) *Writer {
	return &Writer{
		log: log,
		dir: dir,
	}
}

// PiecePlaced implements the game.Notifier interface. Only finished boards
// are drawn.
func (w *Writer) PiecePlaced(row int, column int, player game.Player) {}

// GameEnded implements the game.Notifier interface. A failure is logged and
// never affects the game.
func (w *Writer) GameEnded(result game.Result) {
	path, err := w.Save(result.Board)
	if err != nil {
		w.log.Errorw("save picture", "game_id", result.Board.GameID, "ERROR", err)
		return
	}

	w.log.Infow("save picture", "game_id", result.Board.GameID, "path", path)
}

// Save writes the board as <game id>.png and returns the file path.
func (w *Writer) Save(s game.Snapshot) (string, error) {
	data, err := Render(s)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}

	path := filepath.Join(w.dir, s.GameID+".png")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path, nil
}
