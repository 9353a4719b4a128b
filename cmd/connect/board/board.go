// Package board handles the terminal game board and all interactions.
package board

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

const (
	cellWidth  = 5
	cellHeight = 2
	padTop     = 4
	padLeft    = 1
)

const (
	hozTopRune = '━'
	hozBotRune = '▅'
	verRune    = '┃'
	pieceRune  = '●'
	lineRune   = '◆'
	space      = ' '
)

const (
	dirLeft  = "left"
	dirRight = "right"
)

// Config represents the settings for a terminal game board.
type Config struct {
	Height    int
	Width     int
	Players   [2]game.Player
	Animate   bool
	DropDelay time.Duration
}

// Board represents the terminal game board. It renders the game it owns and
// turns key presses into moves.
type Board struct {
	log           *zap.SugaredLogger
	screen        tcell.Screen
	style         tcell.Style
	cfg           Config
	colors        [2]tcell.Color
	notify        game.Notifier
	game          *game.Game
	inputCol      int
	lastWinner    game.Player
	lastWinnerMsg string
	gameOver      bool
	modalUp       bool
	modalMsg      string
}

// New contructs a game board on the screen and renders the first game. The
// notifier, which may be nil, receives every game's state changes after the
// board has drawn them.
func New(log *zap.SugaredLogger, screen tcell.Screen, cfg Config, notify game.Notifier) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		log:    log,
		screen: screen,
		style:  style,
		cfg:    cfg,
		colors: assignColors(cfg.Players),
		notify: notify,
	}

	if err := board.newGame(); err != nil {
		screen.Fini()
		return nil, err
	}

	return &board, nil
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events. The returned channel is
// closed when the player quits.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// PiecePlaced implements the game.Notifier interface. The piece falls from
// the top of the column to its row.
func (b *Board) PiecePlaced(row int, column int, player game.Player) {
	b.clearMarker()

	style := b.pieceStyle(player)
	for r := 0; r <= row; r++ {
		b.drawPiece(r, column, pieceRune, style)
		b.screen.Show()

		if r < row {
			if b.cfg.Animate {
				time.Sleep(b.cfg.DropDelay)
			}
			b.drawPiece(r, column, space, b.style)
		}
	}
}

// GameEnded implements the game.Notifier interface.
func (b *Board) GameEnded(result game.Result) {
	b.gameOver = true
	b.printTurn()

	switch {
	case result.Tied:
		b.lastWinnerMsg = "Tie Game"
		b.showWinner("Tie Game")

	default:
		b.lastWinner = result.Winner
		b.lastWinnerMsg = result.Winner.String()
		b.drawLine(result.Line, result.Winner)
		b.showWinner(fmt.Sprintf("The %s player has won", result.Winner))
	}
}

// =============================================================================

// newGame starts a fresh game. The last winner moves first.
func (b *Board) newGame() error {
	players := b.cfg.Players
	if !b.lastWinner.IsZero() && b.lastWinner.Equal(players[1]) {
		players[0], players[1] = players[1], players[0]
	}

	g, err := game.New(players[0], players[1],
		game.WithSize(b.cfg.Height, b.cfg.Width),
		game.WithNotifier(b),
		game.WithNotifier(b.notify),
	)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	b.game = g
	b.inputCol = b.cfg.Width / 2
	b.gameOver = false
	b.modalUp = false

	b.log.Infow("new game", "game_id", g.ID(), "first", players[0], "second", players[1])

	b.drawInit()

	return nil
}

// userTurn drops the active player's piece in the marker's column.
func (b *Board) userTurn() {
	if b.gameOver {
		return
	}

	if !b.game.PlayTurn(b.inputCol) {
		b.log.Debugw("move ignored", "game_id", b.game.ID(), "column", b.inputCol)
		b.screen.Beep()
		return
	}

	if !b.gameOver {
		b.drawMarker()
		b.printTurn()
	}

	b.screen.Show()
}

// selectColumn moves the marker straight to the column and drops the piece.
func (b *Board) selectColumn(column int) {
	if b.gameOver || column < 0 || column >= b.cfg.Width {
		b.screen.Beep()
		return
	}

	b.clearMarker()
	b.inputCol = column
	b.userTurn()
}

func (b *Board) movePlayerPiece(direction string) {
	if b.gameOver {
		return
	}

	if direction == dirLeft && b.inputCol == 0 {
		return
	}

	if direction == dirRight && b.inputCol == b.cfg.Width-1 {
		return
	}

	b.clearMarker()

	switch direction {
	case dirLeft:
		b.inputCol--
	case dirRight:
		b.inputCol++
	}

	b.drawMarker()
	b.screen.Show()
}

// redraw repaints the whole screen, keeping an open modal on top.
func (b *Board) redraw() {
	b.drawInit()

	if b.modalUp {
		b.showWinner(b.modalMsg)
	}
}

// closeModal closes the modal dialog box.
func (b *Board) closeModal() {
	b.modalUp = false

	b.drawInit()
}

// =============================================================================

func (b *Board) boardWidth() int {
	return b.cfg.Width*cellWidth + 1
}

func (b *Board) boardHeight() int {
	return b.cfg.Height * cellHeight
}

// cellPos returns the screen position of a piece in the cell.
func cellPos(row int, column int) (int, int) {
	return padLeft + 2 + cellWidth*column, padTop + 1 + cellHeight*row
}

func (b *Board) drawInit() {
	b.drawEmptyGameBoard()
	b.applyBoardState()
}

func (b *Board) drawEmptyGameBoard() {
	b.screen.Clear()

	width := b.boardWidth()
	height := b.boardHeight()

	style := b.style.Foreground(tcell.ColorGrey)

	for h := 0; h <= height; h++ {
		for w := 0; w < width; w++ {
			b.screen.SetContent(w+padLeft, h+padTop, space, nil, style)

			if h%cellHeight == 0 {
				b.screen.SetContent(w+padLeft, h+padTop, hozTopRune, nil, style)

				if h == height {
					b.screen.SetContent(w+padLeft, h+padTop, hozBotRune, nil, style)
				}
			}

			if w%cellWidth == 0 {
				b.screen.SetContent(w+padLeft, h+padTop, verRune, nil, style)
			}
		}
	}

	b.print(padLeft+2, 1, "Connect Four")

	for c := 0; c < b.cfg.Width; c++ {
		x, _ := cellPos(0, c)
		b.print(x, padTop+height+1, strconv.Itoa(c+1))
	}

	b.print(width+3, padTop-1, "<n> new game      <q> quit game")
	b.print(width+3, padTop, "<←/→> move  <space> drop  <1-9> column")
}

// applyBoardState draws the pieces and status of the current game without
// animation.
func (b *Board) applyBoardState() {
	s := b.game.Snapshot()

	for r, row := range s.Cells {
		for c, cell := range row {
			if cell.HasPiece {
				b.drawPiece(r, c, pieceRune, b.pieceStyle(cell.Player))
			}
		}
	}

	if s.Status == game.StatusWon {
		b.drawLine(s.Line, s.Winner)
	}

	b.printTurn()
	b.printPadded(b.boardWidth()+3, padTop+3, "Last Winner: "+b.lastWinnerMsg)

	if !b.gameOver {
		b.drawMarker()
	}

	b.screen.Show()
}

func (b *Board) printTurn() {
	msg := "Turn: " + b.game.Active().String()
	if b.gameOver {
		msg = "Turn: -"
	}

	b.printPadded(b.boardWidth()+3, padTop+2, msg)
}

// drawMarker shows the active player's piece above the marker's column.
func (b *Board) drawMarker() {
	x, _ := cellPos(0, b.inputCol)
	b.printStyle(x, padTop-1, string(pieceRune), b.pieceStyle(b.game.Active()))
}

func (b *Board) clearMarker() {
	x, _ := cellPos(0, b.inputCol)
	b.print(x, padTop-1, " ")
}

func (b *Board) drawPiece(row int, column int, r rune, style tcell.Style) {
	x, y := cellPos(row, column)
	b.screen.SetContent(x, y, r, nil, style)
}

// drawLine marks the pieces of a winning four-in-a-row.
func (b *Board) drawLine(line game.Line, winner game.Player) {
	style := b.pieceStyle(winner).Bold(true)
	for _, pos := range line {
		b.drawPiece(pos.Row, pos.Column, lineRune, style)
	}
}

// showWinner displays a modal dialog box over the board.
func (b *Board) showWinner(msg string) {
	b.modalUp = true
	b.modalMsg = msg

	b.screen.HideCursor()

	width := max(runewidth.StringWidth(msg)+6, 20)
	x := padLeft + max((b.boardWidth()-width)/2, 0)
	y := padTop + max(b.boardHeight()/2-2, 0)

	b.drawBox(x, y, x+width, y+5)
	b.print(x+(width-runewidth.StringWidth(msg))/2, y+2, msg)

	b.screen.Show()
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style.Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, space, nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}
}

func (b *Board) print(x, y int, str string) {
	b.printStyle(x, y, str, b.style)
}

// printPadded prints the string and blanks out what is left of a previous,
// longer message.
func (b *Board) printPadded(x, y int, str string) {
	const width = 32

	if n := runewidth.StringWidth(str); n < width {
		str += strings.Repeat(" ", width-n)
	}

	b.print(x, y, str)
}

func (b *Board) printStyle(x, y int, str string, style tcell.Style) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, style)
		x += w
	}
}
