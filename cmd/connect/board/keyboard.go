package board

import (
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
)

// pollEvents starts a goroutine to handle terminal events.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	go func() {
		defer close(quit)

		defer func() {
			if r := recover(); r != nil {
				b.log.Errorw("event loop panic", "panic", r, "stack", string(debug.Stack()))
			}
		}()

		for {
			event := b.screen.PollEvent()

			switch ev := event.(type) {
			case nil:
				// The screen was finalized.
				return

			case *tcell.EventResize:
				b.screen.Sync()
				b.redraw()

			case *tcell.EventKey:
				if done := b.handleKey(ev); done {
					return
				}
			}
		}
	}()

	return quit
}

// handleKey applies a key press to the board. It reports true when the
// player asked to quit.
func (b *Board) handleKey(ev *tcell.EventKey) bool {
	keyType := ev.Key()

	// Allow the user to quit or restart at any time.
	switch {
	case keyType == tcell.KeyCtrlC:
		return true

	case keyType == tcell.KeyRune && ev.Rune() == 'q':
		return true

	case keyType == tcell.KeyRune && ev.Rune() == 'n':
		if err := b.newGame(); err != nil {
			b.log.Errorw("new game", "ERROR", err)
		}
		return false
	}

	if b.modalUp {
		b.closeModal()
		return false
	}

	if b.gameOver {
		b.screen.Beep()
		return false
	}

	switch keyType {
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == ' ':
			b.userTurn()

		case r >= '1' && r <= '9':
			b.selectColumn(int(r - '1'))
		}

	case tcell.KeyLeft:
		b.movePlayerPiece(dirLeft)

	case tcell.KeyRight:
		b.movePlayerPiece(dirRight)

	case tcell.KeyEnter, tcell.KeyDown:
		b.userTurn()
	}

	return false
}
