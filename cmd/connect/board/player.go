package board

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
)

// seatColors are used when a player's name is not a colour tcell knows, or
// names the same colour as the other player.
var seatColors = [2]tcell.Color{
	tcell.ColorRed,
	tcell.ColorYellow,
}

// namedColor maps a player's name to a terminal colour, so a player named
// "Dark Blue" is drawn in dark blue. It returns tcell.ColorDefault for names
// that are not colours.
func namedColor(p game.Player) tcell.Color {
	name := strings.ToLower(strings.ReplaceAll(p.String(), " ", ""))
	return tcell.GetColor(name)
}

// assignColors picks a distinct colour for each seat. A seat without a named
// colour, or whose colour is already taken by the first seat, gets the first
// seat colour the other player is not using.
func assignColors(players [2]game.Player) [2]tcell.Color {
	colors := [2]tcell.Color{namedColor(players[0]), namedColor(players[1])}

	if colors[0] == tcell.ColorDefault {
		colors[0] = freeColor(colors[1])
	}

	if colors[1] == tcell.ColorDefault || colors[1] == colors[0] {
		colors[1] = freeColor(colors[0])
	}

	return colors
}

func freeColor(taken tcell.Color) tcell.Color {
	for _, c := range seatColors {
		if c != taken {
			return c
		}
	}

	return seatColors[0]
}

// playerColor returns the colour of the player's seat. Seats follow the
// configured order so colours don't swap between games.
func (b *Board) playerColor(p game.Player) tcell.Color {
	if p.Equal(b.cfg.Players[1]) {
		return b.colors[1]
	}

	return b.colors[0]
}

// pieceStyle returns the style used to draw the player's pieces.
func (b *Board) pieceStyle(p game.Player) tcell.Style {
	return b.style.Foreground(b.playerColor(p))
}
