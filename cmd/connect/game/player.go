package game

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Player represents a player in the game. The name is the display attribute,
// usually a colour such as "Red" or "Yellow".
type Player struct {
	name string
}

// NewPlayer constructs a player from a display name. The name is trimmed and
// title cased so "  red" and "Red" are the same player.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Player{}, ErrEmptyName
	}

	return Player{name: cases.Title(language.English).String(name)}, nil
}

// MustNewPlayer constructs a player and panics if the name is invalid.
func MustNewPlayer(name string) Player {
	p, err := NewPlayer(name)
	if err != nil {
		panic(err)
	}

	return p
}

// IsZero checks of the player is set to its zero value. The zero value marks
// an empty cell.
func (p Player) IsZero() bool {
	return p.name == ""
}

// String returns the name of the player.
func (p Player) String() string {
	return p.name
}

// Equal provides support for the go-cmp package and testing.
func (p Player) Equal(p2 Player) bool {
	return p.name == p2.name
}
