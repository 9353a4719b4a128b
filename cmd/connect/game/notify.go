package game

// Result describes how a game ended.
type Result struct {
	Winner Player
	Tied   bool
	Line   Line
	Board  Snapshot
}

// Notifier receives state changes from a game so a renderer can display them.
type Notifier interface {
	PiecePlaced(row int, column int, player Player)
	GameEnded(result Result)
}

// Notifiers fans out every notification to each member in order.
type Notifiers []Notifier

// PiecePlaced implements the Notifier interface.
func (ns Notifiers) PiecePlaced(row int, column int, player Player) {
	for _, n := range ns {
		if n != nil {
			n.PiecePlaced(row, column, player)
		}
	}
}

// GameEnded implements the Notifier interface.
func (ns Notifiers) GameEnded(result Result) {
	for _, n := range ns {
		if n != nil {
			n.GameEnded(result)
		}
	}
}
