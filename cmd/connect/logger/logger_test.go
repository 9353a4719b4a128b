package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect.log")

	log, err := New(path, false)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	log.Debugw("hidden")
	log.Infow("shown", "key", "value")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	out := string(data)
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"key":"value"`) {
		t.Fatalf("info entry missing from log:\n%s", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry written without debug enabled:\n%s", out)
	}
}

func TestNewDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "connect.log")

	log, err := New(path, true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	log.Debugw("visible")
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatal("debug entry missing from log")
	}
}

func TestNewWithoutPath(t *testing.T) {
	log, err := New("", true)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}

	log.Infow("discarded")
}

func TestGameEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	events := NewGameEvents(zap.New(core).Sugar())

	g, err := game.New(game.MustNewPlayer("Red"), game.MustNewPlayer("Yellow"),
		game.WithSize(4, 4),
		game.WithNotifier(events),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		g.PlayTurn(col)
	}

	if n := logs.FilterMessage("piece placed").Len(); n != 7 {
		t.Fatalf("got %d placement entries, want 7", n)
	}

	ended := logs.FilterMessage("game ended").All()
	if len(ended) != 1 {
		t.Fatalf("got %d game ended entries, want 1", len(ended))
	}

	fields := ended[0].ContextMap()
	if fields["winner"] != "Red" || fields["game_id"] != g.ID().String() {
		t.Fatalf("unexpected fields %v", fields)
	}
	if board, _ := fields["board"].(string); !strings.HasSuffix(board, "|X|O|.|.|\n") {
		t.Fatalf("board not logged:\n%v", fields["board"])
	}
}

func TestGameEventsTie(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	events := NewGameEvents(zap.New(core).Sugar())

	g, err := game.New(game.MustNewPlayer("Red"), game.MustNewPlayer("Yellow"),
		game.WithSize(1, 2),
		game.WithNotifier(events),
	)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	g.PlayTurn(0)
	g.PlayTurn(1)

	ended := logs.FilterMessage("game ended").All()
	if len(ended) != 1 {
		t.Fatalf("got %d game ended entries, want 1", len(ended))
	}
	if got := ended[0].ContextMap()["result"]; got != string(game.StatusTied) {
		t.Fatalf("got result %v, want %q", got, game.StatusTied)
	}
}
