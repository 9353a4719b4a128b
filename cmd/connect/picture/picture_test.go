package picture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/huguesbert17/connect-four-oo/cmd/connect/game"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/image/colornames"
)

func playedGame(t *testing.T, opts ...game.Option) *game.Game {
	t.Helper()

	g, err := game.New(game.MustNewPlayer("Red"), game.MustNewPlayer("Blue"), opts...)
	if err != nil {
		t.Fatalf("new game: %v", err)
	}

	// Red wins in column 0 while blue stacks column 6.
	for _, col := range []int{0, 6, 0, 6, 0, 6, 0} {
		if !g.PlayTurn(col) {
			t.Fatalf("move into column %d ignored", col)
		}
	}

	return g
}

func decode(t *testing.T, data []byte) image.Image {
	t.Helper()

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}

	return img
}

func sameColor(a color.Color, b color.Color) bool {
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRender(t *testing.T) {
	s := playedGame(t).Snapshot()

	data, err := Render(s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	img := decode(t, data)

	wantW := 2*margin + gap*(game.DefaultWidth-1)
	wantH := 2*margin + gap*(game.DefaultHeight-1)
	if got := img.Bounds(); got.Dx() != wantW || got.Dy() != wantH {
		t.Fatalf("got %dx%d image, want %dx%d", got.Dx(), got.Dy(), wantW, wantH)
	}

	tests := []struct {
		name string
		row  int
		col  int
		want color.Color
	}{
		{"red piece", 5, 0, colornames.Red},
		{"blue piece", 5, 6, colornames.Blue},
		{"empty cell", 0, 3, colornames.White},
	}

	for _, tt := range tests {
		x, y := center(tt.row, tt.col)
		if got := img.At(int(x), int(y)); !sameColor(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if got := img.At(1, 1); !sameColor(got, colornames.Navy) {
		t.Errorf("background: got %v, want navy", got)
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	if _, err := Render(game.Snapshot{}); err == nil {
		t.Fatal("expected an error for a board with no cells")
	}
}

func TestPlayerColor(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		want   [2]color.RGBA
	}{
		{"no colour names", "Alice", "Bob", [2]color.RGBA{colornames.Red, colornames.Gold}},
		{"named second seat", "Alice", "Red", [2]color.RGBA{colornames.Gold, colornames.Red}},
		{"named first seat", "Red", "Alice", [2]color.RGBA{colornames.Red, colornames.Gold}},
		{"same colour spelled twice", "Dark Blue", "DarkBlue", [2]color.RGBA{colornames.Darkblue, colornames.Red}},
		{"both named", "Dark Green", "Blue", [2]color.RGBA{colornames.Darkgreen, colornames.Blue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first := game.MustNewPlayer(tt.first)
			second := game.MustNewPlayer(tt.second)
			s := game.Snapshot{Players: [2]game.Player{first, second}}

			got := [2]color.RGBA{PlayerColor(s, first), PlayerColor(s, second)}
			if got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			if got[0] == got[1] {
				t.Fatalf("both seats drawn in %v", got[0])
			}
		})
	}
}

func TestWriterSavesFinishedGame(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "pictures")

	core, logs := observer.New(zapcore.InfoLevel)
	w := NewWriter(zap.New(core).Sugar(), dir)

	g := playedGame(t, game.WithNotifier(w))

	path := filepath.Join(dir, g.ID().String()+".png")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read picture: %v", err)
	}
	decode(t, data)

	if n := logs.FilterMessage("save picture").FilterField(zap.String("path", path)).Len(); n != 1 {
		t.Fatalf("got %d save log entries, want 1", n)
	}
}

func TestWriterLogsFailure(t *testing.T) {
	// A file where the directory should be makes every save fail.
	dir := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(dir, nil, 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	core, logs := observer.New(zapcore.ErrorLevel)
	w := NewWriter(zap.New(core).Sugar(), dir)

	playedGame(t, game.WithNotifier(w))

	if n := logs.FilterMessage("save picture").Len(); n != 1 {
		t.Fatalf("got %d error log entries, want 1", n)
	}
}
