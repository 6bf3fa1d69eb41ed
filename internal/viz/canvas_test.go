package viz

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCanvas_SetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(3, 5)
	if !c.IsSet(3, 5) {
		t.Fatal("dot not set")
	}
	if c.Grid[1][1] != brailleBase|0x10 {
		t.Errorf("cell = %U", c.Grid[1][1])
	}
	c.Set(-1, 0)
	c.Set(100, 100)
	c.Clear()
	if c.IsSet(3, 5) {
		t.Error("clear left a dot set")
	}
}

func TestCanvas_FillRect(t *testing.T) {
	c := NewCanvas(4, 2)
	c.FillRect(3, 6, 1, 2)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := x >= 1 && x <= 3 && y >= 2 && y <= 6
			if c.IsSet(x, y) != want {
				t.Errorf("dot (%d,%d) = %v, want %v", x, y, c.IsSet(x, y), want)
			}
		}
	}
}

func TestCanvas_DrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)
	if !c.IsSet(0, 0) || !c.IsSet(19, 19) || !c.IsSet(10, 10) {
		t.Error("diagonal line missing dots")
	}
}

func TestCanvas_String(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 || len([]rune(lines[0])) != 3 {
		t.Errorf("unexpected layout %q", c.String())
	}
}

func TestLevelBar(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "[----]"},
		{0.5, "[==--]"},
		{1, "[====]"},
		{7, "[====]"},
		{-3, "[----]"},
	}
	for _, tt := range tests {
		if got := levelBar(tt.v, 0, 1, 4); got != tt.want {
			t.Errorf("levelBar(%v) = %s, want %s", tt.v, got, tt.want)
		}
	}
}

func TestGIFRecorder(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	img := rasterize(c)
	if img.ColorIndexAt(0, 0) != 1 || img.ColorIndexAt(cellW-1, cellH-1) != 0 {
		t.Error("rasterized dot in the wrong place")
	}

	r := &gifRecorder{}
	path := filepath.Join(t.TempDir(), "out.gif")
	if err := r.save(path); err != nil {
		t.Fatal(err)
	}
	r.capture(c)
	r.capture(c)
	if err := r.save(path); err != nil {
		t.Fatal(err)
	}
}

func TestGIFRecorder_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full on this system")
	}
	c := NewCanvas(2, 1)
	r := &gifRecorder{}
	r.capture(c)
	if err := r.save("/dev/full"); err == nil {
		t.Error("expected an error writing to a full device")
	}
}
