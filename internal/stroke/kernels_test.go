package stroke

import (
	"testing"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/internal/tilegrid"
	"github.com/Saking-tech/AI-Paint/pkg/geometry"
)

func TestBrushOpaqueRedDot(t *testing.T) {
	grid := tilegrid.New(512, 512)
	red := pixel.Pixel{R: 65535, A: 65535}

	Brush(grid, []geometry.PointInt{{X: 100, Y: 100}}, 2, 1.0, red)

	if got := grid.At(100, 100); got != red {
		t.Errorf("center pixel = %v, want %v", got, red)
	}
	for _, p := range []geometry.PointInt{{X: 99, Y: 100}, {X: 101, Y: 100}, {X: 100, Y: 99}, {X: 100, Y: 101}} {
		if got := grid.At(p.X, p.Y); got != pixel.Default {
			t.Errorf("neighbor (%d,%d) = %v, want default (d=1 at r=1 has weight 0)", p.X, p.Y, got)
		}
	}
}

func TestBrushIdempotence(t *testing.T) {
	grid := tilegrid.New(64, 64)
	color := pixel.Pixel{R: 1234, G: 5678, B: 9, A: 65535}
	pt := []geometry.PointInt{{X: 10, Y: 10}}

	Brush(grid, pt, 2, 1.0, color)
	once := grid.At(10, 10)

	Brush(grid, pt, 2, 1.0, color)
	twice := grid.At(10, 10)

	if once != twice {
		t.Errorf("repeated full-opacity brush stamp changed pixel: %v -> %v", once, twice)
	}
	if once != color {
		t.Errorf("brush stamp = %v, want exact color %v", once, color)
	}
}

func TestEraserOnOpaque(t *testing.T) {
	grid := tilegrid.New(256, 256)
	grid.Fill(pixel.Pixel{A: 65535})

	Eraser(grid, []geometry.PointInt{{X: 50, Y: 50}}, 4, 1.0)

	if got := grid.At(50, 50); got.A != 0 {
		t.Errorf("center alpha = %d, want 0", got.A)
	}
	if got := grid.At(52, 50); got.A != 65535 {
		t.Errorf("edge (d=r) alpha = %d, want unchanged 65535", got.A)
	}
	// RGB must be untouched everywhere.
	if got := grid.At(50, 50); got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("eraser touched RGB: %v", got)
	}
}

func TestEraserMonotonicity(t *testing.T) {
	grid := tilegrid.New(64, 64)
	grid.Fill(pixel.Pixel{A: 65535})
	pt := []geometry.PointInt{{X: 30, Y: 30}}

	Eraser(grid, pt, 8, 0.5)
	afterOnce := grid.At(30, 30).A

	Eraser(grid, pt, 8, 0.5)
	afterTwice := grid.At(30, 30).A

	// center has d=0, w=1, weight = 1*0.5 = 0.5 each application.
	half := 0.5
	wantOnce := uint16(float64(65535) * half)
	if diff := int(afterOnce) - int(wantOnce); diff > 1 || diff < -1 {
		t.Errorf("alpha after one erase = %d, want ~%d", afterOnce, wantOnce)
	}
	wantTwice := uint16(float64(wantOnce) * 0.5)
	if diff := int(afterTwice) - int(wantTwice); diff > 1 || diff < -1 {
		t.Errorf("alpha after two erases = %d, want ~%d", afterTwice, wantTwice)
	}
}

func TestOutOfBoundsPointsSkipped(t *testing.T) {
	grid := tilegrid.New(16, 16)
	// Should not panic and should not touch the grid.
	Brush(grid, []geometry.PointInt{{X: -100, Y: -100}, {X: 1000, Y: 1000}}, 4, 1.0, pixel.Pixel{R: 1})
	if len(grid.DirtyTiles()) != 0 {
		t.Error("out-of-bounds brush points dirtied tiles")
	}
}
