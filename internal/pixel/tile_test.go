package pixel

import "testing"

func TestTileOutOfRangeReadWrite(t *testing.T) {
	tile := NewTile(0, 0)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at size", TileSize, 0},
		{"y at size", 0, TileSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tile.At(tt.x, tt.y); got != Default {
				t.Errorf("At(%d, %d) = %v, want default pixel", tt.x, tt.y, got)
			}

			// Writing out of range must not panic and must not affect
			// any in-range pixel.
			before := tile.At(0, 0)
			tile.Set(tt.x, tt.y, Pixel{R: 1, G: 2, B: 3, A: 4})
			if got := tile.At(0, 0); got != before {
				t.Errorf("out-of-range write corrupted in-range pixel: got %v, want %v", got, before)
			}
		})
	}
}

func TestTileReadWriteRoundTrip(t *testing.T) {
	tile := NewTile(0, 0)
	want := Pixel{R: 100, G: 200, B: 300, A: 65535}

	tile.Set(10, 20, want)
	if got := tile.At(10, 20); got != want {
		t.Errorf("At(10, 20) = %v, want %v", got, want)
	}
	if !tile.Dirty {
		t.Error("Set did not mark tile dirty")
	}
}

func TestTileClone(t *testing.T) {
	tile := NewTile(5, 5)
	tile.Set(1, 1, Pixel{R: 1, G: 1, B: 1, A: 1})

	clone := tile.Clone()
	if !tile.Equal(clone) {
		t.Fatal("clone does not equal original")
	}

	clone.Set(1, 1, Pixel{R: 9, G: 9, B: 9, A: 9})
	if tile.At(1, 1) == clone.At(1, 1) {
		t.Error("mutating clone affected original")
	}
}

func TestTileArithmeticClamps(t *testing.T) {
	tile := NewTile(0, 0)
	tile.Fill(Pixel{R: 60000, G: 60000, B: 60000, A: 65535})

	other := NewTile(0, 0)
	other.Fill(Pixel{R: 10000, G: 10000, B: 10000, A: 0})

	tile.AddInPlace(other)
	got := tile.At(0, 0)
	if got.R != 65535 || got.G != 65535 || got.B != 65535 {
		t.Errorf("AddInPlace did not saturate: got %v", got)
	}

	tile.Fill(Pixel{R: 100, G: 100, B: 100, A: 100})
	tile.SubInPlace(other)
	got = tile.At(0, 0)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("SubInPlace did not saturate at zero: got %v", got)
	}
}

func TestTileClearFill(t *testing.T) {
	tile := NewTile(0, 0)
	tile.Fill(Pixel{R: 1, G: 2, B: 3, A: 4})
	if got := tile.At(128, 128); got != (Pixel{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("Fill did not set every pixel, got %v", got)
	}

	tile.Clear()
	if got := tile.At(128, 128); got != Default {
		t.Errorf("Clear did not reset to default, got %v", got)
	}
}
