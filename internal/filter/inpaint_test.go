package filter

import (
	"testing"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

func TestInpaintWithoutMaskFallsBackToSyntheticDisk(t *testing.T) {
	tile := pixel.NewTile(0, 0)
	tile.Fill(pixel.Pixel{R: 10000, G: 10000, B: 10000, A: 65535})

	Inpaint{}.ProcessTile(tile, 256, 256, Params{Ints: map[string]int{"radius": 3}})

	// The disk at the tile center should have been touched by the fill;
	// corners, well outside the synthetic disk, must be untouched.
	corner := tile.At(2, 2)
	if corner.R != 10000 {
		t.Errorf("corner pixel mutated by inpaint fallback disk: R=%d", corner.R)
	}
}

func TestInpaintRespectsSuppliedSelectionMask(t *testing.T) {
	tile := pixel.NewTile(0, 0)
	tile.Fill(pixel.Pixel{R: 5000, G: 5000, B: 5000, A: 65535})

	mask := pixel.NewTile(0, 0)
	mask.Set(10, 10, pixel.Pixel{A: 65535})

	Inpaint{}.ProcessTileMasked(tile, 256, 256, Params{}, mask)

	// Far from the single masked pixel, content should be untouched.
	far := tile.At(200, 200)
	if far.R != 5000 {
		t.Errorf("pixel far from the mask was mutated: R=%d", far.R)
	}
}

func TestInpaintAlgorithmSelection(t *testing.T) {
	for _, algo := range []string{"telea", "navier_stokes", "advanced"} {
		tile := pixel.NewTile(0, 0)
		tile.Fill(pixel.Pixel{R: 8000, A: 65535})
		Inpaint{}.ProcessTile(tile, 256, 256, Params{Strings: map[string]string{"algorithm": algo}})
	}
}
