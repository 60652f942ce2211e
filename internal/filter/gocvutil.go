package filter

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/pkg/colorutil"
)

// tileToBGRMat converts tile's 16-bit pixels down to an 8-bit 3-channel
// BGR Mat, the layout gocv's inpainting and edge-detection routines
// expect, keeping the high byte of each channel and writing it with a
// per-pixel SetUCharAt. The caller owns the returned Mat and must Close
// it.
func tileToBGRMat(tile *pixel.Tile) gocv.Mat {
	mat := gocv.NewMatWithSize(pixel.TileSize, pixel.TileSize, gocv.MatTypeCV8UC3)
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			p := tile.At(x, y)
			mat.SetUCharAt(y, x*3+0, uint8(p.B>>8))
			mat.SetUCharAt(y, x*3+1, uint8(p.G>>8))
			mat.SetUCharAt(y, x*3+2, uint8(p.R>>8))
		}
	}
	return mat
}

// bgrMatToTileMasked writes an 8-bit 3-channel BGR Mat's pixels back into
// tile wherever mask (an 8-bit single-channel Mat, the same size) is
// non-zero, preserving tile's existing alpha and leaving unmasked
// pixels untouched. 8-bit precision is widened back to 16-bit by
// replicating the low byte, matching the source's native resolution.
func bgrMatToTileMasked(tile *pixel.Tile, mat, mask gocv.Mat) {
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			if mask.GetUCharAt(y, x) == 0 {
				continue
			}
			b := mat.GetUCharAt(y, x*3+0)
			g := mat.GetUCharAt(y, x*3+1)
			r := mat.GetUCharAt(y, x*3+2)
			dst := tile.At(x, y)
			tile.Set(x, y, pixel.Pixel{
				R: widen8to16(r),
				G: widen8to16(g),
				B: widen8to16(b),
				A: dst.A,
			})
		}
	}
}

func widen8to16(v uint8) uint16 {
	return uint16(v)<<8 | uint16(v)
}

// tileToMat16 converts tile to a 16-bit 4-channel BGRA Mat at full
// channel precision, the same layout the original engine's
// Tile::toMat produces (CV_16UC4, BGRA channel order). The caller owns
// the returned Mat and must Close it.
func tileToMat16(tile *pixel.Tile) gocv.Mat {
	mat := gocv.NewMatWithSize(pixel.TileSize, pixel.TileSize, gocv.MatTypeCV16UC4)
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			p := tile.At(x, y)
			base := x * 4
			mat.SetUShortAt(y, base+0, p.B)
			mat.SetUShortAt(y, base+1, p.G)
			mat.SetUShortAt(y, base+2, p.R)
			mat.SetUShortAt(y, base+3, p.A)
		}
	}
	return mat
}

// matToTile16 writes a 16-bit 4-channel BGRA Mat's pixels back into
// tile at full precision, the inverse of tileToMat16.
func matToTile16(tile *pixel.Tile, mat gocv.Mat) {
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			base := x * 4
			tile.Set(x, y, pixel.Pixel{
				B: mat.GetUShortAt(y, base+0),
				G: mat.GetUShortAt(y, base+1),
				R: mat.GetUShortAt(y, base+2),
				A: mat.GetUShortAt(y, base+3),
			})
		}
	}
}

// tileToGrayMat converts tile to an 8-bit single-channel luminance Mat.
// The caller owns the returned Mat and must Close it.
func tileToGrayMat(tile *pixel.Tile) gocv.Mat {
	mat := gocv.NewMatWithSize(pixel.TileSize, pixel.TileSize, gocv.MatTypeCV8UC1)
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			p := tile.At(x, y)
			lum := colorutil.Luminance(p.R, p.G, p.B)
			if lum > 255 {
				lum = 255
			}
			mat.SetUCharAt(y, x, uint8(lum))
		}
	}
	return mat
}

// syntheticDiskMask builds an 8-bit single-channel mask with a filled
// disk of the given radius centered on the tile, used when no
// selection is available to derive an inpainting mask from.
func syntheticDiskMask(radius int) gocv.Mat {
	mask := gocv.NewMatWithSize(pixel.TileSize, pixel.TileSize, gocv.MatTypeCV8UC1)
	cx, cy := pixel.TileSize/2, pixel.TileSize/2
	gocv.Circle(&mask, image.Point{X: cx, Y: cy}, radius, color.RGBA{R: 255, G: 255, B: 255, A: 255}, -1)
	return mask
}
