package filter

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

// Inpaint fills a masked region of a tile by sampling surrounding
// texture, backed by gocv's Telea and Navier-Stokes implementations.
// The mask comes from the caller's rasterized selection when one is
// supplied through ProcessTileMasked; Inpaint falls back to a
// synthetic central disk when no selection mask is present or it
// covers nothing in this tile, so the plugin stays usable without a
// selection.
type Inpaint struct{}

func (Inpaint) Name() string        { return "inpaint" }
func (Inpaint) Version() string     { return "1.0" }
func (Inpaint) Description() string { return "Fills a masked region by sampling surrounding texture" }

// ProcessTile satisfies Plugin for callers that don't supply a mask;
// it always falls back to the synthetic disk.
func (p Inpaint) ProcessTile(tile *pixel.Tile, canvasW, canvasH int, params Params) {
	p.ProcessTileMasked(tile, canvasW, canvasH, params, nil)
}

func (Inpaint) ProcessTileMasked(tile *pixel.Tile, _, _ int, params Params, selMask *pixel.Tile) {
	radius := clampInt(params.Int("radius", 3), 1, 50)
	algorithm := params.String("algorithm", "telea")

	mask := maskMatFrom(selMask, radius)
	defer mask.Close()

	if algorithm == "advanced" {
		augmentMaskWithEdges(tile, &mask)
	}

	src := tileToBGRMat(tile)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	flag := gocv.InpaintTelea
	if algorithm == "navier_stokes" {
		flag = gocv.InpaintNS
	}
	gocv.Inpaint(src, mask, &dst, float32(radius), flag)

	bgrMatToTileMasked(tile, dst, mask)
	tile.MarkDirty()
}

// maskMatFrom rasterizes selMask (non-zero alpha = selected) into an
// 8-bit single-channel Mat, falling back to a synthetic central disk
// of four times the given radius when selMask is nil or empty.
func maskMatFrom(selMask *pixel.Tile, radius int) gocv.Mat {
	if selMask != nil {
		mat := gocv.NewMatWithSize(pixel.TileSize, pixel.TileSize, gocv.MatTypeCV8UC1)
		any := false
		for y := 0; y < pixel.TileSize; y++ {
			for x := 0; x < pixel.TileSize; x++ {
				if selMask.At(x, y).A > 0 {
					mat.SetUCharAt(y, x, 255)
					any = true
				}
			}
		}
		if any {
			return mat
		}
		mat.Close()
	}
	return syntheticDiskMask(radius * 4)
}

// augmentMaskWithEdges detects Canny edges in tile, dilates them, and
// unions the result into mask in place — the "advanced" algorithm's
// extra pre-pass before Telea inpainting.
func augmentMaskWithEdges(tile *pixel.Tile, mask *gocv.Mat) {
	gray := tileToGrayMat(tile)
	defer gray.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)

	kernel := gocv.GetStructuringElement(gocv.MorphRect, image.Point{X: 3, Y: 3})
	defer kernel.Close()
	dilated := gocv.NewMat()
	defer dilated.Close()
	gocv.Dilate(edges, &dilated, kernel)

	unioned := gocv.NewMat()
	defer unioned.Close()
	gocv.BitwiseOr(*mask, dilated, &unioned)
	unioned.CopyTo(mask)
}
