// Package stroke implements the brush and eraser rasterizers: disk
// stamps applied independently at each point of a pixel-space polyline.
package stroke

import (
	"math"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/internal/tilegrid"
	"github.com/Saking-tech/AI-Paint/pkg/geometry"
)

// Brush stamps color onto grid at every point in points, independently:
// no interpolation between consecutive points is part of this
// contract.
func Brush(grid *tilegrid.Grid, points []geometry.PointInt, size float64, opacity float64, color pixel.Pixel) {
	stamp(grid, points, size, func(g *tilegrid.Grid, x, y int, w float64) {
		dst := g.At(x, y)
		g.Set(x, y, dst.Lerp(color, w*opacity))
	})
}

// Eraser reduces alpha (only) at every point in points, independently.
func Eraser(grid *tilegrid.Grid, points []geometry.PointInt, size float64, opacity float64) {
	stamp(grid, points, size, func(g *tilegrid.Grid, x, y int, w float64) {
		dst := g.At(x, y)
		weight := w * opacity
		dst.A = uint16(float64(dst.A) * (1 - weight))
		g.Set(x, y, dst)
	})
}

// stamp applies fn at every in-bounds pixel under every point's disk,
// with weight w = (1 - d/r) for distance d from the point, d <= r.
func stamp(grid *tilegrid.Grid, points []geometry.PointInt, size float64, fn func(g *tilegrid.Grid, x, y int, w float64)) {
	if grid == nil {
		return
	}
	r := int(math.Floor(size / 2))
	if r < 0 {
		return
	}

	for _, p := range points {
		if r == 0 {
			// Degenerate radius: stamp only the center pixel at full
			// weight, avoiding division by zero below.
			if p.X >= 0 && p.X < grid.W && p.Y >= 0 && p.Y < grid.H {
				fn(grid, p.X, p.Y, 1)
			}
			continue
		}

		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				d := math.Sqrt(float64(dx*dx + dy*dy))
				if d > float64(r) {
					continue
				}
				w := 1 - d/float64(r)

				x, y := p.X+dx, p.Y+dy
				if x < 0 || x >= grid.W || y < 0 || y >= grid.H {
					continue
				}
				fn(grid, x, y, w)
			}
		}
	}
}
