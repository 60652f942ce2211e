package tilegrid

import "github.com/Saking-tech/AI-Paint/internal/pixel"

// ToMatrix converts the grid into the external image-matrix format: a
// flat, row-major []uint16 with four channels per pixel in B, G, R, A
// order (pitch = 4 * W uint16s per row).
func (g *Grid) ToMatrix() []uint16 {
	out := make([]uint16, g.W*g.H*4)
	for y := 0; y < g.H; y++ {
		row := y * g.W * 4
		for x := 0; x < g.W; x++ {
			p := g.At(x, y)
			o := row + x*4
			out[o+0] = p.B
			out[o+1] = p.G
			out[o+2] = p.R
			out[o+3] = p.A
		}
	}
	return out
}

// FromMatrix populates a new Grid of dimensions w x h from a BGRA matrix
// in the same layout ToMatrix produces. Returns nil if the buffer is too
// short for the given dimensions.
func FromMatrix(w, h int, data []uint16) *Grid {
	if len(data) < w*h*4 {
		return nil
	}
	g := New(w, h)
	for y := 0; y < h; y++ {
		row := y * w * 4
		for x := 0; x < w; x++ {
			o := row + x*4
			g.Set(x, y, pixel.Pixel{
				B: data[o+0],
				G: data[o+1],
				R: data[o+2],
				A: data[o+3],
			})
		}
	}
	return g
}
