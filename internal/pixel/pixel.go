// Package pixel defines the engine's base pixel format and the fixed-size
// tile that every layer's image data is stored in.
package pixel

import "github.com/Saking-tech/AI-Paint/pkg/colorutil"

// TileSize is the edge length, in pixels, of a Tile. It is the unit of
// dirty-tracking and the unit of work handed to filter plugins.
const TileSize = 256

// Pixel is a straight-alpha RGBA color with 16 bits per channel.
type Pixel struct {
	R, G, B, A uint16
}

// Default is the zero-value-safe default pixel: opaque black.
var Default = Pixel{R: 0, G: 0, B: 0, A: colorutil.MaxChannel}

// Add returns p with each channel increased by the corresponding channel
// of other, saturating at 65535.
func (p Pixel) Add(other Pixel) Pixel {
	return Pixel{
		R: colorutil.ClampChannel(float64(p.R) + float64(other.R)),
		G: colorutil.ClampChannel(float64(p.G) + float64(other.G)),
		B: colorutil.ClampChannel(float64(p.B) + float64(other.B)),
		A: colorutil.ClampChannel(float64(p.A) + float64(other.A)),
	}
}

// Sub returns p with each channel decreased by the corresponding channel
// of other, saturating at 0.
func (p Pixel) Sub(other Pixel) Pixel {
	return Pixel{
		R: colorutil.ClampChannel(float64(p.R) - float64(other.R)),
		G: colorutil.ClampChannel(float64(p.G) - float64(other.G)),
		B: colorutil.ClampChannel(float64(p.B) - float64(other.B)),
		A: colorutil.ClampChannel(float64(p.A) - float64(other.A)),
	}
}

// Mul returns p with each channel scaled by factor, saturating to
// [0, 65535].
func (p Pixel) Mul(factor float64) Pixel {
	return Pixel{
		R: colorutil.ClampChannel(float64(p.R) * factor),
		G: colorutil.ClampChannel(float64(p.G) * factor),
		B: colorutil.ClampChannel(float64(p.B) * factor),
		A: colorutil.ClampChannel(float64(p.A) * factor),
	}
}

// Lerp blends p toward other by weight w, w in [0, 1], per channel.
func (p Pixel) Lerp(other Pixel, w float64) Pixel {
	return Pixel{
		R: colorutil.ClampChannel(float64(p.R)*(1-w) + float64(other.R)*w),
		G: colorutil.ClampChannel(float64(p.G)*(1-w) + float64(other.G)*w),
		B: colorutil.ClampChannel(float64(p.B)*(1-w) + float64(other.B)*w),
		A: colorutil.ClampChannel(float64(p.A)*(1-w) + float64(other.A)*w),
	}
}
