package blend

import (
	"math"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

// channelFunc computes f_M(d, s) for a single channel in [0, 1]. d is
// the destination channel, s the source channel.
type channelFunc func(d, s float64) float64

func channelFuncFor(m Mode) channelFunc {
	switch m {
	case Multiply:
		return func(d, s float64) float64 { return d * s }
	case Screen:
		return func(d, s float64) float64 { return 1 - (1-d)*(1-s) }
	case Overlay:
		return func(d, s float64) float64 {
			if d < 0.5 {
				return 2 * d * s
			}
			return 1 - 2*(1-d)*(1-s)
		}
	case SoftLight:
		// Pegtop formula.
		return func(d, s float64) float64 {
			return (1-2*s)*d*d + 2*s*d
		}
	case HardLight:
		// Overlay with source and destination swapped.
		return func(d, s float64) float64 {
			if s < 0.5 {
				return 2 * d * s
			}
			return 1 - 2*(1-d)*(1-s)
		}
	case ColorDodge:
		return func(d, s float64) float64 {
			if s >= 1 {
				return 1
			}
			return math.Min(1, d/(1-s))
		}
	case ColorBurn:
		return func(d, s float64) float64 {
			if s <= 0 {
				return 0
			}
			return 1 - math.Min(1, (1-d)/s)
		}
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case Difference:
		return func(d, s float64) float64 { return math.Abs(d - s) }
	case Exclusion:
		return func(d, s float64) float64 { return d + s - 2*d*s }
	default: // Normal, and any unrecognized value.
		return func(d, s float64) float64 { return s }
	}
}

// Over composites src onto dst in place, using mode and opacity
// (clamped to [0, 1] by the caller), following straight-alpha
// Porter-Duff "over": the per-channel blend result is computed in
// straight (non-premultiplied) space and then re-combined with the
// source and destination alphas to produce the output alpha and
// straight-alpha output color.
func Over(dst *pixel.Pixel, src pixel.Pixel, mode Mode, opacity float64) {
	srcA := normalize(src.A) * opacity
	if srcA <= 0 {
		return
	}
	dstA := normalize(dst.A)

	f := channelFuncFor(mode)
	sr, sg, sb := normalize(src.R), normalize(src.G), normalize(src.B)
	dr, dg, db := normalize(dst.R), normalize(dst.G), normalize(dst.B)

	rr := f(dr, sr)
	rg := f(dg, sg)
	rb := f(db, sb)

	outA := srcA + dstA*(1-srcA)
	if outA <= 0 {
		*dst = pixel.Pixel{}
		return
	}

	dst.R = quantize((rr*srcA + dr*dstA*(1-srcA)) / outA)
	dst.G = quantize((rg*srcA + dg*dstA*(1-srcA)) / outA)
	dst.B = quantize((rb*srcA + db*dstA*(1-srcA)) / outA)
	dst.A = quantize(outA)
}

func normalize(c uint16) float64 {
	return float64(c) / 65535.0
}

func quantize(v float64) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(v*65535.0 + 0.5)
}
