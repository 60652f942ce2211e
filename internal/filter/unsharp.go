package filter

import (
	"github.com/Saking-tech/AI-Paint/internal/pixel"
	"github.com/Saking-tech/AI-Paint/pkg/colorutil"
)

// UnsharpMask sharpens a tile by amplifying its high-frequency detail:
// a Gaussian-blurred copy is subtracted from the original to produce a
// signed per-channel delta, optionally gated by a luminance threshold,
// then added back scaled by amount. Alpha is left untouched — sharpening
// acts on color only.
type UnsharpMask struct{}

func (UnsharpMask) Name() string    { return "unsharp_mask" }
func (UnsharpMask) Version() string { return "1.0" }
func (UnsharpMask) Description() string {
	return "Amplifies local contrast by subtracting a Gaussian-blurred copy from the original"
}

func (UnsharpMask) ProcessTile(tile *pixel.Tile, _, _ int, params Params) {
	radius := clampFloat(params.Float("radius", 1.0), 0.1, 50.0)
	amount := clampFloat(params.Float("amount", 1.0), 0, 5)
	threshold := clampFloat(params.Float("threshold", 0.0), 0, 1)

	original := tileChannels(tile)

	blurred := tile.Clone()
	blurTile(blurred, radius)
	blurredChannels := tileChannels(blurred)

	buf := tile.Buffer()
	for i := range buf {
		dr := original[0][i] - blurredChannels[0][i]
		dg := original[1][i] - blurredChannels[1][i]
		db := original[2][i] - blurredChannels[2][i]

		if threshold > 0 {
			lum := colorutil.Luminance(channelToU16(dr), channelToU16(dg), channelToU16(db))
			if lum <= threshold*255 {
				dr, dg, db = 0, 0, 0
			}
		}

		buf[i].R = quantizeChannel(original[0][i] + amount*dr)
		buf[i].G = quantizeChannel(original[1][i] + amount*dg)
		buf[i].B = quantizeChannel(original[2][i] + amount*db)
		// Alpha is untouched: original[3][i] already equals buf[i].A.
	}
	tile.MarkDirty()
}

// channelToU16 converts a (possibly negative or out-of-range) signed
// channel delta to an absolute magnitude on the uint16 channel scale,
// purely for feeding colorutil.Luminance's threshold comparison.
func channelToU16(v float64) uint16 {
	if v < 0 {
		v = -v
	}
	if v > 65535 {
		v = 65535
	}
	return uint16(v)
}
