package blend

import (
	"testing"

	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

func TestModeStringCoversAllTwelve(t *testing.T) {
	names := map[string]bool{}
	for m := Normal; m < modeCount; m++ {
		name := m.String()
		if name == "Unknown" {
			t.Errorf("mode %d has no name", m)
		}
		if names[name] {
			t.Errorf("duplicate mode name %q", name)
		}
		names[name] = true
	}
	if len(names) != 12 {
		t.Errorf("got %d distinct mode names, want 12", len(names))
	}
}

func TestNormalOpaqueReplacesDestination(t *testing.T) {
	dst := pixel.Pixel{R: 1000, G: 2000, B: 3000, A: 65535}
	src := pixel.Pixel{R: 60000, G: 10000, B: 500, A: 65535}

	Over(&dst, src, Normal, 1.0)
	if dst != src {
		t.Errorf("Normal blend opacity=1 src.a=max = %v, want exact replacement %v", dst, src)
	}
}

func TestBlendClosure(t *testing.T) {
	dst := pixel.Pixel{R: 12345, G: 54321, B: 100, A: 40000}
	src := pixel.Pixel{R: 60000, G: 1000, B: 65535, A: 50000}

	for m := Normal; m < modeCount; m++ {
		d := dst
		Over(&d, src, m, 0.5)
		if d.R > 65535 || d.G > 65535 || d.B > 65535 || d.A > 65535 {
			t.Errorf("mode %v produced out-of-range channel: %v", m, d)
		}
	}
}

func TestZeroSourceAlphaIsNoOp(t *testing.T) {
	dst := pixel.Pixel{R: 111, G: 222, B: 333, A: 444}
	src := pixel.Pixel{R: 1, G: 2, B: 3, A: 0}

	Over(&dst, src, Multiply, 1.0)
	if dst != (pixel.Pixel{R: 111, G: 222, B: 333, A: 444}) {
		t.Errorf("zero-alpha source mutated destination: %v", dst)
	}
}

func TestMultiplyMidGray(t *testing.T) {
	dst := pixel.Pixel{R: 32768, G: 32768, B: 32768, A: 65535}
	src := pixel.Pixel{R: 32768, G: 32768, B: 32768, A: 65535}

	Over(&dst, src, Multiply, 1.0)
	// 0.5 * 0.5 = 0.25 -> 16384, within quantization rounding.
	if abs16(int(dst.R), 16384) > 1 {
		t.Errorf("multiply(0.5, 0.5) channel = %d, want ~16384", dst.R)
	}
	if dst.A != 65535 {
		t.Errorf("result alpha = %d, want 65535", dst.A)
	}
}

func abs16(a, b int) int {
	d := a - b
	if d < 0 {
		return -d
	}
	return d
}
