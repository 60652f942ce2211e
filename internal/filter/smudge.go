package filter

import (
	"math"

	"gocv.io/x/gocv"

	"github.com/Saking-tech/AI-Paint/internal/filter/smudge"
	"github.com/Saking-tech/AI-Paint/internal/pixel"
)

// Smudge drags color around a tile by repeatedly blending a resampled
// buffer into a disk centered on the tile and then recapturing the
// buffer from the result. The plugin ABI carries no stroke polyline
// (unlike Brush/Eraser), so each ProcessTile call treats the tile's own
// center as its single disk-stamp point. Blending happens only when the
// same Smudge value processes a tile it has processed before.
// Canvas.ApplyFilter obtains a fresh Smudge through LookupFresh on every
// call, so through Canvas each call starts with an empty State, records
// the buffer, and leaves the pixels unchanged.
//
// Smudge is StatefulPlugin: Fresh returns a new *Smudge with its own
// smudge.State, so nothing here is shared across unrelated invocations.
type Smudge struct {
	state *smudge.State
}

// NewSmudge returns a Smudge with a fresh, empty State.
func NewSmudge() *Smudge { return &Smudge{state: smudge.New()} }

func (s *Smudge) Name() string        { return "smudge" }
func (s *Smudge) Version() string     { return "1.0" }
func (s *Smudge) Description() string { return "Drags nearby color into a tile-centered disk across repeated calls" }

// Fresh returns a new *Smudge with an empty State, satisfying
// StatefulPlugin. Canvas.ApplyFilter calls this (through LookupFresh)
// once per call and reuses the result for every tile of that call.
func (s *Smudge) Fresh() Plugin { return NewSmudge() }

func (s *Smudge) ProcessTile(tile *pixel.Tile, _, _ int, params Params) {
	if s.state == nil {
		s.state = smudge.New()
	}

	strength := clampFloat(params.Float("strength", 0.5), 0, 1)
	radius := clampInt(params.Int("radius", 5), 1, 50)
	mode := params.String("mode", "normal")

	var edgeWeight []float64
	if mode == "smart" {
		edgeWeight = smartEdgeWeights(tile, radius)
	}

	key := [2]int{tile.OriginX, tile.OriginY}
	prevBuf, hasPrev := s.state.Get(key)

	cx, cy := pixel.TileSize/2, pixel.TileSize/2
	dirty := false
	if hasPrev {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				d := math.Sqrt(float64(dx*dx + dy*dy))
				if d > float64(radius) {
					continue
				}
				x, y := cx+dx, cy+dy
				if x < 0 || x >= pixel.TileSize || y < 0 || y >= pixel.TileSize {
					continue
				}
				w := strength * (1 - d/float64(radius))
				if edgeWeight != nil {
					w *= edgeWeight[y*pixel.TileSize+x]
				}
				if w <= 0 {
					continue
				}
				idx := y*pixel.TileSize + x
				cur := tile.At(x, y)
				tile.Set(x, y, cur.Lerp(prevBuf[idx], w))
				dirty = true
			}
		}
	}

	resampled := make([]pixel.Pixel, len(tile.Buffer()))
	copy(resampled, tile.Buffer())
	s.state.Set(key, resampled)

	if dirty {
		tile.MarkDirty()
	}
}

// smartEdgeWeights returns a per-pixel multiplier in [0, 1] for the
// tile, derived from distance to the nearest Canny edge: pixels on an
// edge weight 0, pixels at least 2*radius away from any edge weight 1.
func smartEdgeWeights(tile *pixel.Tile, radius int) []float64 {
	gray := tileToGrayMat(tile)
	defer gray.Close()

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, 50, 150)

	notEdges := gocv.NewMat()
	defer notEdges.Close()
	gocv.BitwiseNot(edges, &notEdges)

	dist := gocv.NewMat()
	defer dist.Close()
	labels := gocv.NewMat()
	defer labels.Close()
	gocv.DistanceTransform(notEdges, &dist, &labels, gocv.DistL2, gocv.DistanceTransformMaskSize3, gocv.DistanceTransformLabelCComp)

	reach := float64(radius * 2)
	if reach <= 0 {
		reach = 1
	}
	weights := make([]float64, pixel.TileSize*pixel.TileSize)
	for y := 0; y < pixel.TileSize; y++ {
		for x := 0; x < pixel.TileSize; x++ {
			d := float64(dist.GetFloatAt(y, x))
			w := d / reach
			if w > 1 {
				w = 1
			}
			weights[y*pixel.TileSize+x] = w
		}
	}
	return weights
}
