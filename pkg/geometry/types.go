// Package geometry provides the basic geometric types shared by the
// selection, stroke, and filter-mask code paths.
package geometry

import "math"

// Point2D represents a 2D point with floating-point coordinates.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// NewPoint2D creates a new Point2D.
func NewPoint2D(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PointInt represents a 2D point with integer pixel coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ToFloat converts to Point2D.
func (p PointInt) ToFloat() Point2D {
	return Point2D{X: float64(p.X), Y: float64(p.Y)}
}

// RectInt represents an axis-aligned rectangle with integer bounds,
// [Min, Max) on both axes.
type RectInt struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether (x, y) lies within the rectangle.
func (r RectInt) Contains(x, y int) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}

// Intersect returns the overlap of two rectangles. The result has
// MaxX <= MinX (or MaxY <= MinY) when the rectangles do not overlap.
func (r RectInt) Intersect(other RectInt) RectInt {
	out := RectInt{
		MinX: max(r.MinX, other.MinX),
		MinY: max(r.MinY, other.MinY),
		MaxX: min(r.MaxX, other.MaxX),
		MaxY: min(r.MaxY, other.MaxY),
	}
	return out
}

// Empty reports whether the rectangle contains no pixels.
func (r RectInt) Empty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// BoundingBox computes the axis-aligned integer bounding box of a set
// of points. Returns an empty RectInt for zero points.
func BoundingBox(points []PointInt) RectInt {
	if len(points) == 0 {
		return RectInt{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return RectInt{MinX: minX, MinY: minY, MaxX: maxX + 1, MaxY: maxY + 1}
}
