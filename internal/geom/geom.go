// Package geom holds the small amount of planar geometry the canvas needs for
// hit-testing. All coordinates are drawing-surface pixels.
package geom

import "math"

// Point is a location on the drawing surface.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale multiplies both coordinates by f.
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Distance is the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistToSegment returns the shortest distance from p to the segment a-b.
// A zero-length segment degrades to the distance to a.
func DistToSegment(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return p.Distance(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / l2
	t = clamp(t, 0, 1)
	return p.Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// DistToPolyline returns the minimum distance from p to any segment formed by
// consecutive points. A single point is treated as a degenerate segment. An
// empty polyline is infinitely far away.
func DistToPolyline(p Point, pts []Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return p.Distance(pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		if d := DistToSegment(p, pts[i-1], pts[i]); d < best {
			best = d
		}
	}
	return best
}

// DistToRect returns the distance from p to the filled rectangle anchored at
// origin with the given signed extents. Points inside yield zero.
func DistToRect(p, origin Point, width, height float64) float64 {
	minX, maxX := ordered(origin.X, origin.X+width)
	minY, maxY := ordered(origin.Y, origin.Y+height)
	q := Point{X: clamp(p.X, minX, maxX), Y: clamp(p.Y, minY, maxY)}
	return p.Distance(q)
}

// PointInRect reports whether p lies within the closed rectangle
// [x0,x1]×[y0,y1]. Bounds may be given in either order.
func PointInRect(p Point, x0, y0, x1, y1 float64) bool {
	minX, maxX := ordered(x0, x1)
	minY, maxY := ordered(y0, y1)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
