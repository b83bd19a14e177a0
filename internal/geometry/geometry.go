// Package geometry provides the 2D line-segment intersection used to locate
// carbon break-even points.
package geometry

// Point is a point in the plane. For break-even curves X is the year and Y
// the accumulated carbon in kg CO2e.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a finite line segment between two points.
type Segment struct {
	A Point
	B Point
}

// Degenerate reports whether the segment has collapsed to a single point.
func (s Segment) Degenerate() bool {
	return s.A == s.B
}

// Intersect returns the intersection of two finite segments.
//
// It returns false when either segment is degenerate, when the segments are
// parallel, or when the crossing of the infinite lines falls outside either
// segment. Collinear segments count as parallel, so overlapping collinear
// segments also return false.
func Intersect(s1, s2 Segment) (Point, bool) {
	if s1.Degenerate() || s2.Degenerate() {
		return Point{}, false
	}

	x1, y1, x2, y2 := s1.A.X, s1.A.Y, s1.B.X, s1.B.Y
	x3, y3, x4, y4 := s2.A.X, s2.A.Y, s2.B.X, s2.B.Y

	denominator := (y4-y3)*(x2-x1) - (x4-x3)*(y2-y1)
	if denominator == 0 {
		return Point{}, false
	}

	ua := ((x4-x3)*(y1-y3) - (y4-y3)*(x1-x3)) / denominator
	ub := ((x2-x1)*(y1-y3) - (y2-y1)*(x1-x3)) / denominator

	// Both parameters must lie on their segments.
	if ua < 0 || ua > 1 || ub < 0 || ub > 1 {
		return Point{}, false
	}

	return Point{
		X: x1 + ua*(x2-x1),
		Y: y1 + ua*(y2-y1),
	}, true
}
