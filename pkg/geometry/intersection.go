package geometry

import "sort"

// Intersection records a single ray-shape hit at parameter t. Negative t
// values are recorded too; Hit filters them.
type Intersection struct {
	T      float64
	Object Shape
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object Shape) Intersection {
	return Intersection{T: t, Object: object}
}

// Intersections is a collection of hits for one ray, ordered by t once
// Sort has been called
type Intersections []Intersection

// Sort orders the intersections by ascending t. The sort is stable so
// exactly equal t values keep their discovery order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit returns the intersection with the smallest non-negative t, the
// visible surface along the ray. It does not require the collection to be
// sorted. The second return is false when every intersection lies behind
// the ray origin.
func (xs Intersections) Hit() (Intersection, bool) {
	var best Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}
