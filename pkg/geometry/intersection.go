package geometry

import (
	"fmt"
	"iter"
	"sort"
)

// Intersection is a t value along a ray and the primitive it hit
type Intersection struct {
	T      float64
	Object *Primitive
}

// NewIntersection creates a new intersection
func NewIntersection(t float64, object *Primitive) Intersection {
	return Intersection{T: t, Object: object}
}

// Equals compares t exactly and the object by identity
func (i Intersection) Equals(other Intersection) bool {
	return i.T == other.T && i.Object == other.Object
}

func (i Intersection) String() string {
	return fmt.Sprintf("Intersection(%g)", i.T)
}

// IntersectionList collects intersections and lazily sorts them in hit order:
// non-negative t ascending, followed by negative t closest to zero first.
type IntersectionList struct {
	items  []Intersection
	sorted bool
}

// NewIntersectionList creates a list holding the given intersections
func NewIntersectionList(items ...Intersection) *IntersectionList {
	l := &IntersectionList{}
	l.Add(items...)
	return l
}

// Add appends intersections and invalidates the sort
func (l *IntersectionList) Add(items ...Intersection) {
	if len(items) == 0 {
		return
	}
	l.items = append(l.items, items...)
	l.sorted = false
}

// Len returns the number of intersections
func (l *IntersectionList) Len() int {
	return len(l.items)
}

// At returns the i-th intersection in the list's current order.
// Call Sort first for hit order.
func (l *IntersectionList) At(i int) Intersection {
	return l.items[i]
}

// IsSorted reports whether the list is known to be in hit order
func (l *IntersectionList) IsSorted() bool {
	return l.sorted
}

// Sort puts the list in hit order. Already sorted lists are left alone.
func (l *IntersectionList) Sort() {
	if l.sorted {
		return
	}
	sort.SliceStable(l.items, func(a, b int) bool {
		return hitOrderLess(l.items[a].T, l.items[b].T)
	})
	l.sorted = true
}

func hitOrderLess(a, b float64) bool {
	switch {
	case a >= 0 && b >= 0:
		return a < b
	case a < 0 && b < 0:
		return a > b
	default:
		return a >= 0
	}
}

// Hit returns the intersection with the smallest non-negative t
func (l *IntersectionList) Hit() (Intersection, bool) {
	l.Sort()
	if len(l.items) == 0 || l.items[0].T < 0 {
		return Intersection{}, false
	}
	return l.items[0], true
}

// ByDistance iterates in strictly ascending t, negatives included, so a
// walk can reconstruct which solids a ray origin already sits inside.
func (l *IntersectionList) ByDistance() iter.Seq[Intersection] {
	l.Sort()
	return func(yield func(Intersection) bool) {
		firstNegative := sort.Search(len(l.items), func(i int) bool {
			return l.items[i].T < 0
		})
		// negatives are stored closest to zero first
		for i := len(l.items) - 1; i >= firstNegative; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
		for i := 0; i < firstNegative; i++ {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}
