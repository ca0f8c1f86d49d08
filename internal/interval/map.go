package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
)

// Map maps disjoint ranges to values.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keyed by the end of each range, so that a seek for a point lands on
	// the only range that could contain it.
	tree btree.Map[K, *Entry[K, V]]
}

// Len returns the number of ranges in m.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the range that contains point, if there is one.
func (m *Map[K, V]) Get(point K) (Entry[K, V], bool) {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		// Seek already established point <= end.
		return Entry[K, V]{}, false
	}
	return *it.Value(), true
}

// All returns an iterator over the ranges of m, in order.
func (m *Map[K, V]) All() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert adds [start, end] to m. If the new range overlaps a range already
// in m, m is not changed, and the overlapping range with the least start is
// returned along with false.
func (m *Map[K, V]) Insert(start, end K, value V) (Entry[K, V], bool) {
	checkRange(start, end)

	// With [a, b] the new range and [c, d] the first range with a <= d,
	// the new range fits exactly when there is no such range or b < c.
	it := m.tree.Iter()
	if !it.Seek(start) || end < it.Value().Start {
		m.tree.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
		return Entry[K, V]{}, true
	}

	// [c, d] overlaps [a, b]. A range before it can't also overlap,
	// because its end is below a, so [c, d] has the least start.
	return *it.Value(), false
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, verb rune) {
	format(s, verb, m.tree.Scan)
}
