// Package interval indexes closed ranges of integers, such as the byte
// ranges that nodes occupy in a source file, for lookup by point.
//
// Map holds ranges that never overlap, which is the shape of the tokens of
// a file. Intersect holds ranges that nest or overlap, which is the shape of
// the nodes of a tree, and answers which of them contain a point.
package interval

import (
	"fmt"

	"golang.org/x/exp/constraints" //nolint:exptostd // cmp.Ordered admits floats.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is a range [Start, End] with both ends inclusive, and the value
// stored for it.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether e contains point.
func (e Entry[K, V]) Contains(point K) bool {
	return e.Start <= point && point <= e.End
}

func checkRange[K Endpoint](start, end K) {
	if start > end {
		panic(fmt.Sprintf("interval: start (%#v) > end (%#v)", start, end))
	}
}

// format prints entries keyed by their end, the way both collections store
// them.
func format[K Endpoint, V any](s fmt.State, verb rune, scan func(func(K, *Entry[K, V]) bool)) {
	fmt.Fprint(s, "{")
	first := true
	scan(func(end K, e *Entry[K, V]) bool {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false
		if e.Start == end {
			fmt.Fprintf(s, "%#v: ", e.Start)
		} else {
			fmt.Fprintf(s, "[%#v, %#v]: ", e.Start, end)
		}
		fmt.Fprintf(s, fmt.FormatString(s, verb), e.Value)
		return true
	})
	fmt.Fprint(s, "}")
}
