// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package interval

import (
	"fmt"
	"iter"
	"slices"

	"github.com/tidwall/btree"
)

// Intersect maps every point to the values of all ranges that contain it.
//
// Internally the inserted ranges are cut into disjoint pieces; every point
// in a piece is covered by the same ranges. Values are listed in the order
// their ranges were inserted, so inserting a tree's nodes in pre-order
// lists the enclosing nodes of a point from the outermost inwards.
//
// A zero value is ready to use.
type Intersect[K Endpoint, V any] struct {
	// Keyed by the end of each piece.
	tree    btree.Map[K, *Entry[K, []V]]
	pending []*Entry[K, []V]
}

// Get returns the piece that contains point. If no range contains point,
// the returned entry has no values.
func (m *Intersect[K, V]) Get(point K) Entry[K, []V] {
	it := m.tree.Iter()
	if !it.Seek(point) || point < it.Value().Start {
		return Entry[K, []V]{}
	}
	return *it.Value()
}

// Entries returns an iterator over the pieces, in order.
func (m *Intersect[K, V]) Entries() iter.Seq[Entry[K, []V]] {
	return func(yield func(Entry[K, []V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(*it.Value()) {
				return
			}
		}
	}
}

// Insert adds [start, end] with the given value, splitting the pieces it
// partially covers. It returns whether the new range was disjoint from
// every range already present.
func (m *Intersect[K, V]) Insert(start, end K, value V) (disjoint bool) {
	checkRange(start, end)

	var prev *Entry[K, []V]
	for piece := range m.overlapping(start, end) {
		if prev == nil && start < piece.Start {
			// The gap before the first overlapped piece.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: start,
				End:   piece.Start - 1,
				Value: []V{value},
			})
		}

		// Pieces split from one another share a backing array, so appends
		// below must copy.
		orig := piece.Value

		if piece.Contains(end) && end < piece.End {
			// Cut off the part past end. It keeps the old values.
			head := &Entry[K, []V]{
				Start: piece.Start,
				End:   end,
				Value: orig,
			}
			piece.Start = end + 1
			m.pending = append(m.pending, head)
			piece = head
		}

		if piece.Contains(start) && piece.Start < start {
			// Cut off the part before start.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: piece.Start,
				End:   start - 1,
				Value: orig,
			})
			piece.Start = start
		}

		piece.Value = append(slices.Clip(orig), value)

		if prev != nil && prev.End+1 < piece.Start {
			// The gap between two overlapped pieces.
			m.pending = append(m.pending, &Entry[K, []V]{
				Start: prev.End + 1,
				End:   piece.Start - 1,
				Value: []V{value},
			})
		}
		prev = piece
	}

	switch {
	case prev == nil:
		m.pending = append(m.pending, &Entry[K, []V]{Start: start, End: end, Value: []V{value}})
	case prev.End < end:
		// The gap after the last overlapped piece.
		m.pending = append(m.pending, &Entry[K, []V]{
			Start: prev.End + 1,
			End:   end,
			Value: []V{value},
		})
	}

	for _, e := range m.pending {
		m.tree.Set(e.End, e)
	}
	clear(m.pending)
	m.pending = m.pending[:0]
	return prev == nil
}

// Format implements [fmt.Formatter].
func (m *Intersect[K, V]) Format(s fmt.State, verb rune) {
	format(s, verb, m.tree.Scan)
}

// overlapping yields the pieces that overlap [start, end], in order.
func (m *Intersect[K, V]) overlapping(start, end K) iter.Seq[*Entry[K, []V]] {
	return func(yield func(*Entry[K, []V]) bool) {
		it := m.tree.Iter()
		// Seek finds the first piece whose end is at least start. Walk
		// forward until a piece begins after end.
		for more := it.Seek(start); more; more = it.Next() {
			if end < it.Value().Start || !yield(it.Value()) {
				return
			}
		}
	}
}
