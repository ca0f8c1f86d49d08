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

// Package seq provides read-only, slice-like views.
//
// Nodes in the CST keep their children in a single slice. Accessors that
// expose a typed subset of those children (the declarations in a body, the
// elements of an array literal) return one of the views in this package
// instead of copying into a new slice.
package seq

import (
	"fmt"
	"iter"
)

// Indexer is a type that can be indexed like a slice.
type Indexer[T any] interface {
	// Len returns the length of this sequence.
	Len() int

	// At returns the element at the given index.
	//
	// Panics if idx < 0 or idx >= Len().
	At(idx int) T
}

// All returns an iterator over the elements in seq, like [slices.All].
func All[T any](seq Indexer[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := seq.Len()
		for i := range n {
			if !yield(i, seq.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in seq, like [slices.Values].
func Values[T any](seq Indexer[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := seq.Len()
		for i := range n {
			if !yield(seq.At(i)) {
				return
			}
		}
	}
}

// ToSlice copies an [Indexer] into a slice.
func ToSlice[T any](seq Indexer[T]) []T {
	out := make([]T, seq.Len())
	for i := range out {
		out[i] = seq.At(i)
	}
	return out
}

// Slice implements [Indexer][T] over a slice of raw values, converting each
// one with Wrap on access.
//
// The first argument given to Wrap is the index of the value in the slice.
type Slice[T, E any] struct {
	Slice []E
	Wrap  func(int, E) T
}

// NewSlice constructs a new [Slice].
//
// This function exists because Go currently will not infer type parameters of
// a type.
func NewSlice[T, E any](slice []E, wrap func(int, E) T) Slice[T, E] {
	return Slice[T, E]{slice, wrap}
}

// Len implements [Indexer].
func (s Slice[T, _]) Len() int {
	return len(s.Slice)
}

// At implements [Indexer].
func (s Slice[T, _]) At(idx int) T {
	return s.Wrap(idx, s.Slice[idx])
}

// Func implements [Indexer][T] using an access function as the underlying
// storage.
type Func[T any] struct {
	Count int
	Get   func(int) T
}

// NewFunc constructs a new [Func].
func NewFunc[T any](count int, get func(int) T) Func[T] {
	return Func[T]{count, get}
}

// Len implements [Indexer].
func (s Func[T]) Len() int {
	return s.Count
}

// At implements [Indexer].
func (s Func[T]) At(idx int) T {
	if idx < 0 || idx >= s.Count {
		panic(fmt.Sprintf("seq: index %d out of range with length %d", idx, s.Count))
	}
	return s.Get(idx)
}
