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

// Package intern provides an interning table for identifier text.
//
// Protobuf sources repeat the same handful of names (keywords, scalar type
// names, package components) many times. The lexer stores the text of each
// identifier through a Table so that equal identifiers share one string.
package intern

import (
	"fmt"
	"strings"
	"sync"
)

// ID is an interned string in a particular [Table].
//
// IDs can be compared very cheaply. The zero value of ID always
// corresponds to the empty string.
type ID int32

// String implements [fmt.Stringer].
//
// Note that this will not convert the ID back into a string; to do that, you
// must call [Table.Value].
func (id ID) String() string {
	if id == 0 {
		return `intern.ID("")`
	}
	return fmt.Sprintf("intern.ID(%d)", int(id))
}

// Table is an interning table.
//
// A table can be used to convert strings into [ID]s and back again.
//
// The zero value of Table is empty and ready to use. A Table may be shared
// by lexers running on different goroutines.
type Table struct {
	mu    sync.RWMutex
	index map[string]ID
	table []string
}

// Intern interns the given string into this table.
func (t *Table) Intern(s string) ID {
	if id, ok := t.Query(s); ok {
		return id
	}
	return t.internSlow(s)
}

// Query will query whether s has already been interned.
//
// If s has never been interned, returns false.
func (t *Table) Query(s string) (ID, bool) {
	if s == "" {
		return 0, true
	}

	t.mu.RLock()
	id, ok := t.index[s]
	t.mu.RUnlock()

	return id, ok
}

func (t *Table) internSlow(s string) ID {
	// s usually points into a whole source file; don't keep that alive.
	s = strings.Clone(s)

	t.mu.Lock()
	defer t.mu.Unlock()

	// Someone may have raced us between RUnlock and Lock.
	if id, ok := t.index[s]; ok {
		return id
	}

	t.table = append(t.table, s)

	// The first ID will have value 1. ID 0 is reserved for "".
	id := ID(len(t.table))
	if id < 0 {
		panic(fmt.Sprintf("internal/intern: %d interning IDs exhausted", len(t.table)))
	}

	if t.index == nil {
		t.index = make(map[string]ID)
	}
	t.index[s] = id

	return id
}

// Value converts an [ID] back into its corresponding string.
//
// If id was created by a different [Table], the results are unspecified,
// including potentially a panic.
func (t *Table) Value(id ID) string {
	if id == 0 {
		return ""
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.table[int(id)-1]
}

// Canonical returns the table's copy of s, interning it first if needed.
func (t *Table) Canonical(s string) string {
	return t.Value(t.Intern(s))
}

// Len returns the number of distinct non-empty strings in the table.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.table)
}

// Set is a set of intern IDs.
type Set map[ID]struct{}

// NewSet returns a set holding the given strings, interned into table.
func NewSet(table *Table, keys ...string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s.Add(table, k)
	}
	return s
}

// ContainsID returns whether s contains the given ID.
func (s Set) ContainsID(id ID) bool {
	_, ok := s[id]
	return ok
}

// Contains returns whether s contains the given string.
func (s Set) Contains(table *Table, key string) bool {
	k, ok := table.Query(key)
	if !ok {
		return false
	}
	_, ok = s[k]
	return ok
}

// Add adds a string to s, and returns whether it was added.
func (s Set) Add(table *Table, key string) (inserted bool) {
	k := table.Intern(key)
	_, ok := s[k]
	if !ok {
		s[k] = struct{}{}
	}
	return !ok
}
