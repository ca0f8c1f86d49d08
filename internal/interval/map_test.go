package interval_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/protocst/internal/interval"
)

func TestMapInsert(t *testing.T) {
	t.Parallel()
	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r
		want   string // If not "", the overlap reported for the last range.
	}{
		{name: "empty", ranges: []r{{0, 9, "foo"}}},
		{name: "after", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}}},
		{name: "before", ranges: []r{{30, 39, "bar"}, {0, 9, "foo"}}},
		{name: "between", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {10, 29, "baz"}}},
		{name: "inside", ranges: []r{{0, 9, "foo"}, {1, 2, "baz"}}, want: "foo"},
		{name: "same", ranges: []r{{0, 9, "foo"}, {0, 9, "baz"}}, want: "foo"},
		{name: "tail", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {9, 29, "baz"}}, want: "foo"},
		{name: "head", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {20, 32, "baz"}}, want: "bar"},
		{name: "around", ranges: []r{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 30, "baz"}}, want: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := new(interval.Map[int, string])
			for i, e := range tt.ranges {
				overlap, ok := m.Insert(e.start, e.end, e.value)
				if i < len(tt.ranges)-1 || tt.want == "" {
					require.True(t, ok, "%v", m)
				} else {
					assert.False(t, ok)
					assert.Equal(t, tt.want, overlap.Value)
				}
			}
		})
	}
}

func TestMapGet(t *testing.T) {
	t.Parallel()
	m := new(interval.Map[int, string])
	m.Insert(0, 5, "syntax")
	m.Insert(7, 7, "=")
	m.Insert(9, 16, `"proto3"`)

	e, ok := m.Get(3)
	assert.True(t, ok)
	assert.Equal(t, interval.Entry[int, string]{Start: 0, End: 5, Value: "syntax"}, e)
	e, ok = m.Get(7)
	assert.True(t, ok)
	assert.Equal(t, "=", e.Value)
	_, ok = m.Get(6)
	assert.False(t, ok)
	_, ok = m.Get(17)
	assert.False(t, ok)

	assert.Equal(t, 3, m.Len())
	var values []string
	for e := range m.All() {
		values = append(values, e.Value)
	}
	assert.Equal(t, []string{"syntax", "=", `"proto3"`}, values)
	assert.Equal(t, `{[0, 5]: "syntax", 7: "=", [9, 16]: "\"proto3\""}`, fmt.Sprintf("%q", m))
}

func TestMapInsertPanics(t *testing.T) {
	t.Parallel()
	m := new(interval.Map[int, string])
	assert.Panics(t, func() { m.Insert(5, 4, "x") })
	assert.Empty(t, slices.Collect(m.All()))
}
