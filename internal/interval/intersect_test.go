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

package interval_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/protocst/internal/interval"
)

func TestIntersectInsert(t *testing.T) {
	t.Parallel()
	type in struct {
		start, end int
		value      string
	}
	type out = interval.Entry[int, []string]

	tests := []struct {
		name   string
		ranges []in
		want   []out
	}{
		{
			name:   "single",
			ranges: []in{{0, 9, "foo"}},
			want:   []out{{0, 9, []string{"foo"}}},
		},
		{
			name:   "disjoint",
			ranges: []in{{30, 39, "bar"}, {0, 9, "foo"}},
			want: []out{
				{0, 9, []string{"foo"}},
				{30, 39, []string{"bar"}},
			},
		},
		{
			name:   "nested",
			ranges: []in{{0, 20, "file"}, {5, 10, "message"}, {7, 7, "name"}},
			want: []out{
				{0, 4, []string{"file"}},
				{5, 6, []string{"file", "message"}},
				{7, 7, []string{"file", "message", "name"}},
				{8, 10, []string{"file", "message"}},
				{11, 20, []string{"file"}},
			},
		},
		{
			name:   "adjacent children",
			ranges: []in{{0, 9, "parent"}, {0, 4, "a"}, {5, 9, "b"}},
			want: []out{
				{0, 4, []string{"parent", "a"}},
				{5, 9, []string{"parent", "b"}},
			},
		},
		{
			name:   "covering",
			ranges: []in{{0, 9, "foo"}, {30, 39, "bar"}, {-2, 30, "baz"}},
			want: []out{
				{-2, -1, []string{"baz"}},
				{0, 9, []string{"foo", "baz"}},
				{10, 29, []string{"baz"}},
				{30, 30, []string{"bar", "baz"}},
				{31, 39, []string{"bar"}},
			},
		},
		{
			name:   "touching gap",
			ranges: []in{{0, 9, "foo"}, {10, 19, "bar"}, {5, 14, "baz"}},
			want: []out{
				{0, 4, []string{"foo"}},
				{5, 9, []string{"foo", "baz"}},
				{10, 14, []string{"bar", "baz"}},
				{15, 19, []string{"bar"}},
			},
		},
		{
			name:   "unbounded",
			ranges: []in{{0, 9, "foo"}, {30, 39, "bar"}, {29, math.MaxInt, "baz"}},
			want: []out{
				{0, 9, []string{"foo"}},
				{29, 29, []string{"baz"}},
				{30, 39, []string{"bar", "baz"}},
				{40, math.MaxInt, []string{"baz"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := new(interval.Intersect[int, string])
			for _, e := range tt.ranges {
				m.Insert(e.start, e.end, e.value)
			}
			assert.Equal(t, tt.want, slices.Collect(m.Entries()))
		})
	}
}

func TestIntersectGet(t *testing.T) {
	t.Parallel()
	m := new(interval.Intersect[int, string])
	assert.True(t, m.Insert(0, 20, "file"))
	assert.False(t, m.Insert(5, 10, "message"))

	assert.Equal(t, []string{"file", "message"}, m.Get(5).Value)
	assert.Equal(t, []string{"file"}, m.Get(11).Value)
	assert.Nil(t, m.Get(21).Value)
	assert.Nil(t, m.Get(-1).Value)
}
