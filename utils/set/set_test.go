// Copyright (C) 2024-2026, StakeVault, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package set

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	require := require.New(t)

	id1 := 1

	s := Set[int]{id1: struct{}{}}

	s.Add(id1)
	require.True(s.Contains(id1))

	s.Remove(id1)
	require.False(s.Contains(id1))

	s.Add(id1)
	require.True(s.Contains(id1))
	require.Len(s, 1)
	require.Equal([]int{id1}, s.List())

	s.Add(id1)
	require.Len(s, 1)

	id2 := 2
	s.Add(id2)
	require.Len(s, 2)
}

func TestOf(t *testing.T) {
	tests := []struct {
		name     string
		elements []int
		expected Set[int]
	}{
		{
			name:     "nil",
			elements: nil,
			expected: Set[int]{},
		},
		{
			name:     "unique elements",
			elements: []int{1, 2, 3},
			expected: Set[int]{1: struct{}{}, 2: struct{}{}, 3: struct{}{}},
		},
		{
			name:     "duplicate elements",
			elements: []int{1, 2, 3, 1, 2, 3},
			expected: Set[int]{1: struct{}{}, 2: struct{}{}, 3: struct{}{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Of(tt.elements...))
		})
	}
}

func TestSetUnion(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2)
	s.Union(Of(2, 3))
	require.True(s.Equals(Of(1, 2, 3)))
}

func TestSetDifference(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3)
	s.Difference(Of(2))
	require.True(s.Equals(Of(1, 3)))
}

func TestSetOverlaps(t *testing.T) {
	require := require.New(t)

	require.True(Of(1, 2).Overlaps(Of(2, 3)))
	require.False(Of(1, 2).Overlaps(Of(3, 4)))
	require.False(Of[int]().Overlaps(Of(1)))
}

func TestSetPop(t *testing.T) {
	require := require.New(t)

	var s Set[int]
	_, ok := s.Pop()
	require.False(ok)

	s = Of(1)
	got, ok := s.Pop()
	require.True(ok)
	require.Equal(1, got)
	require.Empty(s)
}

func TestSetClear(t *testing.T) {
	require := require.New(t)

	s := Of(1, 2, 3)
	s.Clear()
	require.Empty(s)

	s.Add(4)
	require.Len(s, 1)
}

func TestSetMarshalJSON(t *testing.T) {
	require := require.New(t)

	set := Of(2, 1, 3)
	asJSON, err := set.MarshalJSON()
	require.NoError(err)
	// Elements are sorted by their marshalled form.
	require.Equal(`[1,2,3]`, string(asJSON))

	var unmarshaled Set[int]
	require.NoError(json.Unmarshal(asJSON, &unmarshaled))
	require.True(set.Equals(unmarshaled))

	var empty Set[int]
	asJSON, err = empty.MarshalJSON()
	require.NoError(err)
	require.Equal(`[]`, string(asJSON))
}
