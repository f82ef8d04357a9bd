package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

func TestStore_lifecycle(t *testing.T) {
	s := NewStore()

	_, ok := s.Current()
	assert.False(t, ok, "empty before first Set")

	s.Set(compare.Result{Similarity: 50, TotalPositions: 4})
	got, ok := s.Current()
	require.True(t, ok)
	assert.InDelta(t, 50.0, got.Similarity, 0)

	s.Set(compare.Result{Similarity: 75, TotalPositions: 8})
	got, ok = s.Current()
	require.True(t, ok)
	assert.InDelta(t, 75.0, got.Similarity, 0, "replaced wholesale")
	assert.Equal(t, 8, got.TotalPositions)

	s.Clear()
	_, ok = s.Current()
	assert.False(t, ok)
}

func TestStore_Current_returns_copy(t *testing.T) {
	s := NewStore()
	s.Set(compare.Result{Matches: 3})

	got, _ := s.Current()
	got.Matches = 99

	again, _ := s.Current()
	assert.Equal(t, 3, again.Matches)
}

func TestStore_Current_does_not_share_differences(t *testing.T) {
	s := NewStore()
	diffs := []compare.Difference{{Position: 1, Seq1Char: "A", Seq2Char: "-", Type: compare.DiffGap}}
	s.Set(compare.Result{DifferencesDetail: diffs})

	diffs[0].Type = compare.DiffMismatch
	got, _ := s.Current()
	assert.Equal(t, compare.DiffGap, got.DifferencesDetail[0].Type, "caller slice is not retained")

	got.DifferencesDetail[0].Type = compare.DiffMismatch
	again, _ := s.Current()
	assert.Equal(t, compare.DiffGap, again.DifferencesDetail[0].Type, "reader cannot modify the slot")
}

func TestStore_implements_Reader(t *testing.T) {
	var r Reader = NewStore()
	_, ok := r.Current()
	assert.False(t, ok)
}
