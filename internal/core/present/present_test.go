package present

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/compare/comparetest"
)

func statValues(p Presentation) []string {
	out := make([]string, 0, len(p.Stats))
	for _, s := range p.Stats {
		out = append(out, s.Value)
	}
	return out
}

func TestPresent_identical_sequences(t *testing.T) {
	p := Present(comparetest.Identical())

	assert.Equal(t, []string{"100%", "10", "10", "0"}, statValues(p))
	assert.True(t, p.NoDifferences)
	assert.Empty(t, p.Rows)
	assert.Empty(t, p.Notice)
	assert.False(t, p.Truncated())
}

func TestPresent_truncation(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		wantRows   int
		wantNotice bool
	}{
		{name: "one", n: 1, wantRows: 1},
		{name: "exactly max", n: MaxRows, wantRows: MaxRows},
		{name: "one over max", n: MaxRows + 1, wantRows: MaxRows, wantNotice: true},
		{name: "sixty", n: 60, wantRows: MaxRows, wantNotice: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := comparetest.Result(tt.n)
			p := Present(r)

			require.Len(t, p.Rows, tt.wantRows)
			assert.Equal(t, tt.n, p.Total)
			assert.False(t, p.NoDifferences)

			for i, row := range p.Rows {
				assert.Equal(t, r.DifferencesDetail[i].Position, row.Position, "input order")
			}

			if tt.wantNotice {
				want := "Only the first 50 differences are shown. There are " + strconv.Itoa(tt.n) + " differences in total."
				assert.Equal(t, want, p.Notice)
				assert.True(t, p.Truncated())
			} else {
				assert.Empty(t, p.Notice)
			}
		})
	}
}

func TestPresent_idempotent(t *testing.T) {
	r := comparetest.Result(60)

	first := Present(r)
	second := Present(r)

	assert.Equal(t, first, second)
}

func TestPresent_does_not_mutate_input(t *testing.T) {
	r := comparetest.Result(60)
	before := append([]compare.Difference(nil), r.DifferencesDetail...)

	_ = Present(r)

	assert.Equal(t, before, r.DifferencesDetail)
	assert.Len(t, r.DifferencesDetail, 60)
}

func TestPresent_labels(t *testing.T) {
	r := compare.Result{
		DifferencesDetail: []compare.Difference{
			{Position: 3, Seq1Char: "A", Seq2Char: "G", Type: compare.DiffMismatch},
			{Position: 7, Seq1Char: "-", Seq2Char: "T", Type: compare.DiffGap},
		},
	}

	p := Present(r)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "mismatch", p.Rows[0].Label)
	assert.Equal(t, "gap", p.Rows[1].Label)
	assert.Equal(t, compare.DiffGap, p.Rows[1].Type)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "100%", FormatPercent(100))
	assert.Equal(t, "91.67%", FormatPercent(91.67))
	assert.Equal(t, "0%", FormatPercent(0))
	assert.Equal(t, "33.333333%", FormatPercent(33.333333))
}

func TestPresent_visualization_verbatim(t *testing.T) {
	r := comparetest.Result(2)
	assert.Equal(t, r.Visualization, Present(r).Visualization)
}
