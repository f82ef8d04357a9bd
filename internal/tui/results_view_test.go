package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/seqcmp/internal/core/compare/comparetest"
	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/pkg/tuitest"
)

func TestRenderResults_Welcome(t *testing.T) {
	out := tuitest.StripANSI(renderResults(nil, 120))
	assert.Contains(t, out, "Select two sequence files")
}

func TestRenderResults_Identical(t *testing.T) {
	p := present.Present(comparetest.Identical())

	out := tuitest.StripANSI(renderResults(&p, 120))

	assert.Contains(t, out, "Statistics")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "No differences found")
	assert.NotContains(t, out, "Position")
}

func TestRenderResults_DifferenceTable(t *testing.T) {
	p := present.Present(comparetest.Result(3))

	out := tuitest.StripANSI(renderResults(&p, 120))

	assert.Contains(t, out, "Differences (3)")
	assert.Contains(t, out, "Position")
	assert.Contains(t, out, "mismatch")
	assert.Contains(t, out, "gap")
	assert.NotContains(t, out, "Only the first")
}

func TestRenderResults_Truncated(t *testing.T) {
	p := present.Present(comparetest.Result(75))

	out := tuitest.StripANSI(renderResults(&p, 120))

	assert.Contains(t, out, "Differences (75)")
	assert.Contains(t, out, p.Notice)

	// header + 50 rows
	table := out[strings.Index(out, "Position"):strings.Index(out, p.Notice)]
	assert.Equal(t, 51, len(strings.Split(strings.TrimSpace(table), "\n")))
}
