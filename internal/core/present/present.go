// Package present turns a comparison result into display structures. It holds
// no state: the same result always yields the same Presentation.
package present

import (
	"fmt"
	"strconv"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

// MaxRows is the number of difference records shown in the table.
const MaxRows = 50

// Stat is one summary statistic.
type Stat struct {
	Label string
	Value string
}

// Row is one rendered difference record.
type Row struct {
	Position int
	Seq1     string
	Seq2     string
	Type     compare.DiffType
	Label    string
}

// Presentation is everything a renderer needs to display a result.
type Presentation struct {
	Stats         []Stat
	Visualization string
	NoDifferences bool
	Rows          []Row
	// Total is the full number of difference records, shown or not.
	Total int
	// Notice is set only when the table is truncated.
	Notice string
}

// Truncated reports whether fewer rows are shown than exist.
func (p Presentation) Truncated() bool {
	return p.Total > len(p.Rows)
}

// Present builds the Presentation for r. It does not modify r.
func Present(r compare.Result) Presentation {
	p := Presentation{
		Stats:         Stats(r),
		Visualization: r.Visualization,
		Total:         len(r.DifferencesDetail),
	}

	if p.Total == 0 {
		p.NoDifferences = true
		return p
	}

	n := min(p.Total, MaxRows)
	p.Rows = make([]Row, 0, n)
	for _, d := range r.DifferencesDetail[:n] {
		p.Rows = append(p.Rows, Row{
			Position: d.Position,
			Seq1:     d.Seq1Char,
			Seq2:     d.Seq2Char,
			Type:     d.Type,
			Label:    d.Type.Label(),
		})
	}

	if p.Total > MaxRows {
		p.Notice = fmt.Sprintf("Only the first %d differences are shown. There are %d differences in total.", MaxRows, p.Total)
	}

	return p
}

// Stats returns the four summary statistics with the server's values
// formatted as-is.
func Stats(r compare.Result) []Stat {
	return []Stat{
		{Label: "Similarity", Value: FormatPercent(r.Similarity)},
		{Label: "Total positions", Value: strconv.Itoa(r.TotalPositions)},
		{Label: "Matches", Value: strconv.Itoa(r.Matches)},
		{Label: "Differences", Value: strconv.Itoa(r.Differences)},
	}
}

// FormatPercent renders v with the shortest exact representation and a
// percent sign; no rounding is applied.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}
