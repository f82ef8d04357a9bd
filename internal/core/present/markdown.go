package present

import (
	"fmt"
	"strings"
)

// Markdown renders p as a markdown report.
func Markdown(p Presentation) string {
	var b strings.Builder

	b.WriteString("# Sequence comparison\n\n")

	b.WriteString("| Statistic | Value |\n|---|---|\n")
	for _, s := range p.Stats {
		fmt.Fprintf(&b, "| %s | %s |\n", s.Label, s.Value)
	}

	if v := FlattenVisualization(p.Visualization); v != "" {
		b.WriteString("\n## Alignment\n\n```\n")
		b.WriteString(v)
		b.WriteString("\n```\n")
	}

	if p.NoDifferences {
		b.WriteString("\n## No differences found\n\nThe two sequences match completely.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "\n## Differences (%d)\n\n", p.Total)
	b.WriteString("| Position | Sequence 1 | Sequence 2 | Type |\n|---|---|---|---|\n")
	for _, r := range p.Rows {
		fmt.Fprintf(&b, "| %d | `%s` | `%s` | %s |\n", r.Position, r.Seq1, r.Seq2, r.Label)
	}

	if p.Notice != "" {
		fmt.Fprintf(&b, "\n> %s\n", p.Notice)
	}

	return b.String()
}
