package tui

import (
	"fmt"
	"strconv"
	"strings"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

const welcomeText = "Select two sequence files or switch to text mode and paste two sequences, then press compare."

// Column widths of the differences table.
const (
	colPosition = 10
	colChar     = 8
	colType     = 10
)

// renderResults renders a presentation for the results viewport. A nil
// presentation renders the welcome message.
func renderResults(p *present.Presentation, width int) string {
	if p == nil {
		return styles.WelcomeStyle.Width(max(width, 20)).Render(welcomeText)
	}

	sections := []string{
		styles.SectionStyle.Render("Statistics"),
		renderStats(p.Stats),
		styles.SectionStyle.Render("Alignment"),
		styles.VisualizationStyle.Render(present.FlattenVisualization(p.Visualization)),
		styles.SectionStyle.Render(differencesTitle(p)),
	}

	if p.NoDifferences {
		sections = append(sections, styles.NoDifferencesStyle.Render(styles.IconNotifySuccess+" No differences found, the sequences are identical"))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	sections = append(sections, renderDifferenceTable(p.Rows))
	if p.Notice != "" {
		sections = append(sections, "", styles.TruncationNoteStyle.Render(p.Notice))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func differencesTitle(p *present.Presentation) string {
	if p.NoDifferences {
		return "Differences"
	}
	return fmt.Sprintf("Differences (%d)", p.Total)
}

func renderStats(stats []present.Stat) string {
	boxes := make([]string, 0, len(stats))
	for _, s := range stats {
		boxes = append(boxes, styles.StatBoxStyle.Render(lipgloss.JoinVertical(
			lipgloss.Center,
			styles.StatValueStyle.Render(s.Value),
			styles.StatLabelStyle.Render(s.Label),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func renderDifferenceTable(rows []present.Row) string {
	var b strings.Builder

	b.WriteString(styles.TableHeaderStyle.Render(
		pad("Position", colPosition) + pad("Seq1", colChar) + pad("Seq2", colChar) + pad("Type", colType),
	))

	for _, r := range rows {
		style := diffStyle(r.Type)
		b.WriteString("\n")
		b.WriteString(styles.TableCellStyle.Render(pad(strconv.Itoa(r.Position), colPosition)))
		b.WriteString(style.Render(pad(r.Seq1, colChar)))
		b.WriteString(style.Render(pad(r.Seq2, colChar)))
		b.WriteString(style.Render(pad(r.Label, colType)))
	}

	return b.String()
}

func diffStyle(t compare.DiffType) lipgloss.Style {
	switch t {
	case compare.DiffMismatch:
		return styles.MismatchStyle
	case compare.DiffGap:
		return styles.GapStyle
	default:
		return styles.UnknownDiffStyle
	}
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s + " "
}
