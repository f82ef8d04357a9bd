package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"

	"github.com/colonyops/seqcmp/internal/core/present"
	"github.com/colonyops/seqcmp/internal/core/styles"
)

// Report output formats.
const (
	formatAuto     = "auto"
	formatMarkdown = "markdown"
	formatPretty   = "pretty"
)

const defaultWrapWidth = 100

// writeReport renders p as markdown. The pretty format styles it with glamour
// using the active theme; auto picks pretty when w is a terminal.
func writeReport(w io.Writer, p present.Presentation, format string) error {
	md := present.Markdown(p)

	width, pretty := defaultWrapWidth, format == formatPretty
	if format == formatAuto {
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			pretty = true
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
	}

	if !pretty {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func validateFormat(format string) error {
	switch format {
	case formatAuto, formatMarkdown, formatPretty:
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected %s, %s or %s)", format, formatAuto, formatMarkdown, formatPretty)
	}
}
