// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	DividerStyle lipgloss.Style

	// Layout.
	TitleStyle        lipgloss.Style
	SectionStyle      lipgloss.Style
	HelpStyle         lipgloss.Style
	HelpKeyStyle      lipgloss.Style
	WelcomeStyle      lipgloss.Style
	ModeActiveStyle   lipgloss.Style
	ModeInactiveStyle lipgloss.Style

	// Inputs.
	FieldStyle        lipgloss.Style
	FieldFocusedStyle lipgloss.Style
	FieldLabelStyle   lipgloss.Style

	// Request state.
	BannerStyle  lipgloss.Style
	LoadingStyle lipgloss.Style

	// Results.
	StatLabelStyle      lipgloss.Style
	StatValueStyle      lipgloss.Style
	StatBoxStyle        lipgloss.Style
	VisualizationStyle  lipgloss.Style
	NoDifferencesStyle  lipgloss.Style
	TableHeaderStyle    lipgloss.Style
	TableCellStyle      lipgloss.Style
	MismatchStyle       lipgloss.Style
	GapStyle            lipgloss.Style
	UnknownDiffStyle    lipgloss.Style
	TruncationNoteStyle lipgloss.Style

	// Notifications.
	ToastSuccessStyle lipgloss.Style
	ToastInfoStyle    lipgloss.Style

	// CLI printer
	PrinterSuccessStyle lipgloss.Style
	PrinterInfoStyle    lipgloss.Style
	PrinterWarnStyle    lipgloss.Style
	PrinterErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginTop(1)
	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
	WelcomeStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(1, 2)
	ModeActiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	ModeInactiveStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(ColorSurface).
		Foreground(ColorMuted)

	FieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)

	BannerStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(ColorError).
		PaddingLeft(1)
	LoadingStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	StatValueStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	StatBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Padding(0, 2).
		MarginRight(1)
	VisualizationStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	NoDifferencesStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	TableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	TableCellStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	MismatchStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	GapStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)
	UnknownDiffStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TruncationNoteStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Italic(true)

	ToastSuccessStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSuccess).
		Foreground(ColorForeground).
		Padding(0, 1)
	ToastInfoStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Foreground(ColorForeground).
		Padding(0, 1)

	PrinterSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	PrinterInfoStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	PrinterWarnStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	PrinterErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
// The comparison report uses headings, tables, code blocks and quotes, so
// those are the elements recolored.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)
	warning := colorHexPtr(ColorWarning)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = secondary

	cfg.BlockQuote.Color = warning
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted
	cfg.Table.Color = fg

	return cfg
}
