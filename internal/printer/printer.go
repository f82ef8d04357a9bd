// Package printer writes styled status lines for CLI commands.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/colonyops/seqcmp/internal/core/styles"
)

type ctxKey struct{}

// Printer writes icon-prefixed status lines. It is safe for concurrent use.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or a Printer writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

func (p *Printer) line(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintln(p.w, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Successf writes a success line.
func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.PrinterSuccessStyle.Render(styles.IconNotifySuccess) + " " + fmt.Sprintf(format, args...))
}

// Infof writes an informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.PrinterInfoStyle.Render(styles.IconNotifyInfo) + " " + fmt.Sprintf(format, args...))
}

// Warnf writes a warning line.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.PrinterWarnStyle.Render(styles.IconNotifyInfo) + " " + fmt.Sprintf(format, args...))
}

// Errorf writes an error line.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.PrinterErrorStyle.Render(styles.IconNotifyError) + " " + fmt.Sprintf(format, args...))
}

// Success writes a success title followed by a muted detail.
func (p *Printer) Success(title, detail string) {
	p.line(styles.PrinterSuccessStyle.Render(styles.IconNotifySuccess+" "+title) + " " + styles.HelpStyle.Render(detail))
}

// Section writes a section heading.
func (p *Printer) Section(title string) {
	p.line(styles.SectionStyle.Render(title))
}
