// Package printer writes human facing command output with consistent styling.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/taskboard/internal/core/styles"
)

type ctxKey struct{}

// Printer writes styled status lines to an output and an error stream.
type Printer struct {
	out io.Writer
	err io.Writer
}

// New returns a Printer writing to out and err.
func New(out, err io.Writer) *Printer {
	return &Printer{out: out, err: err}
}

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the Printer stored in ctx, or one writing to stdout and stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok && p != nil {
		return p
	}
	return New(os.Stdout, os.Stderr)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Successf writes a line prefixed with a check mark.
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.out, styles.SuccessStyle, "✔", format, args...)
}

// Infof writes a muted informational line.
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.out, styles.HeaderStyle, "•", format, args...)
}

// Warnf writes a warning line to the error stream.
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.err, lipgloss.NewStyle().Foreground(styles.CurrentPalette.Warning), "!", format, args...)
}

// Errorf writes an error line to the error stream.
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.err, styles.ErrorStyle, "✘", format, args...)
}

// Section writes a bold heading followed by a divider.
func (p *Printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out, styles.HeaderStyle.Render(title))
	_, _ = fmt.Fprintln(p.out, styles.DividerStyle.Render(divider(len(title))))
}

// CheckItem, WarnItem and FailItem render one line of a checklist.
func (p *Printer) CheckItem(label, detail string) { p.item(styles.SuccessStyle, "✔", label, detail) }

func (p *Printer) WarnItem(label, detail string) {
	p.item(lipgloss.NewStyle().Foreground(styles.CurrentPalette.Warning), "!", label, detail)
}

func (p *Printer) FailItem(label, detail string) { p.item(styles.ErrorStyle, "✘", label, detail) }

func (p *Printer) item(style lipgloss.Style, icon, label, detail string) {
	if detail == "" {
		_, _ = fmt.Fprintf(p.out, "  %s %s\n", style.Render(icon), label)
		return
	}
	_, _ = fmt.Fprintf(p.out, "  %s %s %s\n", style.Render(icon), label, styles.MutedStyle.Render(detail))
}

func (p *Printer) line(w io.Writer, style lipgloss.Style, icon, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "%s %s\n", style.Render(icon), fmt.Sprintf(format, args...))
}

func divider(n int) string {
	if n < 3 {
		n = 3
	}
	b := make([]byte, 0, n*3)
	for range n {
		b = append(b, "─"...)
	}
	return string(b)
}
