// Package output provides context-aware output for nixpm.
// Stdout is used for primary output (reports, tables, config).
// Stderr (via log package) is used for diagnostics.
//
// Styled text is written through a [colorprofile.Writer], which downsamples
// or strips ANSI sequences depending on the terminal, NO_COLOR and
// CLICOLOR_FORCE.
package output

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"
)

type ctxKey struct{}

// Printer writes primary output to stdout.
type Printer struct {
	w io.Writer
}

// New creates a Printer that adapts styled output to the profile detected
// for w.
func New(w io.Writer) *Printer {
	return &Printer{w: colorprofile.NewWriter(w, os.Environ())}
}

// NewWithProfile creates a Printer that renders styled output for the given
// profile regardless of the writer. Use colorprofile.NoTTY for plain text.
func NewWithProfile(w io.Writer, p colorprofile.Profile) *Printer {
	return &Printer{w: &colorprofile.Writer{Forward: w, Profile: p}}
}

// WithPrinter attaches a Printer to the context.
func WithPrinter(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext retrieves the Printer from context.
// Returns a Printer writing to os.Stdout if none is attached.
func FromContext(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stdout)
}

// Print writes output without a newline.
func (p *Printer) Print(a ...any) {
	fmt.Fprint(p.w, a...)
}

// Printf writes formatted output.
func (p *Printer) Printf(format string, a ...any) {
	fmt.Fprintf(p.w, format, a...)
}

// Println writes a line of output.
func (p *Printer) Println(a ...any) {
	fmt.Fprintln(p.w, a...)
}

// Writer returns the profile-aware writer.
func (p *Printer) Writer() io.Writer {
	return p.w
}
