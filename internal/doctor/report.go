package doctor

import (
	"fmt"
	"io"

	"github.com/raphi011/nixpm/internal/ui/styles"
)

// reporter renders check lines and tallies their outcomes.
//
// A label is held back until its verdict is known and then written together
// with it, so a spinner drawn on stderr between the two never splits a line.
type reporter struct {
	w       io.Writer
	pending string
	summary Summary
}

func newReporter(w io.Writer) *reporter {
	return &reporter{w: w}
}

func (r *reporter) header(title string) {
	fmt.Fprintln(r.w, styles.HeaderStyle.Render(title))
}

func (r *reporter) section(title string) {
	r.flush()
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, styles.HeaderStyle.Render(title))
}

// label starts a check line. The next verdict completes it.
func (r *reporter) label(format string, args ...any) {
	r.flush()
	r.pending = fmt.Sprintf(format, args...)
}

// pass completes the line with "✓ msg (detail)". Empty parts are omitted.
func (r *reporter) pass(msg, detail string) {
	r.verdict(StatusPass, styles.Pass(msg), detail)
}

func (r *reporter) warn(msg string) {
	r.verdict(StatusWarn, styles.Warn(msg), "")
}

// fail completes the line with "⨯ msg (detail)".
func (r *reporter) fail(msg, detail string) {
	r.verdict(StatusFail, styles.Fail(msg), detail)
}

func (r *reporter) verdict(st Status, rendered, detail string) {
	line := r.pending + rendered
	if detail != "" {
		line += " (" + detail + ")"
	}
	r.pending = ""
	fmt.Fprintln(r.w, line)
	r.summary.record(st)
}

// flush writes a label that never got a verdict.
func (r *reporter) flush() {
	if r.pending == "" {
		return
	}
	fmt.Fprintln(r.w, r.pending)
	r.pending = ""
}

// banner writes the closing line for the tally so far.
func (r *reporter) banner() {
	r.flush()
	fmt.Fprintln(r.w)

	s := r.summary
	switch {
	case s.Failures > 0:
		fmt.Fprintln(r.w, styles.ErrorStyle.Render(fmt.Sprintf("Found %d problem(s)", s.Failures)))
	case s.Warnings > 0:
		fmt.Fprintln(r.w, styles.WarningStyle.Render(fmt.Sprintf("No problems found (%d warning(s))", s.Warnings)))
	default:
		fmt.Fprintln(r.w, styles.SuccessStyle.Render("Everything looks good! 🎉"))
	}
}
