package styles

import (
	"net/url"

	"github.com/charmbracelet/x/ansi"
)

// Result markers printed in front of check verdicts
const (
	PassMark = "✓"
	FailMark = "⨯"
	WarnMark = "!"
)

// Pass renders a passing verdict: "✓" followed by msg, if any.
func Pass(msg string) string {
	return SuccessStyle.Render(join(PassMark, msg))
}

// Fail renders a failing verdict: "⨯" followed by msg.
func Fail(msg string) string {
	return ErrorStyle.Render(join(FailMark, msg))
}

// Warn renders a warning verdict: "!" followed by msg.
func Warn(msg string) string {
	return WarningStyle.Render(join(WarnMark, msg))
}

func join(mark, msg string) string {
	if msg == "" {
		return mark
	}
	return mark + " " + msg
}

// FileLink renders path as an OSC 8 hyperlink to file://path.
// Terminals without hyperlink support show the plain path.
func FileLink(path string) string {
	if path == "" {
		return ""
	}
	u := url.URL{Scheme: "file", Path: path}
	return ansi.SetHyperlink(u.String()) + path + ansi.ResetHyperlink()
}
