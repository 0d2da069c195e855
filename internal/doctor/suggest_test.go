package doctor

import (
	"errors"
	"testing"
)

func TestSuggestAttribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		want  string
		names []string
		exp   string
	}{
		{"missing trailing s", "environment.systemPackages", []string{"environment", "environment.systemPackage"}, "environment.systemPackage"},
		{"extra characters", "homebrew.casks", []string{"homebrew", "homebrew.enable", "homebrew.casksList"}, "homebrew.casksList"},
		{"parents are not suggested", "homebrew.brews", []string{"homebrew"}, ""},
		{"unrelated", "homebrew.brews", []string{"homebrew", "homebrew.casks"}, ""},
		{"too short", "environment.systemPackages", []string{"env"}, ""},
		{"nothing bound", "environment.systemPackages", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := suggestAttribute(tt.want, tt.names); got != tt.exp {
				t.Errorf("suggestAttribute(%q, %q) = %q, want %q", tt.want, tt.names, got, tt.exp)
			}
		})
	}
}

func TestExplainParseError(t *testing.T) {
	t.Parallel()

	other := errors.New("boom")
	if got := explainParseError("{ }", other); got != "boom" {
		t.Errorf("explainParseError(other) = %q, want %q", got, "boom")
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()

	var s Summary
	for _, st := range []Status{StatusPass, StatusPass, StatusWarn, StatusFail} {
		s.record(st)
	}
	if s != (Summary{Passed: 2, Warnings: 1, Failures: 1}) {
		t.Errorf("summary = %+v", s)
	}
	if s.Total() != 4 {
		t.Errorf("Total() = %d, want 4", s.Total())
	}
	if s.Healthy() {
		t.Error("Healthy() = true with a failure")
	}
	if !(Summary{Warnings: 3}).Healthy() {
		t.Error("warnings alone should be healthy")
	}

	for st, want := range map[Status]string{StatusPass: "pass", StatusWarn: "warn", StatusFail: "fail", Status(9): "Status(9)"} {
		if got := st.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}
