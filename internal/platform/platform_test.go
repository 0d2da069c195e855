package platform

import (
	"runtime"
	"testing"
)

func TestCurrent(t *testing.T) {
	t.Parallel()
	if got := Current().OS; got != runtime.GOOS {
		t.Errorf("Current().OS = %q, want %q", got, runtime.GOOS)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		wantErr bool
	}{
		{"darwin", false},
		{"linux", false},
		{"windows", true},
		{"macos", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			p, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && p.OS != tt.in {
				t.Errorf("Parse(%q).OS = %q", tt.in, p.OS)
			}
		})
	}
}

func TestPlatform_IsDarwin(t *testing.T) {
	t.Parallel()
	if !(Platform{OS: Darwin}).IsDarwin() {
		t.Error("darwin IsDarwin() = false")
	}
	if (Platform{OS: Linux}).IsDarwin() {
		t.Error("linux IsDarwin() = true")
	}
}

func TestPlatform_LookupCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		os   string
		want string
	}{
		{Darwin, "which"},
		{Linux, "which"},
		{Windows, "where"},
		{"freebsd", "which"},
	}

	for _, tt := range tests {
		if got := (Platform{OS: tt.os}).LookupCommand(); got != tt.want {
			t.Errorf("Platform{%q}.LookupCommand() = %q, want %q", tt.os, got, tt.want)
		}
	}
}
