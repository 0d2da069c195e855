package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestPrintf(t *testing.T) {
	t.Parallel()

	t.Run("writes formatted output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Printf("Warning: %s (%d)", "config", 3)
		if got := buf.String(); got != "Warning: config (3)" {
			t.Errorf("Printf output = %q, want %q", got, "Warning: config (3)")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Printf("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Printf wrote %q when quiet", buf.String())
		}
	})
}

func TestPrintln(t *testing.T) {
	t.Parallel()

	t.Run("writes line output", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Println("copied", "report")
		if got := buf.String(); got != "copied report\n" {
			t.Errorf("Println output = %q, want %q", got, "copied report\n")
		}
	})

	t.Run("suppressed when quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, true)
		l.Println("should not appear")
		if buf.Len() != 0 {
			t.Errorf("Println wrote %q when quiet", buf.String())
		}
	})
}

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verbose bool
		quiet   bool
		dir     string
		cmd     string
		args    []string
		want    string // substring; empty means no output expected
	}{
		{"verbose with dir", true, false, "/etc/nix-config", "git", []string{"status", "--porcelain"}, "[/etc/nix-config] $ git status --porcelain (250ms)"},
		{"verbose without dir", true, false, "", "which", []string{"nix"}, "$ which nix (250ms)"},
		{"verbose without args", true, false, "", "make", nil, "$ make (250ms)"},
		{"not verbose", false, false, "/tmp", "git", []string{"status"}, ""},
		{"quiet overrides verbose", true, true, "/tmp", "git", []string{"status"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, tt.quiet)
			done := l.Command(tt.dir, tt.cmd, tt.args...)
			done(250 * time.Millisecond)

			got := buf.String()
			if tt.want == "" {
				if got != "" {
					t.Errorf("Command wrote %q, want no output", got)
				}
				return
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("Command output = %q, want to contain %q", got, tt.want)
			}
		})
	}
}

func TestDebug(t *testing.T) {
	t.Parallel()

	t.Run("verbose key-val format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("loaded config", "path", "/home/me/.config/nixpm/config.toml", "timeout", "2m")
		got := buf.String()
		if !strings.HasPrefix(got, "loaded config") {
			t.Errorf("Debug output = %q, want message prefix", got)
		}
		if !strings.Contains(got, "path=/home/me/.config/nixpm/config.toml") {
			t.Errorf("Debug output = %q, want to contain path", got)
		}
		if !strings.Contains(got, "timeout=2m") {
			t.Errorf("Debug output = %q, want to contain timeout=2m", got)
		}
	})

	t.Run("odd keyvals drops last", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, true, false)
		l.Debug("msg", "os", "darwin", "dangling")
		got := buf.String()
		if !strings.Contains(got, "os=darwin") {
			t.Errorf("Debug output = %q, want to contain os=darwin", got)
		}
		if strings.Contains(got, "dangling") {
			t.Errorf("Debug output = %q, should not contain dangling key", got)
		}
	})

	t.Run("not verbose is silent", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		l := New(&buf, false, false)
		l.Debug("should not appear", "key", "val")
		if buf.Len() != 0 {
			t.Errorf("Debug wrote %q when not verbose", buf.String())
		}
	})
}

func TestIsVerbose_IsQuiet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		verbose     bool
		quiet       bool
		wantVerbose bool
		wantQuiet   bool
	}{
		{"verbose only", true, false, true, false},
		{"quiet only", false, true, false, true},
		{"both", true, true, false, true},
		{"neither", false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l := New(io.Discard, tt.verbose, tt.quiet)
			if got := l.IsVerbose(); got != tt.wantVerbose {
				t.Errorf("IsVerbose() = %v, want %v", got, tt.wantVerbose)
			}
			if got := l.IsQuiet(); got != tt.wantQuiet {
				t.Errorf("IsQuiet() = %v, want %v", got, tt.wantQuiet)
			}
		})
	}
}

func TestWithLogger_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		l := New(&bytes.Buffer{}, true, false)
		ctx := WithLogger(context.Background(), l)
		if got := FromContext(ctx); got != l {
			t.Error("FromContext did not return the stored logger")
		}
	})

	t.Run("fallback discard logger", func(t *testing.T) {
		t.Parallel()
		l := FromContext(context.Background())
		if l == nil {
			t.Fatal("FromContext returned nil for empty context")
		}
		l.Printf("should not appear anywhere")
		l.Debug("should not appear anywhere")
		if l.Writer() != io.Discard {
			t.Error("fallback logger should write to io.Discard")
		}
	})
}
