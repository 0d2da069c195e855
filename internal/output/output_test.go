package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/colorprofile"
)

func TestWithPrinter_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		p := NewWithProfile(&bytes.Buffer{}, colorprofile.NoTTY)
		ctx := WithPrinter(context.Background(), p)
		if got := FromContext(ctx); got != p {
			t.Error("FromContext did not return the stored printer")
		}
	})

	t.Run("default printer when not set", func(t *testing.T) {
		t.Parallel()
		p := FromContext(context.Background())
		if p == nil {
			t.Fatal("FromContext returned nil on empty context")
		}
		if p.Writer() == nil {
			t.Error("default printer has no writer")
		}
	})
}

func TestPrinter_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithProfile(&buf, colorprofile.NoTTY)

	p.Print("Reading Nix packages", ": ")
	p.Printf("%s (%d packages found)", "✓", 5)
	p.Println()
	p.Println("done")

	want := "Reading Nix packages: ✓ (5 packages found)\ndone\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrinter_StripsANSIWithoutTTY(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithProfile(&buf, colorprofile.NoTTY)
	p.Print("\x1b[32m✓\x1b[0m")

	if got := buf.String(); got != "✓" {
		t.Errorf("output = %q, want ANSI stripped %q", got, "✓")
	}
}

func TestPrinter_KeepsANSIForTrueColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewWithProfile(&buf, colorprofile.TrueColor)
	p.Print("\x1b[32m✓\x1b[0m")

	if got := buf.String(); !bytes.Contains([]byte(got), []byte("\x1b[")) {
		t.Errorf("output = %q, want escape sequences preserved", got)
	}
}
