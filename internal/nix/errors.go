package nix

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAttrSet is returned when the file does not evaluate to an
	// attribute set (after looking through lambdas, let, with and parens).
	ErrNoAttrSet = errors.New("no top-level attribute set found")

	// ErrNotList is returned when an attribute exists but is not a list.
	ErrNotList = errors.New("value is not a list")
)

// SyntaxError reports malformed Nix source.
type SyntaxError struct {
	Line int // 1-based
	Col  int // 1-based, in bytes
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: %s", e.Line, e.Col, e.Msg)
}

// AttributeError reports an attribute path that is not bound in the file.
type AttributeError struct {
	Attribute string
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("attribute %q not found", e.Attribute)
}

// newSyntaxError builds a SyntaxError for byte offset pos in src.
func newSyntaxError(src string, pos int, format string, args ...any) *SyntaxError {
	if pos > len(src) {
		pos = len(src)
	}
	line, col := 1, 1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &SyntaxError{Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}
