package nix

import "strings"

type tokenKind int

const (
	tokEOF     tokenKind = iota
	tokIdent             // identifiers and keywords
	tokNumber            // 42, 1.5
	tokString            // "..." including interpolations
	tokIndString         // ''...'' including interpolations
	tokPath              // ./foo, /etc/x, ~/x, <nixpkgs>
	tokURI               // https://example.org
	tokInterp            // ${ ... } outside a string (dynamic attribute)
	tokPunct             // { } [ ] ( ) ; = . , : @
	tokOp                // operators, including ? and ...
)

var kindNames = map[tokenKind]string{
	tokEOF:       "end of file",
	tokIdent:     "identifier",
	tokNumber:    "number",
	tokString:    "string",
	tokIndString: "string",
	tokPath:      "path",
	tokURI:       "uri",
	tokInterp:    "interpolation",
	tokPunct:     "punctuation",
	tokOp:        "operator",
}

type token struct {
	kind  tokenKind
	text  string
	start int // byte offset of first character
	end   int // byte offset after last character
}

// is reports whether t is the punctuation, operator or identifier s.
func (t token) is(s string) bool {
	return (t.kind == tokPunct || t.kind == tokOp || t.kind == tokIdent) && t.text == s
}

func (t token) describe() string {
	if t.kind == tokEOF {
		return kindNames[tokEOF]
	}
	return kindNames[t.kind] + " " + quoteShort(t.text)
}

func quoteShort(s string) string {
	if len(s) > 20 {
		s = s[:20] + "…"
	}
	return "'" + s + "'"
}

var twoCharOps = []string{"==", "!=", "<=", ">=", "&&", "||", "->", "++", "//", "|>", "<|"}

type lexer struct {
	src    string
	pos    int
	tokens []token
}

// lex splits src into tokens, dropping whitespace and comments.
func lex(src string) ([]token, error) {
	l := &lexer{src: src}
	for {
		if err := l.skipSpaceAndComments(); err != nil {
			return nil, err
		}
		if l.pos >= len(l.src) {
			l.tokens = append(l.tokens, token{kind: tokEOF, start: l.pos, end: l.pos})
			return l.tokens, nil
		}
		if err := l.next(); err != nil {
			return nil, err
		}
	}
}

func (l *lexer) emit(kind tokenKind, end int) {
	l.tokens = append(l.tokens, token{kind: kind, text: l.src[l.pos:end], start: l.pos, end: end})
	l.pos = end
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++
		case c == '#':
			if nl := strings.IndexByte(l.src[l.pos:], '\n'); nl >= 0 {
				l.pos += nl + 1
			} else {
				l.pos = len(l.src)
			}
		case strings.HasPrefix(l.src[l.pos:], "/*"):
			end := strings.Index(l.src[l.pos+2:], "*/")
			if end < 0 {
				return newSyntaxError(l.src, l.pos, "unterminated comment")
			}
			l.pos += 2 + end + 2
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) next() error {
	src, i := l.src, l.pos
	c := src[i]

	switch {
	case c == '"':
		end, err := scanString(src, i)
		if err != nil {
			return err
		}
		l.emit(tokString, end)
		return nil
	case strings.HasPrefix(src[i:], "''"):
		end, err := scanIndString(src, i)
		if err != nil {
			return err
		}
		l.emit(tokIndString, end)
		return nil
	case strings.HasPrefix(src[i:], "${"):
		end, err := scanInterp(src, i)
		if err != nil {
			return err
		}
		l.emit(tokInterp, end)
		return nil
	case strings.HasPrefix(src[i:], "..."):
		l.emit(tokOp, i+3)
		return nil
	}

	if end := matchPath(src, i); end > 0 {
		l.emit(tokPath, end)
		return nil
	}
	if end := matchSearchPath(src, i); end > 0 {
		l.emit(tokPath, end)
		return nil
	}
	if end := matchURI(src, i); end > 0 {
		l.emit(tokURI, end)
		return nil
	}

	switch {
	case isIdentStart(c):
		j := i + 1
		for j < len(src) && isIdentChar(src[j]) {
			j++
		}
		l.emit(tokIdent, j)
		return nil
	case isDigit(c), c == '.' && i+1 < len(src) && isDigit(src[i+1]):
		l.emit(tokNumber, scanNumber(src, i))
		return nil
	}

	for _, op := range twoCharOps {
		if strings.HasPrefix(src[i:], op) {
			l.emit(tokOp, i+2)
			return nil
		}
	}

	switch c {
	case '{', '}', '[', ']', '(', ')', ';', '=', '.', ',', ':', '@':
		l.emit(tokPunct, i+1)
		return nil
	case '+', '-', '*', '/', '<', '>', '!', '?':
		l.emit(tokOp, i+1)
		return nil
	}

	return newSyntaxError(src, i, "unexpected character %q", c)
}

// scanString returns the offset after the closing quote of the "..." string
// starting at i.
func scanString(src string, i int) (int, error) {
	start := i
	i++
	for i < len(src) {
		switch {
		case src[i] == '\\':
			i += 2
		case src[i] == '"':
			return i + 1, nil
		case strings.HasPrefix(src[i:], "${"):
			end, err := scanInterp(src, i)
			if err != nil {
				return 0, err
			}
			i = end
		default:
			i++
		}
	}
	return 0, newSyntaxError(src, start, "unterminated string")
}

// scanIndString returns the offset after the closing '' of the indented
// string starting at i.
func scanIndString(src string, i int) (int, error) {
	start := i
	i += 2
	for i < len(src) {
		switch {
		case strings.HasPrefix(src[i:], "'''"), strings.HasPrefix(src[i:], "''$"):
			i += 3
		case strings.HasPrefix(src[i:], "''\\"):
			i += 4
		case strings.HasPrefix(src[i:], "''"):
			return i + 2, nil
		case strings.HasPrefix(src[i:], "${"):
			end, err := scanInterp(src, i)
			if err != nil {
				return 0, err
			}
			i = end
		default:
			i++
		}
	}
	return 0, newSyntaxError(src, start, "unterminated indented string")
}

// scanInterp returns the offset after the } closing the ${ at i.
func scanInterp(src string, i int) (int, error) {
	start := i
	i += 2
	depth := 1
	for i < len(src) {
		switch {
		case src[i] == '{':
			depth++
			i++
		case src[i] == '}':
			depth--
			i++
			if depth == 0 {
				return i, nil
			}
		case src[i] == '"':
			end, err := scanString(src, i)
			if err != nil {
				return 0, err
			}
			i = end
		case strings.HasPrefix(src[i:], "''"):
			end, err := scanIndString(src, i)
			if err != nil {
				return 0, err
			}
			i = end
		case src[i] == '#':
			if nl := strings.IndexByte(src[i:], '\n'); nl >= 0 {
				i += nl + 1
			} else {
				i = len(src)
			}
		default:
			i++
		}
	}
	return 0, newSyntaxError(src, start, "unterminated interpolation")
}

// matchPath matches relative, absolute and home paths:
// [pathchars]*(/[pathchars]+)+ or ~(/[pathchars]+)+.
// Returns the end offset, or -1.
func matchPath(src string, i int) int {
	j := i
	if src[j] == '~' {
		j++
	} else {
		for j < len(src) && isPathChar(src[j]) {
			j++
		}
	}

	segments := 0
	for j+1 < len(src) && src[j] == '/' && isPathChar(src[j+1]) {
		j++
		for j < len(src) && isPathChar(src[j]) {
			j++
		}
		segments++
	}
	if segments == 0 {
		return -1
	}
	return j
}

// matchSearchPath matches <nixpkgs> style lookup paths.
func matchSearchPath(src string, i int) int {
	if src[i] != '<' {
		return -1
	}
	j := i + 1
	for j < len(src) && (isPathChar(src[j]) || src[j] == '/') {
		j++
	}
	if j == i+1 || j >= len(src) || src[j] != '>' {
		return -1
	}
	return j + 1
}

// matchURI matches scheme:rest URIs as Nix does (no whitespace after ':').
func matchURI(src string, i int) int {
	if !isLetter(src[i]) {
		return -1
	}
	j := i + 1
	for j < len(src) && (isLetter(src[j]) || isDigit(src[j]) || strings.IndexByte("+-.", src[j]) >= 0) {
		j++
	}
	if j+1 >= len(src) || src[j] != ':' || !isURIChar(src[j+1]) {
		return -1
	}
	j++
	for j < len(src) && isURIChar(src[j]) {
		j++
	}
	return j
}

func scanNumber(src string, i int) int {
	j := i
	for j < len(src) && isDigit(src[j]) {
		j++
	}
	if j+1 < len(src) && src[j] == '.' && isDigit(src[j+1]) {
		j++
		for j < len(src) && isDigit(src[j]) {
			j++
		}
	}
	if j < len(src) && (src[j] == 'e' || src[j] == 'E') {
		k := j + 1
		if k < len(src) && (src[k] == '+' || src[k] == '-') {
			k++
		}
		if k < len(src) && isDigit(src[k]) {
			j = k
			for j < len(src) && isDigit(src[j]) {
				j++
			}
		}
	}
	return j
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentStart(c byte) bool {
	return isLetter(c) || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || isDigit(c) || c == '\'' || c == '-'
}

func isPathChar(c byte) bool {
	return isLetter(c) || isDigit(c) || strings.IndexByte("._-+", c) >= 0
}

func isURIChar(c byte) bool {
	return isLetter(c) || isDigit(c) || strings.IndexByte("%/?:@&=+$,-_.!~*'", c) >= 0
}
