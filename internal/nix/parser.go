package nix

type exprKind int

const (
	exprOther exprKind = iota
	exprAttrSet
	exprList
	exprLambda
	exprLet
	exprWith
	exprAssert
	exprParen
)

// expr is the parsed shape of an expression. Only the forms needed to locate
// attribute sets and lists are kept structured; everything else is exprOther
// with its source span.
type expr struct {
	kind     exprKind
	start    int
	end      int
	bindings []binding // exprAttrSet, exprLet
	items    []*expr   // exprList
	body     *expr     // exprLambda, exprLet, exprWith, exprAssert, exprParen
}

type binding struct {
	path  []string
	value *expr // nil for inherit
}

type parser struct {
	src  string
	toks []token
	pos  int
}

// parse parses a complete Nix file.
func parse(src string) (*expr, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &parser{src: src, toks: toks}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %s after expression", t.describe())
	}
	return e, nil
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) peekAt(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) prevEnd() int {
	if p.pos == 0 {
		return 0
	}
	return p.toks[p.pos-1].end
}

func (p *parser) expect(s string) (token, error) {
	t := p.peek()
	if !t.is(s) {
		return t, p.errorf(t, "expected '%s', got %s", s, t.describe())
	}
	return p.advance(), nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return newSyntaxError(p.src, t.start, format, args...)
}

func (p *parser) parseExpr() (*expr, error) {
	t := p.peek()

	switch {
	case t.kind == tokIdent && p.peekAt(1).is(":"):
		p.advance()
		p.advance()
		return p.wrap(exprLambda, t.start)
	case t.kind == tokIdent && p.peekAt(1).is("@") && p.peekAt(2).is("{"):
		p.advance()
		p.advance()
		if err := p.skipPattern(); err != nil {
			return nil, err
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		return p.wrap(exprLambda, t.start)
	case t.is("{") && p.isPatternLambda():
		if err := p.skipPattern(); err != nil {
			return nil, err
		}
		if p.peek().is("@") {
			p.advance()
			if _, err := p.expectIdent(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
		return p.wrap(exprLambda, t.start)
	case t.is("let") && !p.peekAt(1).is("{"):
		p.advance()
		bindings, err := p.parseBindings("in")
		if err != nil {
			return nil, err
		}
		p.advance() // in
		e, err := p.wrap(exprLet, t.start)
		if err != nil {
			return nil, err
		}
		e.bindings = bindings
		return e, nil
	case t.is("with"), t.is("assert"):
		p.advance()
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		if _, err := p.expect(";"); err != nil {
			return nil, err
		}
		kind := exprWith
		if t.text == "assert" {
			kind = exprAssert
		}
		return p.wrap(kind, t.start)
	case t.is("if"):
		p.advance()
		for _, kw := range []string{"then", "else"} {
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
			if _, err := p.expect(kw); err != nil {
				return nil, err
			}
		}
		if _, err := p.parseExpr(); err != nil {
			return nil, err
		}
		return &expr{kind: exprOther, start: t.start, end: p.prevEnd()}, nil
	}

	return p.parseOp()
}

// wrap parses the body of a prefix form that started at start.
func (p *parser) wrap(kind exprKind, start int) (*expr, error) {
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &expr{kind: kind, start: start, end: body.end, body: body}, nil
}

func (p *parser) expectIdent() (token, error) {
	t := p.peek()
	if t.kind != tokIdent {
		return t, p.errorf(t, "expected identifier, got %s", t.describe())
	}
	return p.advance(), nil
}

// isPatternLambda reports whether the { at the current position opens a
// function argument pattern rather than an attribute set.
func (p *parser) isPatternLambda() bool {
	next := p.peekAt(1)
	switch {
	case next.is("}"):
		after := p.peekAt(2)
		return after.is(":") || after.is("@")
	case next.is("..."):
		return true
	case next.kind == tokIdent:
		after := p.peekAt(2)
		return after.is(",") || after.is("?") || (after.is("}") && (p.peekAt(3).is(":") || p.peekAt(3).is("@")))
	}
	return false
}

// skipPattern consumes { a, b ? default, ... }.
func (p *parser) skipPattern() error {
	if _, err := p.expect("{"); err != nil {
		return err
	}
	for {
		t := p.peek()
		switch {
		case t.is("}"):
			p.advance()
			return nil
		case t.is("..."):
			p.advance()
		case t.kind == tokIdent:
			p.advance()
			if p.peek().is("?") {
				p.advance()
				if _, err := p.parseExpr(); err != nil {
					return err
				}
			}
		default:
			return p.errorf(t, "unexpected %s in function arguments", t.describe())
		}
		if p.peek().is(",") {
			p.advance()
		} else if !p.peek().is("}") {
			t := p.peek()
			return p.errorf(t, "expected ',' or '}' in function arguments, got %s", t.describe())
		}
	}
}

// parseOp parses a sequence of operands joined by operators or function
// application. It does not build a tree; anything but a lone operand is
// exprOther.
func (p *parser) parseOp() (*expr, error) {
	start := p.peek().start
	var operands []*expr
	needOperand := true
	count := 0

	for {
		t := p.peek()
		switch {
		case t.is("?"):
			if needOperand {
				return nil, p.errorf(t, "unexpected %s", t.describe())
			}
			// attribute test: e ? a.b
			p.advance()
			if _, err := p.parseAttrPath(); err != nil {
				return nil, err
			}
			count++
			continue
		case t.kind == tokOp && t.text != "...":
			p.advance()
			needOperand = true
			count++
			continue
		case needOperand && count > 0 && startsPrefixForm(t):
			// a ++ with pkgs; [ ... ] binds the rest of the expression
			if _, err := p.parseExpr(); err != nil {
				return nil, err
			}
			return &expr{kind: exprOther, start: start, end: p.prevEnd()}, nil
		case startsOperand(t), t.is("let") && p.peekAt(1).is("{"):
			e, err := p.parseSelect()
			if err != nil {
				return nil, err
			}
			operands = append(operands, e)
			needOperand = false
			count++
			continue
		}
		break
	}

	if needOperand {
		t := p.peek()
		return nil, p.errorf(t, "unexpected %s", t.describe())
	}
	if count == 1 {
		return operands[0], nil
	}
	return &expr{kind: exprOther, start: start, end: p.prevEnd()}, nil
}

// startsPrefixForm reports whether t begins a form that extends as far
// right as possible (let, with, assert, if).
func startsPrefixForm(t token) bool {
	return t.is("let") || t.is("with") || t.is("assert") || t.is("if")
}

var keywords = map[string]bool{
	"let": true, "in": true, "rec": true, "with": true, "inherit": true,
	"assert": true, "if": true, "then": true, "else": true, "or": true,
}

func isKeyword(t token) bool {
	return t.kind == tokIdent && keywords[t.text]
}

// startsOperand reports whether t can begin a select expression.
func startsOperand(t token) bool {
	switch t.kind {
	case tokIdent:
		return !isKeyword(t) || t.text == "rec"
	case tokNumber, tokString, tokIndString, tokPath, tokURI:
		return true
	case tokPunct:
		return t.text == "(" || t.text == "[" || t.text == "{"
	}
	return false
}

// parseSelect parses a primary followed by .attr selectors and an optional
// "or" default.
func (p *parser) parseSelect() (*expr, error) {
	e, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if !p.peek().is(".") {
		return e, nil
	}
	for p.peek().is(".") {
		p.advance()
		if _, err := p.parseAttrName(); err != nil {
			return nil, err
		}
	}
	if p.peek().is("or") {
		p.advance()
		if _, err := p.parseSelect(); err != nil {
			return nil, err
		}
	}
	return &expr{kind: exprOther, start: e.start, end: p.prevEnd()}, nil
}

func (p *parser) parsePrimary() (*expr, error) {
	t := p.peek()
	switch {
	case t.is("("):
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		return &expr{kind: exprParen, start: t.start, end: p.prevEnd(), body: inner}, nil
	case t.is("["):
		return p.parseList()
	case t.is("{"):
		return p.parseAttrSet(t.start)
	case t.is("rec") || (t.is("let") && p.peekAt(1).is("{")):
		p.advance()
		return p.parseAttrSet(t.start)
	case isKeyword(t):
		return nil, p.errorf(t, "unexpected keyword '%s'", t.text)
	case startsOperand(t):
		p.advance()
		return &expr{kind: exprOther, start: t.start, end: t.end}, nil
	}
	return nil, p.errorf(t, "unexpected %s", t.describe())
}

func (p *parser) parseList() (*expr, error) {
	open, err := p.expect("[")
	if err != nil {
		return nil, err
	}
	list := &expr{kind: exprList, start: open.start}
	for {
		t := p.peek()
		if t.is("]") {
			p.advance()
			list.end = t.end
			return list, nil
		}
		if t.kind == tokEOF {
			return nil, p.errorf(open, "unterminated list")
		}
		item, err := p.parseSelect()
		if err != nil {
			return nil, err
		}
		list.items = append(list.items, item)
	}
}

func (p *parser) parseAttrSet(start int) (*expr, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, err
	}
	bindings, err := p.parseBindings("}")
	if err != nil {
		return nil, err
	}
	end := p.advance() // }
	return &expr{kind: exprAttrSet, start: start, end: end.end, bindings: bindings}, nil
}

// parseBindings parses bindings up to, but not including, terminator.
func (p *parser) parseBindings(terminator string) ([]binding, error) {
	var bindings []binding
	for {
		t := p.peek()
		switch {
		case t.is(terminator):
			return bindings, nil
		case t.kind == tokEOF:
			return nil, p.errorf(t, "expected '%s', got %s", terminator, t.describe())
		case t.is("inherit"):
			p.advance()
			if p.peek().is("(") {
				if _, err := p.parsePrimary(); err != nil {
					return nil, err
				}
			}
			for !p.peek().is(";") {
				name, err := p.parseAttrName()
				if err != nil {
					return nil, err
				}
				bindings = append(bindings, binding{path: []string{name}})
			}
			p.advance()
		default:
			path, err := p.parseAttrPath()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect("="); err != nil {
				return nil, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(";"); err != nil {
				return nil, err
			}
			bindings = append(bindings, binding{path: path, value: value})
		}
	}
}

func (p *parser) parseAttrPath() ([]string, error) {
	first, err := p.parseAttrName()
	if err != nil {
		return nil, err
	}
	path := []string{first}
	for p.peek().is(".") {
		p.advance()
		name, err := p.parseAttrName()
		if err != nil {
			return nil, err
		}
		path = append(path, name)
	}
	return path, nil
}

// parseAttrName returns the name of an identifier or plain string attribute.
// Dynamic names (interpolations) are returned as written.
func (p *parser) parseAttrName() (string, error) {
	t := p.peek()
	switch t.kind {
	case tokIdent:
		p.advance()
		return t.text, nil
	case tokString:
		p.advance()
		return unquote(t.text), nil
	case tokInterp:
		p.advance()
		return t.text, nil
	}
	return "", p.errorf(t, "expected attribute name, got %s", t.describe())
}

// unquote strips the quotes of a "..." string and resolves simple escapes.
func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	s = s[1 : len(s)-1]
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
			switch s[i] {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case 'r':
				out = append(out, '\r')
			default:
				out = append(out, s[i])
			}
			continue
		}
		out = append(out, s[i])
	}
	return string(out)
}
