package nix

import (
	"fmt"
	"slices"
	"strings"
)

// ArrayValues returns the elements of the list bound to attrPath (for example
// "environment.systemPackages") in the top-level attribute set of src.
//
// Errors are a *SyntaxError for malformed source, ErrNoAttrSet when the file
// has no top-level set, an *AttributeError when attrPath is not bound and an
// error wrapping ErrNotList when the value is not a list.
func ArrayValues(src, attrPath string) ([]string, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	set := unwrapSet(root)
	if set == nil {
		return nil, ErrNoAttrSet
	}

	value, found := lookup(set, strings.Split(attrPath, "."))
	if !found {
		return nil, &AttributeError{Attribute: attrPath}
	}
	list := unwrapList(value)
	if list == nil {
		return nil, fmt.Errorf("attribute %q: %w", attrPath, ErrNotList)
	}

	values := make([]string, 0, len(list.items))
	for _, item := range list.items {
		values = append(values, src[item.start:item.end])
	}
	return values, nil
}

// Attributes returns every attribute path bound in the top-level set of src,
// with nested sets flattened to dotted paths. Intermediate paths are included,
// so { a.b.c = 1; } yields a, a.b and a.b.c.
func Attributes(src string) ([]string, error) {
	root, err := parse(src)
	if err != nil {
		return nil, err
	}
	set := unwrapSet(root)
	if set == nil {
		return nil, ErrNoAttrSet
	}

	var paths []string
	collect(set, nil, &paths)
	slices.Sort(paths)
	return slices.Compact(paths), nil
}

func collect(set *expr, prefix []string, paths *[]string) {
	for _, b := range set.bindings {
		full := append(slices.Clone(prefix), b.path...)
		for i := range b.path {
			*paths = append(*paths, strings.Join(full[:len(prefix)+i+1], "."))
		}
		if b.value == nil {
			continue
		}
		if nested := unwrapValueSet(b.value); nested != nil {
			collect(nested, full, paths)
		}
	}
}

// unwrapSet looks through lambdas, let, with, assert and parentheses for an
// attribute set.
func unwrapSet(e *expr) *expr {
	for e != nil {
		switch e.kind {
		case exprAttrSet:
			return e
		case exprLambda, exprLet, exprWith, exprAssert, exprParen:
			e = e.body
		default:
			return nil
		}
	}
	return nil
}

// unwrapValueSet is unwrapSet for attribute values, where a function body
// is not part of the enclosing set.
func unwrapValueSet(e *expr) *expr {
	for e != nil {
		switch e.kind {
		case exprAttrSet:
			return e
		case exprLet, exprWith, exprAssert, exprParen:
			e = e.body
		default:
			return nil
		}
	}
	return nil
}

// unwrapList looks through with and parentheses for a list.
func unwrapList(e *expr) *expr {
	for e != nil {
		switch e.kind {
		case exprList:
			return e
		case exprWith, exprParen, exprLet:
			e = e.body
		default:
			return nil
		}
	}
	return nil
}

// lookup finds the value bound to path in set. A binding may cover the whole
// path (a.b.c = v), a prefix of it with the rest in a nested set
// (a = { b.c = v; }), or a mix. Later bindings win.
func lookup(set *expr, path []string) (*expr, bool) {
	var (
		result *expr
		found  bool
	)
	for _, b := range set.bindings {
		n := len(b.path)
		switch {
		case n == len(path) && slices.Equal(b.path, path):
			result, found = b.value, true
			if b.value == nil {
				// inherited: exists but is not a literal list
				result = &expr{kind: exprOther}
			}
		case n < len(path) && slices.Equal(b.path, path[:n]):
			if nested := unwrapValueSet(b.value); nested != nil {
				if v, ok := lookup(nested, path[n:]); ok {
					result, found = v, true
				}
			}
		}
	}
	return result, found
}
