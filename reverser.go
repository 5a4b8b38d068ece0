package rhttp

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Reverser keeps track of named route patterns and allows building URLs from
// them by substituting values for their capture groups.
type Reverser struct {
	pats map[string]string
}

// NewReverser inits the reverser.
func NewReverser() *Reverser {
	return &Reverser{make(map[string]string)}
}

// Name registers a pattern source under a name. Duplicate names are rejected.
func (r *Reverser) Name(name, pattern string) error {
	if _, exists := r.pats[name]; exists {
		return errors.Newf("route with name %q already exists", name)
	}

	r.pats[name] = pattern

	return nil
}

// Reverse reverses the named pattern into a url.
func (r *Reverser) Reverse(name string, vals ...string) (string, error) {
	pat, ok := r.pats[name]
	if !ok {
		return "", errors.Newf("no route named: %q, got: %v", name, lo.Keys(r.pats))
	}

	res, err := buildFromPattern(pat, vals...)
	if err != nil {
		return "", errors.Wrapf(err, "failed to build url for route %q", name)
	}

	return res, nil
}

// buildFromPattern walks the regex source, copying literal text, unescaping
// backslash escapes and replacing each top-level parenthesized group with the
// next value. Patterns using regex syntax outside groups cannot be reversed.
func buildFromPattern(pattern string, vals ...string) (string, error) {
	var b strings.Builder

	next := 0

	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; c {
		case '\\':
			if i+1 >= len(pattern) {
				return "", errors.New("pattern ends in a bare escape")
			}

			i++
			b.WriteByte(pattern[i])
		case '(':
			end, err := closingParen(pattern, i)
			if err != nil {
				return "", err
			}

			if next >= len(vals) {
				return "", errors.Newf("pattern has more capture groups than values (%d)", len(vals))
			}

			b.WriteString(vals[next])
			next++
			i = end
		case '[', '*', '+', '?', '^', '$', '|', '{':
			return "", errors.Newf("cannot reverse pattern with %q outside a group", string(c))
		default:
			b.WriteByte(c)
		}
	}

	if next != len(vals) {
		return "", errors.Newf("pattern has %d capture group(s) but %d value(s) given", next, len(vals))
	}

	return b.String(), nil
}

// closingParen returns the index of the parenthesis closing the group that
// opens at idx, honoring nesting and escapes.
func closingParen(pattern string, idx int) (int, error) {
	depth := 0

	for i := idx; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}

	return 0, errors.New("pattern has an unbalanced group")
}
