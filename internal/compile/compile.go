// Package compile turns a pattern string into a reprog.Program: the
// character-by-character walk that is the bulk of this engine, split the
// way the reference engine splits its own nfa.Compile into one file per
// concern (this file: the main walk and quantifier application; bracket.go:
// `[...]` expressions; brace.go: `{...}` quantifiers).
package compile

import (
	"github.com/dsavage/posixre/internal/atom"
	"github.com/dsavage/posixre/internal/reprog"
	"github.com/dsavage/posixre/internal/rerrors"
)

// compiler walks a pattern byte by byte, appending to steps as it goes.
// Quantifier tokens (?, *, +, {) mutate steps[len(steps)-1] in place rather
// than appending; that is the whole of how this engine represents "a
// quantifier follows an atom" — there is no separate AST node for it.
type compiler struct {
	pattern string
	pos     int
	steps   []reprog.Step
}

// Compile parses pattern into a Program. An empty pattern compiles to an
// empty program, which matches every line (prefixed by the implicit
// leading wildcard unless pattern is anchored).
func Compile(pattern string) (*reprog.Program, error) {
	c := &compiler{pattern: pattern}

	if len(pattern) == 0 || pattern[0] != '^' {
		c.steps = append(c.steps, reprog.Step{
			Atom: atom.Wildcard{},
			Rep:  reprog.Kleene{},
		})
	}

	for c.pos < len(c.pattern) {
		if err := c.step(); err != nil {
			return nil, err
		}
	}

	return &reprog.Program{Steps: c.steps}, nil
}

// step consumes one token from the pattern at c.pos and advances past it.
func (c *compiler) step() error {
	start := c.pos
	ch := c.pattern[c.pos]
	c.pos++

	switch {
	case ch == '^' || ch == '|':
		// No-op: the leading-anchor decision was already made in Compile,
		// and | is the alternation driver's concern, not the compiler's.
		return nil

	case ch == '$':
		c.push(atom.EndAnchor{}, reprog.Exact{N: 1})
		return nil

	case ch == '.':
		c.push(atom.Wildcard{}, reprog.Exact{N: 1})
		return nil

	case ch == '\\':
		if c.pos >= len(c.pattern) {
			return c.errAt(start)
		}
		lit := c.pattern[c.pos]
		c.pos++
		c.push(atom.Literal(lit), reprog.Exact{N: 1})
		return nil

	case isPlainLiteral(ch):
		c.push(atom.Literal(ch), reprog.Exact{N: 1})
		return nil

	case ch == '[':
		return c.bracket(start)

	case ch == '?':
		return c.quantify(start, reprog.Range{Min: 0, Max: 1})

	case ch == '*':
		return c.star(start)

	case ch == '+':
		return c.quantify(start, reprog.Range{Min: 1, Max: reprog.Unbounded})

	case ch == '{':
		return c.brace(start)

	default:
		return c.errAt(start)
	}
}

// isPlainLiteral reports whether ch is one of the unescaped characters the
// compiler treats as a literal on its own: letters, digits, and space.
func isPlainLiteral(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == ' '
}

// push appends a new step, unconditionally.
func (c *compiler) push(a atom.Atom, r reprog.Repetition) {
	c.steps = append(c.steps, reprog.Step{Atom: a, Rep: r})
}

// last returns the most recently pushed step, if any.
func (c *compiler) last() (*reprog.Step, bool) {
	if len(c.steps) == 0 {
		return nil, false
	}
	return &c.steps[len(c.steps)-1], true
}

// isKleeneWildcard reports whether step is the implicit-leading-wildcard
// shape (Wildcard atom, non-negated Kleene repetition) that a further
// quantifier cannot legally apply to.
func isKleeneWildcard(s reprog.Step) bool {
	if _, ok := s.Atom.(atom.Wildcard); !ok {
		return false
	}
	k, ok := s.Rep.(reprog.Kleene)
	return ok && !k.Negated
}

// quantify applies rep to the preceding step, the shared logic behind ?
// and +. A quantifier with no preceding step is a silent no-op; one
// applied to an already-Kleene wildcard is a compile error.
func (c *compiler) quantify(tokenPos int, rep reprog.Repetition) error {
	last, ok := c.last()
	if !ok {
		return nil
	}
	if isKleeneWildcard(*last) {
		return c.errAt(tokenPos)
	}
	last.Rep = rep
	return nil
}

// star applies * to the preceding step. Negation for a bracket-derived
// atom already lives on the atom itself (see reprog.Exact and reprog.Kleene), so
// unlike the original implementation this never needs to look ahead for
// another bracket expression — * is purely a quantifier.
func (c *compiler) star(tokenPos int) error {
	last, ok := c.last()
	if !ok {
		return nil
	}
	if isKleeneWildcard(*last) {
		return c.errAt(tokenPos)
	}
	last.Rep = reprog.Kleene{}
	return nil
}

func (c *compiler) errAt(offset int) error {
	return &rerrors.CompileError{Pattern: c.pattern, Offset: offset, Err: rerrors.ErrUnprocessableCharacter}
}
