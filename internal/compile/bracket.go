package compile

import (
	"errors"

	"github.com/dsavage/posixre/internal/atom"
	"github.com/dsavage/posixre/internal/reprog"
)

// errBracketPipe is an internal sentinel; bracket always converts it to a
// CompileError carrying the bracket's own offset before returning.
var errBracketPipe = errors.New("compile: | inside bracket expression")

// bracket compiles a `[...]` expression starting just after the `[` that
// triggered the call (tokenPos is the position of that `[`, used for error
// reporting). It emits exactly one step: a CharList or CharClass atom
// under an unquantified Exact(1) repetition, which a following ?, *, +, or
// {...} may then requantify like any other step.
func (c *compiler) bracket(tokenPos int) error {
	negated := false
	if c.pos < len(c.pattern) && c.pattern[c.pos] == '^' {
		negated = true
		c.pos++
	}

	var collected []byte
	hasClass := false
	bracketDepth := 0

readLoop:
	for {
		if c.pos >= len(c.pattern) {
			return c.errAt(tokenPos)
		}
		ch := c.pattern[c.pos]
		c.pos++

		switch {
		case ch == ']':
			if bracketDepth == 1 || !hasClass {
				break readLoop
			}
			bracketDepth++
		case ch == ':':
			// Syntactic marker for [:name:]; not part of the content.
		case ch == '[':
			hasClass = true
		default:
			collected = append(collected, ch)
		}
	}

	if hasClass {
		if kind, ok := atom.ClassByName(string(collected)); ok {
			c.push(atom.CharClass{Kind: kind, Negated: negated}, reprog.Exact{N: 1})
			return nil
		}
		// Unknown class name: fall through to literal-set interpretation
		// of whatever characters were collected.
	}

	set, err := bracketSet(collected)
	if err != nil {
		return c.errAt(tokenPos)
	}
	c.push(atom.CharList{Set: set, Negated: negated}, reprog.Exact{N: 1})
	return nil
}

// bracketSet builds the membership set for a literal (non-named-class)
// bracket expression. A `-` flanked by two non-`-` characters denotes the
// inclusive range between them; a `-` that doesn't qualify as a range is
// dropped rather than added as a literal dash. A `|` anywhere in the
// content is rejected.
func bracketSet(chars []byte) (map[byte]struct{}, error) {
	set := make(map[byte]struct{}, len(chars))
	for i, ch := range chars {
		switch {
		case ch == '-':
			if i > 0 && i < len(chars)-1 && chars[i-1] != '-' && chars[i+1] != '-' {
				lo, hi := chars[i-1], chars[i+1]
				if lo > hi {
					lo, hi = hi, lo
				}
				for b := int(lo); b <= int(hi); b++ {
					set[byte(b)] = struct{}{}
				}
			}
		case ch == '|':
			return nil, errBracketPipe
		default:
			set[ch] = struct{}{}
		}
	}
	return set, nil
}
