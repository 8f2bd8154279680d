// Package litfast accelerates the common case of an alternation whose every
// branch is a plain literal string (no metacharacters at all) — the same
// case the reference engine hands off to an Aho-Corasick automaton once an
// alternation grows past a handful of literal patterns (see meta.Config's
// AhoCorasick strategy). Here the fast path applies whenever ALL branches
// are literal, since this engine has no cost model to weigh against a
// per-branch backtracking try.
package litfast

import "github.com/coregx/ahocorasick"

// Matcher reports whether any of its literal patterns occurs anywhere in a
// line, via a pre-built Aho-Corasick automaton.
type Matcher struct {
	automaton *ahocorasick.Automaton
}

// Build constructs a Matcher over patterns. It returns ok == false if any
// pattern is empty (a zero-length literal has no well-defined search
// semantics for an automaton) or the automaton fails to build, in which
// case the caller should fall back to per-branch backtracking.
func Build(patterns []string) (m *Matcher, ok bool) {
	if len(patterns) == 0 {
		return nil, false
	}
	builder := ahocorasick.NewBuilder()
	for _, p := range patterns {
		if p == "" {
			return nil, false
		}
		builder.AddPattern([]byte(p))
	}
	auto, err := builder.Build()
	if err != nil {
		return nil, false
	}
	return &Matcher{automaton: auto}, true
}

// IsMatch reports whether any pattern occurs in line.
func (m *Matcher) IsMatch(line string) bool {
	return m.automaton.IsMatch([]byte(line))
}

// LiteralOrEmpty reports whether branch contains no regex metacharacter —
// i.e. it would compile to nothing but a run of plain-literal steps plus
// the implicit leading wildcard. ok is false the moment any byte outside
// the compiler's plain-literal alphabet (or its set of metacharacters)
// appears, which is a conservative signal: callers only take the literal
// fast path when every branch of an alternation reports ok.
func LiteralOrEmpty(branch string) (literal string, ok bool) {
	for i := 0; i < len(branch); i++ {
		switch c := branch[i]; {
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == ' ':
			continue
		default:
			return "", false
		}
	}
	return branch, true
}
