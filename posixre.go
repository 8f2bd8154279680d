// Package posixre implements a subset of POSIX extended regular
// expressions: a compiler that turns a pattern into a Program, and a
// matcher that evaluates a Program against one line of ASCII text.
//
// The public surface is deliberately small:
//
//	prog, err := posixre.Compile("ab.*cd")
//	ok, err := prog.Match("abXYcd")
//
// or, for one-shot use:
//
//	ok, err := posixre.MatchAny("ab.*cd", "abXYcd")
package posixre

import (
	"strings"

	"github.com/dsavage/posixre/internal/asciiscan"
	"github.com/dsavage/posixre/internal/backtrack"
	"github.com/dsavage/posixre/internal/compile"
	"github.com/dsavage/posixre/internal/litfast"
	"github.com/dsavage/posixre/internal/reprog"
	"github.com/dsavage/posixre/internal/rerrors"
)

// Program is a compiled pattern: one or more alternation branches, tried
// left to right, any one of which may succeed. It is immutable after
// Compile returns and safe to share read-only across concurrent Match
// calls from independent goroutines.
type Program struct {
	branches []*reprog.Program
	fast     *litfast.Matcher
	config   Config
}

// Compile parses pattern using DefaultConfig. The pattern is split on
// every top-level `|` into independent branches; each is compiled on its
// own, and a compile error in any branch fails the whole pattern.
func Compile(pattern string) (*Program, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// CompileWithConfig parses pattern the way Compile does, using cfg instead
// of DefaultConfig for resource bounds and fast-path selection.
func CompileWithConfig(pattern string, cfg Config) (*Program, error) {
	branchStrs := strings.Split(pattern, "|")

	branches := make([]*reprog.Program, 0, len(branchStrs))
	for _, b := range branchStrs {
		prog, err := compile.Compile(b)
		if err != nil {
			return nil, err
		}
		branches = append(branches, prog)
	}

	p := &Program{branches: branches, config: cfg}
	if cfg.EnableLiteralFastPath {
		if lits, ok := allLiteral(branchStrs); ok {
			if m, ok := litfast.Build(lits); ok {
				p.fast = m
			}
		}
	}
	return p, nil
}

// allLiteral reports whether every branch is a plain literal with no
// metacharacters, returning the literals themselves when so.
func allLiteral(branches []string) ([]string, bool) {
	lits := make([]string, 0, len(branches))
	for _, b := range branches {
		lit, ok := litfast.LiteralOrEmpty(b)
		if !ok {
			return nil, false
		}
		lits = append(lits, lit)
	}
	return lits, true
}

// MustCompile is like Compile but panics if pattern fails to compile. It
// is meant for patterns fixed at program-initialization time, not ones
// derived from user input.
func MustCompile(pattern string) *Program {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// Match reports whether line contains a match for p anywhere in it
// (subject to any `^`/`$` anchors compiled into p's branches). line must
// be ASCII; Match fails with ErrNonASCIILine otherwise.
func (p *Program) Match(line string) (bool, error) {
	if !asciiscan.AllASCII(line) {
		return false, &rerrors.MatchError{Offset: firstNonASCII(line), Err: rerrors.ErrNonASCIILine}
	}

	if p.fast != nil {
		return p.fast.IsMatch(line), nil
	}

	for _, branch := range p.branches {
		ok, err := backtrack.Run(branch, line, p.config.MaxBacktrackSteps)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

func firstNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// MatchAny compiles pattern with DefaultConfig and matches it against line
// in one call. Prefer Compile once and reuse the Program when matching the
// same pattern against many lines.
func MatchAny(pattern, line string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.Match(line)
}
