// Package reprog holds the compiled representation of one regex branch: an
// ordered Program of Steps, each pairing an Atom with a Repetition. It is
// the data model the compile package produces and the backtrack package
// consumes; neither depends on the other's internals, only on these types.
package reprog

import "github.com/dsavage/posixre/internal/atom"

// Unbounded marks an open upper bound: Range.Max when a pattern used `{n,}`
// or `+`. It is never used for Range.Min; an absent minimum (`{,m}`)
// compiles to 0 (see Range doc).
const Unbounded = -1

// Repetition is the quantifier rule attached to a Step's Atom. The three
// concrete types below are its only implementations; a Repetition value is
// always exactly one of them.
type Repetition interface {
	isRepetition()
}

// Exact requires the atom to succeed exactly N times in succession.
// Negated, when true, inverts the step's overall boolean outcome (see the
// backtrack package's handling of Exact). The compiler never sets it: a
// negated bracket expression carries its negation on the atom
// (atom.CharList.Negated, atom.CharClass.Negated).
type Exact struct {
	N       int
	Negated bool
}

func (Exact) isRepetition() {}

// Kleene allows the atom to succeed zero or more times, greedily. A Kleene
// step with Negated set fails as soon as it matches once. The compiler
// never sets Negated; as with Exact, negation lives on the atom.
type Kleene struct {
	Negated bool
}

func (Kleene) isRepetition() {}

// Range requires the atom to succeed at least Min and at most Max times.
// Max == Unbounded means the pattern left the upper bound open (`{n,}` or
// bare `+`); the matcher resolves it to the remaining line length at
// evaluation time, per spec. Min is never negative; an absent minimum
// (`{,m}`) compiles to Min == 0, not Unbounded.
type Range struct {
	Min, Max int
}

func (Range) isRepetition() {}

// Step pairs one Atom with the Repetition governing how many times it must
// match.
type Step struct {
	Atom atom.Atom
	Rep  Repetition
}

// EvaluatedStep is pushed onto the matcher's stack once a Step has
// consumed input. Bytes is how much of the line it consumed; Backtrackable
// reports whether that consumption may be released to satisfy a later
// step that failed to match.
type EvaluatedStep struct {
	Step          Step
	Bytes         int
	Backtrackable bool
}

// Program is the ordered sequence of Steps compiled from one alternation
// branch. It is immutable once returned by the compiler and safe to share
// read-only across concurrent Match calls.
type Program struct {
	Steps []Step
}
