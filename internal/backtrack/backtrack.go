// Package backtrack evaluates a reprog.Program against one input line using
// an explicit evaluation stack and a re-enqueueable front queue of
// remaining steps, rather than recursion — the structure the reference
// engine's nfa.BoundedBacktracker uses, generalized here to drive Steps
// instead of NFA states.
package backtrack

import (
	"github.com/dsavage/posixre/internal/asciiscan"
	"github.com/dsavage/posixre/internal/atom"
	"github.com/dsavage/posixre/internal/reprog"
	"github.com/dsavage/posixre/internal/rerrors"
)

// Run evaluates program against line, returning whether it matches.
// line must be all-ASCII; Run fails fast with a MatchError wrapping
// ErrNonASCIILine otherwise. maxSteps caps how many steps may be pulled
// from the front queue before giving up on a pathological pattern; 0
// means unbounded.
func Run(program *reprog.Program, line string, maxSteps int) (bool, error) {
	if !asciiscan.AllASCII(line) {
		return false, &rerrors.MatchError{Offset: firstNonASCII(line), Err: rerrors.ErrNonASCIILine}
	}

	m := &matcher{
		steps:    append([]reprog.Step(nil), program.Steps...),
		line:     line,
		maxSteps: maxSteps,
	}
	return m.run(), nil
}

func firstNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// matcher holds the per-invocation state: the queue of steps still to be
// evaluated (front = index 0), the stack of already-evaluated steps kept
// for backtracking, the line being matched, and the cursor into it.
type matcher struct {
	steps    []reprog.Step
	stack    []reprog.EvaluatedStep
	line     string
	index    int
	maxSteps int
}

// run drains the step queue, dispatching each step by its repetition kind.
// It returns as soon as any step produces a definitive true or false;
// draining the queue entirely is itself a true result. Exceeding maxSteps
// (when nonzero) reports no match rather than raising an error: this
// engine has no cancellation/timeout error kind of its own.
func (m *matcher) run() bool {
	steps := 0
	for len(m.steps) > 0 {
		if m.maxSteps > 0 && steps >= m.maxSteps {
			return false
		}
		steps++

		step := m.steps[0]
		m.steps = m.steps[1:]

		switch rep := step.Rep.(type) {
		case reprog.Exact:
			result, done := m.runExact(step, rep)
			if done {
				return result
			}
		case reprog.Kleene:
			result, done := m.runKleene(step, rep)
			if done {
				return result
			}
		case reprog.Range:
			result, done := m.runRange(step, rep)
			if done {
				return result
			}
		}
	}
	return true
}

// runExact tries to consume step.Atom exactly rep.N times in succession
// starting at the current index. done is false when the step succeeded
// and evaluation should continue to the next queued step.
func (m *matcher) runExact(step reprog.Step, rep reprog.Exact) (result bool, done bool) {
	total := 0
	count := 0
	for count < rep.N {
		n, ok := atom.Matches(step.Atom, m.line[m.index+total:])
		if !ok {
			break
		}
		total += n
		count++
	}

	if count == rep.N {
		m.stack = append(m.stack, reprog.EvaluatedStep{Step: step, Bytes: total, Backtrackable: false})
		m.index += total
		if rep.Negated {
			return false, true
		}
		return false, false
	}

	if m.backtrack(step) {
		return false, false
	}
	return rep.Negated, true
}

// runKleene greedily consumes step.Atom while it keeps advancing, pushing
// one backtrackable frame per successful consumption. A Kleene never fails
// to meet its own minimum (zero), so it never triggers backtracking itself;
// a negated Kleene instead fails outright the moment it would succeed once.
func (m *matcher) runKleene(step reprog.Step, rep reprog.Kleene) (result bool, done bool) {
	for {
		n, ok := atom.Matches(step.Atom, m.line[m.index:])
		if !ok || n == 0 {
			break
		}
		if rep.Negated {
			return false, true
		}
		m.stack = append(m.stack, reprog.EvaluatedStep{Step: step, Bytes: n, Backtrackable: true})
		m.index += n
	}
	return false, false
}

// runRange greedily consumes step.Atom, pushing each consumption as a
// backtrackable frame, then rejects if the total falls outside [min, max].
// Unlike Exact, a Range outside its bounds fails outright rather than
// invoking backtrack. The loop is uncapped: it consumes every occurrence
// the atom will give it, so a count above max is reachable and rejected
// below instead of being silently capped by the loop bound.
func (m *matcher) runRange(step reprog.Step, rep reprog.Range) (result bool, done bool) {
	max := rep.Max
	if max == reprog.Unbounded {
		max = len(m.line) - m.index
	}

	count := 0
	for {
		n, ok := atom.Matches(step.Atom, m.line[m.index:])
		if !ok || n == 0 {
			break
		}
		m.stack = append(m.stack, reprog.EvaluatedStep{Step: step, Bytes: n, Backtrackable: true})
		m.index += n
		count++
	}

	if count < rep.Min || count > max {
		return false, true
	}
	return false, false
}

// backtrack pops EvaluatedSteps in LIFO order, summing their consumed bytes,
// until it finds one marked Backtrackable. That frame's consumption (and
// every non-backtrackable frame popped above it) is given back: the cursor
// moves back by the summed distance, and the popped non-backtrackable steps
// are re-enqueued ahead of failingStep, in their original relative order,
// so matching can retry them at the earlier position. Returns false if the
// stack empties with no backtrackable frame found.
func (m *matcher) backtrack(failingStep reprog.Step) bool {
	var poppedNonBacktrackable []reprog.Step
	distance := 0

	for len(m.stack) > 0 {
		es := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		distance += es.Bytes

		if es.Backtrackable {
			m.index -= distance
			front := make([]reprog.Step, 0, len(poppedNonBacktrackable)+1)
			for i := len(poppedNonBacktrackable) - 1; i >= 0; i-- {
				front = append(front, poppedNonBacktrackable[i])
			}
			front = append(front, failingStep)
			m.steps = append(front, m.steps...)
			return true
		}
		poppedNonBacktrackable = append(poppedNonBacktrackable, es.Step)
	}
	return false
}
