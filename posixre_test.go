package posixre

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile("^(a)")
	if !errors.Is(err, ErrUnprocessableCharacter) {
		t.Fatalf("err = %v, want ErrUnprocessableCharacter", err)
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile("^(a)")
}

func TestMatchAnyScenarios(t *testing.T) {
	tests := []struct {
		pattern string
		line    string
		want    bool
	}{
		{"abcd", "abcdefg", true},
		{"^abcd", "ab abcdefg", false},
		{"ab.cd", "ab0cd", true},
		{"ab.*cd", "abaaaaaacd", true},
		{"a[bc]d", "afd", false},
		{"ba{5,8}c", "baaaaaaaaaac", false},
		{"ho[^a-dA-Cx-z]", "hoXa", true},
		{"ho[[:upper:]]a", "hola", false},
		{"hola$", "ajaja hola", true},
		{`abc|de+f`, "deeeeeeeeeeeeeef", true},
		{"[[:upper:]]ascal[[:upper:]]ase", "Pascalcase", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.line, func(t *testing.T) {
			got, err := MatchAny(tt.pattern, tt.line)
			if err != nil {
				t.Fatalf("MatchAny(%q, %q) unexpected error: %v", tt.pattern, tt.line, err)
			}
			if got != tt.want {
				t.Errorf("MatchAny(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.want)
			}
		})
	}
}

// TestLiteralTotality checks: matches(P, L) = L contains P as a substring,
// for a plain ASCII literal pattern P.
func TestLiteralTotality(t *testing.T) {
	tests := []struct {
		p, l string
	}{
		{"hello", "say hello world"},
		{"hello", "goodbye world"},
		{"grep", "grep"},
		{"grep", "gre"},
	}
	for _, tt := range tests {
		got, err := MatchAny(tt.p, tt.l)
		if err != nil {
			t.Fatalf("MatchAny error: %v", err)
		}
		want := strings.Contains(tt.l, tt.p)
		if got != want {
			t.Errorf("MatchAny(%q,%q) = %v, want %v (Contains)", tt.p, tt.l, got, want)
		}
	}
}

// TestAlternationEquivalence checks matches_any(A|B, L) = matches(A,L) || matches(B,L).
func TestAlternationEquivalence(t *testing.T) {
	a, b, l := "cat", "dog", "I have a cat and a dog"
	combined, err := MatchAny(a+"|"+b, l)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	left, _ := MatchAny(a, l)
	right, _ := MatchAny(b, l)
	if combined != (left || right) {
		t.Errorf("MatchAny(%q) = %v, want %v", a+"|"+b, combined, left || right)
	}
}

// TestNegationDuality checks matches("[^S]", L) = !matches("[S]", L) at the
// same position, for a non-trivial character set S and non-empty line.
func TestNegationDuality(t *testing.T) {
	line := "x"
	pos, neg := "^[abc]", "^[^abc]"
	posOk, err := MatchAny(pos, line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	negOk, err := MatchAny(neg, line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posOk == negOk {
		t.Errorf("MatchAny(%q,%q)=%v should be the negation of MatchAny(%q,%q)=%v", pos, line, posOk, neg, line, negOk)
	}
}

func TestASCIIGate(t *testing.T) {
	_, err := MatchAny("^abc", "abc\xff")
	if !errors.Is(err, ErrNonASCIILine) {
		t.Fatalf("err = %v, want ErrNonASCIILine", err)
	}
}

func TestProgramReuseAcrossLines(t *testing.T) {
	p, err := Compile("err")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	lines := []string{"no problem here", "an error occurred", "all clear"}
	want := []bool{false, true, false}
	for i, l := range lines {
		got, err := p.Match(l)
		if err != nil {
			t.Fatalf("Match error: %v", err)
		}
		if got != want[i] {
			t.Errorf("Match(%q) = %v, want %v", l, got, want[i])
		}
	}
}

func TestLiteralFastPathAndBacktrackAgree(t *testing.T) {
	pattern := "foo|bar"
	line := "a foo walked in"

	fast, err := CompileWithConfig(pattern, Config{EnableLiteralFastPath: true})
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}
	slow, err := CompileWithConfig(pattern, Config{EnableLiteralFastPath: false})
	if err != nil {
		t.Fatalf("compile error: %v", err)
	}

	fastResult, err := fast.Match(line)
	if err != nil {
		t.Fatalf("fast Match error: %v", err)
	}
	slowResult, err := slow.Match(line)
	if err != nil {
		t.Fatalf("slow Match error: %v", err)
	}
	if fastResult != slowResult {
		t.Errorf("fast path = %v, backtracking = %v, want agreement", fastResult, slowResult)
	}
	if fast.fast == nil {
		t.Error("expected the literal fast path to be selected for an all-literal alternation")
	}
}

func ExampleMatchAny() {
	ok, err := MatchAny("ab.*cd", "abXYcd")
	if err != nil {
		panic(err)
	}
	fmt.Println(ok)
	// Output: true
}
