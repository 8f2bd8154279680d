package backtrack

import (
	"errors"
	"testing"

	"github.com/dsavage/posixre/internal/compile"
	"github.com/dsavage/posixre/internal/rerrors"
)

func mustMatch(t *testing.T, pattern, line string) bool {
	t.Helper()
	prog, err := compile.Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) unexpected error: %v", pattern, err)
	}
	ok, err := Run(prog, line, 0)
	if err != nil {
		t.Fatalf("Run(%q, %q) unexpected error: %v", pattern, line, err)
	}
	return ok
}

func TestRunScenarios(t *testing.T) {
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
		{"[[:upper:]]ascal[[:upper:]]ase", "Pascalcase", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.line, func(t *testing.T) {
			if got := mustMatch(t, tt.pattern, tt.line); got != tt.want {
				t.Errorf("match(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.want)
			}
		})
	}
}

func TestRunNonASCIILineFails(t *testing.T) {
	prog, err := compile.Compile("^abc")
	if err != nil {
		t.Fatalf("Compile unexpected error: %v", err)
	}
	_, err = Run(prog, "abc\x80", 0)
	if !errors.Is(err, rerrors.ErrNonASCIILine) {
		t.Fatalf("err = %v, want ErrNonASCIILine", err)
	}
}

func TestRunQuantifierBounds(t *testing.T) {
	tests := []struct {
		k    int
		want bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{6, false},
	}
	for _, tt := range tests {
		line := ""
		for i := 0; i < tt.k; i++ {
			line += "a"
		}
		if got := mustMatch(t, "^a{3,5}", line); got != tt.want {
			t.Errorf("match(^a{3,5}, %d a's) = %v, want %v", tt.k, got, tt.want)
		}
	}
}

func TestRunLiteralTotality(t *testing.T) {
	tests := []struct {
		pattern string
		line    string
		want    bool
	}{
		{"hello", "well hello there", true},
		{"hello", "goodbye", false},
	}
	for _, tt := range tests {
		if got := mustMatch(t, tt.pattern, tt.line); got != tt.want {
			t.Errorf("match(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.want)
		}
	}
}

func TestRunMaxStepsBudget(t *testing.T) {
	prog, err := compile.Compile("^a+b")
	if err != nil {
		t.Fatalf("Compile unexpected error: %v", err)
	}
	line := "aaaaaaaaaab"

	unbounded, err := Run(prog, line, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !unbounded {
		t.Fatal("expected a match with no step budget, to make the budget test meaningful")
	}

	bounded, err := Run(prog, line, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bounded {
		t.Error("expected no match once the step budget is exhausted before the 'b' step runs")
	}
}
