package posixre

// Config controls engine behavior that falls outside the pattern/line
// contract itself: resource bounds and fast-path toggles. Every Compile
// call implicitly uses DefaultConfig; CompileWithConfig lets a caller
// override it.
type Config struct {
	// MaxBacktrackSteps caps the number of steps the matcher's front queue
	// may process for each alternation branch of a single Match call
	// before that branch gives up and reports no match, guarding against
	// pathological patterns on long lines.
	// Zero means unbounded.
	// Default: 0
	MaxBacktrackSteps int

	// EnableLiteralFastPath allows MatchAny to route an alternation whose
	// every branch is a plain literal through an Aho-Corasick automaton
	// instead of per-branch backtracking.
	// Default: true
	EnableLiteralFastPath bool
}

// DefaultConfig returns the Config used by Compile and MatchAny.
func DefaultConfig() Config {
	return Config{
		MaxBacktrackSteps:     0,
		EnableLiteralFastPath: true,
	}
}
