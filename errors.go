package posixre

import "github.com/dsavage/posixre/internal/rerrors"

// Sentinel errors identifying the two kinds of failure this package can
// report. Use errors.Is against these; Compile and Match wrap them with
// positional context (see rerrors.CompileError, rerrors.MatchError).
var (
	// ErrUnprocessableCharacter means a pattern contains a syntactic
	// construct the compiler cannot represent.
	ErrUnprocessableCharacter = rerrors.ErrUnprocessableCharacter

	// ErrNonASCIILine means Match was given a line containing a byte >= 128.
	ErrNonASCIILine = rerrors.ErrNonASCIILine
)
