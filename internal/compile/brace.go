package compile

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dsavage/posixre/internal/reprog"
)

// errBraceMalformed is an internal sentinel for a syntactically digit/comma
// clean brace body that still doesn't match one of the four accepted
// shapes (e.g. "{,}" or "{1,2,3}"); brace converts it to a CompileError.
var errBraceMalformed = errors.New("compile: malformed brace quantifier")

// brace compiles a `{...}` quantifier starting just after the `{` that
// triggered the call. tokenPos is the position of that `{`. Digits and at
// most one comma are accepted between the braces; anything else is a
// compile error. A brace quantifier with no preceding step is a no-op,
// but its body is still consumed so the characters inside it are never
// reprocessed as ordinary tokens.
func (c *compiler) brace(tokenPos int) error {
	start := c.pos
	for {
		if c.pos >= len(c.pattern) {
			return c.errAt(tokenPos)
		}
		ch := c.pattern[c.pos]
		if ch == '}' {
			break
		}
		if !(ch >= '0' && ch <= '9') && ch != ',' {
			return c.errAt(tokenPos)
		}
		c.pos++
	}
	content := c.pattern[start:c.pos]
	c.pos++ // consume the closing }

	last, ok := c.last()
	if !ok {
		return nil
	}
	if isKleeneWildcard(*last) {
		return c.errAt(tokenPos)
	}

	rep, err := parseBraceContent(content)
	if err != nil {
		return c.errAt(tokenPos)
	}
	last.Rep = rep
	return nil
}

// parseBraceContent interprets the digits/comma between `{` and `}` per
// the four shapes spec.md defines: {n}, {n,}, {,m}, {n,m}.
func parseBraceContent(content string) (reprog.Repetition, error) {
	if !strings.Contains(content, ",") {
		n, err := strconv.Atoi(content)
		if err != nil {
			return nil, err
		}
		return reprog.Exact{N: n}, nil
	}

	parts := strings.SplitN(content, ",", 2)
	if strings.Contains(parts[1], ",") {
		return nil, errBraceMalformed // malformed: more than one comma
	}

	minStr, maxStr := parts[0], parts[1]
	switch {
	case minStr == "" && maxStr == "":
		return nil, errBraceMalformed
	case minStr == "":
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, err
		}
		return reprog.Range{Min: 0, Max: max}, nil
	case maxStr == "":
		min, err := strconv.Atoi(minStr)
		if err != nil {
			return nil, err
		}
		return reprog.Range{Min: min, Max: reprog.Unbounded}, nil
	default:
		min, err := strconv.Atoi(minStr)
		if err != nil {
			return nil, err
		}
		max, err := strconv.Atoi(maxStr)
		if err != nil {
			return nil, err
		}
		return reprog.Range{Min: min, Max: max}, nil
	}
}
