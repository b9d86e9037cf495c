package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// ThematicBreak matches a line of 0-3 leading spaces followed by three or
// more '*', '-', or '_' marks, optionally interleaved with spaces/tabs,
// running to the line's end. Grounded on scandown's ruler helper and
// BlockType Ruler.
func ThematicBreak(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	i := t.Index()

	n, j := countIndent(codes, i, 4)
	if n >= 4 {
		return tokenizer.Nok(), nil
	}

	_, _, next, ok := ruler(codes, j, '*', '-', '_')
	if !ok {
		return tokenizer.Nok(), nil
	}
	if next < len(codes) && !codes[next].IsLineEnding() {
		return tokenizer.Nok(), nil
	}

	consumeWhitespace(t, j)
	t.Enter(token.ThematicBreak)
	t.Enter(token.ThematicBreakSequence)
	consumeThrough(t, next)
	t.Exit(token.ThematicBreakSequence)
	t.Exit(token.ThematicBreak)
	consumeLineEnding(t)
	return tokenizer.Ok(), nil
}
