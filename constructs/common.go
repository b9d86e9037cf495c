package constructs

import (
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// consumeThrough consumes codes at the tokenizer's current position one by
// one until its index reaches end. Callers typically wrap it in an
// Enter/Exit pair for whatever span the consumed codes belong to.
func consumeThrough(t *tokenizer.Tokenizer, end int) {
	for t.Index() < end {
		t.Consume(t.PeekCode())
	}
}

// consumeWhitespace wraps consumeThrough in a Whitespace span, doing
// nothing if the tokenizer is already at end (callers must not emit
// zero-length Whitespace spans; HeadingAtxText is the one span allowed to
// be empty).
func consumeWhitespace(t *tokenizer.Tokenizer, end int) {
	if t.Index() >= end {
		return
	}
	t.Enter(token.Whitespace)
	consumeThrough(t, end)
	t.Exit(token.Whitespace)
}

// consumeLineEnding consumes the line-ending code at the tokenizer's
// current position, if there is one, wrapped in a LineEnding span. It is a
// no-op at EOF or mid-line.
func consumeLineEnding(t *tokenizer.Tokenizer) {
	if t.Index() >= len(t.Codes) || !t.Codes[t.Index()].IsLineEnding() {
		return
	}
	t.Enter(token.LineEnding)
	t.Consume(t.PeekCode())
	t.Exit(token.LineEnding)
}
