package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// HeadingAtx matches an ATX heading: 0-3 leading spaces, a run of 1-6 '#'
// marks followed by whitespace or the line's end, optional text, and an
// optional closing sequence of '#' marks (itself preceded by whitespace
// and not escaped). The text span may be empty — tests/heading_atx.rs's
// "## \n" case — the one exception to spans otherwise never being
// zero-length.
func HeadingAtx(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	i := t.Index()

	n, j := countIndent(codes, i, 4)
	if n >= 4 {
		return tokenizer.Nok(), nil
	}

	_, _, k, ok := delimiter(codes, j, 6, '#')
	if !ok {
		return tokenizer.Nok(), nil
	}

	end := lineEnd(codes, k)
	textStart := skipSpaceTab(codes, k)
	textEnd := trimClosingSequence(codes, textStart, end)

	consumeWhitespace(t, j)
	t.Enter(token.HeadingAtx)
	t.Enter(token.HeadingAtxSequence)
	consumeThrough(t, k)
	t.Exit(token.HeadingAtxSequence)

	consumeWhitespace(t, textStart)
	t.Enter(token.HeadingAtxText)
	consumeThrough(t, textEnd)
	t.Exit(token.HeadingAtxText)

	consumeWhitespace(t, end)
	t.Exit(token.HeadingAtx)
	consumeLineEnding(t)
	return tokenizer.Ok(), nil
}

// trimClosingSequence returns the end of the heading's text span,
// stripping a trailing "closing sequence" of '#' marks from [start,end) if
// one is present: a run of '#' preceded by whitespace or the text's own
// start. A backslash sitting immediately before the run (as in "foo \###")
// fails that boundary check on its own — a backslash is never whitespace —
// so an escaped '#' run is already left as literal text without a separate
// escape check.
func trimClosingSequence(codes []charcode.Code, start, end int) int {
	te := end
	for te > start && codes[te-1].IsSpaceOrTab() {
		te--
	}
	hashEnd := te
	for te > start {
		b, isB := byteAt(codes, te-1)
		if !isB || b != '#' {
			break
		}
		te--
	}
	if te == hashEnd {
		return end // no trailing '#' run at all
	}
	validBoundary := te == start || codes[te-1].IsSpaceOrTab()
	if !validBoundary {
		return end
	}
	for te > start && codes[te-1].IsSpaceOrTab() {
		te--
	}
	return te
}
