package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// BlankLine matches a line containing only space/tab codes (possibly none
// at all), up to and including its line ending — or up to EOF, for a
// trailing blank final line with no terminating newline. It is grounded on
// scandown's Blank BlockType, which likewise treats an all-whitespace
// line as its own construct rather than as paragraph content.
func BlankLine(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	i := t.Index()
	end := lineEnd(codes, i)
	if !isBlank(codes, i, end) {
		return tokenizer.Nok(), nil
	}
	consumeWhitespace(t, end)
	if end < len(codes) {
		t.Enter(token.BlankLineEnding)
		t.Consume(t.PeekCode())
		t.Exit(token.BlankLineEnding)
	}
	return tokenizer.Ok(), nil
}
