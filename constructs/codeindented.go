package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// CodeIndented matches one or more consecutive lines indented by 4 or more
// columns, consuming lines until one falls back below that indent or input
// ends. It does not special-case interior blank lines the way CommonMark's
// "a blank line does not end an indented code block if another indented
// line follows" rule does — this tokenizer treats the first
// under-indented line (blank or not) as the end of the block, the same
// simplification scandown's Codeblock handling makes by tracking only the
// immediately preceding block's indent.
func CodeIndented(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	n, _ := countIndent(codes, t.Index(), 4)
	if n < 4 {
		return tokenizer.Nok(), nil
	}

	t.PushConstruct(tokenizer.CodeIndented)
	t.Enter(token.CodeIndented)
	for {
		lineStart := t.Index()
		n2, j2 := countIndent(codes, lineStart, 4)
		if n2 < 4 {
			break
		}
		t.Enter(token.CodeIndentedPrefixWhitespace)
		consumeThrough(t, j2)
		t.Exit(token.CodeIndentedPrefixWhitespace)

		end := lineEnd(codes, j2)
		if end > j2 {
			t.Enter(token.CodeFlowChunk)
			consumeThrough(t, end)
			t.Exit(token.CodeFlowChunk)
		}
		consumeLineEnding(t)

		if t.Index() >= len(codes) {
			break
		}
	}
	t.Exit(token.CodeIndented)
	t.PopConstruct(tokenizer.CodeIndented)
	return tokenizer.Ok(), nil
}
