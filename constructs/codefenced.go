package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// CodeFenced matches a fenced code block opened by a run of 3+ backtick or
// tilde marks, an optional info string (backtick fences forbid a further
// backtick on the opening line, matching CommonMark), a body of literal
// lines, and a closing fence of the same mark with width >= the opening
// fence's, indented by at most 3 columns and alone on its line — or no
// closing fence at all, in which case the block runs to EOF. Grounded on
// scandown's fence helper and Codefence/Codeblock BlockTypes.
func CodeFenced(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	n, j := countIndent(codes, t.Index(), 4)
	if n >= 4 {
		return tokenizer.Nok(), nil
	}

	delim, width, k, ok := fence(codes, j, 3, '`', '~')
	if !ok {
		return tokenizer.Nok(), nil
	}

	end := lineEnd(codes, k)
	if delim == '`' {
		for p := k; p < end; p++ {
			if b, isB := byteAt(codes, p); isB && b == '`' {
				return tokenizer.Nok(), nil
			}
		}
	}

	t.PushConstruct(tokenizer.CodeFenced)
	consumeWhitespace(t, j)
	t.Enter(token.CodeFenced)
	t.Enter(token.CodeFencedFence)
	t.Enter(token.CodeFencedFenceSequence)
	consumeThrough(t, k)
	t.Exit(token.CodeFencedFenceSequence)

	infoStart := skipSpaceTab(codes, k)
	consumeWhitespace(t, infoStart)
	if infoStart < end {
		p := infoStart
		for p < end && !codes[p].IsSpaceOrTab() {
			p++
		}
		t.Enter(token.CodeFencedFenceInfo)
		consumeThrough(t, p)
		t.Exit(token.CodeFencedFenceInfo)

		metaStart := skipSpaceTab(codes, p)
		consumeWhitespace(t, metaStart)
		if metaStart < end {
			t.Enter(token.CodeFencedFenceMeta)
			consumeThrough(t, end)
			t.Exit(token.CodeFencedFenceMeta)
		}
	}
	t.Exit(token.CodeFencedFence)
	consumeLineEnding(t)

	for t.Index() < len(codes) {
		lineStart := t.Index()
		ln, lj := countIndent(codes, lineStart, 3)
		if _, cw, ck, cok := fence(codes, lj, width, delim); cok {
			closeEnd := lineEnd(codes, ck)
			if cw >= width && isBlank(codes, ck, closeEnd) {
				consumeWhitespace(t, lj)
				t.Enter(token.CodeFencedFence)
				t.Enter(token.CodeFencedFenceSequence)
				consumeThrough(t, ck)
				t.Exit(token.CodeFencedFenceSequence)
				consumeWhitespace(t, closeEnd)
				t.Exit(token.CodeFencedFence)
				consumeLineEnding(t)
				break
			}
		}

		lineEndIdx := lineEnd(codes, lineStart)
		if lineEndIdx > lineStart {
			t.Enter(token.CodeFlowChunk)
			consumeThrough(t, lineEndIdx)
			t.Exit(token.CodeFlowChunk)
		}
		consumeLineEnding(t)
		_ = ln
	}
	t.Exit(token.CodeFenced)
	t.PopConstruct(tokenizer.CodeFenced)
	return tokenizer.Ok(), nil
}
