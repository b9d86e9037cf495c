package constructs

import (
	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// Definition matches a link reference definition: "[label]:" followed by
// a destination (angle-bracketed literal or unquoted raw) and an optional
// title, with nothing but trailing whitespace left on the line the title
// or destination ends on. Per spec.md §4.4, the label and title may each
// span multiple lines (so long as none of those lines is blank); the
// destination may not, in either bracketed or unbracketed form — both
// rules are enforced directly against the decoded code array rather than
// line by line, since the whole input is already indexable.
func Definition(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	n, j := countIndent(codes, t.Index(), 4)
	if n >= 4 {
		return tokenizer.Nok(), nil
	}

	b, isB := byteAt(codes, j)
	if !isB || b != '[' {
		return tokenizer.Nok(), nil
	}

	labelStart := j + 1
	p := labelStart
	segStart := labelStart
	for p < len(codes) {
		bb, isBB := byteAt(codes, p)
		if isBB && bb == '\\' {
			p += 2
			continue
		}
		if isBB && bb == ']' {
			break
		}
		if codes[p].IsLineEnding() {
			if isBlank(codes, segStart, p) {
				return tokenizer.Nok(), nil
			}
			p++
			segStart = p
			continue
		}
		p++
	}
	if p >= len(codes) {
		return tokenizer.Nok(), nil
	}
	labelEnd := p
	if isBlank(codes, labelStart, labelEnd) {
		return tokenizer.Nok(), nil
	}

	colonIdx := labelEnd + 1
	cb, isCB := byteAt(codes, colonIdx)
	if !isCB || cb != ':' {
		return tokenizer.Nok(), nil
	}

	destIdx := skipSpaceTab(codes, colonIdx+1)

	literal := false
	var destTextStart, destTextEnd, afterDest int
	if db, isDB := byteAt(codes, destIdx); isDB && db == '<' {
		literal = true
		destTextStart = destIdx + 1
		q := destTextStart
		for q < len(codes) {
			bb, isBB := byteAt(codes, q)
			if isBB && bb == '\\' {
				q += 2
				continue
			}
			if isBB && bb == '>' {
				break
			}
			if codes[q].IsLineEnding() {
				return tokenizer.Nok(), nil
			}
			q++
		}
		if q >= len(codes) {
			return tokenizer.Nok(), nil
		}
		destTextEnd = q
		afterDest = q + 1
	} else {
		destTextStart = destIdx
		q := destIdx
		depth := 0
		for q < len(codes) {
			bb, isBB := byteAt(codes, q)
			if isBB && bb == '\\' {
				q += 2
				continue
			}
			if codes[q].IsSpaceOrTab() || codes[q].IsLineEnding() {
				break
			}
			if isBB && bb == '(' {
				depth++
			}
			if isBB && bb == ')' {
				if depth == 0 {
					break
				}
				depth--
			}
			q++
		}
		if q == destIdx {
			return tokenizer.Nok(), nil
		}
		destTextEnd = q
		afterDest = q
	}

	titleStart := skipSpaceTab(codes, afterDest)
	hasTitle, titleQuote, titleTextStart, titleTextEnd, afterTitle := matchTitle(codes, titleStart)
	lineAfter := afterDest
	if hasTitle {
		lineAfter = afterTitle
	}
	end := lineEnd(codes, lineAfter)
	if !isBlank(codes, lineAfter, end) {
		if hasTitle {
			hasTitle = false
			lineAfter = afterDest
			end = lineEnd(codes, lineAfter)
		}
		if !isBlank(codes, lineAfter, end) {
			return tokenizer.Nok(), nil
		}
	}

	consumeWhitespace(t, j)
	t.PushConstruct(tokenizer.Definition)
	t.Enter(token.Definition)

	t.PushConstruct(tokenizer.Label)
	t.Enter(token.DefinitionLabel)
	t.Enter(token.DefinitionLabelMarker)
	consumeThrough(t, labelStart)
	t.Exit(token.DefinitionLabelMarker)
	t.Enter(token.DefinitionLabelString)
	consumeThrough(t, labelEnd)
	t.Exit(token.DefinitionLabelString)
	t.Enter(token.DefinitionLabelMarker)
	consumeThrough(t, colonIdx)
	t.Exit(token.DefinitionLabelMarker)
	t.Exit(token.DefinitionLabel)
	t.PopConstruct(tokenizer.Label)

	t.Enter(token.DefinitionMarker)
	consumeThrough(t, colonIdx+1)
	t.Exit(token.DefinitionMarker)

	consumeWhitespace(t, destIdx)
	t.Enter(token.DefinitionDestination)
	if literal {
		t.PushConstruct(tokenizer.DestinationLiteral)
		t.Enter(token.DefinitionDestinationLiteral)
		t.Enter(token.DefinitionDestinationLiteralMarker)
		consumeThrough(t, destTextStart)
		t.Exit(token.DefinitionDestinationLiteralMarker)
		t.Enter(token.DefinitionDestinationString)
		consumeThrough(t, destTextEnd)
		t.Exit(token.DefinitionDestinationString)
		t.Enter(token.DefinitionDestinationLiteralMarker)
		consumeThrough(t, afterDest)
		t.Exit(token.DefinitionDestinationLiteralMarker)
		t.Exit(token.DefinitionDestinationLiteral)
		t.PopConstruct(tokenizer.DestinationLiteral)
	} else {
		t.PushConstruct(tokenizer.DestinationRaw)
		t.Enter(token.DefinitionDestinationRaw)
		t.Enter(token.DefinitionDestinationString)
		consumeThrough(t, destTextEnd)
		t.Exit(token.DefinitionDestinationString)
		t.Exit(token.DefinitionDestinationRaw)
		t.PopConstruct(tokenizer.DestinationRaw)
	}
	t.Exit(token.DefinitionDestination)

	if hasTitle {
		consumeWhitespace(t, titleStart)
		titleName := titleConstructName(titleQuote)
		t.PushConstruct(titleName)
		t.Enter(token.DefinitionTitle)
		t.Enter(token.DefinitionTitleMarker)
		consumeThrough(t, titleTextStart)
		t.Exit(token.DefinitionTitleMarker)
		t.Enter(token.DefinitionTitleString)
		consumeThrough(t, titleTextEnd)
		t.Exit(token.DefinitionTitleString)
		t.Enter(token.DefinitionTitleMarker)
		consumeThrough(t, afterTitle)
		t.Exit(token.DefinitionTitleMarker)
		t.Exit(token.DefinitionTitle)
		t.PopConstruct(titleName)
	}

	consumeWhitespace(t, end)
	t.Exit(token.Definition)
	t.PopConstruct(tokenizer.Definition)
	consumeLineEnding(t)
	return tokenizer.Ok(), nil
}

func titleConstructName(quote byte) tokenizer.Name {
	switch quote {
	case '\'':
		return tokenizer.TitleApostrophe
	case '(':
		return tokenizer.TitleParen
	default:
		return tokenizer.TitleQuote
	}
}

// matchTitle matches an optional quoted title starting at i: a '"', '\'',
// or '(' opener, content up to its matching unescaped closer. The title
// may span multiple lines, but a blank line anywhere inside it fails the
// match entirely (spec.md §4.4), same as it would end a paragraph.
func matchTitle(codes []charcode.Code, i int) (ok bool, quote byte, textStart, textEnd, after int) {
	b, isB := byteAt(codes, i)
	if !isB || (b != '"' && b != '\'' && b != '(') {
		return false, 0, 0, 0, i
	}
	closeByte := b
	if b == '(' {
		closeByte = ')'
	}
	p := i + 1
	start := p
	segStart := p
	for p < len(codes) {
		bb, isBB := byteAt(codes, p)
		if isBB && bb == '\\' {
			p += 2
			continue
		}
		if isBB && bb == closeByte {
			return true, b, start, p, p + 1
		}
		if codes[p].IsLineEnding() {
			if isBlank(codes, segStart, p) {
				return false, 0, 0, 0, i
			}
			p++
			segStart = p
			continue
		}
		p++
	}
	return false, 0, 0, 0, i
}
