package constructs

import (
	"strings"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// rawTextTags opens an HTML flow block whose content runs, uninspected,
// until a line containing the matching closing tag (CommonMark's form 1).
var rawTextTags = map[string]bool{
	"script": true, "pre": true, "style": true, "textarea": true,
}

// blockTags opens an HTML flow block that instead ends at the next blank
// line (an approximation of CommonMark's forms 6/7, which this tokenizer
// does not distinguish from one another: form 7's extra restriction, that
// the tag appear alone with nothing else on its line, is not enforced).
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true, "basefont": true,
	"blockquote": true, "body": true, "caption": true, "center": true, "col": true,
	"colgroup": true, "dd": true, "details": true, "dialog": true, "dir": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figcaption": true,
	"figure": true, "footer": true, "form": true, "frame": true, "frameset": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "noframes": true, "ol": true, "optgroup": true,
	"option": true, "p": true, "param": true, "section": true, "summary": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "title": true, "tr": true, "track": true, "ul": true,
}

// HtmlFlow matches an HTML block opened by '<' followed by a recognized
// tag name (raw-text or block-level), per CommonMark's forms 1 and 6/7;
// forms 2-5 (comments, processing instructions, declarations, CDATA
// sections) are not implemented. Grounded on scandown's HTMLBlock
// BlockType, generalized from its single-kind tracking to the two
// distinct termination rules CommonMark actually specifies.
func HtmlFlow(t *tokenizer.Tokenizer, _ charcode.Code) (tokenizer.State, *charcode.Code) {
	codes := t.Codes
	n, j := countIndent(codes, t.Index(), 4)
	if n >= 4 {
		return tokenizer.Nok(), nil
	}

	b, isB := byteAt(codes, j)
	if !isB || b != '<' {
		return tokenizer.Nok(), nil
	}

	p := j + 1
	closing := false
	if c, isC := byteAt(codes, p); isC && c == '/' {
		closing = true
		p++
	}
	nameStart := p
	for {
		c, isC := byteAt(codes, p)
		if !isC || !isAlnum(c) {
			break
		}
		p++
	}
	if p == nameStart {
		return tokenizer.Nok(), nil
	}
	name := tagName(codes, nameStart, p)

	rawText := rawTextTags[name]
	if !rawText && !blockTags[name] {
		return tokenizer.Nok(), nil
	}

	consumeWhitespace(t, j)
	t.Enter(token.HtmlFlow)

	if rawText {
		scanRawTextBody(t, codes, name)
	} else {
		scanBlockBody(t, codes)
	}
	_ = closing

	t.Exit(token.HtmlFlow)
	return tokenizer.Ok(), nil
}

func isAlnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func tagName(codes []charcode.Code, start, end int) string {
	var sb strings.Builder
	for p := start; p < end; p++ {
		b, _ := byteAt(codes, p)
		sb.WriteByte(b)
	}
	return strings.ToLower(sb.String())
}

// scanRawTextBody consumes lines as HtmlFlowData, including the opening
// line, until a line containing the closing tag for name (inclusive), or
// EOF.
func scanRawTextBody(t *tokenizer.Tokenizer, codes []charcode.Code, name string) {
	closeTag := "</" + name
	for t.Index() < len(codes) {
		lineStart := t.Index()
		end := lineEnd(codes, lineStart)
		if end > lineStart {
			t.Enter(token.HtmlFlowData)
			consumeThrough(t, end)
			t.Exit(token.HtmlFlowData)
		}
		found := containsFold(codes, lineStart, end, closeTag)
		consumeLineEnding(t)
		if found {
			return
		}
	}
}

// scanBlockBody consumes lines as HtmlFlowData, including the opening
// line, until a blank line or EOF (the blank line itself is left
// unconsumed, for the flow dispatcher to recognize as its own construct).
func scanBlockBody(t *tokenizer.Tokenizer, codes []charcode.Code) {
	first := true
	for t.Index() < len(codes) {
		lineStart := t.Index()
		end := lineEnd(codes, lineStart)
		if !first && isBlank(codes, lineStart, end) {
			return
		}
		first = false
		if end > lineStart {
			t.Enter(token.HtmlFlowData)
			consumeThrough(t, end)
			t.Exit(token.HtmlFlowData)
		}
		consumeLineEnding(t)
	}
}

func containsFold(codes []charcode.Code, start, end int, needle string) bool {
	var sb strings.Builder
	for p := start; p < end; p++ {
		b, isB := byteAt(codes, p)
		if !isB {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteByte(b)
	}
	return strings.Contains(strings.ToLower(sb.String()), needle)
}
