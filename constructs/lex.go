// Package constructs implements the flow construct library of spec.md §4.4
// (blank line, ATX heading, thematic break, indented code, fenced code,
// HTML flow, link-reference definition) and the top-level flow dispatcher
// of §4.3 that speculatively selects among them.
//
// Each construct is grounded on scandown/block.go's byte-slice matching
// helpers (trimIndent, delimiter, fence, ruler), adapted here to operate
// over a decoded charcode.Code window instead of a raw byte line: because
// charcode.Decode already expands tabs into one Char('\t') plus the right
// count of VirtualSpace codes, counting "indent columns" degenerates to
// counting consecutive IsSpaceOrTab codes, which is simpler than
// scandown's own tab-stop bookkeeping (that logic now lives once, in
// charcode.Decode, rather than being re-derived by every construct).
//
// Because the tokenizer materializes the whole decoded Code array up
// front (spec.md §4.1 requires it be indexable), most constructs here
// resolve in a single StateFn call by scanning forward from the current
// index, rather than chaining per-code continuations the way the flow
// dispatcher's paragraph accumulation does. Either shape satisfies the
// spec's StateFn contract; a construct is free to return Ok/Nok/Fn from
// any call.
package constructs

import "github.com/jcorbin/mdflow/charcode"

// countIndent counts up to max leading space/tab/virtual-space columns in
// codes starting at i, returning the count and the index of the first
// non-indent code (which may still be within the limit, if codes ran out
// or a non-blank code was found first).
func countIndent(codes []charcode.Code, i, max int) (n, next int) {
	for next = i; n < max && next < len(codes) && codes[next].IsSpaceOrTab(); next++ {
		n++
	}
	return n, next
}

// skipSpaceTab skips any run of space/tab/virtual-space codes starting at
// i, with no limit.
func skipSpaceTab(codes []charcode.Code, i int) int {
	for i < len(codes) && codes[i].IsSpaceOrTab() {
		i++
	}
	return i
}

// lineEnd returns the index of the line-ending code starting at or after
// i, or len(codes) if the line runs to EOF without one.
func lineEnd(codes []charcode.Code, i int) int {
	for ; i < len(codes); i++ {
		if codes[i].IsLineEnding() {
			return i
		}
	}
	return i
}

// isBlank reports whether codes[i:end] contains only space/tab codes.
func isBlank(codes []charcode.Code, i, end int) bool {
	for ; i < end; i++ {
		if !codes[i].IsSpaceOrTab() {
			return false
		}
	}
	return true
}

// byteAt returns the ASCII byte at i, and whether codes[i] represents one.
func byteAt(codes []charcode.Code, i int) (byte, bool) {
	if i < 0 || i >= len(codes) {
		return 0, false
	}
	return codes[i].Byte()
}

func isOneOf(b byte, marks ...byte) bool {
	for _, m := range marks {
		if b == m {
			return true
		}
	}
	return false
}

// delimiter matches a run of 1..maxWidth identical marks bytes starting at
// i, requiring the run be immediately followed by whitespace, a line
// ending, or EOF (so "###x" never matches as an ATX sequence). It returns
// the matched byte, the run's width, and the index right after it; ok is
// false if there was no match at all.
func delimiter(codes []charcode.Code, i, maxWidth int, marks ...byte) (delim byte, width, next int, ok bool) {
	b, isB := byteAt(codes, i)
	if !isB || !isOneOf(b, marks...) {
		return 0, 0, i, false
	}
	delim = b
	width = 1
	next = i + 1
	for {
		c, isC := byteAt(codes, next)
		if isC && c == delim {
			width++
			if width > maxWidth {
				return 0, 0, i, false
			}
			next++
			continue
		}
		break
	}
	if next < len(codes) && !codes[next].IsSpaceOrTab() && !codes[next].IsLineEnding() {
		return 0, 0, i, false
	}
	return delim, width, next, true
}

// fence matches an opening/closing code-fence run of >= min identical
// marks bytes starting at i (with no trailing-whitespace requirement,
// since fence info strings follow directly).
func fence(codes []charcode.Code, i, min int, marks ...byte) (delim byte, width, next int, ok bool) {
	b, isB := byteAt(codes, i)
	if !isB || !isOneOf(b, marks...) {
		return 0, 0, i, false
	}
	delim = b
	next = i
	for {
		c, isC := byteAt(codes, next)
		if isC && c == delim {
			width++
			next++
			continue
		}
		break
	}
	if width < min {
		return 0, 0, i, false
	}
	return delim, width, next, true
}

// ruler matches a thematic-break-style run starting at i: one of marks,
// then any mixture of that same mark and spaces/tabs until the line ends,
// requiring at least 3 mark bytes total.
func ruler(codes []charcode.Code, i int, marks ...byte) (delim byte, width, next int, ok bool) {
	b, isB := byteAt(codes, i)
	if !isB || !isOneOf(b, marks...) {
		return 0, 0, i, false
	}
	delim = b
	width = 0
	next = i
	for next < len(codes) {
		if codes[next].IsSpaceOrTab() {
			next++
			continue
		}
		c, isC := byteAt(codes, next)
		if !isC {
			break
		}
		if c == delim {
			width++
			next++
			continue
		}
		break
	}
	if width < 3 {
		return 0, 0, i, false
	}
	return delim, width, next, true
}
