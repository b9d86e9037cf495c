// Package safe implements the escape helper the tokenizer exposes to
// serializers (spec.md §4.6): given the current construct-name stack and a
// Config describing the characters that terminate the enclosing context,
// decide which characters in a string need backslash-escaping (or percent
// encoding) so that re-parsing the serialized output reproduces the same
// text rather than accidentally opening a new construct.
//
// Grounded on
// mdast_util_to_markdown/src/handle/definition.rs's check_quote and
// contain_control_char_or_whitespace, which decide exactly this for a
// Definition node's title quote character and destination form.
package safe

import (
	"fmt"
	"strings"

	"github.com/jcorbin/mdflow/tokenizer"
)

// Config records the characters immediately before and after the string
// being escaped in the eventual output, and whether escaping should be
// done by percent-encoding instead of backslashes (used for raw URL
// destinations, which CommonMark does not backslash-escape).
type Config struct {
	Before     string
	After      string
	EncodeOnly bool
}

// Error reports a Config that safe.Escape cannot honor: EncodeOnly is
// CommonMark's raw-URL-destination encoding, which has no meaning inside a
// quoted title, so pairing it with an open title-quote construct is a
// caller bug rather than a string this package can safely encode either
// way.
type Error struct {
	Construct tokenizer.Name
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("safe: %v: %s", e.Construct, e.Message)
}

// Escape returns s with characters that would be misread in the given
// construct-name stack's context escaped, per Config.
func Escape(stack []tokenizer.Name, s string, cfg Config) (string, error) {
	if cfg.EncodeOnly {
		if q, open := openTitleQuote(stack); open {
			return "", &Error{Construct: q, Message: "EncodeOnly cannot be combined with an open title-quote construct"}
		}
		return encodeURL(s), nil
	}

	dangerous, err := dangerousRunes(stack)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if dangerous[r] {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
		_ = i
	}
	out := sb.String()

	if out != "" && cfg.Before != "" && strings.HasSuffix(cfg.Before, "\n") && startsBlockMarker(rune(out[0])) {
		out = "\\" + out
	}
	return out, nil
}

// dangerousRunes returns the set of characters that would be misread as
// syntax given the open constructs in stack, innermost last.
func dangerousRunes(stack []tokenizer.Name) (map[rune]bool, error) {
	set := map[rune]bool{'\\': true}
	for _, n := range stack {
		switch n {
		case tokenizer.Label, tokenizer.Definition, tokenizer.Link, tokenizer.Image:
			set['['] = true
			set[']'] = true
		case tokenizer.TitleQuote:
			set['"'] = true
		case tokenizer.TitleApostrophe:
			set['\''] = true
		case tokenizer.TitleParen:
			set['('] = true
			set[')'] = true
		case tokenizer.DestinationRaw:
			set['('] = true
			set[')'] = true
			set[' '] = true
		case tokenizer.DestinationLiteral:
			set['<'] = true
			set['>'] = true
		case tokenizer.CodeFenced:
			set['`'] = true
			set['~'] = true
		case tokenizer.Autolink:
			set['<'] = true
			set['>'] = true
		case tokenizer.Phrasing:
			set['*'] = true
			set['_'] = true
			set['`'] = true
		}
	}
	return set, nil
}

// openTitleQuote reports whether stack has a title-quote construct open,
// and which one.
func openTitleQuote(stack []tokenizer.Name) (tokenizer.Name, bool) {
	for _, n := range stack {
		switch n {
		case tokenizer.TitleQuote, tokenizer.TitleApostrophe, tokenizer.TitleParen:
			return n, true
		}
	}
	return 0, false
}

func startsBlockMarker(r rune) bool {
	switch r {
	case '#', '*', '-', '_', '+', '>', '`', '~', '[':
		return true
	default:
		return r >= '0' && r <= '9'
	}
}

// encodeURL percent-encodes control characters and '(' ')' '<' '>' '"'
// for use as a raw (non-angle-bracketed) link destination, the encoding
// CommonMark applies instead of backslash-escaping there. Spaces are left
// as they are.
func encodeURL(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b < 0x20 || b == 0x7f:
			fmt.Fprintf(&sb, "%%%02X", b)
		case strings.IndexByte("()<>\"", b) >= 0:
			fmt.Fprintf(&sb, "%%%02X", b)
		default:
			sb.WriteByte(b)
		}
	}
	return sb.String()
}

// QuoteFor picks the title-quote construct name for the given title text,
// mirroring check_quote's preference order (prefer '"', fall back to '\''
// then '(' if the title text itself contains the preferred quote).
func QuoteFor(title string) tokenizer.Name {
	switch {
	case !strings.ContainsRune(title, '"'):
		return tokenizer.TitleQuote
	case !strings.ContainsRune(title, '\''):
		return tokenizer.TitleApostrophe
	default:
		return tokenizer.TitleParen
	}
}
