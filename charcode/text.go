package charcode

import "strings"

// Text renders a code slice back to a string: virtual spaces become
// literal spaces and a collapsed CRLF becomes "\r\n" again. A decoded tab
// therefore comes back as '\t' followed by one space per VirtualSpace, so
// input containing tabs does not round-trip exactly. Downstream consumers (the
// sub-tokenizer, the AST builder) use this to turn an event span's code
// range back into text.
func Text(codes []Code) string {
	var sb strings.Builder
	for _, c := range codes {
		switch c.Kind {
		case Char:
			sb.WriteRune(c.Char)
		case VirtualSpace:
			sb.WriteByte(' ')
		case CarriageReturnLineFeed:
			sb.WriteString("\r\n")
		case None:
		}
	}
	return sb.String()
}
