package tokenizer

import "fmt"

// Name is a value on the construct-name stack: a cooperative context stack,
// distinct from the Enter/Exit token stack, that escape and inline logic
// consult to decide which characters need escaping (see the safe package).
// A construct pushes its own name on entry and pops it on exit; it is an
// invariant that the stack is empty at end of input.
type Name int

// Name constants. The flow-level constructs push the first few; the rest
// are named here because they are read by downstream serializers (§6) even
// though only the inline/AST phases push them.
const (
	noName Name = iota

	Definition
	Label
	DestinationLiteral
	DestinationRaw
	TitleQuote
	TitleApostrophe
	TitleParen
	Phrasing
	CodeFenced
	CodeIndented
	Autolink
	Image
	Link

	maxName
)

var nameStrings = [maxName]string{
	noName:              "none",
	Definition:          "Definition",
	Label:               "Label",
	DestinationLiteral:  "DestinationLiteral",
	DestinationRaw:      "DestinationRaw",
	TitleQuote:          "TitleQuote",
	TitleApostrophe:     "TitleApostrophe",
	TitleParen:          "TitleParen",
	Phrasing:            "Phrasing",
	CodeFenced:          "CodeFenced",
	CodeIndented:        "CodeIndented",
	Autolink:            "Autolink",
	Image:               "Image",
	Link:                "Link",
}

func (n Name) String() string {
	if n >= 0 && n < maxName {
		if s := nameStrings[n]; s != "" {
			return s
		}
	}
	return fmt.Sprintf("InvalidName%d", int(n))
}
