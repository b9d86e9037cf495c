// Package token defines the closed set of spans the flow tokenizer can
// emit (Type), and the Enter/Exit Event records that make up its output
// log.
package token

import "fmt"

// Type names a semantic span the flow tokenizer can emit. The set is
// closed: downstream consumers (the HTML compiler, the AST builder, the
// Markdown serializer) switch over it exhaustively.
type Type int

// Type constants. Ordering is insignificant; grouping here follows
// spec.md §3 (generic spans first, then one block per construct).
const (
	noType Type = iota

	BlankLineEnding
	LineEnding
	Whitespace
	Content
	ChunkContent

	HeadingAtx
	HeadingAtxSequence
	HeadingAtxText

	HeadingSetext
	HeadingSetextText
	HeadingSetextUnderline
	HeadingSetextUnderlineSequence

	ThematicBreak
	ThematicBreakSequence

	CodeIndented
	CodeIndentedPrefixWhitespace

	CodeFenced
	CodeFencedFence
	CodeFencedFenceSequence
	CodeFencedFenceInfo
	CodeFencedFenceMeta
	CodeFlowChunk

	HtmlFlow
	HtmlFlowData

	Definition
	DefinitionLabel
	DefinitionLabelMarker
	DefinitionLabelString
	DefinitionMarker
	DefinitionDestination
	DefinitionDestinationLiteral
	DefinitionDestinationLiteralMarker
	DefinitionDestinationRaw
	DefinitionDestinationString
	DefinitionTitle
	DefinitionTitleMarker
	DefinitionTitleString

	maxType
)

var names = [maxType]string{
	noType:                             "none",
	BlankLineEnding:                    "BlankLineEnding",
	LineEnding:                         "LineEnding",
	Whitespace:                         "Whitespace",
	Content:                            "Content",
	ChunkContent:                       "ChunkContent",
	HeadingAtx:                         "HeadingAtx",
	HeadingAtxSequence:                 "HeadingAtxSequence",
	HeadingAtxText:                     "HeadingAtxText",
	HeadingSetext:                      "HeadingSetext",
	HeadingSetextText:                  "HeadingSetextText",
	HeadingSetextUnderline:             "HeadingSetextUnderline",
	HeadingSetextUnderlineSequence:     "HeadingSetextUnderlineSequence",
	ThematicBreak:                      "ThematicBreak",
	ThematicBreakSequence:              "ThematicBreakSequence",
	CodeIndented:                       "CodeIndented",
	CodeIndentedPrefixWhitespace:       "CodeIndentedPrefixWhitespace",
	CodeFenced:                         "CodeFenced",
	CodeFencedFence:                    "CodeFencedFence",
	CodeFencedFenceSequence:            "CodeFencedFenceSequence",
	CodeFencedFenceInfo:                "CodeFencedFenceInfo",
	CodeFencedFenceMeta:                "CodeFencedFenceMeta",
	CodeFlowChunk:                      "CodeFlowChunk",
	HtmlFlow:                           "HtmlFlow",
	HtmlFlowData:                       "HtmlFlowData",
	Definition:                         "Definition",
	DefinitionLabel:                    "DefinitionLabel",
	DefinitionLabelMarker:              "DefinitionLabelMarker",
	DefinitionLabelString:              "DefinitionLabelString",
	DefinitionMarker:                   "DefinitionMarker",
	DefinitionDestination:              "DefinitionDestination",
	DefinitionDestinationLiteral:       "DefinitionDestinationLiteral",
	DefinitionDestinationLiteralMarker: "DefinitionDestinationLiteralMarker",
	DefinitionDestinationRaw:           "DefinitionDestinationRaw",
	DefinitionDestinationString:        "DefinitionDestinationString",
	DefinitionTitle:                    "DefinitionTitle",
	DefinitionTitleMarker:              "DefinitionTitleMarker",
	DefinitionTitleString:              "DefinitionTitleString",
}

func (t Type) String() string {
	if t >= 0 && t < maxType {
		if s := names[t]; s != "" {
			return s
		}
	}
	return fmt.Sprintf("InvalidType%d", int(t))
}
