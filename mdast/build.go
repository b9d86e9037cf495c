// Package mdast builds a blackfriday.Node document tree from a flow
// tokenizer's event log and renders it back out, the downstream "AST
// builder" and "HTML compiler" external collaborators spec.md §1 and §6
// describe. It is not part of the tokenizer core: it exists to give the
// tokenizer's output somewhere to go, the same role cmd/poc/main.go's
// markdownWriter/outlineWalker gave blackfriday's own parse tree in the
// teacher repo — here fed by this repository's tokenizer instead of
// blackfriday's.
package mdast

import (
	"strings"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/mdflow/charcode"
	"github.com/jcorbin/mdflow/token"
	"github.com/jcorbin/mdflow/tokenizer"
)

// Definition is a resolved link reference definition, keyed in the map
// Build returns by its normalized label.
type Definition struct {
	Label       string
	Destination string
	Title       string
}

// Build walks t's event log into a blackfriday.Node document tree, plus a
// side table of link reference definitions (which, per CommonMark, are
// never rendered as their own block).
func Build(t *tokenizer.Tokenizer) (*blackfriday.Node, map[string]Definition, error) {
	b := &builder{t: t, events: t.Events, defs: map[string]Definition{}}
	root := blackfriday.NewNode(blackfriday.Document)
	if err := b.children(root, 0); err != nil {
		return nil, nil, err
	}
	return root, b.defs, nil
}

type builder struct {
	t      *tokenizer.Tokenizer
	events []token.Event
	i      int
	defs   map[string]Definition
}

// children appends block nodes to parent until the event log runs out or
// an Exit is encountered, which it leaves for the caller to consume
// (depth is unused by logic and exists only to bound pathological
// recursion from a malformed event log).
func (b *builder) children(parent *blackfriday.Node, depth int) error {
	if depth > 10000 {
		return &Error{Message: "event log nesting too deep"}
	}
	for b.i < len(b.events) {
		e := b.events[b.i]
		if e.Kind == token.Exit {
			return nil
		}
		switch e.Type {
		case token.BlankLineEnding, token.LineEnding, token.Whitespace:
			b.i += 2
		case token.HeadingAtx:
			node, err := b.buildHeadingAtx()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.HeadingSetext:
			node, err := b.buildHeadingSetext()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.ThematicBreak:
			node, err := b.buildThematicBreak()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.CodeIndented:
			node, err := b.buildCodeIndented()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.CodeFenced:
			node, err := b.buildCodeFenced()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.HtmlFlow:
			node, err := b.buildHtmlFlow()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		case token.Definition:
			if err := b.buildDefinition(); err != nil {
				return err
			}
		case token.Content:
			node, err := b.buildParagraph()
			if err != nil {
				return err
			}
			parent.AppendChild(node)
		default:
			return &Error{Construct: e.Type, Message: "unexpected event at block level"}
		}
	}
	return nil
}

// consumeLeaf consumes the Enter/Exit pair at the builder's current
// position, which by construction are always adjacent for the tokenizer's
// text-bearing leaf spans (nothing is ever nested between an Enter and its
// Exit when the span's content is produced purely by consumeThrough).
func (b *builder) consumeLeaf() (enterIdx, exitIdx int) {
	enterIdx, exitIdx = b.i, b.i+1
	b.i += 2
	return
}

func (b *builder) leafText(enterIdx, exitIdx int) string {
	return charcode.Text(b.t.Codes[b.events[enterIdx].Index:b.events[exitIdx].Index])
}

func (b *builder) skipOptionalWhitespace() {
	if b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.Whitespace {
		b.i += 2
	}
}

func (b *builder) skipOptionalLineEnding() {
	if b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.LineEnding {
		b.i += 2
	}
}

func (b *builder) expectExit(typ token.Type) error {
	if b.i >= len(b.events) || b.events[b.i].Kind != token.Exit || b.events[b.i].Type != typ {
		return &Error{Construct: typ, Message: "expected matching Exit"}
	}
	b.i++
	return nil
}

func (b *builder) buildHeadingAtx() (*blackfriday.Node, error) {
	b.i++ // Enter(HeadingAtx)
	seqE, seqX := b.consumeLeaf()
	level := b.events[seqX].Index - b.events[seqE].Index
	b.skipOptionalWhitespace()

	var text string
	if b.i < len(b.events) && b.events[b.i].Type == token.HeadingAtxText {
		te, tx := b.consumeLeaf()
		text = b.leafText(te, tx)
	}
	b.skipOptionalWhitespace()
	if err := b.expectExit(token.HeadingAtx); err != nil {
		return nil, err
	}

	node := blackfriday.NewNode(blackfriday.Heading)
	node.HeadingData = blackfriday.HeadingData{Level: level}
	if text != "" {
		tn := blackfriday.NewNode(blackfriday.Text)
		tn.Literal = []byte(text)
		node.AppendChild(tn)
	}
	return node, nil
}

func (b *builder) buildHeadingSetext() (*blackfriday.Node, error) {
	b.i++ // Enter(HeadingSetext)
	var texts []string
	for b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.HeadingSetextText {
		te, tx := b.consumeLeaf()
		texts = append(texts, b.leafText(te, tx))
		b.skipOptionalLineEnding()
	}
	if b.i >= len(b.events) || b.events[b.i].Kind != token.Enter || b.events[b.i].Type != token.HeadingSetextUnderline {
		return nil, &Error{Construct: token.HeadingSetext, Message: "expected HeadingSetextUnderline"}
	}
	b.i++
	ue, ux := b.consumeLeaf()
	mark := b.leafText(ue, ux)
	if err := b.expectExit(token.HeadingSetextUnderline); err != nil {
		return nil, err
	}
	b.skipOptionalLineEnding()
	if err := b.expectExit(token.HeadingSetext); err != nil {
		return nil, err
	}

	level := 1
	if strings.HasPrefix(mark, "-") {
		level = 2
	}
	node := blackfriday.NewNode(blackfriday.Heading)
	node.HeadingData = blackfriday.HeadingData{Level: level}
	if text := strings.Join(texts, "\n"); text != "" {
		tn := blackfriday.NewNode(blackfriday.Text)
		tn.Literal = []byte(text)
		node.AppendChild(tn)
	}
	return node, nil
}

func (b *builder) buildThematicBreak() (*blackfriday.Node, error) {
	b.i++ // Enter(ThematicBreak)
	b.i += 2
	if err := b.expectExit(token.ThematicBreak); err != nil {
		return nil, err
	}
	return blackfriday.NewNode(blackfriday.HorizontalRule), nil
}

func (b *builder) buildCodeIndented() (*blackfriday.Node, error) {
	b.i++ // Enter(CodeIndented)
	var lines []string
	for b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.CodeIndentedPrefixWhitespace {
		b.i += 2
		line := ""
		if b.i < len(b.events) && b.events[b.i].Type == token.CodeFlowChunk {
			ce, cx := b.consumeLeaf()
			line = b.leafText(ce, cx)
		}
		lines = append(lines, line)
		b.skipOptionalLineEnding()
	}
	if err := b.expectExit(token.CodeIndented); err != nil {
		return nil, err
	}
	node := blackfriday.NewNode(blackfriday.CodeBlock)
	node.Literal = []byte(strings.Join(lines, "\n") + "\n")
	return node, nil
}

func (b *builder) parseFenceLine() (string, error) {
	if err := b.expectEnter(token.CodeFencedFence); err != nil {
		return "", err
	}
	b.i += 2 // CodeFencedFenceSequence
	b.skipOptionalWhitespace()
	info := ""
	if b.i < len(b.events) && b.events[b.i].Type == token.CodeFencedFenceInfo {
		ie, ix := b.consumeLeaf()
		info = b.leafText(ie, ix)
		b.skipOptionalWhitespace()
		if b.i < len(b.events) && b.events[b.i].Type == token.CodeFencedFenceMeta {
			me, mx := b.consumeLeaf()
			info += " " + b.leafText(me, mx)
		}
	}
	b.skipOptionalWhitespace()
	if err := b.expectExit(token.CodeFencedFence); err != nil {
		return "", err
	}
	b.skipOptionalLineEnding()
	return info, nil
}

func (b *builder) expectEnter(typ token.Type) error {
	if b.i >= len(b.events) || b.events[b.i].Kind != token.Enter || b.events[b.i].Type != typ {
		return &Error{Construct: typ, Message: "expected matching Enter"}
	}
	b.i++
	return nil
}

func (b *builder) buildCodeFenced() (*blackfriday.Node, error) {
	b.i++ // Enter(CodeFenced)
	info, err := b.parseFenceLine()
	if err != nil {
		return nil, err
	}

	var lines []string
	for b.i < len(b.events) {
		e := b.events[b.i]
		if e.Kind == token.Enter && e.Type == token.CodeFencedFence {
			if _, err := b.parseFenceLine(); err != nil {
				return nil, err
			}
			break
		}
		if e.Kind == token.Exit && e.Type == token.CodeFenced {
			break
		}
		line := ""
		if e.Type == token.CodeFlowChunk {
			ce, cx := b.consumeLeaf()
			line = b.leafText(ce, cx)
		}
		lines = append(lines, line)
		b.skipOptionalLineEnding()
	}
	if err := b.expectExit(token.CodeFenced); err != nil {
		return nil, err
	}

	node := blackfriday.NewNode(blackfriday.CodeBlock)
	node.IsFenced = true
	node.Info = []byte(info)
	if len(lines) > 0 {
		node.Literal = []byte(strings.Join(lines, "\n") + "\n")
	}
	return node, nil
}

func (b *builder) buildHtmlFlow() (*blackfriday.Node, error) {
	b.i++ // Enter(HtmlFlow)
	var lines []string
	for b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.HtmlFlowData {
		de, dx := b.consumeLeaf()
		lines = append(lines, b.leafText(de, dx))
		b.skipOptionalLineEnding()
	}
	if err := b.expectExit(token.HtmlFlow); err != nil {
		return nil, err
	}
	node := blackfriday.NewNode(blackfriday.HTMLBlock)
	node.Literal = []byte(strings.Join(lines, "\n") + "\n")
	return node, nil
}

func (b *builder) buildDefinition() error {
	b.i++ // Enter(Definition)

	if err := b.expectEnter(token.DefinitionLabel); err != nil {
		return err
	}
	b.i += 2 // DefinitionLabelMarker '['
	le, lx := b.consumeLeaf()
	label := b.leafText(le, lx)
	b.i += 2 // DefinitionLabelMarker ']'
	if err := b.expectExit(token.DefinitionLabel); err != nil {
		return err
	}

	b.i += 2 // DefinitionMarker ':'
	b.skipOptionalWhitespace()

	if err := b.expectEnter(token.DefinitionDestination); err != nil {
		return err
	}
	var dest string
	switch {
	case b.i < len(b.events) && b.events[b.i].Type == token.DefinitionDestinationLiteral:
		b.i++ // Enter(DefinitionDestinationLiteral)
		b.i += 2 // DefinitionDestinationLiteralMarker '<'
		de, dx := b.consumeLeaf()
		dest = b.leafText(de, dx)
		b.i += 2 // DefinitionDestinationLiteralMarker '>'
		if err := b.expectExit(token.DefinitionDestinationLiteral); err != nil {
			return err
		}
	case b.i < len(b.events) && b.events[b.i].Type == token.DefinitionDestinationRaw:
		b.i++ // Enter(DefinitionDestinationRaw)
		de, dx := b.consumeLeaf()
		dest = b.leafText(de, dx)
		if err := b.expectExit(token.DefinitionDestinationRaw); err != nil {
			return err
		}
	default:
		return &Error{Construct: token.DefinitionDestination, Message: "unrecognized destination form"}
	}
	if err := b.expectExit(token.DefinitionDestination); err != nil {
		return err
	}
	b.skipOptionalWhitespace()

	title := ""
	if b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.DefinitionTitle {
		b.i++      // Enter(DefinitionTitle)
		b.i += 2   // DefinitionTitleMarker opening
		te, tx := b.consumeLeaf()
		title = b.leafText(te, tx)
		b.i += 2 // DefinitionTitleMarker closing
		if err := b.expectExit(token.DefinitionTitle); err != nil {
			return err
		}
	}
	b.skipOptionalWhitespace()
	if err := b.expectExit(token.Definition); err != nil {
		return err
	}
	b.skipOptionalLineEnding()

	b.defs[normalizeLabel(label)] = Definition{Label: label, Destination: dest, Title: title}
	return nil
}

func (b *builder) buildParagraph() (*blackfriday.Node, error) {
	b.i++ // Enter(Content)
	var lines []string
	for b.i < len(b.events) && b.events[b.i].Kind == token.Enter && b.events[b.i].Type == token.ChunkContent {
		ce, cx := b.consumeLeaf()
		lines = append(lines, b.leafText(ce, cx))
		b.skipOptionalLineEnding()
	}
	if err := b.expectExit(token.Content); err != nil {
		return nil, err
	}
	node := blackfriday.NewNode(blackfriday.Paragraph)
	tn := blackfriday.NewNode(blackfriday.Text)
	tn.Literal = []byte(strings.Join(lines, "\n"))
	node.AppendChild(tn)
	return node, nil
}

// normalizeLabel case-folds and collapses whitespace in a reference label,
// per CommonMark's link label matching rule.
func normalizeLabel(label string) string {
	return strings.ToLower(strings.Join(strings.Fields(label), " "))
}
