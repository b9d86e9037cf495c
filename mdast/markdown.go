package mdast

import (
	"bytes"
	"strings"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/mdflow/safe"
	"github.com/jcorbin/mdflow/tokenizer"
)

// RenderMarkdown serializes root (and any link reference definitions
// gathered alongside it) back to CommonMark source, adapted from
// cmd/poc/main.go's markdownWriter.visitNode — trimmed to the node kinds
// this tokenizer's constructs actually produce, and using the safe package
// to escape text that would otherwise be misread as syntax on re-parse,
// rather than emitting it unescaped as the original writer does.
func RenderMarkdown(root *blackfriday.Node, defs map[string]Definition) []byte {
	var buf bytes.Buffer
	var mw markdownWriter
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return mw.visitNode(&buf, node, entering)
	})
	mw.nl(&buf, 1)

	for _, label := range sortedLabels(defs) {
		d := defs[label]
		writeDefinition(&buf, d)
	}

	return buf.Bytes()
}

func sortedLabels(defs map[string]Definition) []string {
	labels := make([]string, 0, len(defs))
	for k := range defs {
		labels = append(labels, k)
	}
	// Stable, deterministic order; labels are already normalized keys.
	for i := 1; i < len(labels); i++ {
		for j := i; j > 0 && labels[j-1] > labels[j]; j-- {
			labels[j-1], labels[j] = labels[j], labels[j-1]
		}
	}
	return labels
}

func writeDefinition(buf *bytes.Buffer, d Definition) {
	label, err := safe.Escape([]tokenizer.Name{tokenizer.Definition, tokenizer.Label}, d.Label, safe.Config{})
	if err != nil {
		label = d.Label
	}
	dest, err := safe.Escape(nil, d.Destination, safe.Config{EncodeOnly: true})
	if err != nil {
		dest = d.Destination
	}
	buf.WriteByte('[')
	buf.WriteString(label)
	buf.WriteString("]: ")
	buf.WriteString(dest)
	if d.Title != "" {
		q := safe.QuoteFor(d.Title)
		open, close := quoteBytes(q)
		title, err := safe.Escape([]tokenizer.Name{tokenizer.Definition, q}, d.Title, safe.Config{})
		if err != nil {
			title = d.Title
		}
		buf.WriteByte(' ')
		buf.WriteByte(open)
		buf.WriteString(title)
		buf.WriteByte(close)
	}
	buf.WriteByte('\n')
}

func quoteBytes(name tokenizer.Name) (open, close byte) {
	switch name {
	case tokenizer.TitleApostrophe:
		return '\'', '\''
	case tokenizer.TitleParen:
		return '(', ')'
	default:
		return '"', '"'
	}
}

type markdownWriter struct{}

func (mw *markdownWriter) visitNode(buf *bytes.Buffer, node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
	switch node.Type {
	case blackfriday.Document:
		// no framing needed

	case blackfriday.Heading:
		mw.nl(buf, 2)
		if entering {
			for i := 0; i < node.Level; i++ {
				buf.WriteByte('#')
			}
			buf.WriteByte(' ')
		}

	case blackfriday.Paragraph:
		mw.nl(buf, 2)

	case blackfriday.HorizontalRule:
		mw.nl(buf, 2)
		if entering {
			buf.WriteString("***")
		}

	case blackfriday.Text:
		if entering {
			text, err := safe.Escape([]tokenizer.Name{tokenizer.Phrasing}, string(node.Literal), safe.Config{})
			if err != nil {
				text = string(node.Literal)
			}
			for _, line := range strings.Split(text, "\n") {
				buf.WriteString(line)
				mw.nl(buf, 1)
			}
			trimTrailingNewline(buf)
		}

	case blackfriday.CodeBlock:
		mw.nl(buf, 1)
		if node.IsFenced {
			buf.WriteString("```")
			buf.Write(node.Info)
			mw.nl(buf, 1)
			buf.Write(node.Literal)
			buf.WriteString("```")
		} else {
			for _, line := range strings.Split(strings.TrimSuffix(string(node.Literal), "\n"), "\n") {
				buf.WriteString("    ")
				buf.WriteString(line)
				mw.nl(buf, 1)
			}
			trimTrailingNewline(buf)
		}

	case blackfriday.HTMLBlock:
		mw.nl(buf, 1)
		buf.Write(node.Literal)

	default:
		// Node kinds this builder never produces (lists, emphasis, links,
		// tables, ...) have no serialization here; the inline phase and
		// list/quote constructs are out of scope.
	}
	return blackfriday.GoToNext
}

func (mw *markdownWriter) nl(buf *bytes.Buffer, n int) {
	b := buf.Bytes()
	if len(b) == 0 {
		return
	}
	m := 0
	for i := len(b) - 1; m < n && i >= 0 && b[i] == '\n'; i-- {
		m++
	}
	for ; m < n; m++ {
		buf.WriteByte('\n')
	}
}

func trimTrailingNewline(buf *bytes.Buffer) {
	b := buf.Bytes()
	if len(b) > 0 && b[len(b)-1] == '\n' {
		buf.Truncate(len(b) - 1)
	}
}
