package mdast

import (
	"bytes"

	"github.com/russross/blackfriday"
)

// RenderHTML walks root with blackfriday's own HTML renderer. UseXHTML is
// set so a thematic break renders as the self-closing "<hr />" CommonMark's
// reference HTML output uses; blackfriday's default CodeBlock handling
// already produces the "<pre><code>...</code></pre>" wrapping indented and
// fenced code blocks share.
func RenderHTML(root *blackfriday.Node) []byte {
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})

	var buf bytes.Buffer
	renderer.RenderHeader(&buf, root)
	root.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		return renderer.RenderNode(&buf, node, entering)
	})
	renderer.RenderFooter(&buf, root)
	return buf.Bytes()
}
