package store

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownText renders a markdown document to plain text.
// Each block (paragraph, heading, list item, code block) ends on its own line,
// soft line breaks inside a paragraph become spaces.
func MarkdownText(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var buf bytes.Buffer
	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if node.Type() == ast.TypeBlock {
				buf.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.HardLineBreak() {
				buf.WriteByte('\n')
			} else if n.SoftLineBreak() {
				buf.WriteByte(' ')
			}

		case *ast.String:
			buf.Write(n.Value)

		case *ast.CodeBlock, *ast.FencedCodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				line := lines.At(i)
				buf.Write(line.Value(source))
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		// fall back to the raw source
		return string(source)
	}
	return buf.String()
}
