// Package input reads description text from files. Markdown files are
// flattened to plain text so the sentence splitter sees prose instead of
// markup.
package input

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// ReadDescription loads description text from path. Files with a .md or
// .markdown extension are parsed and flattened; anything else is read
// verbatim.
func ReadDescription(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from a CLI flag
	if err != nil {
		return "", fmt.Errorf("reading description file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return ExtractText(data), nil
	default:
		return strings.TrimSpace(string(data)), nil
	}
}

// ExtractText flattens markdown to plain text. Headings become standalone
// sentences (a trailing period is appended when missing) so they survive
// sentence splitting as titles of their sections.
func ExtractText(src []byte) string {
	md := goldmark.New()
	doc := md.Parser().Parse(gmtext.NewReader(src))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		block := strings.TrimSpace(nodeText(n, src))
		if block == "" {
			continue
		}

		if _, isHeading := n.(*ast.Heading); isHeading && !strings.HasSuffix(block, ".") {
			block += "."
		}

		blocks = append(blocks, block)
	}

	return strings.Join(blocks, " ")
}

// nodeText collects the text content of a goldmark AST node, including
// nested inlines.
func nodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer

	if n.Type() == ast.TypeBlock && n.ChildCount() == 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
			continue
		}
		buf.WriteString(" " + nodeText(c, src))
	}

	return strings.TrimSpace(buf.String())
}
