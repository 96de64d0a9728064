package render

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// Markdown turns markdown (as the AI service tends to answer) into plain
// terminal text: headings and strong emphasis in bold, lists as bullets,
// code blocks indented.
func Markdown(src string) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	writeBlocks(&b, doc, source)
	return strings.TrimRight(b.String(), "\n")
}

func writeBlocks(b *strings.Builder, parent ast.Node, source []byte) {
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			b.WriteString(color.New(color.FgCyan, color.Bold).Sprint(inline(n, source)))
			b.WriteString("\n\n")
		case *ast.Paragraph:
			b.WriteString(inline(n, source))
			b.WriteString("\n\n")
		case *ast.TextBlock:
			b.WriteString(inline(n, source))
			b.WriteString("\n")
		case *ast.List:
			writeList(b, n, source)
			b.WriteString("\n")
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				b.WriteString("    ")
				b.Write(seg.Value(source))
			}
			b.WriteString("\n")
		case *ast.ThematicBreak:
			b.WriteString(strings.Repeat("─", 40))
			b.WriteString("\n\n")
		default:
			writeBlocks(b, n, source)
		}
	}
}

func writeList(b *strings.Builder, list *ast.List, source []byte) {
	num := list.Start
	if num == 0 {
		num = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := "•"
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d.", num)
			num++
		}

		var inner strings.Builder
		writeBlocks(&inner, item, source)

		first := true
		for _, line := range strings.Split(inner.String(), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if first {
				fmt.Fprintf(b, "  %s %s\n", marker, line)
				first = false
				continue
			}
			fmt.Fprintf(b, "  %s %s\n", strings.Repeat(" ", len([]rune(marker))), line)
		}
	}
}

func inline(parent ast.Node, source []byte) string {
	var b strings.Builder
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
			switch {
			case n.HardLineBreak():
				b.WriteString("\n")
			case n.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.Emphasis:
			inner := inline(n, source)
			if n.Level >= 2 {
				inner = color.New(color.Bold).Sprint(inner)
			} else {
				inner = color.New(color.Italic).Sprint(inner)
			}
			b.WriteString(inner)
		case *ast.AutoLink:
			b.Write(n.URL(source))
		default:
			b.WriteString(inline(n, source))
		}
	}
	return b.String()
}
