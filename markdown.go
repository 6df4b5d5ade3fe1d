package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	mdtext "github.com/yuin/goldmark/text"
)

// errUnsupportedMarkdown marks doc bodies that use Markdown outside the
// supported subset of paragraphs, headings, and code blocks.
var errUnsupportedMarkdown = errors.New("unsupported Markdown construct")

// codeLines is the shared surface of fenced and indented code block nodes.
type codeLines interface {
	mdast.Node
	Lines() *mdtext.Segments
}

// formatMarkdown converts one raw doc string into terminal-ready text.
//
// Prose is copied through untouched, headings become "#" marker runs bounded
// by blank lines, and code block content is buffered until the block closes,
// then replayed through the highlighter. Any other construct aborts the
// conversion, or is skipped with a warning when lenient mode is on.
func (r *termRenderer) formatMarkdown(input string) (string, error) {
	source := []byte(input)
	doc := goldmark.New().Parser().Parse(mdtext.NewReader(source))

	var out bytes.Buffer
	var code bytes.Buffer
	inCode := false

	err := mdast.Walk(doc, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		switch node := n.(type) {
		case *mdast.Document:
		case *mdast.Heading:
			if entering {
				fmt.Fprintf(&out, "\n\n%s ", strings.Repeat("#", node.Level))
			} else {
				out.WriteString("\n\n")
			}
		case *mdast.Paragraph:
			if !entering {
				// The separator follows the text into whichever buffer
				// is active.
				if inCode {
					code.WriteString("\n\n")
				} else {
					out.WriteString("\n\n")
				}
			}
		case *mdast.FencedCodeBlock:
			return r.convertCodeBlock(&out, &code, &inCode, node, source, entering)
		case *mdast.CodeBlock:
			return r.convertCodeBlock(&out, &code, &inCode, node, source, entering)
		case *mdast.Text:
			if entering {
				value := node.Segment.Value(source)
				if inCode {
					code.Write(value)
				} else {
					out.Write(value)
				}
				if node.SoftLineBreak() || node.HardLineBreak() {
					return r.unsupported("line break")
				}
			}
		case *mdast.String:
			if entering {
				if inCode {
					code.Write(node.Value)
				} else {
					out.Write(node.Value)
				}
			}
		default:
			if entering {
				return r.unsupported(n.Kind().String())
			}
		}
		return mdast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// convertCodeBlock buffers block content on entry and, on exit, replays the
// buffer through the highlighter followed by a blank separator. The buffer is
// cleared for the next block either way.
func (r *termRenderer) convertCodeBlock(out, code *bytes.Buffer, inCode *bool, node codeLines, source []byte, entering bool) (mdast.WalkStatus, error) {
	if entering {
		*inCode = true
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			code.Write(seg.Value(source))
		}
		return mdast.WalkContinue, nil
	}
	*inCode = false
	defer code.Reset()
	if err := highlight(out, code.String(), r.theme); err != nil {
		return mdast.WalkStop, err
	}
	out.WriteString("\n\n")
	return mdast.WalkContinue, nil
}

// unsupported decides what happens when the walk meets a construct outside
// the supported subset: a hard error by default, a logged skip in lenient
// mode.
func (r *termRenderer) unsupported(construct string) (mdast.WalkStatus, error) {
	if r.lenient {
		r.log.Warn().Str("construct", construct).Msg("skipping unsupported Markdown construct")
		return mdast.WalkSkipChildren, nil
	}
	return mdast.WalkStop, fmt.Errorf("%w: %s", errUnsupportedMarkdown, construct)
}
