package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// headingFiller pads both sides of a centered block heading.
const headingFiller = "-"

// termRenderer turns DocItems into heading-delimited terminal blocks.
type termRenderer struct {
	theme   string
	width   int
	lenient bool
	log     zerolog.Logger
}

// renderItem writes one item's block: the centered heading, a blank
// separator, the signature line for functions, and the converted doc body,
// each part followed by a blank separator. Nothing is written when the doc
// body fails to convert.
func (r *termRenderer) renderItem(w io.Writer, item DocItem) error {
	switch it := item.(type) {
	case FuncDoc:
		body, err := r.formatMarkdown(it.Doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n\n%s\n\n%s\n\n", r.heading("function"), it.Signature, body)
	case PackageDoc:
		body, err := r.formatMarkdown(it.Doc)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\n\n%s\n\n", r.heading("package "+it.Ident), body)
	default:
		return fmt.Errorf("unknown doc item %T", item)
	}
	return nil
}

// heading centers the label within the configured display width, padding
// both sides with the dash filler. Labels wider than the display width are
// returned unpadded.
func (r *termRenderer) heading(label string) string {
	return lipgloss.PlaceHorizontal(r.width, lipgloss.Center, label,
		lipgloss.WithWhitespaceChars(headingFiller))
}
