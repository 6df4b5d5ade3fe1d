package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// highlightLanguage is the grammar applied to every code block. Fence info
// strings are ignored: examples in Go doc comments are Go code.
const highlightLanguage = "go"

// ansiReset restores default terminal styling after a highlighted block.
const ansiReset = termenv.CSI + termenv.ResetSeq + "m"

// highlight writes code with 24-bit ANSI color escapes, tokenizing one line
// at a time so the original line structure survives, then emits a single
// trailing reset for the whole block. Lexer and style are looked up in
// chroma's registries on every call.
func highlight(w io.Writer, code, theme string) error {
	lexer := lexers.Get(highlightLanguage)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	for _, line := range splitAfterLines(code) {
		iterator, err := lexer.Tokenise(nil, line)
		if err != nil {
			return fmt.Errorf("tokenise code block: %w", err)
		}
		for _, token := range iterator.Tokens() {
			writeColored(w, style.Get(token.Type), token.Value)
		}
	}
	_, err := io.WriteString(w, ansiReset)
	return err
}

// writeColored emits one token prefixed with its background and foreground
// escapes. Tokens are not individually reset; the block-level reset in
// highlight restores the terminal.
func writeColored(w io.Writer, entry chroma.StyleEntry, value string) {
	if entry.Background.IsSet() {
		fmt.Fprintf(w, "%s48;2;%d;%d;%dm", termenv.CSI,
			entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	if entry.Colour.IsSet() {
		fmt.Fprintf(w, "%s38;2;%d;%d;%dm", termenv.CSI,
			entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	io.WriteString(w, value)
}

// splitAfterLines splits text into lines that keep their trailing newline.
func splitAfterLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
