// # go-docterm
//
// `go-docterm` is a companion to `go doc` that renders documentation straight
// to the terminal instead of printing plaintext or Markdown source. It parses
// Go files with the standard library's `go/parser`, walks the syntax tree for
// documented package clauses and function declarations, and prints each one as
// a heading-delimited block with the Markdown doc body converted to terminal
// text and code examples syntax-highlighted using 24-bit ANSI colors.
//
// Key capabilities:
//
//   - accept a single `.go` file or a package directory/pattern (resolved via
//     `golang.org/x/tools/go/packages`) as the one positional argument.
//   - emit one block per documented declaration: a dash-centered heading
//     (`package <name>` or `function`), the `func Name()` signature line, and
//     the converted doc body, each bounded by blank lines.
//   - keep paragraphs verbatim, turn `##` headings into marker runs, and
//     highlight fenced and indented code blocks through Chroma with a
//     configurable theme (`dracula` by default).
//   - reject any richer Markdown (lists, emphasis, links, inline code) with a
//     hard error so unsupported input never renders silently wrong; pass
//     `--lenient` to skip such constructs with a logged warning instead.
//   - read settings from flags, `DOCTERM_*` environment variables, or a
//     `.docterm.yaml` config file, in that order of precedence.
//   - ship a Cobra-powered CLI with rich `--help`, `--version`, shell
//     completion, and a `gen-docs` helper for publishing the CLI reference.
//
// ## Usage
//
//	go run ./go-docterm [flags] <file.go|package>
//
// Examples:
//
//   - Render one file's documentation to the terminal:
//
//     go run ./go-docterm ./pkg/cache/cache.go
//
//   - Render every file of a package:
//
//     go run ./go-docterm ./pkg/cache
//
//   - Pick a different highlight theme and a narrower heading width:
//
//     go run ./go-docterm --theme monokai --width 72 ./pkg/cache
//
//   - Tolerate doc comments that use lists or emphasis:
//
//     go run ./go-docterm --lenient ./cmd/server
//
// ## Supported Flags
//
//   - `--theme NAME`: Chroma style used for code blocks (default `dracula`;
//     unknown names fail fast against the style registry).
//   - `--width N`: display width block headings are centered in (default 80).
//   - `--lenient`: downgrade unsupported Markdown constructs from a fatal
//     error to a warning that skips the construct.
//   - `--config FILE`: explicit config file path. Without it, `.docterm.yaml`
//     is searched in the working directory and `$HOME/.config/docterm`.
//   - `-v, --verbose`: debug logging on stderr. Logs never mix into the
//     rendered output stream.
//
// Single-dash spellings of the long flags (`-theme`, `-width`, ...) are
// accepted for familiarity with the `go doc` flag style.
//
// ## Configuration
//
// Settings resolve in precedence order: explicit flags, then `DOCTERM_THEME`,
// `DOCTERM_WIDTH`, and `DOCTERM_LENIENT` environment variables, then the
// config file, then built-in defaults. The file form:
//
//	render:
//	  theme: monokai
//	  width: 100
//	  lenient: true
//
// ## Shell Completion
//
// Autocompletion is provided via Cobra's generators:
//
//	go run ./go-docterm completion bash        # bash
//	go run ./go-docterm completion zsh         # zsh
//	go run ./go-docterm completion fish | source
//	go run ./go-docterm completion powershell | Out-String | Invoke-Expression
//
// Add the appropriate command to your shell startup files (see Cobra's docs
// for installation paths) and enjoy tab-completion for flags and subcommands.
//
// ## CLI Docs
//
// `go-docterm` can generate Markdown for each CLI command via `gen-docs`.
// This is handy when you want to publish CLI reference docs alongside the
// rest of your project documentation:
//
//	go run ./go-docterm gen-docs ./docs/cli
//
// Every command becomes its own Markdown file under the provided directory.
//
// ## Output Contract
//
// Rendered documentation is the only thing written to stdout, and it is
// buffered until the whole run succeeds: a failing conversion exits non-zero
// with a `go-docterm:` diagnostic on stderr and nothing on stdout. Each code
// block carries exactly one trailing ANSI reset, so downstream pagers see
// balanced escape sequences.
package main
