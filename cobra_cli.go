package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

const rootLongDesc = `
go-docterm is a companion to go doc that renders documentation straight to the
terminal. Point it at a Go source file or a package and every documented
package clause and function becomes a heading-delimited block: Markdown prose
is printed as-is, "#" heading markers are kept, and code examples are
syntax-highlighted with 24-bit ANSI colors.

  • One positional argument: either a .go file or a package directory/pattern
  • Paragraphs, headings, and code blocks are rendered; richer Markdown is
    rejected unless --lenient skips it
  • Configurable via flags, DOCTERM_* environment variables, or a
    .docterm.yaml file
  • Shell completion generation for bash, zsh, fish, and PowerShell
  • A gen-docs helper that emits Markdown reference docs for the CLI itself

Use go run ./go-docterm path/to/file.go, or install the binary and wire
completion into your shell.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	app := &cliApp{stdout: stdout}
	cmd := &cobra.Command{
		Use:           "go-docterm [flags] <file.go|package>",
		Short:         "Render Go documentation to the terminal with ANSI colors",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.Flags()
	flags.StringVar(&app.cfgPath, "config", "", "config file (default .docterm.yaml, then $HOME/.config/docterm)")
	flags.StringVar(&app.opts.theme, "theme", defaultTheme, "highlight theme for code blocks")
	flags.IntVar(&app.opts.width, "width", defaultWidth, "display width used to center block headings")
	flags.BoolVar(&app.opts.lenient, "lenient", false, "skip unsupported Markdown constructs instead of failing")
	flags.BoolVarP(&app.opts.verbose, "verbose", "v", false, "enable debug logging on stderr")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		app.flagChanged = cmd.Flags().Changed
		return app.execute(ctx, args)
	}

	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for go-docterm.

The output should be evaluated by your shell. For example:

  # bash
  go-docterm completion bash > /usr/local/etc/bash_completion.d/go-docterm

  # zsh
  go-docterm completion zsh > "${fpath[1]}/_go-docterm"

  # fish
  go-docterm completion fish | source

  # PowerShell
  go-docterm completion powershell | Out-String | Invoke-Expression
`
	)
	cmd := &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  longDesc,
		Args:                  cobra.ExactValidArgs(1),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		SilenceUsage:          true,
		SilenceErrors:         true,
		DisableFlagsInUseLine: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return root.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return root.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return root.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell %q", args[0])
		}
	}
	return cmd
}

func newDocsCmd(root *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [directory]",
		Short: "Generate Markdown reference docs for the CLI",
		Long: strings.TrimSpace(`
Write a Markdown file per command (suitable for publishing CLI docs).

Example:

  go-docterm gen-docs ./docs/cli
`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if target == "" {
			return fmt.Errorf("target directory is required")
		}
		if err := os.MkdirAll(target, 0o755); err != nil {
			return err
		}
		return cobradoc.GenMarkdownTree(root, target)
	}
	return cmd
}
