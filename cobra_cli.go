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
doc-sync copies README.md into the leading //! doc comment of src/lib.rs so the
crate documentation never drifts from the README.

Both paths are resolved against the directory holding the doc-sync binary, not
the current directory. The header being replaced (every //! or blank line at
the top of src/lib.rs) is printed between >>>>>> and <<<<<< before the file is
overwritten, so anything lost by accident can be copied back from the output.

Additional commands:

  • check verifies the header is current without writing (useful in CI)
  • completion generates shell completion for bash, zsh, fish, and PowerShell
  • gen-docs emits Markdown reference docs for the CLI itself
`

func newRootCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "doc-sync",
		Short:         "Sync README.md into the src/lib.rs doc header",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(app.stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.sync(commandContext(cmd))
	}

	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newCompletionCmd(cmd))
	cmd.AddCommand(newDocsCmd(cmd))
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func newCheckCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the src/lib.rs doc header matches README.md",
		Long: strings.TrimSpace(`
Compare src/lib.rs with what doc-sync would write and fail when they differ.
Nothing is written and no backup is printed.
`),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.check(commandContext(cmd))
	}
	return cmd
}

func newCompletionCmd(root *cobra.Command) *cobra.Command {
	const (
		longDesc = `Generate shell completion scripts for doc-sync.

The output should be evaluated by your shell. For example:

  # bash
  doc-sync completion bash > /usr/local/etc/bash_completion.d/doc-sync

  # zsh
  doc-sync completion zsh > "${fpath[1]}/_doc-sync"

  # fish
  doc-sync completion fish | source

  # PowerShell
  doc-sync completion powershell | Out-String | Invoke-Expression
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

  doc-sync gen-docs ./docs/cli
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
