// Command hooks manages commit message formatting driven by branch
// naming: it installs the commit-msg shim, executes the hook logic the
// shim delegates to, mints convention-conforming branch names, and edits
// the vocabulary configuration.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "Commit message formatting driven by branch naming",
		Long: `hooks rewrites commit messages into "ISSUE(type): text" form, deriving
the commit type and issue id from branches named type/ISSUE-123/title.

Install the commit-msg shim once per repository:

  hooks install

After that every commit message is formatted automatically. Messages
starting with a skip prefix (skip:, no-verify:, s:) pass through
untouched.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(
		newRunCmd(),
		newInstallCmd(),
		newUninstallCmd(),
		newBranchCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

func setupLogger(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

func logWarnings(warnings []string) {
	for _, w := range warnings {
		slog.Warn(w)
	}
}
