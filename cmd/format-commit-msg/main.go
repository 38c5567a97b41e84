// Command format-commit-msg rewrites a commit message file into
// ISSUE(type): text form, deriving the commit type and issue id from the
// current branch name. Git invokes it through the commit-msg hook; the
// pre-commit framework invokes it directly.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jill-augustine/hooks/commitmsg"
	"github.com/jill-augustine/hooks/config"
	"github.com/jill-augustine/hooks/git"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		branch  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "format-commit-msg <commit-msg-file>",
		Short: "Rewrite a commit message using the branch naming convention",
		Long: `Rewrite a commit message file into "ISSUE(type): text" form.

The commit type and issue id are derived from branches named
type/ISSUE-123/title. A leading "type:" token in the message overrides
the branch-derived type; a skip prefix such as "skip:" passes the
message through untouched.`,
		Example: `  format-commit-msg .git/COMMIT_EDITMSG
  format-commit-msg --branch feat/ABC-123/login .git/COMMIT_EDITMSG`,
		Args:          cobra.ExactArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(verbose)
			return formatCommitFile(args[0], branch)
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "",
		"branch name to derive the commit type and issue from (default: current branch)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable debug logging")

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

// formatCommitFile rewrites the commit message file in place. The branch
// name comes from the flag when set, otherwise from the repository
// containing the file.
func formatCommitFile(path, branch string) error {
	dir := filepath.Dir(path)

	resolver := config.NewResolver(dir)
	resolved := resolver.Resolve()
	for _, w := range resolver.Warnings {
		slog.Warn(w)
	}
	if err := resolved.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := []commitmsg.Option{commitmsg.WithFormatter(resolved.Formatter())}
	if branch != "" {
		opts = append(opts, commitmsg.WithBranch(branch))
	} else {
		repo, err := git.Open(dir)
		if err != nil {
			return err
		}
		opts = append(opts, commitmsg.WithBranchProvider(repo))
	}

	_, err := commitmsg.FormatFile(path, opts...)
	return err
}
