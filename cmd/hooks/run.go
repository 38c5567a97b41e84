package main

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jill-augustine/hooks/commitmsg"
	"github.com/jill-augustine/hooks/config"
	"github.com/jill-augustine/hooks/git"
)

// newRunCmd creates the run subcommand, the entry point the installed
// shim delegates to.
func newRunCmd() *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "run <hook> [args...]",
		Short: "Execute hook logic (called by installed git hooks)",
		Long: `Execute the logic for a git hook. This command is typically called by
the shim that 'hooks install' writes into .git/hooks.

Supported hooks:
  format-commit-msg <commit-msg-file>`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch hook := args[0]; hook {
			case "format-commit-msg":
				if len(args) != 2 {
					return fmt.Errorf("format-commit-msg expects exactly one argument: the commit message file")
				}
				return formatCommitFile(args[1], branch)
			default:
				return fmt.Errorf("unknown hook %q (known hooks: format-commit-msg)", hook)
			}
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "",
		"branch name to derive the commit type and issue from (default: current branch)")

	return cmd
}

// formatCommitFile rewrites the commit message file in place. The branch
// name comes from the flag when set, otherwise from the repository
// containing the file.
func formatCommitFile(path, branch string) error {
	dir := filepath.Dir(path)

	resolver := config.NewResolver(dir)
	resolved := resolver.Resolve()
	logWarnings(resolver.Warnings)
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

	res, err := commitmsg.FormatFile(path, opts...)
	if err != nil {
		return err
	}

	slog.Debug("commit message formatted",
		"branch", res.Branch, "commit_type", res.CommitType, "issue_no", res.IssueID, "skipped", res.Skipped)
	return nil
}
