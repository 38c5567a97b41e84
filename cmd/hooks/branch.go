package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jill-augustine/hooks/config"
	"github.com/jill-augustine/hooks/git"
)

func newBranchCmd() *cobra.Command {
	var checkout bool

	cmd := &cobra.Command{
		Use:   "branch <type> <issue> [title...]",
		Short: "Mint a branch name the formatter can parse",
		Long: `Build a branch name following the type/ISSUE-123/title convention.

The type must be one of the configured commit types and the issue must
match LETTERS-DIGITS. The remaining arguments become a slugged title.`,
		Example: `  hooks branch feat ABC-123 add user login
  hooks branch fix jira-7 --checkout`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := config.NewResolver(".")
			resolved := resolver.Resolve()
			logWarnings(resolver.Warnings)
			if err := resolved.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			title := strings.Join(args[2:], " ")
			name, err := resolved.Formatter().BranchName(args[0], args[1], title)
			if err != nil {
				return err
			}

			if checkout {
				repo, err := git.Open(".")
				if err != nil {
					return err
				}
				if err := repo.CheckoutNew(name); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Switched to new branch %s\n", name)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&checkout, "checkout", false, "create the branch and switch to it")

	return cmd
}
