package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jill-augustine/hooks/git"
	"github.com/jill-augustine/hooks/githooks"
)

func newInstallCmd() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the commit-msg shim into .git/hooks",
		Long: `Install a commit-msg hook that formats commit messages through
'hooks run format-commit-msg'.

The shim occupies a marker-delimited section of the hook file, so an
existing commit-msg hook keeps working: the section is appended to it
and removed again on uninstall.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repoRoot(repoDir)
			if err != nil {
				return err
			}

			path, err := githooks.Install(root)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Installed commit-msg hook: %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository to install into")

	return cmd
}

func newUninstallCmd() *cobra.Command {
	var repoDir string

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the commit-msg shim from .git/hooks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := repoRoot(repoDir)
			if err != nil {
				return err
			}

			installed, err := githooks.Installed(root)
			if err != nil {
				return err
			}
			if !installed {
				fmt.Fprintln(cmd.OutOrStdout(), "commit-msg hook is not installed")
				return nil
			}

			if err := githooks.Uninstall(root); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Uninstalled commit-msg hook")
			return nil
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "repository to uninstall from")

	return cmd
}

// repoRoot resolves dir to the repository worktree root.
func repoRoot(dir string) (string, error) {
	repo, err := git.Open(dir)
	if err != nil {
		return "", err
	}
	return repo.Root(), nil
}
