package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jill-augustine/hooks/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and edit the commit message vocabulary",
		Long: `Inspect and edit the configured commit types and skip prefixes.

Values resolve from built-in defaults, then ~/.config/hooks/config.yaml,
then .hooks.yaml in the git root, then the HOOKS_COMMIT_TYPES and
HOOKS_SKIP_PREFIXES environment variables.`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigSetCmd(),
		newConfigUnsetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show resolved values and their sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resolver := config.NewResolver(".")
			resolved := resolver.Resolve()
			logWarnings(resolver.Warnings)

			out := cmd.OutOrStdout()
			for _, key := range config.ValidKeys() {
				values, source := resolved.Lookup(key)
				fmt.Fprintf(out, "%s = %s  (%s)\n", key, strings.Join(values, ","), source)
			}
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a key to the local or global config",
		Long: `Set a configuration key. Values are comma-separated lists:

  hooks config set commit-types fix,feat,wip
  hooks config set skip-prefixes skip --global

Without --global the value is written to .hooks.yaml in the git root.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, values := args[0], config.ParseList(args[1])

			if global {
				return config.SaveGlobal(key, values)
			}
			return config.SaveLocal(config.NewResolver(".").GitRoot(), key, values)
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "write to ~/.config/hooks/config.yaml")

	return cmd
}

func newConfigUnsetCmd() *cobra.Command {
	var global bool

	cmd := &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a key from the local or global config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if global {
				return config.DeleteGlobalKey(args[0])
			}
			return config.DeleteLocalKey(config.NewResolver(".").GitRoot(), args[0])
		},
	}

	cmd.Flags().BoolVar(&global, "global", false, "remove from ~/.config/hooks/config.yaml")

	return cmd
}
