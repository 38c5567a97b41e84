// Package config resolves the commit message vocabulary from layered
// configuration.
//
// Two keys are recognized, both holding string lists: "commit-types"
// (the accepted commit types) and "skip-prefixes" (the message prefixes
// that bypass formatting). Layers merge per key with clear precedence:
//  1. Environment variables (highest priority)
//  2. Local config (.hooks.yaml in the git root)
//  3. Global config (~/.config/hooks/config.yaml)
//  4. Built-in defaults (lowest priority)
//
// # Basic Usage
//
// Create a resolver from the directory you are operating in:
//
//	resolver := config.NewResolver(".")
//	cfg := resolver.Resolve()
//	if err := cfg.Validate(); err != nil {
//	    return err
//	}
//
//	formatter := cfg.Formatter()
//
// Resolution never fails: a layer that cannot be read or parsed is
// skipped and recorded in resolver.Warnings.
//
// # File Format
//
// Both config files use the same YAML shape:
//
//	commit-types:
//	  - fix
//	  - feat
//	skip-prefixes: [skip, s]
//
// # Environment Variables
//
// HOOKS_COMMIT_TYPES and HOOKS_SKIP_PREFIXES hold comma-separated lists
// and override every file layer:
//
//	HOOKS_COMMIT_TYPES="fix,feat,wip"
//	HOOKS_SKIP_PREFIXES="skip"
//
// # Config Sources
//
// Each resolved key tracks where its value came from:
//
//	values, source := cfg.Lookup(config.KeyCommitTypes)
//	fmt.Println(source) // "default", "global", "local", or "env"
package config
