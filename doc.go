// Package hooks provides commit-message formatting driven by branch
// naming conventions.
//
// The module is organized into subpackages by domain:
//
//   - commitmsg: branch parsing, type resolution, message formatting
//   - config: layered vocabulary configuration (files, environment)
//   - git: repository access and branch lookup via go-git
//   - githooks: commit-msg shim installation in .git/hooks
//   - testutil: hermetic repository fixtures for tests
//
// Two commands wrap the library: format-commit-msg is the pre-commit
// framework entry point, and hooks is the toolbox CLI (hook execution,
// shim install, branch creation, configuration).
//
// # Quick Start
//
//	import (
//	    "github.com/jill-augustine/hooks/commitmsg"
//	    "github.com/jill-augustine/hooks/git"
//	)
//
//	// Open the repository containing the working directory.
//	repo, _ := git.Open(".")
//
//	// Rewrite the pending commit message in place.
//	res, err := commitmsg.FormatFile(".git/COMMIT_EDITMSG",
//	    commitmsg.WithBranchProvider(repo))
//
// On the branch feat/ABC-123/my_feat the message "my message here"
// becomes "ABC-123(feat): my message here".
//
// See individual package documentation for detailed usage.
package hooks
