// Package git reads branch state from a repository using go-git.
//
// It supplies the branch name the commit-message formatter derives its
// defaults from, without shelling out to a git binary.
//
// Core types:
//   - Repository: opened repository with branch lookup and creation
//   - Error: operation error wrapping ErrNotRepository/ErrDetachedHead
//
// Example usage:
//
//	repo, err := git.Open(".")
//	if err != nil {
//	    return err
//	}
//	branch, err := repo.CurrentBranch()
package git
