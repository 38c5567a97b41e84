// Package testutil provides hermetic git fixtures for tests.
//
// Repositories are created through go-git, so tests run without a git
// binary on PATH.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// SetupTestRepo creates a temporary git repository with one commit on the
// default branch. Returns the path to the repository. The repository is
// cleaned up when the test ends.
func SetupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("git init failed: %v", err)
	}

	CommitFile(t, dir, "README.md", "# Test Repository\n", "Initial commit")

	return dir
}

// SetupTestRepoOnBranch creates a temporary repository whose HEAD points
// at the given, still unborn branch. No commits are made, mirroring the
// state of a repository right before its first commit.
func SetupTestRepoOnBranch(t *testing.T, branch string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("git init failed: %v", err)
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	if err := repo.Storer.SetReference(head); err != nil {
		t.Fatalf("setting HEAD to %s failed: %v", branch, err)
	}

	return dir
}

// CommitFile creates or updates a file and commits it.
func CommitFile(t *testing.T, repoDir, path, content, message string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}

	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		t.Fatalf("opening repo failed: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("getting worktree failed: %v", err)
	}

	if _, err := wt.Add(filepath.ToSlash(path)); err != nil {
		t.Fatalf("git add %s failed: %v", path, err)
	}

	_, err = wt.Commit(message, &gogit.CommitOptions{
		Author: &object.Signature{
			Name:  "Test User",
			Email: "test@test.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("git commit failed: %v", err)
	}
}

// CreateBranch creates a new branch at HEAD and switches to it.
func CreateBranch(t *testing.T, repoDir, branch string) {
	t.Helper()

	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		t.Fatalf("opening repo failed: %v", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("getting worktree failed: %v", err)
	}

	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(branch),
		Create: true,
	})
	if err != nil {
		t.Fatalf("git checkout -b %s failed: %v", branch, err)
	}
}

// DetachHead points HEAD directly at the current commit.
func DetachHead(t *testing.T, repoDir string) {
	t.Helper()

	repo, err := gogit.PlainOpen(repoDir)
	if err != nil {
		t.Fatalf("opening repo failed: %v", err)
	}

	head, err := repo.Head()
	if err != nil {
		t.Fatalf("resolving HEAD failed: %v", err)
	}

	if err := repo.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, head.Hash())); err != nil {
		t.Fatalf("detaching HEAD failed: %v", err)
	}
}
