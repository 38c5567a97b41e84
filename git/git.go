package git

import (
	"errors"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Repository provides the branch operations the hooks need, backed by
// go-git. It never shells out, so it works without a git binary on PATH.
type Repository struct {
	repo *gogit.Repository
	root string
}

// Open opens the repository containing dir, searching upward for the
// .git directory the way git itself does.
func Open(dir string) (*Repository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			err = ErrNotRepository
		}
		return nil, &Error{Op: "open", Path: dir, Err: err}
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, &Error{Op: "open", Path: dir, Err: err}
	}

	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the worktree root path.
func (r *Repository) Root() string {
	return r.root
}

// CurrentBranch returns the name of the currently checked-out branch.
//
// The HEAD reference is read without resolving it, so this works on a
// freshly initialized repository whose branch has no commits yet, which
// is exactly the state of the first commit a commit-msg hook sees. A
// detached HEAD yields ErrDetachedHead.
func (r *Repository) CurrentBranch() (string, error) {
	ref, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", &Error{Op: "current branch", Path: r.root, Err: err}
	}

	if ref.Type() != plumbing.SymbolicReference || !ref.Target().IsBranch() {
		return "", &Error{Op: "current branch", Path: r.root, Err: ErrDetachedHead}
	}

	return ref.Target().Short(), nil
}

// CheckoutNew creates branch name at HEAD and switches to it.
func (r *Repository) CheckoutNew(name string) error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return &Error{Op: "checkout", Path: r.root, Err: err}
	}

	err = wt.Checkout(&gogit.CheckoutOptions{
		Branch: plumbing.NewBranchReferenceName(name),
		Create: true,
	})
	if err != nil {
		return &Error{Op: "checkout", Path: r.root, Err: err}
	}

	return nil
}
