package git

import "errors"

// Repository inspection errors.
var (
	// ErrNotRepository indicates the path is not inside a git repository.
	ErrNotRepository = errors.New("not a git repository")

	// ErrDetachedHead indicates HEAD does not point to a branch.
	ErrDetachedHead = errors.New("repository HEAD is detached")
)

// Error wraps a repository operation error with context.
type Error struct {
	Op   string // Operation that failed (e.g., "open", "current branch")
	Path string // Repository or lookup path
	Err  error  // Underlying error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotRepository reports whether err indicates a path outside any git
// repository.
func IsNotRepository(err error) bool {
	return errors.Is(err, ErrNotRepository)
}

// IsDetachedHead reports whether err indicates a detached HEAD.
func IsDetachedHead(err error) bool {
	return errors.Is(err, ErrDetachedHead)
}
