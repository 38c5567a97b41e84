package commitmsg

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors reported by the formatter. All of them abort the
// formatting operation before anything is written.
var (
	// ErrInvalidBranchFormat indicates a branch that declares a commit
	// type without a valid issue id in the second segment.
	ErrInvalidBranchFormat = errors.New("branch contains a commit type but no jira issue")

	// ErrUnresolvedCommitType indicates that neither the branch nor the
	// message supplies a commit type.
	ErrUnresolvedCommitType = errors.New("commit type could not be determined")

	// ErrDisallowedCommitType indicates a message type token outside the
	// recognized vocabulary.
	ErrDisallowedCommitType = errors.New("commit type is not allowed")

	// ErrIncompleteResolution indicates a commit type that was resolved
	// without a matching issue id.
	ErrIncompleteResolution = errors.New("commit type or issue id could not be determined")
)

// BranchFormatError reports a branch whose first segment names a commit
// type but whose second segment is not a valid issue id.
type BranchFormatError struct {
	Branch string // the offending branch name
}

// Error implements the error interface.
func (e *BranchFormatError) Error() string {
	return fmt.Sprintf("branch name %q contains a commit type but no jira issue", e.Branch)
}

// Unwrap returns the underlying sentinel error.
func (e *BranchFormatError) Unwrap() error { return ErrInvalidBranchFormat }

// UnresolvedTypeError reports that no commit type could be resolved from
// either input. It carries both inputs so the user can self-diagnose.
type UnresolvedTypeError struct {
	Branch       string   // branch name consulted for a default type
	Message      string   // commit message, surrounding whitespace trimmed
	SkipPrefixes []string // prefixes that would bypass the check
}

// Error implements the error interface.
func (e *UnresolvedTypeError) Error() string {
	prefixes := make([]string, len(e.SkipPrefixes))
	for i, p := range e.SkipPrefixes {
		prefixes[i] = fmt.Sprintf("%q", p+":")
	}
	return fmt.Sprintf(
		"commit type could not be determined from the branch name %q or the commit message %q; start the commit message with one of %s to skip this check",
		e.Branch, e.Message, strings.Join(prefixes, ", "))
}

// Unwrap returns the underlying sentinel error.
func (e *UnresolvedTypeError) Unwrap() error { return ErrUnresolvedCommitType }

// DisallowedTypeError reports a message type token that is neither a
// recognized commit type nor a skip prefix.
type DisallowedTypeError struct {
	Token string // the leading type token as written
}

// Error implements the error interface.
func (e *DisallowedTypeError) Error() string {
	return fmt.Sprintf("commit type %q is not allowed according to conventional commits", strings.ToLower(e.Token))
}

// Unwrap returns the underlying sentinel error.
func (e *DisallowedTypeError) Unwrap() error { return ErrDisallowedCommitType }

// IncompleteResolutionError reports a commit type resolved without a
// matching issue id, which happens when a message-declared type meets a
// branch that carries no issue.
type IncompleteResolutionError struct {
	CommitType string // the resolved type, empty if none
}

// Error implements the error interface.
func (e *IncompleteResolutionError) Error() string {
	if e.CommitType != "" {
		return fmt.Sprintf("commit type %q was resolved but no issue id could be determined", e.CommitType)
	}
	return "either the commit type or the issue id could not be determined"
}

// Unwrap returns the underlying sentinel error.
func (e *IncompleteResolutionError) Unwrap() error { return ErrIncompleteResolution }

// IsInvalidBranch reports whether err indicates a type-carrying branch
// without a valid issue id.
func IsInvalidBranch(err error) bool {
	return errors.Is(err, ErrInvalidBranchFormat)
}

// IsUnresolvedType reports whether err indicates that no commit type
// could be determined.
func IsUnresolvedType(err error) bool {
	return errors.Is(err, ErrUnresolvedCommitType)
}

// IsDisallowedType reports whether err indicates a type token outside
// the vocabulary.
func IsDisallowedType(err error) bool {
	return errors.Is(err, ErrDisallowedCommitType)
}

// IsIncompleteResolution reports whether err indicates a type resolved
// without an issue id.
func IsIncompleteResolution(err error) bool {
	return errors.Is(err, ErrIncompleteResolution)
}
