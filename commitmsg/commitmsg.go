package commitmsg

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

// Recognized conventional commit types.
const (
	TypeFix      = "fix"
	TypeFeat     = "feat"
	TypeBuild    = "build"
	TypeChore    = "chore"
	TypeCI       = "ci"
	TypeDocs     = "docs"
	TypeStyle    = "style"
	TypeRefactor = "refactor"
	TypePerf     = "perf"
	TypeTest     = "test"
)

// DefaultCommitTypes is the commit-type vocabulary used when no
// configuration overrides it.
var DefaultCommitTypes = []string{
	TypeFix, TypeFeat, TypeBuild, TypeChore, TypeCI,
	TypeDocs, TypeStyle, TypeRefactor, TypePerf, TypeTest,
}

// DefaultSkipPrefixes are the message prefixes that bypass formatting.
var DefaultSkipPrefixes = []string{"skip", "no-verify", "s"}

var (
	// issuePattern matches tracker references like "ABC-123".
	issuePattern = regexp.MustCompile(`^[A-Za-z]+-[0-9]+$`)

	// typeTokenPattern matches a leading type token immediately followed
	// by a colon, with no space before the colon.
	typeTokenPattern = regexp.MustCompile(`^([A-Za-z]+):`)
)

// BranchInfo holds the commit type and issue id derived from a branch name.
// A zero BranchInfo means the branch does not follow the type/ISSUE-123/...
// convention.
type BranchInfo struct {
	CommitType string // first segment, lowercased
	IssueID    string // second segment, original casing
}

// Formatter rewrites commit messages into the canonical
// "ISSUE-123(type): text" form. The zero value recognizes no vocabulary;
// use New for the defaults.
type Formatter struct {
	CommitTypes  []string // recognized commit types
	SkipPrefixes []string // prefixes that pass the message through unchanged
}

// New returns a Formatter with the default vocabulary.
func New() *Formatter {
	return &Formatter{
		CommitTypes:  DefaultCommitTypes,
		SkipPrefixes: DefaultSkipPrefixes,
	}
}

// DeriveBranchInfo extracts the default commit type and issue id from a
// branch name of the form "type/ISSUE-123/description".
//
// A branch whose first segment is not a recognized commit type yields a
// zero BranchInfo and no error. A branch whose first segment IS a
// recognized type must carry a well-formed issue id in the second
// segment, otherwise DeriveBranchInfo fails with ErrInvalidBranchFormat.
func (f *Formatter) DeriveBranchInfo(branchName string) (BranchInfo, error) {
	parts := strings.Split(branchName, "/")

	commitType := strings.ToLower(parts[0])
	if !f.isCommitType(commitType) {
		return BranchInfo{}, nil
	}

	// Once a type-carrying branch is detected the issue id is mandatory.
	if len(parts) < 2 || !issuePattern.MatchString(parts[1]) {
		return BranchInfo{}, &BranchFormatError{Branch: branchName}
	}

	return BranchInfo{CommitType: commitType, IssueID: parts[1]}, nil
}

// ExtractType resolves the commit type from the start of a message,
// falling back to defaultType when the message carries no type token.
//
// A leading token of letters immediately followed by ":" is treated as
// the message-declared type. If it is in the vocabulary (commit types or
// skip prefixes, compared case-insensitively) it is returned with its
// original casing and stripped from the message along with the colon and
// any whitespace that follows; otherwise ExtractType fails with
// ErrDisallowedCommitType. Without a token and without a default it
// fails with ErrUnresolvedCommitType.
func (f *Formatter) ExtractType(message, defaultType string) (commitType, stripped string, err error) {
	m := typeTokenPattern.FindStringSubmatch(message)
	if m == nil {
		if defaultType == "" {
			return "", "", &UnresolvedTypeError{
				Message:      strings.TrimSpace(message),
				SkipPrefixes: f.SkipPrefixes,
			}
		}
		// Nothing to strip.
		return defaultType, message, nil
	}

	token := m[1]
	if f.isSkipPrefix(token) || f.isCommitType(token) {
		rest := strings.TrimLeftFunc(message[len(token)+1:], unicode.IsSpace)
		return token, rest, nil
	}

	return "", "", &DisallowedTypeError{Token: token}
}

// FormatMessage composes the final message from the resolved parts.
//
// A skip-prefix commit type returns the message verbatim. Otherwise both
// commitType and issueID must be resolved, and the result is
// "ISSUEID(committype): message" with the issue id uppercased and the
// type lowercased.
func (f *Formatter) FormatMessage(commitType, issueID, message string) (string, error) {
	if commitType != "" && f.isSkipPrefix(commitType) {
		return message, nil
	}

	if commitType == "" || issueID == "" {
		return "", &IncompleteResolutionError{CommitType: commitType}
	}

	return strings.ToUpper(issueID) + "(" + strings.ToLower(commitType) + "): " + message, nil
}

// Format runs the whole pipeline: derive defaults from the branch,
// extract the type from the message, compose the final message.
func (f *Formatter) Format(branchName, rawMessage string) (string, error) {
	final, _, err := f.format(branchName, rawMessage)
	return final, err
}

// format is the composed pipeline shared by Format and FormatFile. The
// three steps run in this order only: each depends on the prior's output.
func (f *Formatter) format(branchName, rawMessage string) (string, Result, error) {
	info, err := f.DeriveBranchInfo(branchName)
	if err != nil {
		return "", Result{}, err
	}

	commitType, stripped, err := f.ExtractType(rawMessage, info.CommitType)
	if err != nil {
		// ExtractType never sees the branch name; attach it here for the
		// self-diagnosis text.
		var unresolved *UnresolvedTypeError
		if errors.As(err, &unresolved) {
			unresolved.Branch = branchName
		}
		return "", Result{}, err
	}

	final, err := f.FormatMessage(commitType, info.IssueID, stripped)
	if err != nil {
		return "", Result{}, err
	}

	res := Result{
		Branch:     branchName,
		CommitType: commitType,
		IssueID:    info.IssueID,
		Message:    final,
		Skipped:    f.isSkipPrefix(commitType),
	}
	return final, res, nil
}

// isCommitType reports whether s matches a recognized commit type,
// ignoring case.
func (f *Formatter) isCommitType(s string) bool {
	return containsFold(f.CommitTypes, s)
}

// isSkipPrefix reports whether s matches a skip prefix, ignoring case.
func (f *Formatter) isSkipPrefix(s string) bool {
	return containsFold(f.SkipPrefixes, s)
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
