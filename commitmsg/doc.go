// Package commitmsg rewrites pending commit messages into the canonical
// "ISSUE-123(type): text" form used with conventional commits.
//
// The formatter reconciles two independent type signals: the branch name
// (e.g. "feat/ABC-123/add-login" carries a default type and the issue
// id) and an optional leading "type:" token in the message itself. A
// message-declared type wins over the branch default. Skip prefixes
// ("skip:", "s:") pass the message through untouched apart from the
// stripped prefix.
//
// # Pipeline
//
// Format composes three steps in fixed order, each pure:
//
//	info, err := f.DeriveBranchInfo("feat/ABC-123/add-login")
//	typ, msg, err := f.ExtractType("fix: handle nil", info.CommitType)
//	final, err := f.FormatMessage(typ, info.IssueID, msg)
//	// final == "ABC-123(fix): handle nil"
//
// # Case contract
//
// All vocabulary comparisons are case-insensitive. The resolved commit
// type keeps the casing the user wrote until the final composition,
// where the issue id is uppercased and the type lowercased.
//
// # Hook usage
//
// FormatFile is the commit-msg hook entry point: it reads the message
// file, runs the pipeline, and writes the result back only on success:
//
//	repo, _ := git.Open(".")
//	res, err := commitmsg.FormatFile(".git/COMMIT_EDITMSG",
//	    commitmsg.WithBranchProvider(repo),
//	)
//
// Failures are typed validation errors (see ErrInvalidBranchFormat and
// friends); callers surface the error text verbatim and block the
// commit.
package commitmsg
