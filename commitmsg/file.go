package commitmsg

import (
	"fmt"
	"log/slog"
	"os"
)

// BranchProvider supplies the currently checked-out branch name.
// *git.Repository satisfies this interface.
type BranchProvider interface {
	CurrentBranch() (string, error)
}

// Result describes one completed formatting run.
type Result struct {
	Branch     string // branch name used for derivation
	CommitType string // resolved commit type, original casing
	IssueID    string // issue id from the branch, original casing
	Message    string // final message text
	Skipped    bool   // true when a skip prefix bypassed formatting
}

// Option configures FormatFile.
type Option func(*fileOptions)

type fileOptions struct {
	branch    string
	provider  BranchProvider
	formatter *Formatter
	logger    *slog.Logger
}

// WithBranch supplies the branch name explicitly, bypassing any
// BranchProvider lookup.
func WithBranch(name string) Option {
	return func(o *fileOptions) {
		o.branch = name
	}
}

// WithBranchProvider supplies a provider consulted for the branch name
// when none was given explicitly.
func WithBranchProvider(p BranchProvider) Option {
	return func(o *fileOptions) {
		o.provider = p
	}
}

// WithFormatter overrides the default-vocabulary formatter.
func WithFormatter(f *Formatter) Option {
	return func(o *fileOptions) {
		if f != nil {
			o.formatter = f
		}
	}
}

// WithLogger sets the logger for diagnostic output. Defaults to
// slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *fileOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// FormatFile rewrites the commit message file at path in place. Without
// WithBranch or WithBranchProvider the branch is treated as empty, so
// only a message-declared type can resolve.
//
// The file is written only when the whole pipeline succeeds; on any
// error it is left untouched.
func FormatFile(path string, opts ...Option) (*Result, error) {
	o := fileOptions{
		formatter: New(),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	branch := o.branch
	if branch == "" && o.provider != nil {
		name, err := o.provider.CurrentBranch()
		if err != nil {
			return nil, fmt.Errorf("resolving branch name: %w", err)
		}
		branch = name
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading commit message: %w", err)
	}

	final, res, err := o.formatter.format(branch, string(data))
	if err != nil {
		return nil, err
	}

	if res.Skipped {
		o.logger.Debug("skip prefix found, message passed through", "branch", branch)
	} else {
		o.logger.Debug("extracted commit metadata",
			"commit_type", res.CommitType,
			"issue_no", res.IssueID,
		)
	}

	if err := os.WriteFile(path, []byte(final), 0o644); err != nil {
		return nil, fmt.Errorf("writing commit message: %w", err)
	}

	return &res, nil
}
