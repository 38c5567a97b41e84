package commitmsg

import (
	"fmt"
	"regexp"
	"strings"
)

// maxSlugLength caps the title slug in generated branch names.
const maxSlugLength = 50

// BranchName mints a branch name that DeriveBranchInfo accepts.
// Example: ("feat", "abc-123", "Add User Login") -> "feat/ABC-123/add-user-login".
//
// The commit type must be in the vocabulary and the issue id must match
// the LETTERS-DIGITS pattern. An empty title yields the two-segment form
// "type/ISSUE-123".
func (f *Formatter) BranchName(commitType, issueID, title string) (string, error) {
	if !f.isCommitType(commitType) {
		return "", &DisallowedTypeError{Token: commitType}
	}
	if !issuePattern.MatchString(issueID) {
		return "", fmt.Errorf("%w: issue id %q does not match LETTERS-DIGITS", ErrInvalidBranchFormat, issueID)
	}

	branch := strings.ToLower(commitType) + "/" + strings.ToUpper(issueID)

	if slug := Slugify(title); slug != "" {
		if len(slug) > maxSlugLength {
			slug = slug[:maxSlugLength]
			// Trim trailing hyphens after truncation
			slug = strings.TrimRight(slug, "-")
		}
		branch += "/" + slug
	}

	return branch, nil
}

// Slugify converts a title to a branch-safe slug.
func Slugify(s string) string {
	// Lowercase
	s = strings.ToLower(s)

	// Replace spaces and underscores with hyphens
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	// Remove non-alphanumeric except hyphens
	s = regexp.MustCompile(`[^a-z0-9-]`).ReplaceAllString(s, "")

	// Remove consecutive hyphens
	s = regexp.MustCompile(`-+`).ReplaceAllString(s, "-")

	// Trim hyphens from ends
	s = strings.Trim(s, "-")

	return s
}
