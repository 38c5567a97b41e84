package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jill-augustine/hooks/testutil"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeMessage(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing message file: %v", err)
	}
}

func readMessage(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading message file: %v", err)
	}
	return string(data)
}

func TestFormat_BranchFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessage(t, path, "my message here\n")

	if err := execute(t, "--branch", "feat/ABC-123/my_feat", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got, want := readMessage(t, path), "ABC-123(feat): my message here\n"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestFormat_RepositoryLookup(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := testutil.SetupTestRepoOnBranch(t, "fix/JIRA-42/crash")
	path := filepath.Join(dir, ".git", "COMMIT_EDITMSG")
	writeMessage(t, path, "handle nil pointer\n")

	if err := execute(t, path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got, want := readMessage(t, path), "JIRA-42(fix): handle nil pointer\n"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestFormat_SkipPrefix(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessage(t, path, "skip: wip\n")

	if err := execute(t, "--branch", "develop", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got, want := readMessage(t, path), "wip\n"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestFormat_UnresolvedTypeFails(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	original := "my message\n"
	writeMessage(t, path, original)

	err := execute(t, "--branch", "develop", path)
	if err == nil {
		t.Fatal("Execute() error = nil, want error")
	}
	if !strings.Contains(err.Error(), "develop") {
		t.Errorf("error = %q, want it to mention the branch", err)
	}

	if got := readMessage(t, path); got != original {
		t.Errorf("failed run modified the file: %q", got)
	}
}

func TestFormat_OutsideRepository(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessage(t, path, "my message\n")

	if err := execute(t, path); err == nil {
		t.Fatal("Execute() error = nil outside a repository")
	}
}

func TestFormat_RequiresOneArg(t *testing.T) {
	if err := execute(t); err == nil {
		t.Error("Execute() error = nil without arguments")
	}
	if err := execute(t, "a", "b"); err == nil {
		t.Error("Execute() error = nil with two arguments")
	}
}

func TestFormat_CustomVocabularyFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOOKS_COMMIT_TYPES", "wip,feat")

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessage(t, path, "trying things\n")

	if err := execute(t, "--branch", "wip/ABC-1/experiments", path); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got, want := readMessage(t, path), "ABC-1(wip): trying things\n"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}

func TestFormat_InvalidConfiguration(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("HOOKS_SKIP_PREFIXES", "ski/p")

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	writeMessage(t, path, "my message\n")

	err := execute(t, "--branch", "feat/ABC-1/x", path)
	if err == nil {
		t.Fatal("Execute() error = nil, want configuration error")
	}
	if !strings.Contains(err.Error(), "invalid configuration") {
		t.Errorf("error = %q, want it to mention invalid configuration", err)
	}
}
