package githooks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jill-augustine/hooks/testutil"
)

func readHook(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading hook: %v", err)
	}
	return string(data)
}

func TestInstall_Fresh(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if want := filepath.Join(dir, ".git", "hooks", HookName); path != want {
		t.Errorf("Install() path = %q, want %q", path, want)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("hook not written: %v", err)
	}
	if info.Mode().Perm() != 0o755 {
		t.Errorf("hook mode = %v, want 0755", info.Mode().Perm())
	}

	content := readHook(t, path)
	if !strings.HasPrefix(content, "#!/bin/sh\n") {
		t.Errorf("hook does not start with shebang:\n%s", content)
	}
	if !strings.Contains(content, sectionBegin) || !strings.Contains(content, sectionEnd) {
		t.Errorf("hook missing section markers:\n%s", content)
	}
	if !strings.Contains(content, "hooks run format-commit-msg") {
		t.Errorf("hook does not delegate to the binary:\n%s", content)
	}
}

func TestInstall_AppendsToForeignHook(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	hooksPath := filepath.Join(dir, ".git", "hooks")
	os.MkdirAll(hooksPath, 0o755)
	foreign := "#!/bin/sh\necho linting\n"
	os.WriteFile(filepath.Join(hooksPath, HookName), []byte(foreign), 0o755)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	content := readHook(t, path)
	if !strings.Contains(content, "echo linting") {
		t.Errorf("existing hook content was lost:\n%s", content)
	}
	if !strings.Contains(content, sectionBegin) {
		t.Errorf("managed section not added:\n%s", content)
	}
	if strings.Index(content, "echo linting") > strings.Index(content, sectionBegin) {
		t.Errorf("managed section should follow existing content:\n%s", content)
	}
}

func TestInstall_Idempotent(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	first := readHook(t, path)

	if _, err := Install(dir); err != nil {
		t.Fatalf("second Install() error = %v", err)
	}
	second := readHook(t, path)

	if first != second {
		t.Errorf("reinstall changed the hook:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
	if got := strings.Count(second, sectionBegin); got != 1 {
		t.Errorf("got %d managed sections, want 1", got)
	}
}

func TestInstall_ReplacesManagedSection(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	hooksPath := filepath.Join(dir, ".git", "hooks")
	os.MkdirAll(hooksPath, 0o755)
	stale := "#!/bin/sh\necho before\n" +
		sectionBegin + "\nold shim body\n" + sectionEnd + "\n" +
		"echo after\n"
	os.WriteFile(filepath.Join(hooksPath, HookName), []byte(stale), 0o755)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	content := readHook(t, path)
	if strings.Contains(content, "old shim body") {
		t.Errorf("stale section body survived:\n%s", content)
	}
	if !strings.Contains(content, "hooks run format-commit-msg") {
		t.Errorf("new section body missing:\n%s", content)
	}
	if !strings.Contains(content, "echo before") || !strings.Contains(content, "echo after") {
		t.Errorf("content around the section was lost:\n%s", content)
	}
	if got := strings.Count(content, sectionBegin); got != 1 {
		t.Errorf("got %d managed sections, want 1", got)
	}
}

func TestUninstall_RemovesShimOnlyFile(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if err := Uninstall(dir); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("hook file still present after uninstall: %v", err)
	}
}

func TestUninstall_PreservesForeignContent(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	hooksPath := filepath.Join(dir, ".git", "hooks")
	os.MkdirAll(hooksPath, 0o755)
	os.WriteFile(filepath.Join(hooksPath, HookName), []byte("#!/bin/sh\necho linting\n"), 0o755)

	path, err := Install(dir)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if err := Uninstall(dir); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}

	content := readHook(t, path)
	if !strings.Contains(content, "echo linting") {
		t.Errorf("foreign content was removed:\n%s", content)
	}
	if strings.Contains(content, sectionBegin) {
		t.Errorf("managed section still present:\n%s", content)
	}
}

func TestUninstall_MissingHook(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	if err := Uninstall(dir); err != nil {
		t.Errorf("Uninstall() error = %v, want nil", err)
	}
}

func TestUninstall_ForeignHookUntouched(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	hooksPath := filepath.Join(dir, ".git", "hooks")
	os.MkdirAll(hooksPath, 0o755)
	foreign := "#!/bin/sh\necho linting\n"
	hookPath := filepath.Join(hooksPath, HookName)
	os.WriteFile(hookPath, []byte(foreign), 0o755)

	if err := Uninstall(dir); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}

	if got := readHook(t, hookPath); got != foreign {
		t.Errorf("foreign hook changed:\n%s", got)
	}
}

func TestInstalled(t *testing.T) {
	dir := testutil.SetupTestRepo(t)

	installed, err := Installed(dir)
	if err != nil {
		t.Fatalf("Installed() error = %v", err)
	}
	if installed {
		t.Error("Installed() = true before install")
	}

	if _, err := Install(dir); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	installed, err = Installed(dir)
	if err != nil {
		t.Fatalf("Installed() error = %v", err)
	}
	if !installed {
		t.Error("Installed() = false after install")
	}

	if err := Uninstall(dir); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}

	installed, err = Installed(dir)
	if err != nil {
		t.Fatalf("Installed() error = %v", err)
	}
	if installed {
		t.Error("Installed() = true after uninstall")
	}
}

func TestInstall_LinkedWorktree(t *testing.T) {
	// A linked worktree has a .git pointer file, and its private git dir
	// points back at the shared common dir where hooks live.
	mainDir := testutil.SetupTestRepo(t)

	worktreeGitDir := filepath.Join(mainDir, ".git", "worktrees", "wt")
	os.MkdirAll(worktreeGitDir, 0o755)
	os.WriteFile(filepath.Join(worktreeGitDir, "commondir"), []byte("../..\n"), 0o644)

	worktree := t.TempDir()
	os.WriteFile(filepath.Join(worktree, ".git"), []byte("gitdir: "+worktreeGitDir+"\n"), 0o644)

	path, err := Install(worktree)
	if err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	if want := filepath.Join(mainDir, ".git", "hooks", HookName); path != want {
		t.Errorf("Install() path = %q, want %q", path, want)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("hook not written in common dir: %v", err)
	}
}

func TestInstall_NotARepository(t *testing.T) {
	if _, err := Install(t.TempDir()); err == nil {
		t.Error("Install() error = nil outside a repository")
	}
}

func TestInstall_MalformedGitPointer(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, ".git"), []byte("not a pointer\n"), 0o644)

	if _, err := Install(dir); err == nil {
		t.Error("Install() error = nil for malformed gitdir pointer")
	}
}

func TestInjectSection(t *testing.T) {
	section := sectionBegin + "\nnew\n" + sectionEnd + "\n"

	tests := []struct {
		name     string
		existing string
		want     string
	}{
		{
			name:     "appends when no markers",
			existing: "#!/bin/sh\necho hi\n",
			want:     "#!/bin/sh\necho hi\n\n" + section,
		},
		{
			name:     "adds missing trailing newline before appending",
			existing: "#!/bin/sh\necho hi",
			want:     "#!/bin/sh\necho hi\n\n" + section,
		},
		{
			name:     "replaces existing section",
			existing: "#!/bin/sh\n" + sectionBegin + "\nold\n" + sectionEnd + "\necho after\n",
			want:     "#!/bin/sh\n" + section + "echo after\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := injectSection(tt.existing, section); got != tt.want {
				t.Errorf("injectSection() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRemoveSection(t *testing.T) {
	section := sectionBegin + "\nbody\n" + sectionEnd + "\n"

	tests := []struct {
		name      string
		content   string
		want      string
		wantFound bool
	}{
		{
			name:      "no markers",
			content:   "#!/bin/sh\necho hi\n",
			want:      "#!/bin/sh\necho hi\n",
			wantFound: false,
		},
		{
			name:      "section only",
			content:   "#!/bin/sh\n" + section,
			want:      "#!/bin/sh\n",
			wantFound: true,
		},
		{
			name:      "consumes blank line before section",
			content:   "#!/bin/sh\necho hi\n\n" + section,
			want:      "#!/bin/sh\necho hi\n",
			wantFound: true,
		},
		{
			name:      "keeps content after section",
			content:   "#!/bin/sh\n" + section + "echo after\n",
			want:      "#!/bin/sh\necho after\n",
			wantFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := removeSection(tt.content)
			if got != tt.want || found != tt.wantFound {
				t.Errorf("removeSection() = %q, %v, want %q, %v", got, found, tt.want, tt.wantFound)
			}
		})
	}
}
