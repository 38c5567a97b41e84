// Package githooks installs the commit-msg shim into a repository's git
// hooks directory.
//
// The shim delegates to the hooks binary found on PATH, so upgrading the
// binary upgrades the hook behavior without reinstalling. Only the
// marker-delimited section of the hook file is managed: content a user
// keeps around it survives install, reinstall, and uninstall.
package githooks

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// HookName is the git hook the shim is installed as.
const HookName = "commit-msg"

// Install writes or updates the commit-msg shim for the repository rooted
// at root. It returns the path of the hook file.
//
// A fresh hook file is a shebang plus the managed section. An existing
// hook gains the section at the end; an existing managed section is
// replaced in place, so Install is safe to run repeatedly.
func Install(root string) (string, error) {
	dir, err := hooksDir(root)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating hooks directory: %w", err)
	}

	path := filepath.Join(dir, HookName)

	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var content string
	if err != nil {
		content = "#!/bin/sh\n" + shimSection
	} else {
		content = injectSection(string(existing), shimSection)
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")

	// Git only runs executable hooks.
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// Uninstall removes the managed section from the commit-msg hook. When
// nothing but the shebang remains, the hook file is deleted. A missing
// hook or a hook without the managed section is not an error.
func Uninstall(root string) error {
	dir, err := hooksDir(root)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, HookName)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content, found := removeSection(string(data))
	if !found {
		return nil
	}

	switch strings.TrimSpace(content) {
	case "", "#!/bin/sh", "#!/usr/bin/env sh":
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("removing %s: %w", path, err)
		}
	default:
		if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}

	return nil
}

// Installed reports whether the commit-msg hook carries the managed
// section.
func Installed(root string) (bool, error) {
	dir, err := hooksDir(root)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(filepath.Join(dir, HookName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return strings.Contains(string(data), sectionBegin), nil
}

// hooksDir resolves the hooks directory for the repository rooted at
// root. A .git pointer file is followed, and for linked worktrees the
// shared common directory is used: that is where git looks up hooks.
func hooksDir(root string) (string, error) {
	gitPath := filepath.Join(root, ".git")

	info, err := os.Stat(gitPath)
	if err != nil {
		return "", fmt.Errorf("locating git directory: %w", err)
	}

	gitDir := gitPath
	if !info.IsDir() {
		target, err := gitDirPointer(gitPath)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}
		gitDir = target
	}

	if data, err := os.ReadFile(filepath.Join(gitDir, "commondir")); err == nil {
		common := strings.TrimSpace(string(data))
		if !filepath.IsAbs(common) {
			common = filepath.Join(gitDir, common)
		}
		gitDir = common
	}

	return filepath.Join(gitDir, "hooks"), nil
}

// gitDirPointer reads a "gitdir: <path>" pointer file.
func gitDirPointer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(string(data)), "gitdir: ")
	if !ok || target == "" {
		return "", fmt.Errorf("%s: malformed gitdir pointer", path)
	}
	return target, nil
}
