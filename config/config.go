package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/jill-augustine/hooks/commitmsg"
)

// Config keys. Values for both keys are string lists.
const (
	// KeyCommitTypes names the list of commit types the formatter accepts.
	KeyCommitTypes = "commit-types"

	// KeySkipPrefixes names the list of prefixes that pass a message
	// through unformatted.
	KeySkipPrefixes = "skip-prefixes"
)

// Environment variables. Each holds a comma-separated list and overrides
// every file layer.
const (
	EnvCommitTypes  = "HOOKS_COMMIT_TYPES"
	EnvSkipPrefixes = "HOOKS_SKIP_PREFIXES"
)

// LocalFileName is the project-level config file looked up at the git root.
const LocalFileName = ".hooks.yaml"

const (
	globalDirName  = "hooks"
	globalFileName = "config.yaml"
)

// ValidKeys returns the recognized configuration keys.
func ValidKeys() []string {
	return []string{KeyCommitTypes, KeySkipPrefixes}
}

func knownKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Resolver locates and merges the configuration layers.
type Resolver struct {
	globalPath string
	localPath  string
	gitRoot    string

	// Warnings collects non-fatal issues during resolution, such as an
	// unparseable config file. A layer that cannot be read is skipped.
	Warnings []string
}

// NewResolver creates a resolver for the repository containing startDir.
// The local config is looked up at the git root; the global config lives
// under the user's ~/.config directory.
func NewResolver(startDir string) *Resolver {
	resolver := &Resolver{}

	if root := findGitRoot(startDir); root != "" {
		resolver.gitRoot = root
		resolver.localPath = filepath.Join(root, LocalFileName)
	}

	if path, err := globalConfigPath(); err == nil {
		resolver.globalPath = path
	}

	return resolver
}

// NewResolverWithPaths creates a resolver with explicit global and local
// paths. This is useful for testing or when paths are known ahead of time.
func NewResolverWithPaths(globalPath, localPath string) *Resolver {
	return &Resolver{
		globalPath: globalPath,
		localPath:  localPath,
	}
}

// GitRoot returns the detected git root directory.
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Resolved holds the final merged vocabulary.
type Resolved struct {
	CommitTypes  []string
	SkipPrefixes []string

	sources map[string]Source
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// Lookup returns both the values and the source for a key.
func (c *Resolved) Lookup(key string) ([]string, Source) {
	switch key {
	case KeyCommitTypes:
		return c.CommitTypes, c.sources[key]
	case KeySkipPrefixes:
		return c.SkipPrefixes, c.sources[key]
	}
	return nil, ""
}

// Formatter builds a message formatter from the resolved vocabulary.
func (c *Resolved) Formatter() *commitmsg.Formatter {
	return &commitmsg.Formatter{
		CommitTypes:  append([]string(nil), c.CommitTypes...),
		SkipPrefixes: append([]string(nil), c.SkipPrefixes...),
	}
}

// Validate reports whether the resolved vocabulary is usable. Both lists
// must be non-empty and every entry must be a bare token.
func (c *Resolved) Validate() error {
	if err := ValidateList(KeyCommitTypes, c.CommitTypes); err != nil {
		return err
	}
	return ValidateList(KeySkipPrefixes, c.SkipPrefixes)
}

// Resolve builds the final vocabulary by merging all layers.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		sources: make(map[string]Source),
	}

	// 1. Apply defaults (lowest priority)
	r.applyDefaults(cfg)

	// 2. Apply global config
	r.applyFile(cfg, r.globalPath, SourceGlobal)

	// 3. Apply local config
	r.applyFile(cfg, r.localPath, SourceLocal)

	// 4. Apply environment variables (highest priority)
	r.applyEnv(cfg)

	return cfg
}

func (r *Resolver) applyDefaults(cfg *Resolved) {
	cfg.CommitTypes = append([]string(nil), commitmsg.DefaultCommitTypes...)
	cfg.SkipPrefixes = append([]string(nil), commitmsg.DefaultSkipPrefixes...)
	cfg.sources[KeyCommitTypes] = SourceDefault
	cfg.sources[KeySkipPrefixes] = SourceDefault
}

// fileConfig mirrors the on-disk YAML shape. Pointer fields distinguish
// an absent key from an empty list.
type fileConfig struct {
	CommitTypes  *[]string `yaml:"commit-types"`
	SkipPrefixes *[]string `yaml:"skip-prefixes"`
}

func (r *Resolver) applyFile(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			r.warn(fmt.Sprintf("could not read %s: %v", path, err))
		}
		return
	}

	var parsed fileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	if parsed.CommitTypes != nil {
		if values := cleanList(*parsed.CommitTypes); len(values) > 0 {
			cfg.CommitTypes = values
			cfg.sources[KeyCommitTypes] = source
		}
	}
	if parsed.SkipPrefixes != nil {
		if values := cleanList(*parsed.SkipPrefixes); len(values) > 0 {
			cfg.SkipPrefixes = values
			cfg.sources[KeySkipPrefixes] = source
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	if values := ParseList(os.Getenv(EnvCommitTypes)); len(values) > 0 {
		cfg.CommitTypes = values
		cfg.sources[KeyCommitTypes] = SourceEnv
	}
	if values := ParseList(os.Getenv(EnvSkipPrefixes)); len(values) > 0 {
		cfg.SkipPrefixes = values
		cfg.sources[KeySkipPrefixes] = SourceEnv
	}
}

// ParseList splits a comma-separated value into a cleaned list. Entries
// are trimmed and empty entries are dropped.
func ParseList(s string) []string {
	return cleanList(strings.Split(s, ","))
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ValidateList checks a vocabulary list for a key. Entries are matched
// against branch segments and message tokens, so they must not contain
// '/', ':', or whitespace.
func ValidateList(key string, values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("%s: at least one entry is required", key)
	}
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("%s: entries must not be empty", key)
		}
		if strings.ContainsAny(v, "/:") || strings.ContainsFunc(v, unicode.IsSpace) {
			return fmt.Errorf("%s: entry %q must not contain '/', ':', or whitespace", key, v)
		}
	}
	return nil
}

func globalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", globalDirName, globalFileName), nil
}

// findGitRoot walks up from startDir looking for a .git entry. A plain
// file counts as well: linked worktrees and submodules store a pointer
// file instead of a directory.
func findGitRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break // Reached root
		}
		dir = parent
	}

	return ""
}
