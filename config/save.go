package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SaveGlobal writes the values for a key to the global config file,
// creating the file and its directory when missing. Other keys in the
// file are preserved.
func SaveGlobal(key string, values []string) error {
	if err := checkEntry(key, values); err != nil {
		return err
	}

	path, err := globalConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	return upsert(path, key, values, 0o600)
}

// SaveLocal writes the values for a key to the local config file in the
// git root.
func SaveLocal(gitRoot, key string, values []string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if err := checkEntry(key, values); err != nil {
		return err
	}

	// Local config is shared with the repository and should be readable.
	return upsert(filepath.Join(gitRoot, LocalFileName), key, values, 0o644)
}

// DeleteGlobalKey removes a key from the global config. A missing file
// or key is not an error.
func DeleteGlobalKey(key string) error {
	if !knownKey(key) {
		return unknownKeyError(key)
	}

	path, err := globalConfigPath()
	if err != nil {
		return err
	}

	return deleteKey(path, key, 0o600)
}

// DeleteLocalKey removes a key from the local config file in the git root.
func DeleteLocalKey(gitRoot, key string) error {
	if gitRoot == "" {
		return fmt.Errorf("git root not found")
	}
	if !knownKey(key) {
		return unknownKeyError(key)
	}

	return deleteKey(filepath.Join(gitRoot, LocalFileName), key, 0o644)
}

func checkEntry(key string, values []string) error {
	if !knownKey(key) {
		return unknownKeyError(key)
	}
	return ValidateList(key, values)
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key: %s\n\nValid keys: %s",
		key, strings.Join(ValidKeys(), ", "))
}

// upsert rewrites the config file with key set to values, keeping every
// other key. A file that cannot be parsed is replaced.
func upsert(path, key string, values []string, mode os.FileMode) error {
	existing := readKeyMap(path)
	existing[key] = values

	data, err := yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, mode)
}

func deleteKey(path, key string, mode os.FileMode) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil // Nothing to delete
	}

	var existing map[string]interface{}
	if err := yaml.Unmarshal(data, &existing); err != nil {
		return nil
	}

	delete(existing, key)

	data, err = yaml.Marshal(existing)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, mode)
}

func readKeyMap(path string) map[string]interface{} {
	existing := make(map[string]interface{})
	if data, err := os.ReadFile(path); err == nil {
		_ = yaml.Unmarshal(data, &existing)
	}
	if existing == nil {
		existing = make(map[string]interface{})
	}
	return existing
}
