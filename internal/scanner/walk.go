package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	gerrors "github.com/reem-012/gpg-checker/internal/errors"
)

// ValidateDirectory normalizes the scan path and checks that it exists and
// is a directory. This is the only fatal input check in the tool.
func ValidateDirectory(path string) (string, error) {
	sanitized := filepath.Clean(path)

	info, err := os.Stat(sanitized)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%s: %w", sanitized, gerrors.ErrPathNotFound)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", sanitized, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", sanitized, gerrors.ErrNotADirectory)
	}

	return sanitized, nil
}

// ListFiles returns the regular files under rootDir in discovery order.
// With recursive unset only the directory's immediate files are listed.
// Exclude patterns use doublestar glob syntax and are matched against the
// path relative to rootDir; a pattern that matches a directory prunes it.
func ListFiles(rootDir string, recursive bool, excludes []string) ([]string, error) {
	if !recursive {
		return listFlat(rootDir, excludes)
	}

	var result []string
	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed while walking directory: %w", err)
		}

		rel, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			rel = path
		}

		if d.IsDir() {
			if path != rootDir && matchesAny(excludes, rel) {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip irregular files such as sockets, pipes, devices, etc.
		if !d.Type().IsRegular() {
			return nil
		}

		if matchesAny(excludes, rel) {
			return nil
		}

		result = append(result, path)
		return nil
	})

	return result, err
}

func listFlat(rootDir string, excludes []string) ([]string, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", rootDir, err)
	}

	var result []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if matchesAny(excludes, entry.Name()) {
			continue
		}
		result = append(result, filepath.Join(rootDir, entry.Name()))
	}
	return result, nil
}

func matchesAny(patterns []string, rel string) bool {
	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}
