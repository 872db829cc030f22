package opener

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ValidatePath canonicalizes path and, when baseDir is set, requires the result
// to lie inside the canonical baseDir.
func ValidatePath(path, baseDir string) (string, error) {
	canonical, err := canonicalize(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidPath, err)
	}
	if baseDir == "" {
		return canonical, nil
	}

	base, err := canonicalize(baseDir)
	if err != nil {
		return "", fmt.Errorf("%w: base directory: %w", ErrInvalidPath, err)
	}
	rel, err := filepath.Rel(base, canonical)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrPathEscapesBase, path)
	}
	return canonical, nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
