package app

import (
	"fmt"
	"os"
	"strings"
)

// ensureDataDir creates the output directory and, when configured, makes
// sure the repository's .gitignore excludes it. Both operations are
// idempotent and run once before any station processing.
func ensureDataDir(dir string, updateGitignore bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir %s: %w", dir, err)
	}
	if !updateGitignore {
		return nil
	}
	return ensureGitignoreRule(".gitignore", "/"+dir+"\n")
}

func ensureGitignoreRule(path, rule string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		return os.WriteFile(path, []byte(rule), 0o644)
	}

	text := string(existing)
	if strings.Contains(text, rule) {
		return nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	text += rule
	return os.WriteFile(path, []byte(text), 0o644)
}
