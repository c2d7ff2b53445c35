package redaction

import (
	"fmt"
	"os"
)

// requiredRuleFileMode is the only acceptable access mode for rule files:
// owner read/write, nothing else. Rule files inject commands and patterns
// into a privileged collection process, so a looser mode is treated as a
// tamper signal rather than a style problem.
const requiredRuleFileMode os.FileMode = 0o600

// verifyPermissions checks that the file at path has exactly the required
// restrictive mode. Returns a *PermissionError on mismatch.
func verifyPermissions(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	mode := info.Mode().Perm()
	if mode != requiredRuleFileMode {
		return &PermissionError{Path: path, Mode: mode}
	}
	return nil
}
