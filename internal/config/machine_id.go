package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/corbett/redact/internal/filelock"
)

// MachineID returns the persistent identifier for this host, generating and
// persisting a fresh one when the file is missing or holds something that is
// not a UUID. The file is written atomically with owner-only permissions
// since its path usually sits next to the rule files.
func MachineID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		id := strings.TrimSpace(string(data))
		if parsed, parseErr := uuid.Parse(id); parseErr == nil {
			return parsed.String(), nil
		}
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read machine id file: %w", err)
	}

	id := uuid.New().String()
	if err := filelock.AtomicWrite(path, []byte(id+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("failed to persist machine id: %w", err)
	}
	return id, nil
}
