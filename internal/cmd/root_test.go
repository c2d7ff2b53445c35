package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeClientConfig writes a client config whose rule files, machine id, and
// lock file all live under dir, and returns its path.
func writeClientConfig(t *testing.T, dir string) string {
	t.Helper()
	content := "remove_file: " + filepath.Join(dir, "remove.conf") + "\n" +
		"redaction_file: " + filepath.Join(dir, "file-redaction.yaml") + "\n" +
		"content_redaction_file: " + filepath.Join(dir, "file-content-redaction.yaml") + "\n" +
		"machine_id_file: " + filepath.Join(dir, "machine-id") + "\n" +
		"lock_file: " + filepath.Join(dir, "redact.lock") + "\n" +
		"log_level: error\n"
	path := filepath.Join(dir, "client.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// writeRuleFile writes a rule file with the exact mode rule files require.
func writeRuleFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, os.Chmod(path, 0o600))
}

// loosenRuleFile gives a rule file the kind of mode the permission guard
// rejects.
func loosenRuleFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.Chmod(filepath.Join(dir, name), 0o644))
}

// runCommand executes the root command with args and returns its output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootCommandHasSubcommands(t *testing.T) {
	root := NewRootCommand()

	names := make(map[string]bool)
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"validate", "report", "specs"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := runCommand(t, "definitely-not-a-command")
	require.Error(t, err)
}
