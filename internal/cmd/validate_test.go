package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommandPrintsRules(t *testing.T) {
	dir := t.TempDir()
	confPath := writeClientConfig(t, dir)
	writeRuleFile(t, dir, "file-redaction.yaml", "commands:\n  - /bin/dmesg\n")

	out, err := runCommand(t, "validate", "--conf", confPath)
	require.NoError(t, err)

	assert.Contains(t, out, "parsed contents")
	assert.Contains(t, out, "/bin/dmesg")
}

func TestValidateCommandNothingConfigured(t *testing.T) {
	dir := t.TempDir()
	confPath := writeClientConfig(t, dir)

	out, err := runCommand(t, "validate", "--conf", confPath)
	require.NoError(t, err, "no rules configured is not a validation failure")
	assert.NotContains(t, out, "parsed contents")
}

func TestValidateCommandIsStrictAboutPermissions(t *testing.T) {
	dir := t.TempDir()
	confPath := writeClientConfig(t, dir)
	writeRuleFile(t, dir, "file-redaction.yaml", "commands:\n  - /bin/dmesg\n")
	// Loosen the mode after the fact; validate must refuse.
	loosenRuleFile(t, dir, "file-redaction.yaml")

	_, err := runCommand(t, "validate", "--conf", confPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid permissions")
}

func TestValidateCommandRejectsBadSchema(t *testing.T) {
	dir := t.TempDir()
	confPath := writeClientConfig(t, dir)
	writeRuleFile(t, dir, "file-redaction.yaml", "keywords:\n  - wrong-file\n")

	_, err := runCommand(t, "validate", "--conf", confPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keywords")
}

func TestValidateCommandLegacyFallback(t *testing.T) {
	dir := t.TempDir()
	confPath := writeClientConfig(t, dir)
	writeRuleFile(t, dir, "remove.conf", "[remove]\ncommands=cmd1,cmd2\n")

	out, err := runCommand(t, "validate", "--conf", confPath)
	require.NoError(t, err)

	assert.Contains(t, out, "cmd1")
	assert.Contains(t, out, "cmd2")
}
