// Package config loads the operator-facing client configuration: where the
// rule files live, whether collected content is obfuscated, and how the
// engine treats configuration problems.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is consulted when no --conf flag is given.
const DefaultConfigFile = "/etc/redact/client.yaml"

// Config represents the client configuration options.
type Config struct {
	// RemoveFile is the path to the legacy INI rule file
	RemoveFile string `yaml:"remove_file"`

	// RedactionFile is the path to the structured command/file rule file
	RedactionFile string `yaml:"redaction_file"`

	// ContentRedactionFile is the path to the structured content rule file
	ContentRedactionFile string `yaml:"content_redaction_file"`

	// MachineIDFile is where the persistent machine identifier is kept
	MachineIDFile string `yaml:"machine_id_file"`

	// LockFile serializes concurrent client runs
	LockFile string `yaml:"lock_file"`

	// Obfuscate enables IP address obfuscation in collected content
	Obfuscate bool `yaml:"obfuscate"`

	// ObfuscateHostname enables hostname obfuscation in collected content
	ObfuscateHostname bool `yaml:"obfuscate_hostname"`

	// Validate runs the engine in strict mode, where configuration problems
	// that are normally warnings become fatal
	Validate bool `yaml:"validate"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		RemoveFile:           "/etc/redact/remove.conf",
		RedactionFile:        "/etc/redact/file-redaction.yaml",
		ContentRedactionFile: "/etc/redact/file-content-redaction.yaml",
		MachineIDFile:        "/etc/redact/machine-id",
		LockFile:             "/run/lock/redact.lock",
		Obfuscate:            false,
		ObfuscateHostname:    false,
		Validate:             false,
		LogLevel:             "info",
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Unmarshalling over the defaults keeps them for any key the file omits.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// MergeWithFlags merges CLI flags into the configuration. Non-nil flag values
// override configuration values, so flags take precedence over the file.
func (c *Config) MergeWithFlags(removeFile, redactionFile, contentRedactionFile *string, validate *bool, logLevel *string) {
	if removeFile != nil {
		c.RemoveFile = *removeFile
	}
	if redactionFile != nil {
		c.RedactionFile = *redactionFile
	}
	if contentRedactionFile != nil {
		c.ContentRedactionFile = *contentRedactionFile
	}
	if validate != nil {
		c.Validate = *validate
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Check validates the configuration values.
// Returns an error if any values are invalid.
func (c *Config) Check() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.RemoveFile == "" {
		return fmt.Errorf("remove_file cannot be empty")
	}
	if c.RedactionFile == "" {
		return fmt.Errorf("redaction_file cannot be empty")
	}
	if c.ContentRedactionFile == "" {
		return fmt.Errorf("content_redaction_file cannot be empty")
	}
	if c.LockFile == "" {
		return fmt.Errorf("lock_file cannot be empty")
	}

	return nil
}
