package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/corbett/redact/internal/config"
	"github.com/corbett/redact/internal/filelock"
	"github.com/corbett/redact/internal/logger"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// Persistent flag values shared by the subcommands.
var (
	confPath             string
	removeFile           string
	redactionFile        string
	contentRedactionFile string
	logLevel             string
)

// NewRootCommand creates and returns the root cobra command for redact
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redact",
		Short: "Resolve exclusion rules for host telemetry collection",
		Long: `Redact resolves which paths, commands, patterns, and keywords a
telemetry collection run must exclude before building a diagnostic archive.

Rules are read from the structured redaction files (file-redaction.yaml and
file-content-redaction.yaml) or, when neither is configured, from the legacy
remove.conf file. Rule files must be readable and writable by their owner
only.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&confPath, "conf", config.DefaultConfigFile, "path to the client configuration file")
	cmd.PersistentFlags().StringVar(&removeFile, "remove-file", "", "override the legacy rule file path")
	cmd.PersistentFlags().StringVar(&redactionFile, "redaction-file", "", "override the command/file rule file path")
	cmd.PersistentFlags().StringVar(&contentRedactionFile, "content-redaction-file", "", "override the content rule file path")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging verbosity (trace, debug, info, warn, error)")

	cmd.AddCommand(NewValidateCommand())
	cmd.AddCommand(NewReportCommand())
	cmd.AddCommand(NewSpecsCommand())

	return cmd
}

// loadClientConfig loads the client configuration, applies flag overrides,
// and builds the console logger the run will log through.
func loadClientConfig() (*config.Config, *logger.ConsoleLogger, error) {
	cfg, err := config.LoadConfig(confPath)
	if err != nil {
		return nil, nil, err
	}

	var removePtr, redactionPtr, contentPtr, levelPtr *string
	if removeFile != "" {
		removePtr = &removeFile
	}
	if redactionFile != "" {
		redactionPtr = &redactionFile
	}
	if contentRedactionFile != "" {
		contentPtr = &contentRedactionFile
	}
	if logLevel != "" {
		levelPtr = &logLevel
	}
	cfg.MergeWithFlags(removePtr, redactionPtr, contentPtr, nil, levelPtr)

	if err := cfg.Check(); err != nil {
		return nil, nil, err
	}

	return cfg, logger.NewConsoleLogger(os.Stderr, cfg.LogLevel), nil
}

// acquireRunLock takes the client run lock so two invocations cannot
// interleave printed rule sets or reports. The returned release function is
// a no-op when the lock file could not even be attempted.
func acquireRunLock(cfg *config.Config) (func(), error) {
	lock := filelock.New(cfg.LockFile)
	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("another redact run is in progress (lock held on %s)", cfg.LockFile)
	}
	return func() { lock.Unlock() }, nil
}
