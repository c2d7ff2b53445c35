package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/corbett/redact/internal/redaction"
)

// NewValidateCommand creates and returns the validate subcommand
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the exclusion rule configuration",
		Long: `Parse and validate the configured rule files, printing the resolved
exclusion rules for confirmation.

Validation runs in strict mode: problems that a collection run would only
warn about, such as a rule file with loose permissions, fail validation.

Exit code: 0 if valid, 1 if errors found`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// runValidate resolves the rule set in strict mode and prints the parsed
// contents to output.
func runValidate(output io.Writer) error {
	cfg, log, err := loadClientConfig()
	if err != nil {
		return err
	}

	release, err := acquireRunLock(cfg)
	if err != nil {
		return err
	}
	defer release()

	// The validate entry point always runs strict.
	cfg.Validate = true

	engine := redaction.NewEngine(cfg, log)
	ok, err := engine.Validate(output)
	if err != nil {
		return err
	}
	if !ok {
		log.Infof("no exclusion rules are configured; collection runs will not skip anything")
	}
	return nil
}
