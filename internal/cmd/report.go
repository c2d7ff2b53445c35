package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corbett/redact/internal/config"
	"github.com/corbett/redact/internal/redaction"
)

// NewReportCommand creates and returns the report subcommand
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarize the resolved exclusion rules",
		Long: `Resolve the exclusion rules and print a summary report: how many
commands, files, components, patterns, and keywords are excluded, which rule
format is in use, and the obfuscation settings in effect.

Unlike validate, report runs with the configured strictness, so permission
problems are logged as warnings rather than failing the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// runReport resolves the rule set and prints the summary report as YAML.
func runReport(output io.Writer) error {
	cfg, log, err := loadClientConfig()
	if err != nil {
		return err
	}

	release, err := acquireRunLock(cfg)
	if err != nil {
		return err
	}
	defer release()

	if machineID, idErr := config.MachineID(cfg.MachineIDFile); idErr != nil {
		log.Warnf("could not determine machine id: %v", idErr)
	} else {
		log.Infof("machine id: %s", machineID)
	}

	engine := redaction.NewEngine(cfg, log)
	res, err := engine.Resolve()
	if err != nil {
		return err
	}

	report := redaction.BuildReport(res, cfg)
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}
	fmt.Fprint(output, string(data))
	return nil
}
