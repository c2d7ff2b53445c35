package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/corbett/redact/internal/specs"
)

// NewSpecsCommand creates and returns the specs subcommand
func NewSpecsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "specs",
		Short: "List what a collection run could gather",
		Long: `Print the built-in collection catalog categorized for audit: the
static files, file globs, file templates, static commands, and command
templates a collection run could touch. Use this to decide what to exclude.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpecs(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}

	return cmd
}

// runSpecs prints the categorized collection catalog as YAML.
func runSpecs(output io.Writer) error {
	data, err := yaml.Marshal(specs.Report())
	if err != nil {
		return fmt.Errorf("failed to serialize spec report: %w", err)
	}
	fmt.Fprint(output, string(data))
	return nil
}
