package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harthik777/Agentic-XAI/internal/doctor"
)

var doctorSkipUpstream bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and embedded registries",
	Long: `Runs health checks over the resolved configuration, the embedded
intent cascade and playbook catalog, and (unless skipped) live-provider
connectivity. Prints the report as JSON on stdout.

A missing API key is a warning, not a failure: the fallback engine
serves every request without one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := tracer.Start(cmd.Context(), "doctor")
		defer span.End()

		report := doctor.Run(ctx, doctor.Options{SkipUpstream: doctorSkipUpstream})
		if err := printJSON(cmd, report, true); err != nil {
			return err
		}
		if report.Status == "fail" {
			return fmt.Errorf("doctor found failing checks")
		}
		return nil
	},
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorSkipUpstream, "skip-upstream", false, "skip the live-provider connectivity check")
	rootCmd.AddCommand(doctorCmd)
}
