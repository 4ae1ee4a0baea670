package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

var intentsCmd = &cobra.Command{
	Use:   "intents",
	Short: "List the intent cascade in match priority order",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, span := tracer.Start(cmd.Context(), "intents")
		defer span.End()

		cf, err := intent.DefaultCascade()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Primary cascade (first match wins):")
		printRules(cmd, cf.Primary)
		fmt.Fprintln(out, "\nSecondary cascade (checked when the primary misses):")
		printRules(cmd, cf.Secondary)
		fmt.Fprintf(out, "\nFallback leaf: %s\n", intent.Contextual)
		return nil
	},
}

func printRules(cmd *cobra.Command, rules []intent.RuleConfig) {
	for i, r := range rules {
		fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %-16s %s\n", i+1, r.Intent, strings.Join(r.Keywords, ", "))
	}
}

func init() {
	rootCmd.AddCommand(intentsCmd)
}
