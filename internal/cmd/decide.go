package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Harthik777/Agentic-XAI/internal/boundary"
	"github.com/Harthik777/Agentic-XAI/internal/config"
	"github.com/Harthik777/Agentic-XAI/internal/engine"
	"github.com/Harthik777/Agentic-XAI/internal/llm"
	"github.com/Harthik777/Agentic-XAI/internal/requestctx"
)

var (
	decideContext     []string
	decideContextJSON string
	decidePriority    string
	decideLive        bool
	decideCompat      bool
	decideCompact     bool
)

var decideCmd = &cobra.Command{
	Use:   "decide <task description>",
	Short: "Produce a decision with explanation for a task",
	Long: `Classifies the task, scores the context attributes, and prints a
complete decision record as JSON on stdout.

Without --live (or without an API key configured) the deterministic
fallback engine produces the decision; identical invocations print
byte-identical records.`,
	Example: `  axai decide "Should I optimize my database performance?" --context expected_daily_users=75000
  axai decide "Launch the product now or wait?" --priority high --context-json '{"budget":"limited"}'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := tracer.Start(cmd.Context(), "decide")
		defer span.End()

		ctx = requestctx.SetRequestID(ctx, uuid.NewString())

		cfg, err := config.Load()
		if err != nil {
			return err
		}

		taskCtx, err := parseContextFlags(decideContext, decideContextJSON)
		if err != nil {
			return err
		}

		priority := decidePriority
		if priority == "" {
			priority = cfg.DefaultPriority
		}

		req := &boundary.Request{
			TaskDescription: strings.Join(args, " "),
			Context:         taskCtx,
			Priority:        priority,
		}

		eng, err := engine.New()
		if err != nil {
			return fmt.Errorf("building engine: %w", err)
		}

		var provider llm.Provider
		if decideLive {
			if !cfg.LiveEnabled() {
				log.Warn().Msg("--live requested but no API key configured; using fallback engine")
			} else {
				provider = llm.NewOpenAIProvider(cfg.OpenAIAPIKey)
			}
		}
		limiter := rate.NewLimiter(rate.Limit(cfg.LiveRPS), cfg.LiveBurst)
		resolver := llm.NewResolver(eng, provider, cfg.Model, limiter)

		engineCtx, enginePriority := req.EngineInputs()
		outcome := resolver.Resolve(ctx, req.TaskDescription, engineCtx, enginePriority)

		conv := boundary.Convention(cfg.Convention)
		if decideCompat {
			conv = boundary.NarrativeConvention
		}
		resp := boundary.Encode(ctx, req, outcome, conv)

		return printJSON(cmd, resp, !decideCompact)
	},
}

// parseContextFlags merges repeated --context key=value pairs with an
// optional --context-json object. Pair values are decoded as JSON when
// possible (numbers, booleans, lists) and fall back to plain strings;
// explicit JSON wins on key collision.
func parseContextFlags(pairs []string, rawJSON string) (map[string]any, error) {
	ctx := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --context %q: expected key=value", pair)
		}
		var decoded any
		if err := json.Unmarshal([]byte(value), &decoded); err == nil {
			ctx[key] = decoded
		} else {
			ctx[key] = value
		}
	}

	if rawJSON != "" {
		var obj map[string]any
		if err := json.Unmarshal([]byte(rawJSON), &obj); err != nil {
			return nil, fmt.Errorf("invalid --context-json: %w", err)
		}
		for k, v := range obj {
			ctx[k] = v
		}
	}
	return ctx, nil
}

func printJSON(cmd *cobra.Command, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encoding response: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func init() {
	decideCmd.Flags().StringArrayVar(&decideContext, "context", nil, "context attribute as key=value (repeatable)")
	decideCmd.Flags().StringVar(&decideContextJSON, "context-json", "", "context attributes as a JSON object")
	decideCmd.Flags().StringVar(&decidePriority, "priority", "", "priority hint: high, medium, or low (default from config)")
	decideCmd.Flags().BoolVar(&decideLive, "live", false, "attempt the live model before falling back")
	decideCmd.Flags().BoolVar(&decideCompat, "compat", false, "use the narrative compatibility convention (0-1 confidence, prose reasoning)")
	decideCmd.Flags().BoolVar(&decideCompact, "compact", false, "print compact JSON instead of indented")
	rootCmd.AddCommand(decideCmd)
}
