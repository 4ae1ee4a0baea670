// Package doctor provides health checks for agentic-xai configuration and
// the embedded decision registries. Used by `axai doctor`.
package doctor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Harthik777/Agentic-XAI/internal/config"
	"github.com/Harthik777/Agentic-XAI/internal/engine"
	"github.com/Harthik777/Agentic-XAI/internal/intent"
)

// CheckResult is a single doctor check outcome.
type CheckResult struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"` // pass, warn, fail
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

// Summary tallies pass/warn/fail counts.
type Summary struct {
	Pass int `json:"pass"`
	Warn int `json:"warn"`
	Fail int `json:"fail"`
}

// Report is the complete doctor output.
type Report struct {
	Status  string        `json:"status"` // worst of all checks
	Checks  []CheckResult `json:"checks"`
	Summary Summary       `json:"summary"`
}

// Options controls which check categories to run.
type Options struct {
	SkipUpstream bool   // Skip the live-provider connectivity check (for CI/offline)
	BaseURL      string // Live-provider base URL; empty uses the OpenAI default
}

const defaultUpstreamURL = "https://api.openai.com"

// Run executes all doctor checks and returns a report.
func Run(ctx context.Context, opts Options) *Report {
	report := &Report{}

	report.Checks = append(report.Checks, checkConfig()...)
	report.Checks = append(report.Checks, checkRegistries()...)
	if !opts.SkipUpstream {
		report.Checks = append(report.Checks, checkUpstream(ctx, opts)...)
	}

	for _, c := range report.Checks {
		switch c.Status {
		case "pass":
			report.Summary.Pass++
		case "warn":
			report.Summary.Warn++
		case "fail":
			report.Summary.Fail++
		}
	}

	report.Status = "pass"
	if report.Summary.Warn > 0 {
		report.Status = "warn"
	}
	if report.Summary.Fail > 0 {
		report.Status = "fail"
	}
	return report
}

func checkConfig() []CheckResult {
	var results []CheckResult

	cfg, err := config.Load()
	if err != nil {
		return []CheckResult{{
			Name: "config_load", Category: "config", Status: "fail",
			Message: fmt.Sprintf("Cannot load config: %v", err),
			Fix:     "Check AXAI_* env vars and axai.config.yaml",
		}}
	}
	results = append(results, CheckResult{
		Name: "config_load", Category: "config", Status: "pass",
		Message: fmt.Sprintf("model=%s convention=%s", cfg.Model, cfg.Convention),
	})

	if cfg.LiveEnabled() {
		results = append(results, CheckResult{
			Name: "llm_key", Category: "config", Status: "pass",
			Message: "API key configured; live attempts enabled",
		})
	} else {
		// The fallback engine serves every request without a key, so a
		// missing key is a warning, never a failure.
		results = append(results, CheckResult{
			Name: "llm_key", Category: "config", Status: "warn",
			Message: "No API key configured; every request resolves through the fallback engine",
			Fix:     "Set AXAI_OPENAI_API_KEY to enable live attempts",
		})
	}
	return results
}

func checkRegistries() []CheckResult {
	var results []CheckResult

	cf, err := intent.DefaultCascade()
	if err != nil {
		results = append(results, CheckResult{
			Name: "intent_cascade", Category: "registry", Status: "fail",
			Message: fmt.Sprintf("embedded cascade invalid: %v", err),
		})
	} else if _, cerr := intent.Compile(cf); cerr != nil {
		results = append(results, CheckResult{
			Name: "intent_cascade", Category: "registry", Status: "fail",
			Message: fmt.Sprintf("embedded cascade does not compile: %v", cerr),
		})
	} else {
		results = append(results, CheckResult{
			Name: "intent_cascade", Category: "registry", Status: "pass",
			Message: fmt.Sprintf("%d primary, %d secondary rules", len(cf.Primary), len(cf.Secondary)),
		})
	}

	catalog, err := engine.DefaultCatalog()
	if err != nil {
		results = append(results, CheckResult{
			Name: "playbook_catalog", Category: "registry", Status: "fail",
			Message: fmt.Sprintf("embedded playbooks invalid: %v", err),
		})
	} else {
		results = append(results, CheckResult{
			Name: "playbook_catalog", Category: "registry", Status: "pass",
			Message: fmt.Sprintf("%d intents covered, %d universal risk factors", len(intent.All()), len(catalog.RiskPool())),
		})
	}
	return results
}

func checkUpstream(ctx context.Context, opts Options) []CheckResult {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = defaultUpstreamURL
	}

	client := &http.Client{Timeout: 5 * time.Second}
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodHead, baseURL, nil)
	if reqErr != nil {
		return []CheckResult{{
			Name: "upstream", Category: "upstream", Status: "fail",
			Message: fmt.Sprintf("Invalid URL: %v", reqErr),
		}}
	}

	start := time.Now()
	resp, err := client.Do(req)
	latency := time.Since(start)

	if err != nil {
		// Unreachable upstream degrades to fallback, it does not break
		// the tool, so this is a warning.
		return []CheckResult{{
			Name: "upstream", Category: "upstream", Status: "warn",
			Message: fmt.Sprintf("Connection failed: %v", err),
			Fix:     "Check network connectivity; fallback decisions are unaffected",
		}}
	}
	resp.Body.Close()

	results := []CheckResult{{
		Name: "upstream", Category: "upstream", Status: "pass",
		Message: fmt.Sprintf("%s — %dms", baseURL, latency.Milliseconds()),
	}}
	if latency > time.Second {
		results = append(results, CheckResult{
			Name: "upstream_latency", Category: "upstream", Status: "warn",
			Message: fmt.Sprintf("%.1fs (> 1s threshold)", latency.Seconds()),
			Fix:     "Slow live attempts fall back after the call timeout",
		})
	}
	return results
}
