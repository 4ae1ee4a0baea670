package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findCheck(t *testing.T, report *Report, name string) CheckResult {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not in report", name)
	return CheckResult{}
}

func TestRunWithoutAPIKey(t *testing.T) {
	t.Setenv("AXAI_OPENAI_API_KEY", "")

	report := Run(context.Background(), Options{SkipUpstream: true})

	key := findCheck(t, report, "llm_key")
	assert.Equal(t, "warn", key.Status)
	assert.NotEmpty(t, key.Fix)

	assert.Equal(t, "warn", report.Status, "missing key warns but never fails")
	assert.Zero(t, report.Summary.Fail)
}

func TestRunWithAPIKey(t *testing.T) {
	t.Setenv("AXAI_OPENAI_API_KEY", "sk-test-key")

	report := Run(context.Background(), Options{SkipUpstream: true})

	assert.Equal(t, "pass", findCheck(t, report, "llm_key").Status)
	assert.Equal(t, "pass", findCheck(t, report, "config_load").Status)
}

func TestRunRegistryChecks(t *testing.T) {
	report := Run(context.Background(), Options{SkipUpstream: true})

	cascade := findCheck(t, report, "intent_cascade")
	assert.Equal(t, "pass", cascade.Status)
	assert.Contains(t, cascade.Message, "primary")

	catalog := findCheck(t, report, "playbook_catalog")
	assert.Equal(t, "pass", catalog.Status)
	assert.Contains(t, catalog.Message, "risk factors")
}

func TestRunSkipsUpstream(t *testing.T) {
	report := Run(context.Background(), Options{SkipUpstream: true})
	for _, c := range report.Checks {
		assert.NotEqual(t, "upstream", c.Category)
	}
}

func TestRunUnreachableUpstreamWarns(t *testing.T) {
	t.Setenv("AXAI_OPENAI_API_KEY", "sk-test-key")

	report := Run(context.Background(), Options{BaseURL: "http://127.0.0.1:1"})

	up := findCheck(t, report, "upstream")
	assert.Equal(t, "warn", up.Status, "unreachable upstream degrades to fallback, it never fails doctor")
	assert.NotEqual(t, "fail", report.Status)
}

func TestSummaryCalculation(t *testing.T) {
	report := Run(context.Background(), Options{SkipUpstream: true})
	require.NotEmpty(t, report.Checks)
	assert.Equal(t, len(report.Checks), report.Summary.Pass+report.Summary.Warn+report.Summary.Fail)
	assert.Contains(t, []string{"pass", "warn", "fail"}, report.Status)
}
