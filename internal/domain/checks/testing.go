package checks

import (
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateTesting checks the unit-test runner configuration, coverage
// thresholds, required manifest scripts, and — only for projects that
// look like web applications — the e2e test configuration.
func EvaluateTesting(snap *domain.Snapshot, r domain.TestingRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	if r.Runner.Required {
		configPath, found := snap.FirstExisting(r.Runner.ConfigFiles)
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryTesting,
			Check:    "runner_config_exists",
			Passed:   found,
			Severity: domain.SeverityCritical,
			Message:  "Test runner configuration file",
			Details:  foundOr(found, configPath),
		})

		if found && r.Runner.CoverageMarker != "" {
			has := snap.Contains(configPath, r.Runner.CoverageMarker)
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryTesting,
				Check:    "coverage_thresholds_configured",
				Passed:   has,
				Severity: domain.SeverityWarning,
				Message:  "Coverage thresholds configured",
				Details:  configuredOr(has),
			})
		}

		// Script checks apply only when the manifest is readable.
		if manifest, ok := snap.ReadFile(r.Runner.ManifestFile); ok {
			for _, script := range r.Runner.RequiredScripts {
				has := strings.Contains(manifest, script)
				outcomes = append(outcomes, domain.CheckOutcome{
					Category: domain.CategoryTesting,
					Check:    "test_script_" + slug(script),
					Passed:   has,
					Severity: domain.SeverityWarning,
					Message:  "Test script: " + script,
					Details:  presentOr(has),
				})
			}
		}
	}

	// E2E expectations only hold for web projects; without a framework
	// marker the check emits no outcome rather than a failing one.
	if r.E2E.RequiredForWeb {
		if _, isWeb := snap.FirstExisting(r.E2E.WebMarkers); isWeb {
			exists := snap.FileExists(r.E2E.ConfigFile)
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryTesting,
				Check:    "e2e_config_exists",
				Passed:   exists,
				Severity: domain.SeverityInfo,
				Message:  "E2E testing configured",
				Details:  "Recommended for web projects",
			})
		}
	}

	return outcomes
}
