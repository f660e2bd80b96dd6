package checks

import (
	"fmt"
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateSecurity checks for an env example file and scans conventional
// source directories for credential-like literals. The scan of a single
// file stops at its first matching prefix; all offending files collapse
// into one critical outcome per run, never one per file or line.
func EvaluateSecurity(snap *domain.Snapshot, r domain.SecurityRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	if r.EnvExampleFile != "" {
		exists := snap.FileExists(r.EnvExampleFile)
		details := "Not found (recommended)"
		if exists {
			details = "Found"
		}
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategorySecurity,
			Check:    "env_example_exists",
			Passed:   exists,
			Severity: domain.SeverityWarning,
			Message:  r.EnvExampleFile + " file exists",
			Details:  details,
		})
	}

	var offenders []string
	for _, dir := range r.SourceDirs {
		for _, file := range snap.Glob(dir, r.SourceGlob) {
			content, ok := snap.ReadFile(file)
			if !ok {
				continue
			}
			for _, p := range r.SecretPatterns {
				if p.Prefix != "" && strings.Contains(content, p.Prefix) {
					offenders = append(offenders, fmt.Sprintf("%s (%s)", file, p.Name))
					break
				}
			}
		}
	}

	details := "Clean"
	if len(offenders) > 0 {
		details = "Found in: " + listWithMore(offenders, 3)
	}
	outcomes = append(outcomes, domain.CheckOutcome{
		Category: domain.CategorySecurity,
		Check:    "no_hardcoded_secrets",
		Passed:   len(offenders) == 0,
		Severity: domain.SeverityCritical,
		Message:  "No hardcoded secret credentials",
		Details:  details,
	})

	return outcomes
}
