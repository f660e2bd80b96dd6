package checks

import (
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateQualityGates checks linter, type-checker and formatter
// configuration plus the aggregate quality script in the manifest.
func EvaluateQualityGates(snap *domain.Snapshot, r domain.QualityGatesRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	if r.Linter.Required {
		path, found := snap.FirstExisting(r.Linter.ConfigFiles)
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryQualityGates,
			Check:    "linter_config_exists",
			Passed:   found,
			Severity: domain.SeverityCritical,
			Message:  "Linter configuration file",
			Details:  foundOr(found, path),
		})
	}

	if r.TypeChecker.Required {
		exists := snap.FileExists(r.TypeChecker.ConfigFile)
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryQualityGates,
			Check:    "type_checker_config_exists",
			Passed:   exists,
			Severity: domain.SeverityCritical,
			Message:  "Type checker configuration file",
			Details:  foundOr(exists, r.TypeChecker.ConfigFile),
		})

		if exists && r.TypeChecker.StrictMarker != "" {
			strict := snap.Contains(r.TypeChecker.ConfigFile, r.TypeChecker.StrictMarker)
			details := "Not enabled"
			if strict {
				details = "Enabled"
			}
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryQualityGates,
				Check:    "strict_mode_enabled",
				Passed:   strict,
				Severity: domain.SeverityWarning,
				Message:  "Type checker strict mode enabled",
				Details:  details,
			})
		}
	}

	if r.Formatter.Required {
		path, found := snap.FirstExisting(r.Formatter.ConfigFiles)
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryQualityGates,
			Check:    "formatter_config_exists",
			Passed:   found,
			Severity: domain.SeverityWarning,
			Message:  "Formatter configuration file",
			Details:  foundOr(found, path),
		})
	}

	if r.QualityScript.Required {
		if manifest, ok := snap.ReadFile(r.QualityScript.ManifestFile); ok {
			has := strings.Contains(manifest, r.QualityScript.Name)
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryQualityGates,
				Check:    "quality_script_exists",
				Passed:   has,
				Severity: domain.SeverityWarning,
				Message:  "Quality script in " + r.QualityScript.ManifestFile,
				Details:  presentOr(has),
			})
		}
	}

	return outcomes
}
