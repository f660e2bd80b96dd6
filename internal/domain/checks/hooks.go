package checks

import (
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateHooks checks the git-hook manager configuration: the hook
// config file itself, the expected pre-commit and pre-push commands
// inside it, and the editor settings file.
func EvaluateHooks(snap *domain.Snapshot, r domain.HooksRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	configPath, found := snap.FirstExisting(r.ConfigFiles)
	outcomes = append(outcomes, domain.CheckOutcome{
		Category: domain.CategoryHooks,
		Check:    "hook_config_exists",
		Passed:   found,
		Severity: domain.SeverityCritical,
		Message:  "Hook manager configuration file",
		Details:  foundOr(found, configPath),
	})

	if found {
		for _, cmd := range r.PreCommitCommands {
			has := snap.Contains(configPath, cmd+":")
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryHooks,
				Check:    "pre_commit_" + slug(cmd),
				Passed:   has,
				Severity: domain.SeverityWarning,
				Message:  "Pre-commit hook: " + cmd,
				Details:  configuredOr(has),
			})
		}
		for _, cmd := range r.PrePushCommands {
			has := snap.Contains(configPath, cmd+":")
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryHooks,
				Check:    "pre_push_" + slug(cmd),
				Passed:   has,
				Severity: domain.SeverityWarning,
				Message:  "Pre-push hook: " + cmd,
				Details:  configuredOr(has),
			})
		}
	}

	if r.EditorSettingsFile != "" {
		exists := snap.FileExists(r.EditorSettingsFile)
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryHooks,
			Check:    "editor_settings_exists",
			Passed:   exists,
			Severity: domain.SeverityWarning,
			Message:  "Editor settings file: " + r.EditorSettingsFile,
			Details:  foundOr(exists, r.EditorSettingsFile),
		})
	}

	return outcomes
}

func configuredOr(ok bool) string {
	if ok {
		return "Configured"
	}
	return "Missing"
}
