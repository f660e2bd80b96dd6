package checks

import (
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateDocumentation checks the project instructions file and its
// required sections, the WIP directory, and that no stray markdown files
// sit in the project root.
func EvaluateDocumentation(snap *domain.Snapshot, r domain.DocumentationRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	exists := snap.FileExists(r.InstructionsFile)
	outcomes = append(outcomes, domain.CheckOutcome{
		Category: domain.CategoryDocumentation,
		Check:    "instructions_file_exists",
		Passed:   exists,
		Severity: domain.SeverityCritical,
		Message:  r.InstructionsFile + " file exists",
		Details:  foundOr(exists, r.InstructionsFile),
	})

	if exists {
		content, _ := snap.ReadFile(r.InstructionsFile)
		for _, section := range r.RequiredSections {
			has := strings.Contains(content, "## "+section)
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryDocumentation,
				Check:    "section_" + slug(section),
				Passed:   has,
				Severity: domain.SeverityWarning,
				Message:  r.InstructionsFile + " section: " + section,
				Details:  presentOr(has),
			})
		}
	}

	if r.WIPDirectory != "" {
		outcomes = append(outcomes, domain.CheckOutcome{
			Category: domain.CategoryDocumentation,
			Check:    "wip_directory_exists",
			Passed:   snap.DirExists(r.WIPDirectory),
			Severity: domain.SeverityInfo,
			Message:  "WIP directory: " + r.WIPDirectory,
			Details:  "Recommended but not required",
		})
	}

	allowed := make(map[string]bool, len(r.AllowedRootFiles))
	for _, f := range r.AllowedRootFiles {
		allowed[f] = true
	}
	var forbidden []string
	for _, f := range snap.RootFiles() {
		if strings.HasSuffix(f, ".md") && !allowed[f] {
			forbidden = append(forbidden, f)
		}
	}
	details := "Clean"
	if len(forbidden) > 0 {
		details = "Found: " + listWithMore(forbidden, 3)
	}
	outcomes = append(outcomes, domain.CheckOutcome{
		Category: domain.CategoryDocumentation,
		Check:    "no_forbidden_root_md",
		Passed:   len(forbidden) == 0,
		Severity: domain.SeverityCritical,
		Message:  "No forbidden root .md files",
		Details:  details,
	})

	return outcomes
}
