package checks

import (
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateGit checks the ignore file and its required entries. Entry
// matching tolerates a missing trailing slash since both spellings are
// common.
func EvaluateGit(snap *domain.Snapshot, r domain.GitRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	var outcomes []domain.CheckOutcome

	exists := snap.FileExists(r.IgnoreFile)
	outcomes = append(outcomes, domain.CheckOutcome{
		Category: domain.CategoryGit,
		Check:    "gitignore_exists",
		Passed:   exists,
		Severity: domain.SeverityCritical,
		Message:  r.IgnoreFile + " file exists",
		Details:  foundOr(exists, r.IgnoreFile),
	})

	if exists {
		content, _ := snap.ReadFile(r.IgnoreFile)
		for _, entry := range r.MustInclude {
			base := strings.TrimSuffix(entry, "/")
			has := strings.Contains(content, entry) || strings.Contains(content, base)
			outcomes = append(outcomes, domain.CheckOutcome{
				Category: domain.CategoryGit,
				Check:    "gitignore_has_" + slug(base),
				Passed:   has,
				Severity: domain.SeverityInfo,
				Message:  r.IgnoreFile + " includes " + entry,
				Details:  presentOr(has),
			})
		}
	}

	return outcomes
}
