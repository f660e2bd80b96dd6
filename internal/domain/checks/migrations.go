package checks

import (
	"fmt"
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// EvaluateMigrations scans SQL migration files for non-idempotent
// statements. Each file is compared against the configured rules
// individually; non-idempotent files accumulate into one aggregate
// outcome. A project without a migrations directory yields no outcomes.
func EvaluateMigrations(snap *domain.Snapshot, r domain.MigrationsRules) []domain.CheckOutcome {
	if !r.Enabled {
		return nil
	}

	dir, ok := snap.FirstExistingDir(r.Directories)
	if !ok {
		return nil
	}

	var nonIdempotent []string
	for _, file := range snap.Glob(dir, "*.sql") {
		content, ok := snap.ReadFile(file)
		if !ok {
			continue
		}

		var issues []string
		for _, rule := range r.Rules {
			if strings.Contains(content, rule.Pattern) && !strings.Contains(content, rule.Guard) {
				issues = append(issues, rule.Description)
			}
		}
		if len(issues) > 0 {
			nonIdempotent = append(nonIdempotent, fmt.Sprintf("%s: %s", strings.TrimPrefix(file, dir+"/"), strings.Join(issues, ", ")))
		}
	}

	details := "All idempotent"
	if len(nonIdempotent) > 0 {
		details = fmt.Sprintf("Issues in %d files: %s", len(nonIdempotent), listWithMore(nonIdempotent, 2))
	}
	return []domain.CheckOutcome{{
		Category: domain.CategoryMigrations,
		Check:    "migrations_idempotent",
		Passed:   len(nonIdempotent) == 0,
		Severity: domain.SeverityCritical,
		Message:  "All migrations are idempotent",
		Details:  details,
	}}
}
