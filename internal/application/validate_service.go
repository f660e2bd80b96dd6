package application

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/antoineschaller/cortex-skills/internal/domain"
	"github.com/antoineschaller/cortex-skills/internal/domain/checks"
)

// ValidateService orchestrates one compliance run:
// load rules → scan project → run evaluators → aggregate → stamp metadata.
type ValidateService struct {
	scanner domain.ProjectScanner
	rules   domain.RulesLoader
	git     domain.GitInfo
}

func NewValidateService(scanner domain.ProjectScanner, rules domain.RulesLoader, git domain.GitInfo) *ValidateService {
	return &ValidateService{scanner: scanner, rules: rules, git: git}
}

// Validate runs all category evaluators over the project and returns the
// finalized report plus the tri-state exit status. A configuration error
// aborts before any evaluator executes.
func (s *ValidateService) Validate(projectPath, rulesPath string) (*domain.ValidationReport, domain.ExitStatus, error) {
	rules, err := s.rules.Load(rulesPath)
	if err != nil {
		return nil, domain.ExitCritical, fmt.Errorf("loading rules: %w", err)
	}

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, domain.ExitCritical, fmt.Errorf("resolving path: %w", err)
	}

	snap, err := s.scanner.Scan(absPath)
	if err != nil {
		return nil, domain.ExitCritical, fmt.Errorf("scanning project: %w", err)
	}

	agg := domain.NewAggregator(rules)

	// Category order is fixed; categories are independent of each other
	// and only the aggregator sees their combined state.
	evaluations := [][]domain.CheckOutcome{
		checks.EvaluateHooks(snap, rules.Hooks),
		checks.EvaluateDocumentation(snap, rules.Documentation),
		checks.EvaluateTesting(snap, rules.Testing),
		checks.EvaluateQualityGates(snap, rules.QualityGates),
		checks.EvaluateGit(snap, rules.Git),
		checks.EvaluateSecurity(snap, rules.Security),
		checks.EvaluateNaming(snap, rules.Naming),
		checks.EvaluateMigrations(snap, rules.Migrations),
	}
	for _, outcomes := range evaluations {
		for _, o := range outcomes {
			if err := agg.Record(o); err != nil {
				return nil, domain.ExitCritical, fmt.Errorf("recording outcome: %w", err)
			}
		}
	}

	report := agg.Finalize()
	report.Project = filepath.Base(absPath)
	report.GeneratedAt = time.Now().UTC()
	if s.git != nil && s.git.IsGitRepo(absPath) {
		if hash, err := s.git.CommitHash(absPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report, agg.ExitStatus(), nil
}
