package domain

import (
	"sort"
	"time"
)

// Severity classifies how a non-passing check outcome is tallied.
// The vocabulary is closed: exactly these three values are valid on a
// CheckOutcome, and Aggregator.Record rejects anything else.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Valid reports whether s is one of the three known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Category names, fixed vocabulary. Each maps to one evaluator.
const (
	CategoryHooks         = "hooks"
	CategoryDocumentation = "documentation"
	CategoryTesting       = "testing"
	CategoryQualityGates  = "quality_gates"
	CategoryGit           = "git"
	CategorySecurity      = "security"
	CategoryNaming        = "naming_conventions"
	CategoryMigrations    = "migrations"
)

// ValidCategories enumerates all check category names.
var ValidCategories = []string{
	CategoryHooks, CategoryDocumentation, CategoryTesting,
	CategoryQualityGates, CategoryGit, CategorySecurity,
	CategoryNaming, CategoryMigrations,
}

// CheckOutcome is one evaluated rule instance. Check uniquely identifies
// the rule within its category for a given run; Severity is fixed per
// check definition, not per outcome.
type CheckOutcome struct {
	Category string   `json:"-"`
	Check    string   `json:"check"`
	Passed   bool     `json:"passed"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Details  string   `json:"details,omitempty"`
}

// CategoryTally is the aggregated state for one category. It is created
// lazily on the first outcome recorded for the category and lives for
// one validation run. The three counters are mutually exclusive and sum
// to len(Results).
type CategoryTally struct {
	Name         string         `json:"-"`
	Weight       int            `json:"weight"`
	ChecksPassed int            `json:"checks_passed"`
	ChecksFailed int            `json:"checks_failed"`
	ChecksWarned int            `json:"checks_warned"`
	Score        float64        `json:"score"`
	Results      []CheckOutcome `json:"results"`
}

// Total returns the number of outcomes recorded for the category.
func (t *CategoryTally) Total() int {
	return t.ChecksPassed + t.ChecksFailed + t.ChecksWarned
}

// ValidationReport is the final artifact of a run. It is immutable once
// finalized; emitters format its fields and never recompute a score.
type ValidationReport struct {
	OverallScore     float64                   `json:"overall_score"`
	Grade            string                    `json:"grade"`
	GradeDescription string                    `json:"grade_description,omitempty"`
	Categories       map[string]*CategoryTally `json:"categories"`

	// Run metadata, stamped by the validate service.
	Project     string    `json:"project,omitempty"`
	GeneratedAt time.Time `json:"generated_at,omitempty"`
	CommitHash  string    `json:"commit_hash,omitempty"`
}

// CategoryNames returns the report's category names in lexicographic
// order, for deterministic rendering.
func (r *ValidationReport) CategoryNames() []string {
	names := make([]string, 0, len(r.Categories))
	for name := range r.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CriticalFailures returns every non-passing critical outcome across all
// categories, in category-name order.
func (r *ValidationReport) CriticalFailures() []CheckOutcome {
	var failures []CheckOutcome
	for _, name := range r.CategoryNames() {
		for _, o := range r.Categories[name].Results {
			if !o.Passed && o.Severity == SeverityCritical {
				failures = append(failures, o)
			}
		}
	}
	return failures
}

// TotalChecks returns the passed/failed/warned counts summed over all
// categories.
func (r *ValidationReport) TotalChecks() (passed, failed, warned int) {
	for _, t := range r.Categories {
		passed += t.ChecksPassed
		failed += t.ChecksFailed
		warned += t.ChecksWarned
	}
	return
}

// ExitStatus is the tri-state process outcome surfaced by the CLI.
type ExitStatus int

const (
	ExitCompliant ExitStatus = 0 // full compliance
	ExitWarnings  ExitStatus = 1 // warnings present
	ExitCritical  ExitStatus = 2 // critical failures
)
