// Package report renders finalized validation reports as markdown or
// HTML documents. The emitters format fields only and never recompute a
// score.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// RenderMarkdown produces the full compliance report document.
func RenderMarkdown(rep *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString("# Engineering Standards Compliance Report\n\n")
	if rep.Project != "" {
		fmt.Fprintf(&b, "**Project**: %s\n", rep.Project)
	}
	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "**Generated**: %s\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	if rep.CommitHash != "" {
		fmt.Fprintf(&b, "**Commit**: %s\n", shortHash(rep.CommitHash))
	}
	fmt.Fprintf(&b, "**Overall Score**: %.1f%% (Grade: %s)\n\n---\n\n", rep.OverallScore, rep.Grade)

	// Executive summary
	b.WriteString("## Executive Summary\n\n")
	if rep.GradeDescription != "" {
		fmt.Fprintf(&b, "**Status**: %s\n\n", rep.GradeDescription)
	}
	passed, failed, warned := rep.TotalChecks()
	fmt.Fprintf(&b, "- **Total Checks**: %d\n", passed+failed+warned)
	fmt.Fprintf(&b, "- **Passed**: %d\n", passed)
	fmt.Fprintf(&b, "- **Failed**: %d\n", failed)
	fmt.Fprintf(&b, "- **Warnings**: %d\n\n", warned)

	// Compliance matrix, highest scoring category first.
	b.WriteString("## Compliance Matrix\n\n")
	b.WriteString("| Category | Score | Weight | Status | Checks |\n")
	b.WriteString("|----------|-------|--------|--------|--------|\n")
	for _, t := range categoriesByScore(rep) {
		status := "✓ Pass"
		if t.ChecksFailed > 0 {
			status = "✗ Fail"
		} else if t.ChecksWarned > 0 {
			status = "⚠ Warning"
		}
		fmt.Fprintf(&b, "| %s | %.1f%% | %d | %s | %d/%d |\n",
			t.Name, t.Score, t.Weight, status, t.ChecksPassed, t.Total())
	}
	b.WriteString("\n")

	// Per-category findings, failing checks only.
	b.WriteString("## Findings\n\n")
	for _, name := range rep.CategoryNames() {
		t := rep.Categories[name]
		var failing []domain.CheckOutcome
		for _, o := range t.Results {
			if !o.Passed {
				failing = append(failing, o)
			}
		}
		if len(failing) == 0 {
			continue
		}
		fmt.Fprintf(&b, "### %s\n\n", name)
		for _, o := range failing {
			fmt.Fprintf(&b, "- **[%s]** %s", o.Severity, o.Message)
			if o.Details != "" {
				fmt.Fprintf(&b, " — %s", o.Details)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Critical issues to fix first.
	if failures := rep.CriticalFailures(); len(failures) > 0 {
		b.WriteString("## Critical Issues To Fix\n\n")
		for i, o := range failures {
			fmt.Fprintf(&b, "%d. %s", i+1, o.Message)
			if o.Details != "" {
				fmt.Fprintf(&b, " — %s", o.Details)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// categoriesByScore returns tallies sorted by descending score, ties
// broken by name for stable output.
func categoriesByScore(rep *domain.ValidationReport) []*domain.CategoryTally {
	tallies := make([]*domain.CategoryTally, 0, len(rep.Categories))
	for _, name := range rep.CategoryNames() {
		tallies = append(tallies, rep.Categories[name])
	}
	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].Score > tallies[j].Score
	})
	return tallies
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
