package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/tui"
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

func renderedReport(score float64, failures []domain.CheckOutcome) string {
	passed := 4
	failed := 0
	if len(failures) > 0 {
		failed = len(failures)
	}
	return tui.RenderReport(&domain.ValidationReport{
		OverallScore:     score,
		Grade:            "B",
		GradeDescription: "Good - some standards missing",
		Categories: map[string]*domain.CategoryTally{
			domain.CategoryGit: {
				Name:         domain.CategoryGit,
				Weight:       10,
				ChecksPassed: passed,
				ChecksFailed: failed,
				Score:        score,
				Results:      failures,
			},
		},
	})
}

func TestRenderReport_Header(t *testing.T) {
	out := renderedReport(82.5, nil)

	assert.Contains(t, out, "cortex")
	assert.Contains(t, out, "Engineering Standards Compliance")
	assert.Contains(t, out, "82.5%")
	assert.Contains(t, out, "Good - some standards missing")
}

func TestRenderReport_CategoryRow(t *testing.T) {
	out := renderedReport(82.5, nil)

	assert.Contains(t, out, "git")
	assert.Contains(t, out, "w10")
	assert.Contains(t, out, "4/4 passed")
	assert.Contains(t, out, "No critical issues found.")
}

func TestRenderReport_CriticalSection(t *testing.T) {
	out := renderedReport(40, []domain.CheckOutcome{{
		Category: domain.CategoryGit,
		Check:    "gitignore_exists",
		Passed:   false,
		Severity: domain.SeverityCritical,
		Message:  ".gitignore file exists",
		Details:  "Not found",
	}})

	assert.Contains(t, out, "Critical issues")
	assert.Contains(t, out, ".gitignore file exists")
	assert.Contains(t, out, "Not found")
	assert.NotContains(t, out, "No critical issues found.")
}
