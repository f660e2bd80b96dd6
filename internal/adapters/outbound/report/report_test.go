package report_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/report"
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

func sampleReport() *domain.ValidationReport {
	return &domain.ValidationReport{
		OverallScore:     82.5,
		Grade:            "B",
		GradeDescription: "Good - some standards missing",
		Project:          "acme-web",
		GeneratedAt:      time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC),
		CommitHash:       "0123456789abcdef0123456789abcdef01234567",
		Categories: map[string]*domain.CategoryTally{
			domain.CategoryGit: {
				Name: domain.CategoryGit, Weight: 10,
				ChecksPassed: 5, Score: 100,
				Results: []domain.CheckOutcome{
					{Category: domain.CategoryGit, Check: "gitignore_exists", Passed: true, Severity: domain.SeverityCritical, Message: ".gitignore file exists"},
				},
			},
			domain.CategorySecurity: {
				Name: domain.CategorySecurity, Weight: 15,
				ChecksPassed: 1, ChecksFailed: 1, Score: 50,
				Results: []domain.CheckOutcome{
					{Category: domain.CategorySecurity, Check: "env_example_exists", Passed: true, Severity: domain.SeverityWarning, Message: ".env.local.example file exists"},
					{Category: domain.CategorySecurity, Check: "no_hardcoded_secrets", Passed: false, Severity: domain.SeverityCritical, Message: "No hardcoded secret credentials", Details: "Found in: src/pay.ts (Stripe live secret key)"},
				},
			},
		},
	}
}

func TestRenderMarkdown(t *testing.T) {
	out := report.RenderMarkdown(sampleReport())

	assert.Contains(t, out, "# Engineering Standards Compliance Report")
	assert.Contains(t, out, "**Project**: acme-web")
	assert.Contains(t, out, "**Commit**: 0123456")
	assert.Contains(t, out, "**Overall Score**: 82.5% (Grade: B)")
	assert.Contains(t, out, "- **Total Checks**: 7")

	// Matrix sorted by descending score: git (100) before security (50).
	gitRow := "| git | 100.0% | 10 | ✓ Pass | 5/5 |"
	secRow := "| security | 50.0% | 15 | ✗ Fail | 1/2 |"
	assert.Contains(t, out, gitRow)
	assert.Contains(t, out, secRow)
	assert.Less(t, strings.Index(out, gitRow), strings.Index(out, secRow))

	// Only failing checks show up as findings.
	assert.Contains(t, out, "### security")
	assert.NotContains(t, out, "### git")
	assert.Contains(t, out, "## Critical Issues To Fix")
	assert.Contains(t, out, "1. No hardcoded secret credentials — Found in: src/pay.ts (Stripe live secret key)")
}

func TestRenderMarkdown_NoCriticalSection(t *testing.T) {
	rep := sampleReport()
	rep.Categories = map[string]*domain.CategoryTally{
		domain.CategoryGit: rep.Categories[domain.CategoryGit],
	}

	out := report.RenderMarkdown(rep)
	assert.NotContains(t, out, "## Critical Issues To Fix")
}

func TestRenderHTML(t *testing.T) {
	out := report.RenderHTML(sampleReport())

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<h1>Engineering Standards Compliance Report</h1>")
	assert.Contains(t, out, `<p class="score warn">82.5% — Grade B</p>`)
	assert.Contains(t, out, "<td>git</td><td>100.0%</td>")
	assert.Contains(t, out, `<li class="fail">✗ No hardcoded secret credentials`)
}

func TestRenderHTML_EscapesContent(t *testing.T) {
	rep := sampleReport()
	rep.Project = "<script>alert(1)</script>"

	out := report.RenderHTML(rep)
	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Contains(t, out, "&lt;script&gt;")
}
