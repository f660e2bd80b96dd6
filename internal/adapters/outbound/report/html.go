package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// RenderHTML produces a standalone HTML page for the report.
func RenderHTML(rep *domain.ValidationReport) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Compliance Report — %s</title>\n", html.EscapeString(rep.Project))
	b.WriteString(`<style>
body { font-family: -apple-system, sans-serif; max-width: 900px; margin: 2rem auto; color: #1f2937; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #d1d5db; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #f3f4f6; }
.score { font-size: 2rem; font-weight: bold; }
.pass { color: #16a34a; }
.fail { color: #dc2626; }
.warn { color: #d97706; }
</style>
`)
	b.WriteString("</head>\n<body>\n")

	b.WriteString("<h1>Engineering Standards Compliance Report</h1>\n")
	if rep.Project != "" {
		fmt.Fprintf(&b, "<p><strong>Project</strong>: %s</p>\n", html.EscapeString(rep.Project))
	}
	if !rep.GeneratedAt.IsZero() {
		fmt.Fprintf(&b, "<p><strong>Generated</strong>: %s</p>\n", rep.GeneratedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(&b, "<p class=\"score %s\">%.1f%% — Grade %s</p>\n",
		scoreClass(rep.OverallScore), rep.OverallScore, html.EscapeString(rep.Grade))
	if rep.GradeDescription != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(rep.GradeDescription))
	}

	b.WriteString("<h2>Categories</h2>\n<table>\n")
	b.WriteString("<tr><th>Category</th><th>Score</th><th>Weight</th><th>Passed</th><th>Failed</th><th>Warned</th></tr>\n")
	for _, t := range categoriesByScore(rep) {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%.1f%%</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td></tr>\n",
			html.EscapeString(t.Name), t.Score, t.Weight, t.ChecksPassed, t.ChecksFailed, t.ChecksWarned)
	}
	b.WriteString("</table>\n")

	b.WriteString("<h2>Findings</h2>\n")
	for _, name := range rep.CategoryNames() {
		t := rep.Categories[name]
		fmt.Fprintf(&b, "<h3>%s</h3>\n<ul>\n", html.EscapeString(name))
		for _, o := range t.Results {
			class := "pass"
			mark := "✓"
			if !o.Passed {
				mark = "✗"
				class = "warn"
				if o.Severity == domain.SeverityCritical {
					class = "fail"
				}
			}
			fmt.Fprintf(&b, "<li class=\"%s\">%s %s", class, mark, html.EscapeString(o.Message))
			if o.Details != "" {
				fmt.Fprintf(&b, " <em>(%s)</em>", html.EscapeString(o.Details))
			}
			b.WriteString("</li>\n")
		}
		b.WriteString("</ul>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func scoreClass(score float64) string {
	switch {
	case score >= 90:
		return "pass"
	case score >= 70:
		return "warn"
	default:
		return "fail"
	}
}
