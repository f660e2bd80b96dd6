package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// ── warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failTagStyle  = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a finalized validation report for the terminal.
// It reads fields only; every score shown here was computed by the
// aggregator.
func RenderReport(rep *domain.ValidationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("cortex")
	subtitle := dimStyle.Render("Engineering Standards Compliance")
	scoreLine := fmt.Sprintf("%.1f%%", rep.OverallScore)
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(rep.OverallScore)).
		Render(scoreLine)
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(rep.OverallScore)).
		Render(rep.Grade)

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled))
	b.WriteString("\n\n")

	// ── Categories ──
	for _, name := range rep.CategoryNames() {
		renderCategory(&b, rep.Categories[name])
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Critical issues ──
	failures := rep.CriticalFailures()
	if len(failures) > 0 {
		b.WriteString("  ")
		b.WriteString(titleStyle.Render("Critical issues"))
		b.WriteString("  ")
		b.WriteString(failTagStyle.Render(fmt.Sprintf("%d", len(failures))))
		b.WriteString("\n\n")
		for _, o := range failures {
			fmt.Fprintf(&b, "    %s %s\n", failTagStyle.Render("✗"), dimStyle.Render(o.Message))
			if o.Details != "" {
				fmt.Fprintf(&b, "      %s\n", faintStyle.Render(o.Details))
			}
		}
	} else {
		b.WriteString("  " + passStyle.Render("No critical issues found.") + "\n")
	}

	if rep.GradeDescription != "" {
		b.WriteString("\n  " + dimStyle.Render(rep.GradeDescription) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderCategory(b *strings.Builder, t *domain.CategoryTally) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(t.Score)).Render(fmt.Sprintf("%5.1f", t.Score))
	bar := coloredBar(t.Score, 20)
	weight := dimStyle.Render(fmt.Sprintf("w%d", t.Weight))
	counts := dimStyle.Render(fmt.Sprintf("%d/%d passed", t.ChecksPassed, t.Total()))

	name := catNameStyle.Render(padRight(t.Name, 20))
	fmt.Fprintf(b, "  %s %s  %s %s  %s\n", name, bar, scoreText, weight, counts)

	for _, o := range t.Results {
		if o.Passed {
			continue
		}
		fmt.Fprintf(b, "    %s %s  %s\n", severityTag(o.Severity), o.Message, faintStyle.Render(o.Details))
	}
}

func severityTag(severity domain.Severity) string {
	switch severity {
	case domain.SeverityCritical:
		return failTagStyle.Render("✗")
	case domain.SeverityWarning:
		return warnTagStyle.Render("⚠")
	default:
		return infoTagStyle.Render("·")
	}
}

func coloredBar(score float64, width int) string {
	filled := int(score) * width / 100
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score float64) lipgloss.Color {
	switch {
	case score >= 90:
		return success
	case score >= 70:
		return lipgloss.Color("#A3E635") // lime
	case score >= 50:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
