package application

import (
	"encoding/json"
	"fmt"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/report"
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

// Report formats. The emitters only format fields of the finalized
// report; no scoring logic lives on this side.
const (
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// ReportService runs a validation and renders the report in the
// requested format.
type ReportService struct {
	validator *ValidateService
}

func NewReportService(validator *ValidateService) *ReportService {
	return &ReportService{validator: validator}
}

// Generate validates the project and returns the rendered report. The
// exit status is returned alongside so callers can surface it.
func (s *ReportService) Generate(projectPath, rulesPath, format string) (string, domain.ExitStatus, error) {
	rep, status, err := s.validator.Validate(projectPath, rulesPath)
	if err != nil {
		return "", status, err
	}

	switch format {
	case FormatMarkdown:
		return report.RenderMarkdown(rep), status, nil
	case FormatHTML:
		return report.RenderHTML(rep), status, nil
	case FormatJSON:
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return "", status, fmt.Errorf("marshaling report: %w", err)
		}
		return string(data) + "\n", status, nil
	default:
		return "", status, fmt.Errorf("unknown report format %q (valid: md, html, json)", format)
	}
}
