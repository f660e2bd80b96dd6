package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/gitinfo"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/rules"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/snapshot"
	"github.com/antoineschaller/cortex-skills/internal/application"
)

func newReportCmd() *cobra.Command {
	var (
		rulesPath  string
		format     string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "Generate a compliance report document",
		Long:  "Run a validation and render the result as markdown, HTML, or JSON.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			validator := application.NewValidateService(snapshot.New(), rules.New(), gitinfo.New())
			svc := application.NewReportService(validator)

			out, _, err := svc.Generate(path, rulesPath, format)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
					return fmt.Errorf("writing report: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", outputPath)
				return nil
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a rules YAML file (default: built-in standards)")
	cmd.Flags().StringVar(&format, "format", application.FormatMarkdown, "Report format: md, html, or json")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the report to a file instead of stdout")

	return cmd
}
