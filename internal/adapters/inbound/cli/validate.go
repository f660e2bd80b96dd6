package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/gitinfo"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/rules"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/snapshot"
	"github.com/antoineschaller/cortex-skills/internal/adapters/outbound/tui"
	"github.com/antoineschaller/cortex-skills/internal/application"
	"github.com/antoineschaller/cortex-skills/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		rulesPath  string
		jsonOutput bool
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a project against engineering standards",
		Long:  "Run all compliance checks over a project and print the weighted score, grade, and findings. Exit code: 0 full compliance, 1 warnings present, 2 critical failures.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewValidateService(snapshot.New(), rules.New(), gitinfo.New())
			rep, status, err := svc.Validate(path, rulesPath)
			if err != nil {
				return err
			}

			var out string
			if jsonOutput {
				data, err := json.MarshalIndent(rep, "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling report: %w", err)
				}
				out = string(data) + "\n"
			} else {
				out = tui.RenderReport(rep)
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(out), 0644); err != nil {
					return fmt.Errorf("writing output: %w", err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), out)
			}

			if status != domain.ExitCompliant {
				return &ExitError{Status: status}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rulesPath, "rules", "", "Path to a rules YAML file (default: built-in standards)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write the report to a file instead of stdout")

	return cmd
}
