package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antoineschaller/cortex-skills/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// ExitError carries the engine's tri-state exit status through cobra's
// error return.
type ExitError struct {
	Status domain.ExitStatus
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("compliance exit status %d", int(e.Status))
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cortex",
		Short:         "Validate project compliance with engineering standards",
		Long:          "Cortex checks a project against a declared set of engineering standards and produces a weighted compliance score, a grade, and a breakdown of findings.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI and returns the process exit code: the engine's
// tri-state status for a completed validation, 1 for any other error.
func Execute() int {
	err := newRootCmd().Execute()
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return int(exitErr.Status)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}
