package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrLintFailed marks a run that completed with error-severity findings.
// Any other error from Execute means the run itself could not complete.
var ErrLintFailed = errors.New("lint failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lintclimate",
		Short:         "Aggregate linter diagnostics into reports and code-climate issues",
		Long:          "lintclimate runs a linter over an ordered list of files, folds the diagnostics into one verdict, and writes text reports plus fingerprinted code-climate issues for quality dashboards.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newLintCmd())
	cmd.AddCommand(newFingerprintCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}

// ExitCode maps an Execute error to a process exit status: 0 on success,
// 1 for lint findings, 2 for runs that could not complete.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrLintFailed):
		return 1
	default:
		return 2
	}
}
