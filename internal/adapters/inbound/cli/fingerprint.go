package cli

import (
	"fmt"
	"strconv"

	"github.com/lintclimate/lintclimate/internal/domain"
	"github.com/spf13/cobra"
)

func newFingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <description> <offset> <path>",
		Short: "Print the code-climate fingerprint of an issue",
		Long:  "Compute the fingerprint a code-climate report assigns to an issue with the given description, start offset and path.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("offset must be an integer: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), domain.Fingerprint(args[0], offset, args[2]))
			return nil
		},
	}
}
