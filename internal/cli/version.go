package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yigit/registrar/internal/bootstrap"
)

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "registrar %s\n", bootstrap.Version)
		},
	}
}
