package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/yigit/registrar/internal/server"
)

// NewServeCommand creates the command that runs the HTTP API.
func NewServeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv, err := server.NewServer(ctx, opts.ConfigPath)
			if err != nil {
				return err
			}
			return srv.Run(ctx)
		},
	}
}
