package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tentapress/tentapress/internal/api"
	"github.com/tentapress/tentapress/internal/config"
)

// newServeCmd creates the serve command for the HTTP server
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the tentapress HTTP server",
		Long: `Start the tentapress HTTP server.

Endpoints:
  POST /api/export   Run an export and download the archive
  GET  /healthz      Liveness check

Example:
  tentapress serve              # listen on the configured port
  tentapress serve --port 3000  # listen on a custom port`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			port, _ := cmd.Flags().GetInt("port")
			if !cmd.Flags().Changed("port") {
				port = cfg.Server.Port
			}

			assembler, cleanup := buildAssembler(cfg)
			defer cleanup()

			srv := api.NewServer(assembler, slog.Default())
			return srv.ListenAndServe(port)
		},
	}

	cmd.Flags().Int("port", 8080, "port to listen on")
	return cmd
}
