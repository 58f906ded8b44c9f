package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nconklindev/rowify/internal/converter"
	"github.com/nconklindev/rowify/internal/logging"
	"github.com/nconklindev/rowify/internal/server"

	"github.com/spf13/cobra"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP; submitting it downloads the workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load()
			if err != nil {
				return err
			}

			logger, err := logging.Setup(cfg.LogLevel, os.Stderr)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			svc := converter.NewService(converter.XLSXSerializer{}, converter.WithLogger(logger))
			return server.New(cfg.Server, svc, logger).Start(ctx)
		},
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	_ = a.v.BindPFlag("server.port", cmd.Flags().Lookup("port"))

	return cmd
}
