package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/inkwise/inkwise/pkg/config"
	"github.com/inkwise/inkwise/pkg/environment"
	"github.com/inkwise/inkwise/pkg/logging"
	"github.com/inkwise/inkwise/pkg/server"
)

// NewServeCommand returns the command that runs the HTTP service.
func NewServeCommand(fs afero.Fs, ctx context.Context, logger *logging.Logger) *cobra.Command {
	var (
		host       string
		port       string
		spoolDir   string
		configFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the image processing service",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := environment.NewEnvironment(fs, nil)
			if err != nil {
				return err
			}

			// Flags override the environment snapshot.
			if host != "" {
				env.Host = host
			}
			if port != "" {
				env.Port = port
			}
			if spoolDir != "" {
				env.SpoolDir = spoolDir
				if err := fs.MkdirAll(env.SpoolDir, 0o750); err != nil {
					return err
				}
			}
			if configFile != "" {
				env.ConfigFile = configFile
			}

			cfg, err := config.LoadConfig(fs, env.ConfigFile)
			if err != nil {
				return err
			}
			if env.MaxUploadSize > 0 {
				cfg.Upload.MaxSize = env.MaxUploadSize
			}

			return runServer(ctx, fs, cfg, env, logger)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host IP to bind to")
	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on")
	cmd.Flags().StringVar(&spoolDir, "spool-dir", "", "Directory for per-request temporary files")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")

	return cmd
}

// runServer starts the server and blocks until a termination signal arrives,
// then shuts down within the configured grace period.
func runServer(ctx context.Context, fs afero.Fs, cfg *config.Config, env *environment.Environment, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.NewServer(fs, cfg, env, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
