package cmd

import (
	"context"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/inkwise/inkwise/pkg/logging"
)

// NewRootCommand returns the root command with all subcommands attached.
func NewRootCommand(fs afero.Fs, ctx context.Context, logger *logging.Logger) *cobra.Command {
	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:   "inkwise",
		Short: "Otsu binarization HTTP service.",
		Long: `Inkwise accepts a single uploaded image over HTTP, computes a global
binarization threshold from its luminance histogram with Otsu's method, applies
it, and returns the black/white result as a base64 data URL together with the
threshold value.`,
	}
	rootCmd.AddCommand(NewServeCommand(fs, ctx, logger))

	return rootCmd
}
