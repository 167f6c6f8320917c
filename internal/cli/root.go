// Package cli provides the command-line interface for bob.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/example/bob/internal/config"
	"github.com/example/bob/internal/ctxutil"
	"github.com/example/bob/internal/version"
)

// configKey is used to store config in context.
type configKey struct{}

// loaderKey is used to store the config loader in context.
type loaderKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "bob",
		Short:   "bob - code generators for Laravel bundles",
		Version: version.String(),
		Long: `bob scaffolds source files for Laravel applications and bundles.

Generators render static templates, substituting #MARKER# placeholders.
Project templates in ./templates shadow the built-in ones.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			loader := config.NewLoader()
			cfg, err := loader.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.FileUsed != "" {
				logger.Debug("using config file", "path", cfg.FileUsed)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			ctx = context.WithValue(ctx, configKey{}, cfg)
			ctx = context.WithValue(ctx, loaderKey{}, loader)
			ctx = ctxutil.WithLogger(ctx, logger)
			ctx = ctxutil.WithActor(ctx, currentActor())
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./bob.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().String("templates-dir", "", "Directory with template overrides (default: ./templates)")

	rootCmd.AddCommand(ModelCmd())
	rootCmd.AddCommand(TemplatesCmd())
	rootCmd.AddCommand(HistoryCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return &config.Config{
		DefaultBundle: config.DefaultBundleName,
		Extension:     config.DefaultExtension,
		HistoryPath:   config.DefaultHistoryFile,
		Paths: config.PathsConfig{
			Application: config.DefaultApplication,
			Bundles:     config.DefaultBundles,
		},
	}
}

// GetLoader retrieves the config loader, whose raw keys back generator switches.
func GetLoader(ctx context.Context) *config.Loader {
	if l, ok := ctx.Value(loaderKey{}).(*config.Loader); ok {
		return l
	}
	return config.NewLoader()
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// currentActor names who ran the generator in the history journal.
func currentActor() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
