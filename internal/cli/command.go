// Package cli builds the vocabd command tree.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vilyaua/AI-01/internal/app"
)

// Runner holds the entry points the commands dispatch to. Tests replace
// them to exercise argument handling without a database.
type Runner struct {
	Serve   func(ctx context.Context) error
	Migrate func(ctx context.Context, action string, cmd *cobra.Command) error
}

// DefaultRunner dispatches to the application package.
func DefaultRunner() Runner {
	return Runner{
		Serve: app.Run,
		Migrate: func(ctx context.Context, action string, cmd *cobra.Command) error {
			return app.Migrate(ctx, action, cmd.OutOrStdout())
		},
	}
}

// NewRootCommand creates the root command with its serve and migrate
// subcommands.
func NewRootCommand(r Runner) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "vocabd",
		Short: "Spanish vocabulary enrichment and evaluation service",
		Long: `vocabd serves the Spanish learning API: learners add words by text,
image or audio, words are enriched and conjugated by a text-generation
model, and answers to translation drills are graded.

Examples:
  vocabd serve                  # run the HTTP API
  vocabd migrate up             # apply pending schema migrations
  vocabd migrate status         # list migrations`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				return nil
			}
			return os.Setenv("CONFIG_PATH", configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ./config.yaml, overrides CONFIG_PATH)")

	root.AddCommand(newServeCommand(r), newMigrateCommand(r))
	return root
}

func newServeCommand(r Runner) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return r.Serve(cmd.Context())
		},
	}
}

func newMigrateCommand(r Runner) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or list schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{app.MigrateUp, app.MigrateDown, app.MigrateStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := r.Migrate(cmd.Context(), args[0], cmd); err != nil {
				return fmt.Errorf("migrate %s: %w", args[0], err)
			}
			return nil
		},
	}
}
