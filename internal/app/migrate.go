package app

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/vilyaua/AI-01/internal/adapter/postgres"
	"github.com/vilyaua/AI-01/internal/config"
	"github.com/vilyaua/AI-01/migrations"
)

// Migration actions accepted by Migrate.
const (
	MigrateUp     = "up"
	MigrateDown   = "down"
	MigrateStatus = "status"
)

// Migrate applies or inspects the embedded schema migrations. Status output
// is written to out as a table.
func Migrate(ctx context.Context, action string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := NewLogger(cfg.Log)

	m, err := postgres.NewMigrator(cfg.Database.DSN, migrations.FS, logger)
	if err != nil {
		return fmt.Errorf("app: migrator: %w", err)
	}
	defer m.Close()

	switch action {
	case MigrateUp:
		return m.Up(ctx)
	case MigrateDown:
		return m.Down(ctx)
	case MigrateStatus:
		states, err := m.Status(ctx)
		if err != nil {
			return err
		}
		return writeStatus(out, states)
	default:
		return fmt.Errorf("app: unknown migrate action %q", action)
	}
}

func writeStatus(out io.Writer, states []postgres.MigrationState) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tAPPLIED\tFILE")
	for _, s := range states {
		fmt.Fprintf(tw, "%d\t%t\t%s\n", s.Version, s.Applied, s.File)
	}
	return tw.Flush()
}
