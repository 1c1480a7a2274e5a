package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hypehouse-backend/cmd/labelctl/output"
	"hypehouse-backend/internal/infrastructure/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Migration SQL được embed trong binary.

Subcommands:
  up      - Apply pending migrations
  status  - Show migration status
  grant   - Grant DML privileges to the API role`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		applied, err := database.NewMigrator(pool).Up(ctx)
		for _, v := range applied {
			output.Success("Applied %s", v)
		}
		if err != nil {
			return err
		}
		if len(applied) == 0 {
			output.Info("Database is up to date")
		}
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		records, err := database.NewMigrator(pool).Status(ctx)
		if err != nil {
			return err
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		output.Section("Migrations")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "\tVERSION\tNAME\tAPPLIED AT")
		pending := 0
		for _, r := range records {
			if !r.Applied {
				pending++
			}
			at := "-"
			if r.AppliedAt != nil {
				at = r.AppliedAt.Format("2006-01-02 15:04:05")
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", output.StatusIcon(r.Applied), r.Version, r.Name, at)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		output.Muted("%d applied, %d pending", len(records)-pending, pending)
		return nil
	},
}

var migrateGrantCmd = &cobra.Command{
	Use:   "grant <role>",
	Short: "Grant DML privileges to the role the API connects as",
	Long: `Role của API không được là owner của bảng hay superuser,
nếu không row-level security bị bỏ qua.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		pool, err := connect(ctx)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := database.NewMigrator(pool).GrantAppRole(ctx, args[0]); err != nil {
			return err
		}
		output.Success("Granted API privileges to %s", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd, migrateStatusCmd, migrateGrantCmd)
}
