package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bob/internal/adapters/sqlite"
	"github.com/example/bob/internal/config"
	"github.com/example/bob/internal/db"
	"github.com/example/bob/internal/ports/secondary"
)

// HistoryCmd returns the command listing past generations.
func HistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently generated files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())
			if !cfg.History {
				fmt.Fprintln(cmd.OutOrStdout(), "Generation history is disabled.")
				return nil
			}

			database, err := db.Open(cfg.HistoryPath)
			if err != nil {
				return fmt.Errorf("failed to open history: %w", err)
			}
			defer database.Close()

			records, err := sqlite.NewHistoryRepository(database).List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No generations recorded.")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tKIND\tNAME\tSTATUS\tPATH")
			fmt.Fprintln(w, "--\t----\t----\t----\t------\t----")
			for _, r := range records {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					r.ID,
					r.CreatedAt,
					r.Kind,
					r.Name,
					colorizeWriteStatus(r.Status),
					r.Path,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", config.DefaultHistoryLength, "Number of entries to show (0 for all)")

	return cmd
}

func colorizeWriteStatus(status string) string {
	switch status {
	case secondary.WriteCreated:
		return color.New(color.FgGreen).Sprint(status)
	case secondary.WriteReplaced:
		return color.New(color.FgCyan).Sprint(status)
	case secondary.WriteSkipped:
		return color.New(color.FgYellow).Sprint(status)
	default:
		return status
	}
}
