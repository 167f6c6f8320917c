package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/bob/internal/templates"
	"github.com/example/bob/internal/wire"
)

// TemplatesCmd returns the command listing available templates.
func TemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List generator templates and where they load from",
		Long: `List every template key known to bob.

Templates found in the project templates directory (default ./templates)
shadow the built-in copies with the same key, e.g. templates/model/has_many.tpl.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := GetConfig(cmd.Context())

			entries, err := wire.TemplateStore(cfg).List()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "TEMPLATE\tSOURCE")
			fmt.Fprintln(w, "--------\t------")
			for _, e := range entries {
				source := e.Source
				if source == templates.SourceOverride {
					source = color.New(color.FgCyan).Sprint(source)
				}
				fmt.Fprintf(w, "%s\t%s\n", e.Key, source)
			}
			return w.Flush()
		},
	}
}
