package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/bob/internal/ctxutil"
	"github.com/example/bob/internal/scaffold"
	"github.com/example/bob/internal/wire"
)

// ModelCmd returns the model generator command.
func ModelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model <name> [descriptor...]",
		Short: "Generate an Eloquent model with relationships and rules",
		Long: `Generate an Eloquent model.

The name may select a bundle and nest the class in directories:
  shop::admin.product  ->  class Shop_Admin_Product in bundles/shop/models/admin/product.php

Descriptors after the name add relationships or validation rules:
  has_many:posts      (hm)   belongs_to:user    (bt)
  has_one:profile     (ho)   has_and_belongs_to_many:roles  (hbm)
  Any other "field:options" adds a validation rule, e.g. age:min:18

Examples:
  bob model user has_many:posts has_one:profile -t
  bob model shop::product bt:category name:required price:numeric`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return scaffold.ErrMissingModelName
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := ctxutil.Logger(ctx)

			gen := wire.ModelGenerator(cfg, logger)
			// Validate the name before the history journal is opened.
			if _, err := gen.Target(args[0]); err != nil {
				return err
			}

			writer, cleanup := wire.FileWriter(cfg, cmd.OutOrStdout(), logger)
			defer cleanup()

			_, err := gen.Run(ctx, args[0], args[1:], GetLoader(ctx), writer)
			return err
		},
	}

	cmd.Flags().BoolP("timestamps", "t", false, "Enable timestamps on the model")
	cmd.Flags().Bool("force", false, "Replace files that already exist")
	cmd.Flags().Bool("pretend", false, "Report what would be written without writing")

	return cmd
}
