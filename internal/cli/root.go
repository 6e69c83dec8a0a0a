// Package cli implements the rulectl command-line interface.
package cli

import (
	"encoding/json"
	"fmt"

	"rulebook/internal/coupon"
	"rulebook/internal/rules"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// app holds the reference data shared by every subcommand.
type app struct {
	catalog     *rules.Catalog
	drivingAges *rules.DrivingAges
	logger      zerolog.Logger
}

// NewRootCommand builds the rulectl command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		catalog:     rules.DefaultCatalog(),
		drivingAges: rules.DefaultDrivingTable(),
		logger:      zerolog.Nop(),
	}

	root := &cobra.Command{
		Use:           "rulectl",
		Short:         "Evaluate coupon, user and driving-age rules from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().Bool("json", false, "Print results as JSON")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log progress to stderr")
	root.PersistentFlags().StringSlice("coupons-file", nil, "Gzipped CODE,DISCOUNT catalog files to merge over the defaults")
	root.PersistentFlags().StringToInt("driving-age", nil, "Extra minimum driving ages, e.g. DE=18")

	root.AddCommand(
		newCouponsCommand(a),
		newDiscountCommand(a),
		newValidateUserCommand(a),
		newInRangeCommand(),
		newUsernameCommand(),
		newCanDriveCommand(a),
	)

	return root
}

// load applies the reference-data flags on top of the built-in tables.
func (a *app) load(cmd *cobra.Command) error {
	if lo.Must(cmd.Flags().GetBool("verbose")) {
		a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	files := lo.Must(cmd.Flags().GetStringSlice("coupons-file"))
	if len(files) > 0 {
		catalog, err := coupon.BuildCatalog(cmd.Context(), a.catalog,
			&coupon.CatalogConfig{FilePaths: files}, coupon.NewFileLoader(a.logger), a.logger)
		if err != nil {
			return err
		}
		a.catalog = catalog
	}

	extra := lo.Must(cmd.Flags().GetStringToInt("driving-age"))
	if len(extra) > 0 {
		table, err := a.drivingAges.With(extra)
		if err != nil {
			return err
		}
		a.drivingAges = table
	}

	return nil
}

// render prints data as JSON when --json is set, and text otherwise.
func render(cmd *cobra.Command, text string, data any) error {
	if !lo.Must(cmd.Flags().GetBool("json")) {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
