package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/update-addresses/internal/app"
	"github.com/trebuchet-org/update-addresses/internal/cli/render"
	"github.com/trebuchet-org/update-addresses/internal/config"
	"github.com/trebuchet-org/update-addresses/internal/domain"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

// Version is set at build time
var Version = "dev"

// rootFlags holds command-specific flags
type rootFlags struct {
	dir     string
	output  string
	dryRun  bool
	debug   bool
	noColor bool
}

// NewRootCmd creates the update-addresses command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "update-addresses <chain_id> <name> <address> [<name> <address>...]",
		Short: "Record deployed contract addresses for a chain",
		Long: `Merge contract name/address pairs into addresses/<chain_id>.json.

The file is created if it does not exist. Existing entries are kept, names
given on the command line overwrite them, and the result is written back with
sorted keys. Run from the repository root.

Examples:
  update-addresses 1 Router 0xAAA Token 0xBBB
  update-addresses --dry-run 11155111 Router 0xAAA
  update-addresses --output json 8453 Vault 0xCCC`,
		Version:       Version,
		Args:          validateUpdateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, args)
		},
	}

	// Flags are only recognised before the chain id; names and addresses
	// starting with "-" are data.
	cmd.Flags().SetInterspersed(false)

	cmd.Flags().StringVar(&flags.dir, "dir", config.DefaultAddressesDir, "Directory holding <chain_id>.json files")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "table", "Output format (table, json, yaml)")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show the merged result without writing it")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	return cmd
}

// validateUpdateArgs rejects malformed argument vectors before any file is touched
func validateUpdateArgs(_ *cobra.Command, args []string) error {
	_, _, err := domain.ParseUpdateArgs(args)
	return err
}

// runUpdate executes the update
func runUpdate(cmd *cobra.Command, args []string) error {
	chainID, pairs, err := domain.ParseUpdateArgs(args)
	if err != nil {
		return err
	}

	appInstance, err := app.InitApp(config.SetupViper(cmd))
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	if appInstance.Config.NoColor {
		color.NoColor = true
	}

	appInstance.Log.Debug("received arguments", "args", args)

	result, err := appInstance.UpdateAddresses.Execute(cmd.Context(), usecase.UpdateAddressesParams{
		ChainID: chainID,
		Pairs:   pairs,
	})
	if err != nil {
		return err
	}

	renderer := render.NewAddressesRenderer(cmd.OutOrStdout(), appInstance.Config.Output)
	return renderer.RenderUpdate(result)
}
