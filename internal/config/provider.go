package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/update-addresses/internal/domain/config"
)

// DefaultAddressesDir is where address files live relative to the repository root
const DefaultAddressesDir = "addresses"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	cfg := &config.RuntimeConfig{
		AddressesDir: v.GetString("dir"),
		DryRun:       v.GetBool("dry-run"),
		Debug:        v.GetBool("debug"),
		NoColor:      v.GetBool("no-color"),
		Output:       config.OutputFormat(strings.ToLower(v.GetString("output"))),
	}

	if cfg.AddressesDir == "" {
		cfg.AddressesDir = DefaultAddressesDir
	}

	switch cfg.Output {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q (expected table, json or yaml)", cfg.Output)
	}

	return cfg, nil
}

// SetupViper creates and configures a viper instance bound to the command's flags
func SetupViper(cmd *cobra.Command) *viper.Viper {
	loadDotEnv(".env")

	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("ADDRS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("dir", DefaultAddressesDir)
	v.SetDefault("output", string(config.OutputTable))
	v.SetDefault("dry-run", false)
	v.SetDefault("debug", false)
	v.SetDefault("no-color", false)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindPFlag(f.Name, f); err != nil {
			panic(err)
		}
	})

	return v
}

// loadDotEnv loads variables from an env file when present. Variables already
// set in the process environment take precedence.
func loadDotEnv(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		// Log warning but don't fail
		fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", path, err)
	}
}
