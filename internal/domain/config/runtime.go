package config

// OutputFormat selects how the update result is printed
type OutputFormat string

const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into adapters and use cases and contains all resolved settings
type RuntimeConfig struct {
	// AddressesDir holds one <chain_id>.json file per chain. Relative paths
	// resolve against the working directory.
	AddressesDir string

	// Execution settings
	DryRun  bool
	Debug   bool
	NoColor bool
	Output  OutputFormat
}
