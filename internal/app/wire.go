//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/update-addresses/internal/adapters"
	"github.com/trebuchet-org/update-addresses/internal/config"
	"github.com/trebuchet-org/update-addresses/internal/logging"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewUpdateAddresses,

		// App
		NewApp,
	)
	return nil, nil
}
