package app

import (
	"log/slog"

	"github.com/trebuchet-org/update-addresses/internal/domain/config"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	Config *config.RuntimeConfig
	Log    *slog.Logger

	UpdateAddresses *usecase.UpdateAddresses
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	updateAddresses *usecase.UpdateAddresses,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		UpdateAddresses: updateAddresses,
	}, nil
}
