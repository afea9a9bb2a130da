package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/update-addresses/internal/domain"
	"github.com/trebuchet-org/update-addresses/internal/domain/config"
	"github.com/trebuchet-org/update-addresses/internal/domain/models"
)

// UpdateAddresses merges name/address pairs into a chain's address file
type UpdateAddresses struct {
	repo   AddressRepository
	config *config.RuntimeConfig
	log    *slog.Logger
}

// NewUpdateAddresses creates a new update addresses use case
func NewUpdateAddresses(repo AddressRepository, cfg *config.RuntimeConfig, log *slog.Logger) *UpdateAddresses {
	return &UpdateAddresses{
		repo:   repo,
		config: cfg,
		log:    log,
	}
}

// UpdateAddressesParams contains parameters for an update
type UpdateAddressesParams struct {
	ChainID string
	Pairs   []models.AddressPair
}

// UpdateAddressesResult contains the outcome of an update
type UpdateAddressesResult struct {
	ChainID   string
	Path      string
	Existed   bool
	Written   bool
	Addresses models.AddressMapping
	Changes   []models.AddressChange
}

// Execute loads the current mapping, applies the pairs in order and writes
// the whole mapping back unless running in dry-run mode.
func (u *UpdateAddresses) Execute(ctx context.Context, params UpdateAddressesParams) (*UpdateAddressesResult, error) {
	if params.ChainID == "" {
		return nil, domain.InvalidArgumentsErr{Reason: "chain id must not be empty"}
	}
	if len(params.Pairs) == 0 {
		return nil, domain.InvalidArgumentsErr{Count: 1 + 2*len(params.Pairs), Reason: "at least one contract name, contract address pair is required"}
	}

	path := u.repo.Path(params.ChainID)

	mapping, existed, err := u.repo.Load(ctx, params.ChainID)
	if err != nil {
		return nil, err
	}
	u.log.Debug("loaded address file", "path", path, "existed", existed, "entries", len(mapping))

	changes := mapping.Merge(params.Pairs)
	for _, change := range changes {
		u.log.Debug("applied address", "name", change.Name, "kind", change.Kind, "address", change.NewAddress)
	}

	result := &UpdateAddressesResult{
		ChainID:   params.ChainID,
		Path:      path,
		Existed:   existed,
		Addresses: mapping,
		Changes:   changes,
	}

	if u.config.DryRun {
		u.log.Debug("dry run, skipping write", "path", path)
		return result, nil
	}

	if err := u.repo.Save(ctx, params.ChainID, mapping); err != nil {
		return nil, fmt.Errorf("failed to save addresses for chain %s: %w", params.ChainID, err)
	}
	result.Written = true

	return result, nil
}
