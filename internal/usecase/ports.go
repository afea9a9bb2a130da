package usecase

import (
	"context"

	"github.com/trebuchet-org/update-addresses/internal/domain/models"
)

// AddressRepository persists one address mapping per chain id
type AddressRepository interface {
	// Load returns the stored mapping for chainID and whether a file existed.
	// A missing file yields an empty mapping.
	Load(ctx context.Context, chainID string) (models.AddressMapping, bool, error)
	// Save replaces the stored mapping for chainID
	Save(ctx context.Context, chainID string, mapping models.AddressMapping) error
	// Path returns where the mapping for chainID is stored
	Path(chainID string) string
}
