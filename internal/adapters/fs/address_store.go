package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/trebuchet-org/update-addresses/internal/domain"
	"github.com/trebuchet-org/update-addresses/internal/domain/config"
	"github.com/trebuchet-org/update-addresses/internal/domain/models"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

const addressFileIndent = "    "

// AddressStoreAdapter implements AddressRepository with one JSON file per chain
type AddressStoreAdapter struct {
	dir string
}

// NewAddressStoreAdapter creates a new AddressStoreAdapter
func NewAddressStoreAdapter(cfg *config.RuntimeConfig) *AddressStoreAdapter {
	return &AddressStoreAdapter{
		dir: cfg.AddressesDir,
	}
}

// Path returns the address file for a chain id
func (s *AddressStoreAdapter) Path(chainID string) string {
	return filepath.Join(s.dir, chainID+".json")
}

// Load reads the mapping for chainID. Returns an empty mapping if the file does not exist.
func (s *AddressStoreAdapter) Load(_ context.Context, chainID string) (models.AddressMapping, bool, error) {
	path := s.Path(chainID)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return models.NewAddressMapping(), false, nil
		}
		return nil, false, fmt.Errorf("%w: failed to read %s: %w", domain.ErrFilesystem, path, err)
	}

	// encoding/json would silently replace invalid bytes with U+FFFD
	if !utf8.Valid(data) {
		return nil, true, fmt.Errorf("%w: %s: invalid UTF-8", domain.ErrMalformedExistingFile, path)
	}

	var mapping models.AddressMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return nil, true, fmt.Errorf("%w: %s: %w", domain.ErrMalformedExistingFile, path, err)
	}
	if mapping == nil {
		// "null" parses cleanly but is not an object
		return nil, true, fmt.Errorf("%w: %s: expected a JSON object", domain.ErrMalformedExistingFile, path)
	}

	return mapping, true, nil
}

// Save overwrites the file for chainID with the mapping, keys sorted and
// indented by four spaces. The directory must already exist.
func (s *AddressStoreAdapter) Save(_ context.Context, chainID string, mapping models.AddressMapping) error {
	path := s.Path(chainID)

	data, err := encodeMapping(mapping)
	if err != nil {
		return fmt.Errorf("failed to marshal addresses: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", domain.ErrFilesystem, path, err)
	}

	return nil
}

// encodeMapping renders the on-disk form. encoding/json emits map keys in
// sorted order. HTML escaping is disabled, though U+2028 and U+2029 are
// still written as \u2028 and \u2029. The encoder's trailing newline is dropped.
func encodeMapping(mapping models.AddressMapping) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", addressFileIndent)
	if err := enc.Encode(map[string]string(mapping)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Ensure AddressStoreAdapter implements AddressRepository
var _ usecase.AddressRepository = (*AddressStoreAdapter)(nil)
