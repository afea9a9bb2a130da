package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/update-addresses/internal/domain"
	"github.com/trebuchet-org/update-addresses/internal/domain/config"
	"github.com/trebuchet-org/update-addresses/internal/domain/models"
	"github.com/trebuchet-org/update-addresses/internal/usecase"
)

// MockAddressRepository is a mock implementation of AddressRepository
type MockAddressRepository struct {
	mock.Mock
}

func (m *MockAddressRepository) Load(ctx context.Context, chainID string) (models.AddressMapping, bool, error) {
	args := m.Called(ctx, chainID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(models.AddressMapping), args.Bool(1), args.Error(2)
}

func (m *MockAddressRepository) Save(ctx context.Context, chainID string, mapping models.AddressMapping) error {
	args := m.Called(ctx, chainID, mapping)
	return args.Error(0)
}

func (m *MockAddressRepository) Path(chainID string) string {
	return "addresses/" + chainID + ".json"
}

func newUseCase(repo usecase.AddressRepository, dryRun bool) *usecase.UpdateAddresses {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewUpdateAddresses(repo, &config.RuntimeConfig{DryRun: dryRun}, logger)
}

func TestUpdateAddresses(t *testing.T) {
	ctx := context.Background()

	t.Run("creates mapping when no file exists", func(t *testing.T) {
		repo := new(MockAddressRepository)
		repo.On("Load", ctx, "1").Return(models.NewAddressMapping(), false, nil)
		repo.On("Save", ctx, "1", models.AddressMapping{"Router": "0xAAA", "Token": "0xBBB"}).Return(nil)

		result, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{
			ChainID: "1",
			Pairs: []models.AddressPair{
				{Name: "Router", Address: "0xAAA"},
				{Name: "Token", Address: "0xBBB"},
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "addresses/1.json", result.Path)
		assert.False(t, result.Existed)
		assert.True(t, result.Written)
		assert.Len(t, result.Changes, 2)
		repo.AssertExpectations(t)
	})

	t.Run("merges into existing mapping", func(t *testing.T) {
		repo := new(MockAddressRepository)
		repo.On("Load", ctx, "5").Return(models.AddressMapping{"A": "0x1"}, true, nil)
		repo.On("Save", ctx, "5", models.AddressMapping{"A": "0x1", "B": "0x2"}).Return(nil)

		result, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{
			ChainID: "5",
			Pairs:   []models.AddressPair{{Name: "B", Address: "0x2"}},
		})
		require.NoError(t, err)

		assert.True(t, result.Existed)
		assert.Equal(t, []models.AddressChange{{Name: "B", Kind: models.ChangeAdded, NewAddress: "0x2"}}, result.Changes)
		repo.AssertExpectations(t)
	})

	t.Run("dry run does not save", func(t *testing.T) {
		repo := new(MockAddressRepository)
		repo.On("Load", ctx, "1").Return(models.AddressMapping{"A": "0x1"}, true, nil)

		result, err := newUseCase(repo, true).Execute(ctx, usecase.UpdateAddressesParams{
			ChainID: "1",
			Pairs:   []models.AddressPair{{Name: "A", Address: "0x2"}},
		})
		require.NoError(t, err)

		assert.False(t, result.Written)
		assert.Equal(t, models.AddressMapping{"A": "0x2"}, result.Addresses)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("load failure aborts before save", func(t *testing.T) {
		repo := new(MockAddressRepository)
		loadErr := errors.Join(domain.ErrMalformedExistingFile, errors.New("unexpected end of JSON input"))
		repo.On("Load", ctx, "1").Return(nil, true, loadErr)

		_, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{
			ChainID: "1",
			Pairs:   []models.AddressPair{{Name: "A", Address: "0x1"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedExistingFile)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("save failure is propagated", func(t *testing.T) {
		repo := new(MockAddressRepository)
		repo.On("Load", ctx, "1").Return(models.NewAddressMapping(), false, nil)
		repo.On("Save", ctx, "1", mock.Anything).Return(domain.ErrFilesystem)

		_, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{
			ChainID: "1",
			Pairs:   []models.AddressPair{{Name: "A", Address: "0x1"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFilesystem)
	})

	t.Run("rejects missing pairs without touching the repository", func(t *testing.T) {
		repo := new(MockAddressRepository)

		_, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{ChainID: "1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)

		var invalid domain.InvalidArgumentsErr
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, 1, invalid.Count)
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty chain id", func(t *testing.T) {
		repo := new(MockAddressRepository)

		_, err := newUseCase(repo, false).Execute(ctx, usecase.UpdateAddressesParams{
			Pairs: []models.AddressPair{{Name: "A", Address: "0x1"}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidArguments)
		repo.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
	})
}
